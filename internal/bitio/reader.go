/*
DESCRIPTION
  reader.go provides a big-endian, word-aligned bit cursor for reading
  VITA-49 packets. The cursor is stream-driven: bits are consumed in order
  and there is no random access, matching the codec's single-pass parse
  contract.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

// Package bitio provides big-endian bit-level reading and writing over byte
// slices, with 32-bit word alignment tracking for the VITA-49 wire format.
package bitio

import (
	"io"

	"github.com/pkg/errors"
)

// ErrShortRead is returned when the underlying byte slice does not contain
// enough bits to satisfy a read.
var ErrShortRead = errors.New("bitio: short read")

// Reader is a big-endian bit cursor over an in-memory byte slice.
type Reader struct {
	buf   []byte
	n     uint64
	bits  int
	nRead int
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits reads the next n bits (0 <= n <= 64) and returns them
// right-justified in a uint64.
func (r *Reader) ReadBits(n int) (uint64, error) {
	for n > r.bits {
		if r.nRead >= len(r.buf) {
			return 0, ErrShortRead
		}
		r.n <<= 8
		r.n |= uint64(r.buf[r.nRead])
		r.nRead++
		r.bits += 8
	}
	v := (r.n >> uint(r.bits-n)) & ((1 << uint(n)) - 1)
	r.bits -= n
	return v, nil
}

// ReadWord reads one 32-bit big-endian word. The cursor must be byte-aligned.
func (r *Reader) ReadWord() (uint32, error) {
	v, err := r.ReadBits(32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadWords reads n 32-bit words.
func (r *Reader) ReadWords(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		w, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrapf(err, "word %d of %d", i, n)
		}
		out[i] = w
	}
	return out, nil
}

// ReadU64 reads one 64-bit value as two consecutive big-endian words,
// high word first.
func (r *Reader) ReadU64() (uint64, error) {
	hi, err := r.ReadWord()
	if err != nil {
		return 0, errors.Wrap(err, "high word")
	}
	lo, err := r.ReadWord()
	if err != nil {
		return 0, errors.Wrap(err, "low word")
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// PeekBits returns the next n bits without advancing the cursor.
func (r *Reader) PeekBits(n int) (uint64, error) {
	save := *r
	v, err := r.ReadBits(n)
	*r = save
	return v, err
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (r *Reader) ByteAligned() bool {
	return r.bits == 0
}

// WordAligned reports whether the cursor sits on a 32-bit word boundary.
func (r *Reader) WordAligned() bool {
	return r.bits == 0 && r.nRead%4 == 0
}

// BytesRead returns the number of whole bytes consumed from the source so far.
func (r *Reader) BytesRead() int {
	return r.nRead
}

// Remaining returns the number of unread bytes in the source.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.nRead
}

// AtEnd reports whether the reader has consumed the entire buffer and has no
// pending sub-byte bits.
func (r *Reader) AtEnd() bool {
	return r.nRead >= len(r.buf) && r.bits == 0
}

// ReadBytes reads n raw bytes. The cursor must be byte-aligned.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if !r.ByteAligned() {
		return nil, errors.New("bitio: ReadBytes called while not byte-aligned")
	}
	if r.nRead+n > len(r.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	out := make([]byte, n)
	copy(out, r.buf[r.nRead:r.nRead+n])
	r.nRead += n
	return out, nil
}

// fieldReader wraps a Reader with a sticky error, letting callers chain a
// sequence of reads and check the error once at the end.
type fieldReader struct {
	e error
	r *Reader
}

// newFieldReader returns a new fieldReader over r.
func newFieldReader(r *Reader) fieldReader {
	return fieldReader{r: r}
}

func (f *fieldReader) bits(n int) uint64 {
	if f.e != nil {
		return 0
	}
	var v uint64
	v, f.e = f.r.ReadBits(n)
	return v
}

func (f *fieldReader) word() uint32 {
	return uint32(f.bits(32))
}

func (f *fieldReader) u64() uint64 {
	if f.e != nil {
		return 0
	}
	var v uint64
	v, f.e = f.r.ReadU64()
	return v
}

func (f *fieldReader) err() error {
	return f.e
}

// FieldReader exposes the sticky-error reader for callers outside this
// package that need to chain several bit-field reads.
type FieldReader struct {
	fieldReader
}

// NewFieldReader returns a FieldReader over r.
func NewFieldReader(r *Reader) *FieldReader {
	return &FieldReader{newFieldReader(r)}
}

// Bits reads n bits, short-circuiting if a previous read already failed.
func (f *FieldReader) Bits(n int) uint64 { return f.bits(n) }

// Word reads one 32-bit word, short-circuiting on a previous error.
func (f *FieldReader) Word() uint32 { return f.word() }

// U64 reads one 64-bit value (two words), short-circuiting on a previous error.
func (f *FieldReader) U64() uint64 { return f.u64() }

// Bool reads a single bit as a boolean.
func (f *FieldReader) Bool() bool { return f.bits(1) == 1 }

// Err returns the sticky error, if any.
func (f *FieldReader) Err() error { return f.err() }
