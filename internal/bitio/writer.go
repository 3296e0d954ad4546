package bitio

import "github.com/pkg/errors"

// Writer is a big-endian bit cursor that accumulates bits into a byte slice.
// Like Reader, a Writer has no seek: it is append-only, matching the
// codec's single-pass emit contract.
type Writer struct {
	buf  []byte
	n    uint64
	bits int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low n bits of v (0 <= n <= 64).
func (w *Writer) WriteBits(v uint64, n int) error {
	if n < 0 || n > 64 {
		return errors.Errorf("bitio: invalid bit count %d", n)
	}
	if n < 64 {
		v &= (1 << uint(n)) - 1
	}
	w.n = w.n<<uint(n) | v
	w.bits += n
	for w.bits >= 8 {
		w.bits -= 8
		w.buf = append(w.buf, byte(w.n>>uint(w.bits)))
	}
	return nil
}

// WriteWord appends one 32-bit big-endian word. The cursor must be
// byte-aligned.
func (w *Writer) WriteWord(v uint32) error {
	if !w.ByteAligned() {
		return errors.New("bitio: WriteWord called while not byte-aligned")
	}
	return w.WriteBits(uint64(v), 32)
}

// WriteWords appends each word in vs.
func (w *Writer) WriteWords(vs []uint32) error {
	for i, v := range vs {
		if err := w.WriteWord(v); err != nil {
			return errors.Wrapf(err, "word %d of %d", i, len(vs))
		}
	}
	return nil
}

// WriteU64 appends v as two consecutive big-endian words, high word first.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.WriteWord(uint32(v >> 32)); err != nil {
		return errors.Wrap(err, "high word")
	}
	return errors.Wrap(w.WriteWord(uint32(v)), "low word")
}

// WriteBytes appends raw bytes. The cursor must be byte-aligned.
func (w *Writer) WriteBytes(b []byte) error {
	if !w.ByteAligned() {
		return errors.New("bitio: WriteBytes called while not byte-aligned")
	}
	w.buf = append(w.buf, b...)
	return nil
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (w *Writer) ByteAligned() bool {
	return w.bits == 0
}

// Bytes returns the accumulated output. Calling Bytes before the cursor is
// byte-aligned panics, since VITA-49 packets are always word-aligned on the
// wire and a non-aligned flush indicates a schema bug.
func (w *Writer) Bytes() []byte {
	if !w.ByteAligned() {
		panic("bitio: Bytes called while not byte-aligned")
	}
	return w.buf
}

// Len returns the number of whole bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// fieldWriter wraps a Writer with a sticky error, mirroring fieldReader.
type fieldWriter struct {
	e error
	w *Writer
}

// FieldWriter exposes the sticky-error writer for callers outside this
// package that chain several bit-field writes.
type FieldWriter struct {
	fieldWriter
}

// NewFieldWriter returns a FieldWriter over w.
func NewFieldWriter(w *Writer) *FieldWriter {
	return &FieldWriter{fieldWriter{w: w}}
}

// Bits writes the low n bits of v, short-circuiting on a previous error.
func (f *FieldWriter) Bits(v uint64, n int) {
	if f.e != nil {
		return
	}
	f.e = f.w.WriteBits(v, n)
}

// Word writes a 32-bit word, short-circuiting on a previous error.
func (f *FieldWriter) Word(v uint32) {
	if f.e != nil {
		return
	}
	f.e = f.w.WriteWord(v)
}

// U64 writes a 64-bit value as two words, short-circuiting on a previous error.
func (f *FieldWriter) U64(v uint64) {
	if f.e != nil {
		return
	}
	f.e = f.w.WriteU64(v)
}

// Bool writes a single bit.
func (f *FieldWriter) Bool(v bool) {
	var b uint64
	if v {
		b = 1
	}
	f.Bits(b, 1)
}

// Err returns the sticky error, if any.
func (f *FieldWriter) Err() error { return f.e }
