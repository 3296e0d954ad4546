/*
DESCRIPTION
  ackcontainer.go implements the AckFieldContainer: a CIF0-3-shaped
  structure whose data slots each hold a single AckResponse instead of
  the original field's value. ValidationAck and ExecutionAck carry two
  of these — the Warning Indicator Field (WIF) and Error Indicator Field
  (EIF) — reusing the same bit positions as Cif0/1/2/3Fields so a
  controllee can report per-field condition flags against exactly the
  fields a Control packet named.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/pkg/errors"
)

func cifBitList(entries []cifEntry) []int {
	bits := make([]int, len(entries))
	for i, e := range entries {
		bits[i] = e.Bit()
	}
	return bits
}

// ackCifBank holds the AckResponse values reported against one CIF's bit
// positions.
type ackCifBank struct {
	bits   []int // descending order, copied from the real CIF's schema.
	values map[int]*AckResponse
}

func newAckCifBank(bits []int) *ackCifBank {
	return &ackCifBank{bits: bits, values: map[int]*AckResponse{}}
}

// Get returns the AckResponse reported for bit, or nil if not reported.
func (b *ackCifBank) Get(bit int) *AckResponse { return b.values[bit] }

// Set reports (or clears, with v == nil) the AckResponse for bit.
func (b *ackCifBank) Set(bit int, v *AckResponse) {
	if v == nil {
		delete(b.values, bit)
		return
	}
	vv := *v
	b.values[bit] = &vv
}

func (b *ackCifBank) word() uint32 {
	var w uint32
	for bit := range b.values {
		w |= 1 << uint(bit)
	}
	return w
}

func (b *ackCifBank) encode(w *bitio.Writer) error {
	for _, bit := range b.bits {
		v, ok := b.values[bit]
		if !ok {
			continue
		}
		if err := w.WriteWord(uint32(*v)); err != nil {
			return errors.Wrapf(err, "ack field at bit %d", bit)
		}
	}
	return nil
}

func (b *ackCifBank) decode(r *bitio.Reader, word uint32, reserved map[int]bool, cifIndex int) error {
	known := make(map[int]bool, len(b.bits))
	for _, bit := range b.bits {
		known[bit] = true
	}
	for bi := 31; bi >= 0; bi-- {
		if word>>uint(bi)&1 == 0 || reserved[bi] {
			continue
		}
		if !known[bi] {
			return newUnimplementedField(cifIndex, bi)
		}
		v, err := r.ReadWord()
		if err != nil {
			return errors.Wrapf(err, "ack field at bit %d", bi)
		}
		ar := AckResponse(v)
		b.values[bi] = &ar
	}
	return nil
}

// AckFieldContainer is one side (warning or error) of a ValidationAck or
// ExecutionAck: CIF0-3's bit positions, each optionally carrying an
// AckResponse instead of a scalar value.
type AckFieldContainer struct {
	Cif0 *ackCifBank
	Cif1 *ackCifBank
	Cif2 *ackCifBank
	Cif3 *ackCifBank
}

// NewAckFieldContainer returns an empty AckFieldContainer.
func NewAckFieldContainer() *AckFieldContainer {
	return &AckFieldContainer{
		Cif0: newAckCifBank(cifBitList(NewCif0Fields().Entries())),
		Cif1: newAckCifBank(cifBitList(NewCif1Fields().Entries())),
		Cif2: newAckCifBank(cifBitList(NewCif2Fields().Entries())),
		Cif3: newAckCifBank(cifBitList(NewCif3Fields().Entries())),
	}
}

func (a *AckFieldContainer) cif0Word(cif1, cif2, cif3 bool) uint32 {
	w := a.Cif0.word()
	if cif1 {
		w |= 1 << uint(cif0BitCif1Enabled)
	}
	if cif2 {
		w |= 1 << uint(cif0BitCif2Enabled)
	}
	if cif3 {
		w |= 1 << uint(cif0BitCif3Enabled)
	}
	return w
}

// Encode writes the container's indicator words and reported AckResponse
// values to w.
func (a *AckFieldContainer) Encode(w *bitio.Writer) error {
	cif1 := len(a.Cif1.values) > 0
	cif2 := len(a.Cif2.values) > 0
	cif3 := len(a.Cif3.values) > 0
	if err := w.WriteWord(a.cif0Word(cif1, cif2, cif3)); err != nil {
		return errors.Wrap(err, "cif0 indicator word")
	}
	if cif1 {
		if err := w.WriteWord(a.Cif1.word()); err != nil {
			return errors.Wrap(err, "cif1 indicator word")
		}
	}
	if cif2 {
		if err := w.WriteWord(a.Cif2.word()); err != nil {
			return errors.Wrap(err, "cif2 indicator word")
		}
	}
	if cif3 {
		if err := w.WriteWord(a.Cif3.word()); err != nil {
			return errors.Wrap(err, "cif3 indicator word")
		}
	}
	if err := a.Cif0.encode(w); err != nil {
		return errors.Wrap(err, "cif0 ack data")
	}
	if cif1 {
		if err := a.Cif1.encode(w); err != nil {
			return errors.Wrap(err, "cif1 ack data")
		}
	}
	if cif2 {
		if err := a.Cif2.encode(w); err != nil {
			return errors.Wrap(err, "cif2 ack data")
		}
	}
	if cif3 {
		if err := a.Cif3.encode(w); err != nil {
			return errors.Wrap(err, "cif3 ack data")
		}
	}
	return nil
}

// ParseAckFieldContainer reads an AckFieldContainer from r.
func ParseAckFieldContainer(r *bitio.Reader) (*AckFieldContainer, error) {
	word0, err := r.ReadWord()
	if err != nil {
		return nil, errors.Wrap(err, "cif0 indicator word")
	}
	a := NewAckFieldContainer()
	cif1Enabled := word0>>uint(cif0BitCif1Enabled)&1 == 1
	cif2Enabled := word0>>uint(cif0BitCif2Enabled)&1 == 1
	cif3Enabled := word0>>uint(cif0BitCif3Enabled)&1 == 1

	var word1, word2, word3 uint32
	if cif1Enabled {
		if word1, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif1 indicator word")
		}
	}
	if cif2Enabled {
		if word2, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif2 indicator word")
		}
	}
	if cif3Enabled {
		if word3, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif3 indicator word")
		}
	}
	if err := a.Cif0.decode(r, word0, cif0ReservedBits, 0); err != nil {
		return nil, errors.Wrap(err, "cif0 ack data")
	}
	if cif1Enabled {
		if err := a.Cif1.decode(r, word1, cif1ReservedBits, 1); err != nil {
			return nil, errors.Wrap(err, "cif1 ack data")
		}
	}
	if cif2Enabled {
		if err := a.Cif2.decode(r, word2, cif2ReservedBits, 2); err != nil {
			return nil, errors.Wrap(err, "cif2 ack data")
		}
	}
	if cif3Enabled {
		if err := a.Cif3.decode(r, word3, cif3ReservedBits, 3); err != nil {
			return nil, errors.Wrap(err, "cif3 ack data")
		}
	}
	return a, nil
}
