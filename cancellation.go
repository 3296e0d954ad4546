/*
DESCRIPTION
  cancellation.go implements the Cancellation payload: CIF0-3/7 indicator
  words naming the fields being cancelled, with no data section — a
  cancellation says which fields to drop, not what to replace them with.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/pkg/errors"
)

// Cancellation is the payload of a cancellation command: CIF indicator
// words only, no data section.
type Cancellation struct {
	Cif0Bits uint32 // the 23 data bits plus the context-field-changed flag; meta-bits are derived from which of Cif1/2/3Bits is non-nil.
	Cif1Bits *uint32
	Cif2Bits *uint32
	Cif3Bits *uint32
	Cif7     *Cif7
}

// NewCancellation returns an empty Cancellation.
func NewCancellation() *Cancellation { return &Cancellation{} }

func (c *Cancellation) encode(w *bitio.Writer, _ ControlAckMode) error { return c.Encode(w) }

// Encode writes the cancellation's indicator words to w.
func (c *Cancellation) Encode(w *bitio.Writer) error {
	word0 := c.Cif0Bits &^ (1<<uint(cif0BitCif1Enabled) | 1<<uint(cif0BitCif2Enabled) | 1<<uint(cif0BitCif3Enabled) | 1<<uint(cif0BitCif7Enabled))
	if c.Cif1Bits != nil {
		word0 |= 1 << uint(cif0BitCif1Enabled)
	}
	if c.Cif2Bits != nil {
		word0 |= 1 << uint(cif0BitCif2Enabled)
	}
	if c.Cif3Bits != nil {
		word0 |= 1 << uint(cif0BitCif3Enabled)
	}
	if c.Cif7 != nil {
		word0 |= 1 << uint(cif0BitCif7Enabled)
	}
	if err := w.WriteWord(word0); err != nil {
		return errors.Wrap(err, "cif0 indicator word")
	}
	if c.Cif1Bits != nil {
		if err := w.WriteWord(*c.Cif1Bits); err != nil {
			return errors.Wrap(err, "cif1 indicator word")
		}
	}
	if c.Cif2Bits != nil {
		if err := w.WriteWord(*c.Cif2Bits); err != nil {
			return errors.Wrap(err, "cif2 indicator word")
		}
	}
	if c.Cif3Bits != nil {
		if err := w.WriteWord(*c.Cif3Bits); err != nil {
			return errors.Wrap(err, "cif3 indicator word")
		}
	}
	if c.Cif7 != nil {
		if err := w.WriteWord(uint32(*c.Cif7)); err != nil {
			return errors.Wrap(err, "cif7 indicator word")
		}
	}
	return nil
}

// ParseCancellation reads a Cancellation from r.
func ParseCancellation(r *bitio.Reader) (*Cancellation, error) {
	word0, err := r.ReadWord()
	if err != nil {
		return nil, errors.Wrap(err, "cif0 indicator word")
	}
	c := &Cancellation{Cif0Bits: word0}
	if word0>>uint(cif0BitCif1Enabled)&1 == 1 {
		v, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "cif1 indicator word")
		}
		c.Cif1Bits = &v
	}
	if word0>>uint(cif0BitCif2Enabled)&1 == 1 {
		v, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "cif2 indicator word")
		}
		c.Cif2Bits = &v
	}
	if word0>>uint(cif0BitCif3Enabled)&1 == 1 {
		v, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "cif3 indicator word")
		}
		c.Cif3Bits = &v
	}
	if word0>>uint(cif0BitCif7Enabled)&1 == 1 {
		v, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "cif7 indicator word")
		}
		cif7 := Cif7(v)
		c.Cif7 = &cif7
	}
	return c, nil
}
