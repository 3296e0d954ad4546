/*
DESCRIPTION
  context.go implements the Context payload: CIF0 plus the optional
  CIF1/2/3/7 banks it gates, emitted/parsed in the exact order the
  container requires — indicator words first (CIF0, CIF1, CIF2, CIF3,
  CIF7), then CIF0's data fields, then CIF1's, then CIF2's, then CIF3's.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/pkg/errors"
)

// Context is the payload of a Context packet (and, embedded, of Control
// and QueryAck). Cif1/Cif2/Cif3/Cif7 are nil when their CIF0 meta-bit is
// clear.
type Context struct {
	Cif0 *Cif0Fields
	Cif1 *Cif1Fields
	Cif2 *Cif2Fields
	Cif3 *Cif3Fields
	Cif7 *Cif7
}

// NewContext returns a Context with an empty CIF0 and no CIF1/2/3/7.
func NewContext() *Context {
	return &Context{Cif0: NewCif0Fields()}
}

// Encode writes the context's indicator words and data sections to w.
func (c *Context) Encode(w *bitio.Writer) error {
	opts := deriveCif7Opts(c.Cif7)
	cif1, cif2, cif3, cif7 := c.Cif1 != nil, c.Cif2 != nil, c.Cif3 != nil, c.Cif7 != nil

	if err := w.WriteWord(c.Cif0.Word(cif1, cif2, cif3, cif7)); err != nil {
		return errors.Wrap(err, "cif0 indicator word")
	}
	if cif1 {
		if err := w.WriteWord(c.Cif1.Word()); err != nil {
			return errors.Wrap(err, "cif1 indicator word")
		}
	}
	if cif2 {
		if err := w.WriteWord(c.Cif2.Word()); err != nil {
			return errors.Wrap(err, "cif2 indicator word")
		}
	}
	if cif3 {
		if err := w.WriteWord(c.Cif3.Word()); err != nil {
			return errors.Wrap(err, "cif3 indicator word")
		}
	}
	if cif7 {
		if err := w.WriteWord(uint32(*c.Cif7)); err != nil {
			return errors.Wrap(err, "cif7 indicator word")
		}
	}

	if err := emitCifData(c.Cif0.Entries(), opts, w); err != nil {
		return errors.Wrap(err, "cif0 data")
	}
	if cif1 {
		if err := emitCifData(c.Cif1.Entries(), opts, w); err != nil {
			return errors.Wrap(err, "cif1 data")
		}
	}
	if cif2 {
		if err := emitCifData(c.Cif2.Entries(), opts, w); err != nil {
			return errors.Wrap(err, "cif2 data")
		}
	}
	if cif3 {
		if err := emitCifData(c.Cif3.Entries(), opts, w); err != nil {
			return errors.Wrap(err, "cif3 data")
		}
	}
	return nil
}

// ParseContext reads a Context from r.
func ParseContext(r *bitio.Reader) (*Context, error) {
	word0, err := r.ReadWord()
	if err != nil {
		return nil, errors.Wrap(err, "cif0 indicator word")
	}
	c := &Context{Cif0: NewCif0Fields()}
	c.Cif0.ContextFieldChanged = word0>>uint(cif0BitContextFieldChanged)&1 == 1
	cif1Enabled := word0>>uint(cif0BitCif1Enabled)&1 == 1
	cif2Enabled := word0>>uint(cif0BitCif2Enabled)&1 == 1
	cif3Enabled := word0>>uint(cif0BitCif3Enabled)&1 == 1
	cif7Enabled := word0>>uint(cif0BitCif7Enabled)&1 == 1

	var word1, word2, word3 uint32
	if cif1Enabled {
		if word1, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif1 indicator word")
		}
		c.Cif1 = NewCif1Fields()
	}
	if cif2Enabled {
		if word2, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif2 indicator word")
		}
		c.Cif2 = NewCif2Fields()
	}
	if cif3Enabled {
		if word3, err = r.ReadWord(); err != nil {
			return nil, errors.Wrap(err, "cif3 indicator word")
		}
		c.Cif3 = NewCif3Fields()
	}
	if cif7Enabled {
		cif7Word, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "cif7 indicator word")
		}
		cif7 := Cif7(cif7Word)
		c.Cif7 = &cif7
	}
	opts := deriveCif7Opts(c.Cif7)

	if err := parseCifData(c.Cif0.Entries(), cif0ReservedBits, word0, 0, opts, r); err != nil {
		return nil, errors.Wrap(err, "cif0 data")
	}
	if cif1Enabled {
		if err := parseCifData(c.Cif1.Entries(), cif1ReservedBits, word1, 1, opts, r); err != nil {
			return nil, errors.Wrap(err, "cif1 data")
		}
	}
	if cif2Enabled {
		if err := parseCifData(c.Cif2.Entries(), cif2ReservedBits, word2, 2, opts, r); err != nil {
			return nil, errors.Wrap(err, "cif2 data")
		}
	}
	if cif3Enabled {
		if err := parseCifData(c.Cif3.Entries(), cif3ReservedBits, word3, 3, opts, r); err != nil {
			return nil, errors.Wrap(err, "cif3 data")
		}
	}
	return c, nil
}
