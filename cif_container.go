/*
DESCRIPTION
  cif_container.go implements the central CIF data-section algorithm from
  §4.3: given a CIF's schema entries in descending bit order, compute the
  indicator word from which fields are enabled, and emit or parse the
  corresponding data section, including CIF7 attribute replicas.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/pkg/errors"
)

// cifWord computes the 32-bit indicator word for entries: bit b is set iff
// the entry at bit b is enabled.
func cifWord(entries []cifEntry) uint32 {
	var w uint32
	for _, e := range entries {
		if e.Enabled() {
			w |= 1 << uint(e.Bit())
		}
	}
	return w
}

// emitCifData writes the data section for entries (already enabled per the
// indicator word returned by cifWord) in descending bit order, applying
// opts to every field per §4.3 step 4-5.
func emitCifData(entries []cifEntry, opts cif7Opts, w *bitio.Writer) error {
	for _, e := range entries {
		if !e.Enabled() {
			continue
		}
		if err := e.EncodeAll(w, opts); err != nil {
			return errors.Wrapf(err, "cif field at bit %d", e.Bit())
		}
	}
	return nil
}

// parseCifData reads the data section named by word, consuming one primary
// (if opts.currentPresent) plus opts.extraReplicas replicas per set bit, in
// descending bit order. reservedBits lists bit positions this CIF defines
// as permanently empty (its meta-bits and spec-reserved gaps); any other
// set bit with no matching entry is a parse fault.
func parseCifData(entries []cifEntry, reservedBits map[int]bool, word uint32, cifIndex int, opts cif7Opts, r *bitio.Reader) error {
	byBit := make(map[int]cifEntry, len(entries))
	for _, e := range entries {
		byBit[e.Bit()] = e
	}
	for b := 31; b >= 0; b-- {
		if word>>uint(b)&1 == 0 {
			continue
		}
		if reservedBits[b] {
			continue
		}
		e, ok := byBit[b]
		if !ok {
			return newUnimplementedField(cifIndex, b)
		}
		if err := e.DecodeAll(r, opts); err != nil {
			return errors.Wrapf(err, "cif%d field at bit %d", cifIndex, b)
		}
	}
	return nil
}
