/*
DESCRIPTION
  gain.go implements the Gain sub-struct: two independently-settable
  radix-7 gain stages packed into one 32-bit word. The upstream source
  this codec is modeled on combines a newly-set stage with the other
  stage's bits using AND instead of OR, which erases whichever stage was
  set first; this implementation uses OR, as intended.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/fixedpoint"

const gainRadix = 7

// Gain packs two signed radix-7 gain-stage values, in dB, into one 32-bit
// word: stage 1 in the low 16 bits, stage 2 in the high 16 bits.
type Gain uint32

// NewGain builds a Gain from its two stage values, in dB.
func NewGain(stage1DB, stage2DB float64) Gain {
	s1 := fixedpoint.EncodeMaskedI16(stage1DB, gainRadix)
	s2 := fixedpoint.EncodeMaskedI16(stage2DB, gainRadix)
	return Gain(s2<<16 | s1&0xffff)
}

// Stage1DB returns the first gain stage, in dB.
func (g Gain) Stage1DB() float64 {
	return fixedpoint.DecodeMaskedI16(uint32(g)&0xffff, gainRadix)
}

// Stage2DB returns the second gain stage, in dB.
func (g Gain) Stage2DB() float64 {
	return fixedpoint.DecodeMaskedI16(uint32(g)>>16, gainRadix)
}

// SetStage1DB sets the first gain stage, preserving the second.
func (g *Gain) SetStage1DB(db float64) {
	s1 := fixedpoint.EncodeMaskedI16(db, gainRadix)
	*g = Gain(uint32(*g)&0xffff0000 | s1&0xffff)
}

// SetStage2DB sets the second gain stage, preserving the first.
func (g *Gain) SetStage2DB(db float64) {
	s2 := fixedpoint.EncodeMaskedI16(db, gainRadix)
	*g = Gain(uint32(*g)&0x0000ffff | s2<<16)
}
