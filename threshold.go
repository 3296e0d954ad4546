package vita49

import "github.com/ausocean/vita49/internal/fixedpoint"

const thresholdRadix = 7

// Threshold packs two signed radix-7 power-level stages, in dBm, into one
// 32-bit word: stage 1 in the low 16 bits, stage 2 in the high 16 bits.
// Structurally identical to Gain; unlike the source this is modeled on, its
// setters never had the AND/OR defect.
type Threshold uint32

// NewThreshold builds a Threshold from its two stage values, in dBm.
func NewThreshold(stage1DBm, stage2DBm float64) Threshold {
	s1 := fixedpoint.EncodeMaskedI16(stage1DBm, thresholdRadix)
	s2 := fixedpoint.EncodeMaskedI16(stage2DBm, thresholdRadix)
	return Threshold(s2<<16 | s1&0xffff)
}

// Stage1DBm returns the first threshold stage, in dBm.
func (t Threshold) Stage1DBm() float64 {
	return fixedpoint.DecodeMaskedI16(uint32(t)&0xffff, thresholdRadix)
}

// Stage2DBm returns the second threshold stage, in dBm.
func (t Threshold) Stage2DBm() float64 {
	return fixedpoint.DecodeMaskedI16(uint32(t)>>16, thresholdRadix)
}

// SetStage1DBm sets the first threshold stage, preserving the second.
func (t *Threshold) SetStage1DBm(dbm float64) {
	s1 := fixedpoint.EncodeMaskedI16(dbm, thresholdRadix)
	*t = Threshold(uint32(*t)&0xffff0000 | s1&0xffff)
}

// SetStage2DBm sets the second threshold stage, preserving the first.
func (t *Threshold) SetStage2DBm(dbm float64) {
	s2 := fixedpoint.EncodeMaskedI16(dbm, thresholdRadix)
	*t = Threshold(uint32(*t)&0x0000ffff | s2<<16)
}
