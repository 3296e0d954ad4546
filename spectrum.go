/*
DESCRIPTION
  spectrum.go implements the Spectrum sub-struct (CIF1): a fixed 13-word
  block describing how a context packet's associated signal was
  transformed into the frequency domain.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/fixedpoint"
	"github.com/pkg/errors"
)

const spectrumResolutionSpanRadix = 20 // Hz, U20 in an i64.

// SpectrumType identifies the kind of spectral transform. Values 0-127 are
// the named/reserved range; 128-255 are user-defined. See the
// UserDefined boundary resolution.
type SpectrumType uint8

// NewSpectrumTypeUserDefined validates v as a user-defined spectrum type
// (>=128) and returns it, or ErrOutOfRange.
func NewSpectrumTypeUserDefined(v uint8) (SpectrumType, error) {
	if v < 128 {
		return 0, errors.Wrapf(ErrOutOfRange, "spectrum type %d is not in the user-defined range [128,255]", v)
	}
	return SpectrumType(v), nil
}

// IsUserDefined reports whether t falls in the user-defined range.
func (t SpectrumType) IsUserDefined() bool { return t >= 128 }

// WindowType identifies the windowing function applied before transform.
// Numbered sequentially per the resolution note in SPEC_FULL.md, matching
// the wire encoding rather than the source enum's unused discriminants.
type WindowType uint8

// Named WindowType values. 44-99 are reserved; 100-255 are
// other/user-defined (see NewWindowTypeOther).
const (
	WindowTypeRectangle              WindowType = 0
	WindowTypeTriangle               WindowType = 1
	WindowTypeHanning100             WindowType = 2
	WindowTypeHanning200              WindowType = 3
	WindowTypeKaiserBessel4Sample300 WindowType = 43
)

// NewWindowTypeOther validates v as an other/user-defined window type
// (>=100) and returns it, or ErrOutOfRange.
func NewWindowTypeOther(v uint8) (WindowType, error) {
	if v < 100 {
		return 0, errors.Wrapf(ErrOutOfRange, "window type %d is not in the other/user-defined range [100,255]", v)
	}
	return WindowType(v), nil
}

// IsReserved reports whether t falls in the reserved gap [44,99].
func (t WindowType) IsReserved() bool { return t >= 44 && t <= 99 }

// Spectrum is the fixed 13-word spectrum-description sub-struct.
type Spectrum struct {
	SpectrumType                   SpectrumType
	AveragingType                  uint8 // 8 bits.
	WindowTimeDeltaInterpretation  uint8 // 4 bits.
	WindowType                     WindowType

	NumTransformPoints uint32
	NumWindowPoints    uint32

	ResolutionHz float64 // i64 radix-20.
	SpanHz       float64 // i64 radix-20.

	NumAverages     uint32
	WeightingFactor int32
	F1Index         int32
	F2Index         int32
	WindowTimeDelta uint32
}

// SpectrumSizeWords is the fixed wire size of a Spectrum block: 11 wire
// fields, two of which (Resolution, Span) occupy two words each.
const SpectrumSizeWords = 13

// Encode packs s into its 13 wire words.
func (s Spectrum) Encode() [SpectrumSizeWords]uint32 {
	var w [13]uint32
	w[0] = uint32(s.SpectrumType) | uint32(s.AveragingType)<<8 | uint32(s.WindowTimeDeltaInterpretation&0xf)<<16
	w[1] = uint32(s.WindowType)
	w[2] = s.NumTransformPoints
	w[3] = s.NumWindowPoints
	res := fixedpoint.EncodeI64(s.ResolutionHz, spectrumResolutionSpanRadix)
	w[4] = uint32(res >> 32)
	w[5] = uint32(res)
	span := fixedpoint.EncodeI64(s.SpanHz, spectrumResolutionSpanRadix)
	w[6] = uint32(span >> 32)
	w[7] = uint32(span)
	w[8] = s.NumAverages
	w[9] = uint32(s.WeightingFactor)
	w[10] = uint32(s.F1Index)
	w[11] = uint32(s.F2Index)
	w[12] = s.WindowTimeDelta
	return w
}

// ParseSpectrum decodes a Spectrum from its 13 wire words.
func ParseSpectrum(w [SpectrumSizeWords]uint32) Spectrum {
	resI64 := int64(w[4])<<32 | int64(uint32(w[5]))
	spanI64 := int64(w[6])<<32 | int64(uint32(w[7]))
	return Spectrum{
		SpectrumType:                  SpectrumType(w[0] & 0xff),
		AveragingType:                 uint8(w[0] >> 8 & 0xff),
		WindowTimeDeltaInterpretation: uint8(w[0] >> 16 & 0xf),
		WindowType:                    WindowType(w[1] & 0xff),
		NumTransformPoints:            w[2],
		NumWindowPoints:               w[3],
		ResolutionHz:                  fixedpoint.DecodeI64(resI64, spectrumResolutionSpanRadix),
		SpanHz:                        fixedpoint.DecodeI64(spanI64, spectrumResolutionSpanRadix),
		NumAverages:                   w[8],
		WeightingFactor:               int32(w[9]),
		F1Index:                       int32(w[10]),
		F2Index:                       int32(w[11]),
		WindowTimeDelta:               w[12],
	}
}
