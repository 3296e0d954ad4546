/*
DESCRIPTION
  fixedpoint.go implements the radix (Q-format) fixed-point encodings used
  throughout VITA-49.2 context fields: a real value is carried on the wire
  as an integer scaled by 2^radix, optionally occupying only the low bits
  of a wider word.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

// Package fixedpoint converts between floating-point values and the
// radix-scaled integers VITA-49.2 uses on the wire.
package fixedpoint

import "math"

// EncodeI32 converts f to a signed radix-N fixed-point value held in the low
// bits of an int32, rounding to nearest.
func EncodeI32(f float64, radix uint) int32 {
	return int32(math.Round(f * float64(int64(1)<<radix)))
}

// DecodeI32 converts a signed radix-N fixed-point int32 back to float64.
func DecodeI32(v int32, radix uint) float64 {
	return float64(v) / float64(int64(1)<<radix)
}

// EncodeI64 converts f to a signed radix-N fixed-point value held in an
// int64, rounding to nearest.
func EncodeI64(f float64, radix uint) int64 {
	return int64(math.Round(f * float64(int64(1)<<radix)))
}

// DecodeI64 converts a signed radix-N fixed-point int64 back to float64.
func DecodeI64(v int64, radix uint) float64 {
	return float64(v) / float64(int64(1)<<radix)
}

// EncodeU64 converts f to an unsigned radix-N fixed-point value held in a
// uint64, rounding to nearest. Used by the non-negative frequency and
// bandwidth fields (bandwidth, RF/IF reference frequency, sample rate).
func EncodeU64(f float64, radix uint) uint64 {
	return uint64(math.Round(f * float64(uint64(1)<<radix)))
}

// DecodeU64 converts an unsigned radix-N fixed-point uint64 back to float64.
func DecodeU64(v uint64, radix uint) float64 {
	return float64(v) / float64(uint64(1)<<radix)
}

// EncodeMaskedI16 converts f to a signed radix-N fixed-point value held in
// the low 16 bits of a 32-bit word (the reference-level, temperature, and
// gain/threshold stage encodings), leaving the high bits clear.
func EncodeMaskedI16(f float64, radix uint) uint32 {
	v := int16(math.Round(f * float64(int64(1)<<radix)))
	return uint32(uint16(v))
}

// DecodeMaskedI16 extracts a signed radix-N fixed-point value from the low
// 16 bits of word and converts it back to float64.
func DecodeMaskedI16(word uint32, radix uint) float64 {
	v := int16(uint16(word & 0xffff))
	return float64(v) / float64(int64(1)<<radix)
}

// EncodeMaskedI32 converts f to a signed radix-N fixed-point value occupying
// the whole 32-bit word as a two's-complement int32 (range, percent-overlap).
func EncodeMaskedI32(f float64, radix uint) uint32 {
	return uint32(int32(math.Round(f * float64(int64(1)<<radix))))
}

// DecodeMaskedI32 converts a signed radix-N fixed-point value occupying the
// whole of word back to float64.
func DecodeMaskedI32(word uint32, radix uint) float64 {
	return float64(int32(word)) / float64(int64(1)<<radix)
}
