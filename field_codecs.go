/*
DESCRIPTION
  field_codecs.go collects the reusable fieldCodec[T] constructors shared
  across CIF0-3's schema tables: plain integers, radix and masked-radix
  fixed-point values, and the fixed/variable-length sub-structs.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/ausocean/vita49/internal/fixedpoint"
)

func u32Codec() fieldCodec[uint32] {
	return fieldCodec[uint32]{
		encode: func(v uint32, w *bitio.Writer) error { return w.WriteWord(v) },
		decode: func(r *bitio.Reader) (uint32, error) { return r.ReadWord() },
	}
}

func i32Codec() fieldCodec[int32] {
	return fieldCodec[int32]{
		encode: func(v int32, w *bitio.Writer) error { return w.WriteWord(uint32(v)) },
		decode: func(r *bitio.Reader) (int32, error) {
			v, err := r.ReadWord()
			return int32(v), err
		},
	}
}

func u64PlainCodec() fieldCodec[uint64] {
	return fieldCodec[uint64]{
		encode: func(v uint64, w *bitio.Writer) error { return w.WriteU64(v) },
		decode: func(r *bitio.Reader) (uint64, error) { return r.ReadU64() },
	}
}

func i64PlainCodec() fieldCodec[int64] {
	return fieldCodec[int64]{
		encode: func(v int64, w *bitio.Writer) error { return w.WriteU64(uint64(v)) },
		decode: func(r *bitio.Reader) (int64, error) {
			v, err := r.ReadU64()
			return int64(v), err
		},
	}
}

// u64RadixCodec encodes an unsigned radix-R fixed-point float64 in a 64-bit
// word (bandwidth, rf/if reference frequency, sample rate, aux-freq).
func u64RadixCodec(radix uint) fieldCodec[float64] {
	return fieldCodec[float64]{
		encode: func(v float64, w *bitio.Writer) error {
			return w.WriteU64(fixedpoint.EncodeU64(v, radix))
		},
		decode: func(r *bitio.Reader) (float64, error) {
			v, err := r.ReadU64()
			return fixedpoint.DecodeU64(v, radix), err
		},
	}
}

// i64RadixCodec encodes a signed radix-R fixed-point float64 in a 64-bit
// word (rf-ref-freq-offset, if-band-offset, resolution/span).
func i64RadixCodec(radix uint) fieldCodec[float64] {
	return fieldCodec[float64]{
		encode: func(v float64, w *bitio.Writer) error {
			return w.WriteU64(uint64(fixedpoint.EncodeI64(v, radix)))
		},
		decode: func(r *bitio.Reader) (float64, error) {
			v, err := r.ReadU64()
			return fixedpoint.DecodeI64(int64(v), radix), err
		},
	}
}

// maskedI16RadixCodec encodes a signed radix-R fixed-point float64 in the
// low 16 bits of a 32-bit word (reference-level, temperature, phase-offset).
func maskedI16RadixCodec(radix uint) fieldCodec[float64] {
	return fieldCodec[float64]{
		encode: func(v float64, w *bitio.Writer) error {
			return w.WriteWord(fixedpoint.EncodeMaskedI16(v, radix))
		},
		decode: func(r *bitio.Reader) (float64, error) {
			v, err := r.ReadWord()
			return fixedpoint.DecodeMaskedI16(v, radix), err
		},
	}
}

// maskedI32RadixCodec encodes a signed radix-R fixed-point float64 occupying
// a full 32-bit word (range, percent-overlap).
func maskedI32RadixCodec(radix uint) fieldCodec[float64] {
	return fieldCodec[float64]{
		encode: func(v float64, w *bitio.Writer) error {
			return w.WriteWord(fixedpoint.EncodeMaskedI32(v, radix))
		},
		decode: func(r *bitio.Reader) (float64, error) {
			v, err := r.ReadWord()
			return fixedpoint.DecodeMaskedI32(v, radix), err
		},
	}
}

func gainCodec() fieldCodec[Gain] {
	return fieldCodec[Gain]{
		encode: func(v Gain, w *bitio.Writer) error { return w.WriteWord(uint32(v)) },
		decode: func(r *bitio.Reader) (Gain, error) {
			v, err := r.ReadWord()
			return Gain(v), err
		},
	}
}

func thresholdCodec() fieldCodec[Threshold] {
	return fieldCodec[Threshold]{
		encode: func(v Threshold, w *bitio.Writer) error { return w.WriteWord(uint32(v)) },
		decode: func(r *bitio.Reader) (Threshold, error) {
			v, err := r.ReadWord()
			return Threshold(v), err
		},
	}
}

func deviceIdentifierCodec() fieldCodec[DeviceIdentifier] {
	return fieldCodec[DeviceIdentifier]{
		encode: func(v DeviceIdentifier, w *bitio.Writer) error {
			w1, w2 := v.Encode()
			if err := w.WriteWord(w1); err != nil {
				return err
			}
			return w.WriteWord(w2)
		},
		decode: func(r *bitio.Reader) (DeviceIdentifier, error) {
			w1, err := r.ReadWord()
			if err != nil {
				return DeviceIdentifier{}, err
			}
			w2, err := r.ReadWord()
			if err != nil {
				return DeviceIdentifier{}, err
			}
			return ParseDeviceIdentifier(w1, w2), nil
		},
	}
}

func formattedGPSCodec() fieldCodec[FormattedGPS] {
	return fieldCodec[FormattedGPS]{
		encode: func(v FormattedGPS, w *bitio.Writer) error {
			words := v.Encode()
			return w.WriteWords(words[:])
		},
		decode: func(r *bitio.Reader) (FormattedGPS, error) {
			words, err := r.ReadWords(FormattedGPSSizeWords)
			if err != nil {
				return FormattedGPS{}, err
			}
			var arr [FormattedGPSSizeWords]uint32
			copy(arr[:], words)
			return ParseFormattedGPS(arr), nil
		},
	}
}

func ecefEphemerisCodec() fieldCodec[EcefEphemeris] {
	return fieldCodec[EcefEphemeris]{
		encode: func(v EcefEphemeris, w *bitio.Writer) error {
			words := v.Encode()
			return w.WriteWords(words[:])
		},
		decode: func(r *bitio.Reader) (EcefEphemeris, error) {
			words, err := r.ReadWords(EcefEphemerisSizeWords)
			if err != nil {
				return EcefEphemeris{}, err
			}
			var arr [EcefEphemerisSizeWords]uint32
			copy(arr[:], words)
			return ParseEcefEphemeris(arr), nil
		},
	}
}

func gpsAsciiCodec() fieldCodec[GpsAscii] {
	return fieldCodec[GpsAscii]{
		encode: func(v GpsAscii, w *bitio.Writer) error { return v.Encode(w) },
		decode: func(r *bitio.Reader) (GpsAscii, error) { return ParseGpsAscii(r) },
	}
}

func contextAssociationListsCodec() fieldCodec[ContextAssociationLists] {
	return fieldCodec[ContextAssociationLists]{
		encode: func(v ContextAssociationLists, w *bitio.Writer) error { return v.Encode(w) },
		decode: func(r *bitio.Reader) (ContextAssociationLists, error) {
			return ParseContextAssociationLists(r)
		},
	}
}

func spectrumCodec() fieldCodec[Spectrum] {
	return fieldCodec[Spectrum]{
		encode: func(v Spectrum, w *bitio.Writer) error {
			words := v.Encode()
			return w.WriteWords(words[:])
		},
		decode: func(r *bitio.Reader) (Spectrum, error) {
			words, err := r.ReadWords(SpectrumSizeWords)
			if err != nil {
				return Spectrum{}, err
			}
			var arr [SpectrumSizeWords]uint32
			copy(arr[:], words)
			return ParseSpectrum(arr), nil
		},
	}
}

func ackResponseCodec() fieldCodec[AckResponse] {
	return fieldCodec[AckResponse]{
		encode: func(v AckResponse, w *bitio.Writer) error { return w.WriteWord(uint32(v)) },
		decode: func(r *bitio.Reader) (AckResponse, error) {
			v, err := r.ReadWord()
			return AckResponse(v), err
		},
	}
}
