package fixedpoint

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestI32RoundTrip(t *testing.T) {
	tests := []float64{0, 1, -1, 3.5, -3.5, 123.456}
	for _, f := range tests {
		v := EncodeI32(f, 20)
		got := DecodeI32(v, 20)
		if !approxEqual(got, f, 1e-5) {
			t.Errorf("EncodeI32/DecodeI32(%v) round-trip = %v", f, got)
		}
	}
}

func TestU64RoundTrip(t *testing.T) {
	tests := []float64{0, 6e6, 100e6, 8e6}
	for _, f := range tests {
		v := EncodeU64(f, 20)
		got := DecodeU64(v, 20)
		if !approxEqual(got, f, 1e-3) {
			t.Errorf("EncodeU64/DecodeU64(%v) round-trip = %v", f, got)
		}
	}
}

func TestMaskedI16RoundTrip(t *testing.T) {
	tests := []float64{0, 1.5, -1.5, 100, -100}
	for _, f := range tests {
		w := EncodeMaskedI16(f, 7)
		if w&0xffff0000 != 0 {
			t.Errorf("EncodeMaskedI16(%v) set high bits: %#x", f, w)
		}
		got := DecodeMaskedI16(w, 7)
		if !approxEqual(got, f, 1.0/128) {
			t.Errorf("EncodeMaskedI16/DecodeMaskedI16(%v) round-trip = %v", f, got)
		}
	}
}

func TestMaskedI32RoundTrip(t *testing.T) {
	tests := []float64{0, 12.5, -12.5}
	for _, f := range tests {
		w := EncodeMaskedI32(f, 6)
		got := DecodeMaskedI32(w, 6)
		if !approxEqual(got, f, 1.0/64) {
			t.Errorf("EncodeMaskedI32/DecodeMaskedI32(%v) round-trip = %v", f, got)
		}
	}
}
