package bitio

import "testing"

func TestReaderReadBits(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		ns   []int
		want []uint64
	}{
		{
			name: "nibbles",
			src:  []byte{0x8f, 0xe3},
			ns:   []int{4, 2, 4, 6},
			want: []uint64{0x8, 0x3, 0xf, 0x23},
		},
		{
			name: "single word",
			src:  []byte{0x00, 0x00, 0x00, 0x01},
			ns:   []int{32},
			want: []uint64{1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(test.src)
			for i, n := range test.ns {
				got, err := r.ReadBits(n)
				if err != nil {
					t.Fatalf("ReadBits(%d) error: %v", n, err)
				}
				if got != test.want[i] {
					t.Errorf("ReadBits(%d) = %#x, want %#x", n, got, test.want[i])
				}
			}
		})
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadBits(16); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBits(0x8, 4); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0x3, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0xf, 4); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0x23, 6); err != nil {
		t.Fatal(err)
	}

	got := w.Bytes()
	want := []byte{0x8f, 0xe3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Bytes() = %x, want %x", got, want)
	}
}

func TestWriterWordRoundTripsThroughReader(t *testing.T) {
	w := NewWriter()
	if err := w.WriteWord(0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU64(0x0102030405060708); err != nil {
		t.Fatal(err)
	}

	r := NewReader(w.Bytes())
	word, err := r.ReadWord()
	if err != nil {
		t.Fatal(err)
	}
	if word != 0xdeadbeef {
		t.Errorf("ReadWord() = %#x, want 0xdeadbeef", word)
	}
	u64, err := r.ReadU64()
	if err != nil {
		t.Fatal(err)
	}
	if u64 != 0x0102030405060708 {
		t.Errorf("ReadU64() = %#x, want 0x0102030405060708", u64)
	}
	if !r.AtEnd() {
		t.Error("expected reader to be at end")
	}
}

func TestWriterNotByteAlignedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Bytes while unaligned")
		}
	}()
	w := NewWriter()
	_ = w.WriteBits(0x1, 3)
	_ = w.Bytes()
}
