/*
DESCRIPTION
  gpsascii.go implements the GpsAscii sub-struct: a variable-length block
  of ASCII text (e.g. a raw NMEA sentence) packed four characters per word,
  preceded by an OUI word and a word count. A zero-length string is valid.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

// GpsAscii is the variable-length formatted-GPS-as-text sub-struct.
type GpsAscii struct {
	OUI  uint32 // 24 bits.
	Text string
}

// NumWords returns the number of 32-bit words GpsAscii.Text occupies,
// rounding up to a whole word (VITA-49.2 pads the final word with zero
// bytes).
func (g GpsAscii) NumWords() int {
	return (len(g.Text) + 3) / 4
}

// SizeWords is the total wire size: the OUI word, the word-count word, and
// the text words.
func (g GpsAscii) SizeWords() int {
	return 2 + g.NumWords()
}

// Encode appends g's wire words to w.
func (g GpsAscii) Encode(w *bitio.Writer) error {
	n := g.NumWords()
	if err := w.WriteWord(g.OUI & 0xff_ffff); err != nil {
		return err
	}
	if err := w.WriteWord(uint32(n)); err != nil {
		return err
	}
	padded := make([]byte, n*4)
	copy(padded, g.Text)
	return w.WriteBytes(padded)
}

// ParseGpsAscii decodes a GpsAscii from r. A zero word count is valid and
// yields an empty Text.
func ParseGpsAscii(r *bitio.Reader) (GpsAscii, error) {
	ouiWord, err := r.ReadWord()
	if err != nil {
		return GpsAscii{}, err
	}
	n, err := r.ReadWord()
	if err != nil {
		return GpsAscii{}, err
	}
	var text string
	if n > 0 {
		b, err := r.ReadBytes(int(n) * 4)
		if err != nil {
			return GpsAscii{}, err
		}
		end := len(b)
		for end > 0 && b[end-1] == 0 {
			end--
		}
		text = string(b[:end])
	}
	return GpsAscii{OUI: ouiWord & 0xff_ffff, Text: text}, nil
}
