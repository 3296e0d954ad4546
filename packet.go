/*
DESCRIPTION
  packet.go implements Packet, the top-level VITA-49.2 structure: header,
  optional stream id, optional class id, optional integer/fractional
  timestamps, a payload selected by the header's packet type, and an
  optional trailer (signal-data only). Parse/Serialize implement the
  packet's field order exactly once; UpdateSize shares that order with
  Serialize so the two can never disagree about a packet's word count.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/pkg/errors"

	"github.com/ausocean/vita49/internal/vlog"
)

// Packet is a complete VITA-49.2 packet.
type Packet struct {
	Header PacketHeader

	StreamID *uint32
	ClassID  *ClassIdentifier

	IntegerTimestamp    *uint32
	FractionalTimestamp *uint64

	// Payload holds *SignalData, *Context or *Command depending on
	// Header.PacketType.
	Payload any

	// Trailer is only meaningful when Header.PacketType.IsSignalData() and
	// Header.Indicators.TrailerIncluded().
	Trailer *Trailer
}

func (p *Packet) encodeBody(w *bitio.Writer) error {
	if p.StreamID != nil {
		if err := w.WriteWord(*p.StreamID); err != nil {
			return errors.Wrap(err, "stream id")
		}
	}
	if p.ClassID != nil {
		w1, w2 := p.ClassID.Encode()
		if err := w.WriteWord(w1); err != nil {
			return errors.Wrap(err, "class id word 1")
		}
		if err := w.WriteWord(w2); err != nil {
			return errors.Wrap(err, "class id word 2")
		}
	}
	if p.IntegerTimestamp != nil {
		if err := w.WriteWord(*p.IntegerTimestamp); err != nil {
			return errors.Wrap(err, "integer timestamp")
		}
	}
	if p.FractionalTimestamp != nil {
		if err := w.WriteU64(*p.FractionalTimestamp); err != nil {
			return errors.Wrap(err, "fractional timestamp")
		}
	}
	switch pl := p.Payload.(type) {
	case *SignalData:
		if err := pl.Encode(w); err != nil {
			return errors.Wrap(err, "signal data payload")
		}
	case *Context:
		if err := pl.Encode(w); err != nil {
			return errors.Wrap(err, "context payload")
		}
	case *Command:
		if err := pl.Encode(w); err != nil {
			return errors.Wrap(err, "command payload")
		}
	default:
		return errors.New("vita49: packet has no recognised payload")
	}
	if p.Trailer != nil {
		if err := w.WriteWord(uint32(*p.Trailer)); err != nil {
			return errors.Wrap(err, "trailer")
		}
	}
	return nil
}

// UpdateSize recomputes Header.PacketSize (and Header.ClassIDIncluded)
// from the packet's current contents. Callers must call this after
// mutating a packet and before Serialize.
func (p *Packet) UpdateSize() error {
	if (p.Header.Tsi == TsiNone) != (p.IntegerTimestamp == nil) {
		return errors.Wrap(ErrTimestampModeMismatch, "integer timestamp")
	}
	if (p.Header.Tsf == TsfNone) != (p.FractionalTimestamp == nil) {
		return errors.Wrap(ErrTimestampModeMismatch, "fractional timestamp")
	}
	p.Header.ClassIDIncluded = p.ClassID != nil

	w := bitio.NewWriter()
	if err := p.encodeBody(w); err != nil {
		return err
	}
	p.Header.PacketSize = uint16(1 + w.Len()/4)
	return nil
}

// Serialize encodes p to its wire bytes. Callers must call UpdateSize
// first if the packet's contents changed since the header's PacketSize
// was last computed.
func (p *Packet) Serialize() ([]byte, error) {
	w := bitio.NewWriter()
	if err := w.WriteWord(p.Header.Encode()); err != nil {
		return nil, errors.Wrap(err, "header")
	}
	if err := p.encodeBody(w); err != nil {
		return nil, err
	}
	if w.Len() != int(p.Header.PacketSize)*4 {
		return nil, errors.Wrapf(ErrLengthMismatch, "header declares %d words, wrote %d", p.Header.PacketSize, w.Len()/4)
	}
	return w.Bytes(), nil
}

// Parse decodes a complete packet from buf.
func Parse(buf []byte) (*Packet, error) {
	if len(buf) < 4 {
		return nil, errors.Wrapf(ErrFramingError, "short input: %d bytes, no header word", len(buf))
	}
	r := bitio.NewReader(buf)
	word0, err := r.ReadWord()
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	h, err := ParseHeader(word0)
	if err != nil {
		return nil, err
	}
	if int(h.PacketSize)*4 > len(buf) {
		return nil, errors.Wrapf(ErrFramingError, "header declares %d words, buffer holds %d bytes", h.PacketSize, len(buf))
	}
	p := &Packet{Header: h}

	if h.PacketType.HasStreamID() {
		sid, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "stream id")
		}
		p.StreamID = &sid
	}
	if h.ClassIDIncluded {
		w1, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "class id word 1")
		}
		w2, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "class id word 2")
		}
		cid := ParseClassIdentifier(w1, w2)
		p.ClassID = &cid
	}
	if h.Tsi != TsiNone {
		v, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "integer timestamp")
		}
		p.IntegerTimestamp = &v
	}
	if h.Tsf != TsfNone {
		v, err := r.ReadU64()
		if err != nil {
			return nil, errors.Wrap(err, "fractional timestamp")
		}
		p.FractionalTimestamp = &v
	}

	trailerIncluded := h.PacketType.IsSignalData() && h.Indicators.TrailerIncluded()
	switch {
	case h.PacketType.IsSignalData():
		trailerWords := 0
		if trailerIncluded {
			trailerWords = 1
		}
		remainingWords := int(h.PacketSize) - r.BytesRead()/4 - trailerWords
		if remainingWords < 0 {
			return nil, errors.Wrap(ErrFramingError, "declared packet size too small for fixed fields")
		}
		sd, err := ParseSignalData(r, remainingWords*4)
		if err != nil {
			return nil, errors.Wrap(err, "signal data payload")
		}
		p.Payload = sd
	case h.PacketType.IsContext():
		ctx, err := ParseContext(r)
		if err != nil {
			return nil, errors.Wrap(err, "context payload")
		}
		p.Payload = ctx
	case h.PacketType.IsCommand():
		cmd, err := ParseCommand(r, h)
		if err != nil {
			return nil, errors.Wrap(err, "command payload")
		}
		p.Payload = cmd
	default:
		return nil, errors.Wrap(ErrFramingError, "unrecognised packet type")
	}

	if trailerIncluded {
		tw, err := r.ReadWord()
		if err != nil {
			return nil, errors.Wrap(err, "trailer")
		}
		t := Trailer(tw)
		p.Trailer = &t
	}

	if r.BytesRead() != int(h.PacketSize)*4 {
		vlog.Warnf("vita49: parsed %d bytes, header declared %d", r.BytesRead(), int(h.PacketSize)*4)
		return nil, errors.Wrapf(ErrLengthMismatch, "consumed %d bytes, header declares %d", r.BytesRead(), int(h.PacketSize)*4)
	}
	return p, nil
}
