/*
DESCRIPTION
  signaldata.go implements the SignalData payload: an opaque byte blob
  whose length must be a multiple of 4 (VITA-49 packets are word-aligned
  throughout, and the data payload is no exception).

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

// SignalData is the payload of a signal-data packet: raw digitized
// samples, opaque to this codec.
type SignalData struct {
	Payload []byte
}

// Encode writes s.Payload to w. Returns ErrPayloadUneven32BitWords if the
// payload length is not a multiple of 4.
func (s *SignalData) Encode(w *bitio.Writer) error {
	if len(s.Payload)%4 != 0 {
		return ErrPayloadUneven32BitWords
	}
	return w.WriteBytes(s.Payload)
}

// ParseSignalData reads nBytes of signal data from r. Returns
// ErrPayloadUneven32BitWords if nBytes is not a multiple of 4.
func ParseSignalData(r *bitio.Reader, nBytes int) (*SignalData, error) {
	if nBytes%4 != 0 {
		return nil, ErrPayloadUneven32BitWords
	}
	b, err := r.ReadBytes(nBytes)
	if err != nil {
		return nil, err
	}
	return &SignalData{Payload: b}, nil
}
