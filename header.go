/*
DESCRIPTION
  header.go implements the VITA-49.2 packet header: a single 32-bit word
  carrying the packet type, optional-component flags, timestamp mode
  selectors, a rolling packet counter, and the packet size in words.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/pkg/errors"

// PacketType classifies the payload a packet carries and, for signal-data
// and context packets, whether a stream identifier follows the header.
type PacketType uint8

// PacketType values. 8..15 are reserved and rejected by ParseHeader.
const (
	PacketTypeSignalDataNoStream    PacketType = 0
	PacketTypeSignalData            PacketType = 1
	PacketTypeExtensionDataNoStream PacketType = 2
	PacketTypeExtensionData         PacketType = 3
	PacketTypeContext               PacketType = 4
	PacketTypeExtensionContext      PacketType = 5
	PacketTypeCommand               PacketType = 6
	PacketTypeExtensionCommand      PacketType = 7
)

// HasStreamID reports whether packets of this type carry a stream
// identifier word. Stream-id presence is determined solely by the type tag.
func (t PacketType) HasStreamID() bool {
	switch t {
	case PacketTypeSignalDataNoStream, PacketTypeExtensionDataNoStream:
		return false
	default:
		return true
	}
}

// IsSignalData reports whether t is one of the signal-data variants.
func (t PacketType) IsSignalData() bool {
	switch t {
	case PacketTypeSignalDataNoStream, PacketTypeSignalData,
		PacketTypeExtensionDataNoStream, PacketTypeExtensionData:
		return true
	default:
		return false
	}
}

// IsContext reports whether t is one of the context variants.
func (t PacketType) IsContext() bool {
	return t == PacketTypeContext || t == PacketTypeExtensionContext
}

// IsCommand reports whether t is one of the command variants.
func (t PacketType) IsCommand() bool {
	return t == PacketTypeCommand || t == PacketTypeExtensionCommand
}

func (t PacketType) valid() bool {
	return t <= PacketTypeExtensionCommand
}

// Tsi selects the kind of integer (seconds) timestamp a packet carries.
type Tsi uint8

// Tsi values.
const (
	TsiNone Tsi = 0
	TsiUTC  Tsi = 1
	TsiGPS  Tsi = 2
	TsiOther Tsi = 3
)

// Tsf selects the kind of fractional timestamp a packet carries.
type Tsf uint8

// Tsf values.
const (
	TsfNone         Tsf = 0
	TsfSampleCount  Tsf = 1
	TsfRealTimePs   Tsf = 2
	TsfFreeRunning  Tsf = 3
)

// Indicators holds the three type-specific indicator bits from the header.
// Their meaning depends on the packet's type; only the fields relevant to
// that type are meaningful, but all three are always decoded since they
// share one bit range.
type Indicators struct {
	// Bit 26. Signal data: trailer included. Context: reserved. Command:
	// ack packet.
	Bit26 bool
	// Bit 25. Signal data: not-V49.0. Context: not-V49.0. Command: reserved.
	Bit25 bool
	// Bit 24. Signal data: spectral data. Context: timestamp mode
	// (false=precise, true=general). Command: cancellation packet.
	Bit24 bool
}

// TrailerIncluded reports the signal-data interpretation of bit 26.
func (i Indicators) TrailerIncluded() bool { return i.Bit26 }

// NotV490 reports the signal-data/context interpretation of bit 25.
func (i Indicators) NotV490() bool { return i.Bit25 }

// SpectralData reports the signal-data interpretation of bit 24.
func (i Indicators) SpectralData() bool { return i.Bit24 }

// TimestampModeGeneral reports the context interpretation of bit 24.
func (i Indicators) TimestampModeGeneral() bool { return i.Bit24 }

// AckPacket reports the command interpretation of bit 26.
func (i Indicators) AckPacket() bool { return i.Bit26 }

// CancellationPacket reports the command interpretation of bit 24.
func (i Indicators) CancellationPacket() bool { return i.Bit24 }

// PacketHeader is the packet's single leading 32-bit word.
type PacketHeader struct {
	PacketType      PacketType
	ClassIDIncluded bool
	Indicators      Indicators
	Tsi             Tsi
	Tsf             Tsf
	PacketCount     uint8 // 4 bits, modulo-16 rolling counter.
	PacketSize      uint16
}

// ParseHeader decodes a single 32-bit header word.
func ParseHeader(word uint32) (PacketHeader, error) {
	pt := PacketType(word >> 28 & 0xf)
	if !pt.valid() {
		return PacketHeader{}, errors.Wrapf(ErrFramingError, "reserved packet type %d", pt)
	}
	h := PacketHeader{
		PacketType:      pt,
		ClassIDIncluded: word>>27&0x1 == 1,
		Indicators: Indicators{
			Bit26: word>>26&0x1 == 1,
			Bit25: word>>25&0x1 == 1,
			Bit24: word>>24&0x1 == 1,
		},
		Tsi:         Tsi(word >> 22 & 0x3),
		Tsf:         Tsf(word >> 20 & 0x3),
		PacketCount: uint8(word >> 16 & 0xf),
		PacketSize:  uint16(word & 0xffff),
	}
	if h.Tsi == TsiNone && h.Tsf == TsfNone {
		// No cross-check needed here: Parse reads the timestamp words
		// exactly when Tsi/Tsf are not None, and Packet.UpdateSize checks
		// Tsi/Tsf against the packet's timestamp values.
	}
	return h, nil
}

// Encode packs h into a single 32-bit header word.
func (h PacketHeader) Encode() uint32 {
	var w uint32
	w |= uint32(h.PacketType&0xf) << 28
	if h.ClassIDIncluded {
		w |= 1 << 27
	}
	if h.Indicators.Bit26 {
		w |= 1 << 26
	}
	if h.Indicators.Bit25 {
		w |= 1 << 25
	}
	if h.Indicators.Bit24 {
		w |= 1 << 24
	}
	w |= uint32(h.Tsi&0x3) << 22
	w |= uint32(h.Tsf&0x3) << 20
	w |= uint32(h.PacketCount&0xf) << 16
	w |= uint32(h.PacketSize)
	return w
}
