/*
DESCRIPTION
  builders.go provides constructors for each standard packet shape, set up
  with minimal sane defaults (a valid header for the packet type, an empty
  payload of the right kind). Callers still need to set fields and call
  UpdateSize before Serialize.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

func newPacket(pt PacketType) *Packet {
	return &Packet{Header: PacketHeader{PacketType: pt}}
}

// NewSignalDataPacket returns a signal-data packet with a stream id and an
// empty payload.
func NewSignalDataPacket() *Packet {
	p := newPacket(PacketTypeSignalData)
	var sid uint32
	p.StreamID = &sid
	p.Payload = &SignalData{}
	return p
}

// NewContextPacket returns a context packet with a stream id and an empty
// CIF0-only context payload.
func NewContextPacket() *Packet {
	p := newPacket(PacketTypeContext)
	var sid uint32
	p.StreamID = &sid
	p.Payload = NewContext()
	return p
}

// NewControlPacket returns a command packet carrying an empty Control
// sub-payload.
func NewControlPacket() *Packet {
	p := newPacket(PacketTypeCommand)
	var sid uint32
	p.StreamID = &sid
	cmd := NewCommand()
	cmd.Payload = NewControlPayload()
	p.Payload = cmd
	return p
}

// NewCancellationPacket returns a command packet carrying an empty
// Cancellation sub-payload, with the header's cancellation indicator set.
func NewCancellationPacket() *Packet {
	p := newPacket(PacketTypeCommand)
	p.Header.Indicators.Bit24 = true // cancellation_packet
	var sid uint32
	p.StreamID = &sid
	cmd := NewCommand()
	cmd.Payload = NewCancellation()
	p.Payload = cmd
	return p
}

// NewValidationAckPacket returns a command packet carrying an empty
// ValidationAck sub-payload, with the header's ack indicator and the CAM's
// validation-request bit both set.
func NewValidationAckPacket() *Packet {
	p := newPacket(PacketTypeCommand)
	p.Header.Indicators.Bit26 = true // ack_packet
	var sid uint32
	p.StreamID = &sid
	cmd := NewCommand()
	cmd.CAM.SetValidation(true)
	cmd.Payload = NewValidationAckPayload()
	p.Payload = cmd
	return p
}

// NewExecutionAckPacket returns a command packet carrying an empty
// ExecutionAck sub-payload, with the header's ack indicator and the CAM's
// execution-request bit both set.
func NewExecutionAckPacket() *Packet {
	p := newPacket(PacketTypeCommand)
	p.Header.Indicators.Bit26 = true // ack_packet
	var sid uint32
	p.StreamID = &sid
	cmd := NewCommand()
	cmd.CAM.SetExecution(true)
	cmd.Payload = NewExecutionAckPayload()
	p.Payload = cmd
	return p
}

// NewQueryAckPacket returns a command packet carrying an empty QueryAck
// sub-payload, with the header's ack indicator and the CAM's state-request
// bit both set.
func NewQueryAckPacket() *Packet {
	p := newPacket(PacketTypeCommand)
	p.Header.Indicators.Bit26 = true // ack_packet
	var sid uint32
	p.StreamID = &sid
	cmd := NewCommand()
	cmd.CAM.SetState(true)
	cmd.Payload = NewQueryAckPayload()
	p.Payload = cmd
	return p
}
