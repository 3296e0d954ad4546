/*
DESCRIPTION
  command.go implements the Command wrapper: a CAM word, a message id, the
  optional controllee/controller identifiers (32-bit id XOR 128-bit uuid,
  per the CAM's format bits), and one of five sub-payloads selected by the
  packet header's ack/cancellation indicator bits and, for acks, by which
  of CAM's own request bits are set.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"github.com/ausocean/vita49/internal/bitio"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// commandPayload is satisfied by every sub-payload a Command can carry.
type commandPayload interface {
	encode(w *bitio.Writer, cam ControlAckMode) error
}

// Command is the payload of a Command packet.
type Command struct {
	CAM       ControlAckMode
	MessageID uint32

	controlleeID   *uint32
	controlleeUUID *uuid.UUID
	controllerID   *uint32
	controllerUUID *uuid.UUID

	Payload commandPayload
}

// NewCommand returns a Command with a zero CAM and no payload.
func NewCommand() *Command { return &Command{} }

// ControlleeID returns the 32-bit controllee identifier, or nil if unset
// or a uuid is set instead.
func (c *Command) ControlleeID() *uint32 { return c.controlleeID }

// ControlleeUUID returns the 128-bit controllee identifier, or nil if
// unset or a 32-bit id is set instead.
func (c *Command) ControlleeUUID() *uuid.UUID { return c.controlleeUUID }

// ControllerID returns the 32-bit controller identifier, or nil.
func (c *Command) ControllerID() *uint32 { return c.controllerID }

// ControllerUUID returns the 128-bit controller identifier, or nil.
func (c *Command) ControllerUUID() *uuid.UUID { return c.controllerUUID }

// SetControlleeID sets (id != nil) or clears (id == nil) the 32-bit
// controllee identifier. Fails with ErrTriedIdWhenUuidSet if a controllee
// uuid is already set.
func (c *Command) SetControlleeID(id *uint32) error {
	if id == nil {
		c.controlleeID = nil
		c.CAM.clearControllee()
		return nil
	}
	if c.controlleeUUID != nil {
		return errors.Wrap(ErrTriedIdWhenUuidSet, "controllee")
	}
	v := *id
	c.controlleeID = &v
	c.CAM.setControlleeID()
	return nil
}

// SetControlleeUUID sets or clears the 128-bit controllee identifier.
// Fails with ErrTriedUuidWhenIdSet if a controllee id is already set.
func (c *Command) SetControlleeUUID(id *uuid.UUID) error {
	if id == nil {
		c.controlleeUUID = nil
		c.CAM.clearControllee()
		return nil
	}
	if c.controlleeID != nil {
		return errors.Wrap(ErrTriedUuidWhenIdSet, "controllee")
	}
	v := *id
	c.controlleeUUID = &v
	c.CAM.setControlleeUUID()
	return nil
}

// SetControllerID sets or clears the 32-bit controller identifier. Fails
// with ErrTriedIdWhenUuidSet if a controller uuid is already set.
func (c *Command) SetControllerID(id *uint32) error {
	if id == nil {
		c.controllerID = nil
		c.CAM.clearController()
		return nil
	}
	if c.controllerUUID != nil {
		return errors.Wrap(ErrTriedIdWhenUuidSet, "controller")
	}
	v := *id
	c.controllerID = &v
	c.CAM.setControllerID()
	return nil
}

// SetControllerUUID sets or clears the 128-bit controller identifier.
// Fails with ErrTriedUuidWhenIdSet if a controller id is already set.
func (c *Command) SetControllerUUID(id *uuid.UUID) error {
	if id == nil {
		c.controllerUUID = nil
		c.CAM.clearController()
		return nil
	}
	if c.controllerID != nil {
		return errors.Wrap(ErrTriedUuidWhenIdSet, "controller")
	}
	v := *id
	c.controllerUUID = &v
	c.CAM.setControllerUUID()
	return nil
}

// Encode writes the command's CAM word, message id, identifier blocks and
// sub-payload to w.
func (c *Command) Encode(w *bitio.Writer) error {
	if err := w.WriteWord(uint32(c.CAM)); err != nil {
		return errors.Wrap(err, "cam word")
	}
	if err := w.WriteWord(c.MessageID); err != nil {
		return errors.Wrap(err, "message id")
	}
	if c.CAM.ControlleeEnabled() {
		if err := encodeIdentifier(w, c.CAM.ControlleeIsUUID(), c.controlleeID, c.controlleeUUID); err != nil {
			return errors.Wrap(err, "controllee identifier")
		}
	}
	if c.CAM.ControllerEnabled() {
		if err := encodeIdentifier(w, c.CAM.ControllerIsUUID(), c.controllerID, c.controllerUUID); err != nil {
			return errors.Wrap(err, "controller identifier")
		}
	}
	if c.Payload == nil {
		return errors.New("vita49: command has no sub-payload")
	}
	return c.Payload.encode(w, c.CAM)
}

func encodeIdentifier(w *bitio.Writer, isUUID bool, id *uint32, id128 *uuid.UUID) error {
	if isUUID {
		if id128 == nil {
			return errors.New("cam indicates uuid128 format but none set")
		}
		b := *id128
		return w.WriteBytes(b[:])
	}
	if id == nil {
		return errors.New("cam indicates id32 format but none set")
	}
	return w.WriteWord(*id)
}

// ParseCommand reads a Command from r. h is the enclosing packet's header,
// whose ack/cancellation indicator bits (together with the parsed CAM's
// own request bits) select which sub-payload follows.
func ParseCommand(r *bitio.Reader, h PacketHeader) (*Command, error) {
	camWord, err := r.ReadWord()
	if err != nil {
		return nil, errors.Wrap(err, "cam word")
	}
	c := &Command{CAM: ControlAckMode(camWord)}
	if c.MessageID, err = r.ReadWord(); err != nil {
		return nil, errors.Wrap(err, "message id")
	}
	if c.CAM.ControlleeEnabled() {
		id, id128, err := decodeIdentifier(r, c.CAM.ControlleeIsUUID())
		if err != nil {
			return nil, errors.Wrap(err, "controllee identifier")
		}
		c.controlleeID, c.controlleeUUID = id, id128
	}
	if c.CAM.ControllerEnabled() {
		id, id128, err := decodeIdentifier(r, c.CAM.ControllerIsUUID())
		if err != nil {
			return nil, errors.Wrap(err, "controller identifier")
		}
		c.controllerID, c.controllerUUID = id, id128
	}

	switch {
	case h.Indicators.CancellationPacket():
		cancel, err := ParseCancellation(r)
		if err != nil {
			return nil, errors.Wrap(err, "cancellation payload")
		}
		c.Payload = cancel
	case h.Indicators.AckPacket() && c.CAM.Validation():
		ack, err := parseValidationAck(r, c.CAM)
		if err != nil {
			return nil, errors.Wrap(err, "validation ack payload")
		}
		c.Payload = ack
	case h.Indicators.AckPacket() && c.CAM.Execution():
		ack, err := parseExecutionAck(r, c.CAM)
		if err != nil {
			return nil, errors.Wrap(err, "execution ack payload")
		}
		c.Payload = ack
	case h.Indicators.AckPacket() && c.CAM.State():
		ctx, err := ParseContext(r)
		if err != nil {
			return nil, errors.Wrap(err, "query ack payload")
		}
		c.Payload = &QueryAck{Context: ctx}
	case h.Indicators.AckPacket():
		return nil, errors.Wrap(ErrFramingError, "ack packet with no validation/execution/state request bit set")
	default:
		ctx, err := ParseContext(r)
		if err != nil {
			return nil, errors.Wrap(err, "control payload")
		}
		c.Payload = &Control{Context: ctx}
	}
	return c, nil
}

func decodeIdentifier(r *bitio.Reader, isUUID bool) (*uint32, *uuid.UUID, error) {
	if isUUID {
		b, err := r.ReadBytes(16)
		if err != nil {
			return nil, nil, err
		}
		id, err := uuid.FromBytes(b)
		if err != nil {
			return nil, nil, errors.Wrap(err, "malformed uuid128")
		}
		return nil, &id, nil
	}
	v, err := r.ReadWord()
	if err != nil {
		return nil, nil, err
	}
	return &v, nil, nil
}
