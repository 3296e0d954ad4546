/*
DESCRIPTION
  packet_test.go exercises Packet end to end: signal-data framing against
  known wire bytes, context/command round trips, and the length/timestamp
  coherence checks UpdateSize and Parse enforce.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestSignalDataPacketRoundTrip(t *testing.T) {
	p := NewSignalDataPacket()
	sid := uint32(0xDEADBEEF)
	p.StreamID = &sid
	p.Payload = &SignalData{Payload: []byte{1, 2, 3, 4, 5, 6, 7, 8}}

	if err := p.UpdateSize(); err != nil {
		t.Fatalf("UpdateSize: %v", err)
	}
	got, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if len(got) < 12 {
		t.Fatalf("serialized packet too short: %d bytes", len(got))
	}
	if !bytes.Equal(got[4:8], []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("stream id bytes = % x, want de ad be ef", got[4:8])
	}
	if !bytes.Equal(got[8:16], []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("payload bytes = % x, want 01..08", got[8:16])
	}

	back, err := Parse(got)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sd, ok := back.Payload.(*SignalData)
	if !ok {
		t.Fatalf("Payload = %T, want *SignalData", back.Payload)
	}
	if !bytes.Equal(sd.Payload, p.Payload.(*SignalData).Payload) {
		t.Errorf("round-tripped payload = % x, want % x", sd.Payload, p.Payload.(*SignalData).Payload)
	}
	if *back.StreamID != sid {
		t.Errorf("round-tripped stream id = %#x, want %#x", *back.StreamID, sid)
	}
}

func TestSignalDataUnevenPayloadRejected(t *testing.T) {
	p := NewSignalDataPacket()
	p.Payload = &SignalData{Payload: []byte{1, 2, 3}}
	if err := p.UpdateSize(); err == nil {
		t.Fatal("expected error for non-multiple-of-4 payload")
	}
}

func TestContextPacketRoundTrip(t *testing.T) {
	p := NewContextPacket()
	ctx := p.Payload.(*Context)
	bw, rf, sr := 6e6, 100e6, 8e6
	ctx.Cif0.Bandwidth.Set(&bw)
	ctx.Cif0.RfRefFreq.Set(&rf)
	ctx.Cif0.SampleRate.Set(&sr)

	if err := p.UpdateSize(); err != nil {
		t.Fatalf("UpdateSize: %v", err)
	}
	buf, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	back, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	backCtx, ok := back.Payload.(*Context)
	if !ok {
		t.Fatalf("Payload = %T, want *Context", back.Payload)
	}
	if got := backCtx.Cif0.Bandwidth.Get(); got == nil || *got != 6e6 {
		t.Errorf("Bandwidth = %v, want 6e6", got)
	}
	if got := backCtx.Cif0.RfRefFreq.Get(); got == nil || *got != 100e6 {
		t.Errorf("RfRefFreq = %v, want 100e6", got)
	}
}

func TestCommandMutualExclusionFailure(t *testing.T) {
	cmd := NewCommand()
	id := uint32(1234)
	if err := cmd.SetControlleeID(&id); err != nil {
		t.Fatalf("SetControlleeID: %v", err)
	}
	u := uuid.New()
	if err := cmd.SetControlleeUUID(&u); err == nil {
		t.Fatal("expected ErrTriedUuidWhenIdSet setting uuid over an existing id")
	}

	cmd2 := NewCommand()
	if err := cmd2.SetControllerUUID(&u); err != nil {
		t.Fatalf("SetControllerUUID: %v", err)
	}
	if err := cmd2.SetControllerID(&id); err == nil {
		t.Fatal("expected ErrTriedIdWhenUuidSet setting id over an existing uuid")
	}
}

func TestCommandControlRoundTripWithControlleeIDAndControllerUUID(t *testing.T) {
	p := NewControlPacket()
	cmd := p.Payload.(*Command)
	cmd.CAM.SetActionMode(ActionModeExecute)
	cmd.CAM.SetWarningsPermitted(true)
	cmd.CAM.SetWarning(true)
	cmd.CAM.SetError(true)
	cmd.CAM.SetExecution(true)
	cmd.CAM.SetPartialPacketImplPermitted(true)

	id := uint32(1234)
	if err := cmd.SetControlleeID(&id); err != nil {
		t.Fatalf("SetControlleeID: %v", err)
	}
	u, err := uuid.Parse("7f3cef62-e568-48f1-8b88-a7576fa634df")
	if err != nil {
		t.Fatalf("uuid.Parse: %v", err)
	}
	if err := cmd.SetControllerUUID(&u); err != nil {
		t.Fatalf("SetControllerUUID: %v", err)
	}

	ctrl := cmd.Payload.(*Control)
	rf, bw := 100e6, 8e6
	ctrl.Cif0.RfRefFreq.Set(&rf)
	ctrl.Cif0.Bandwidth.Set(&bw)

	if err := p.UpdateSize(); err != nil {
		t.Fatalf("UpdateSize: %v", err)
	}
	buf, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	back, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	backCmd, ok := back.Payload.(*Command)
	if !ok {
		t.Fatalf("Payload = %T, want *Command", back.Payload)
	}
	if backCmd.ControlleeID() == nil || *backCmd.ControlleeID() != id {
		t.Errorf("ControlleeID = %v, want %d", backCmd.ControlleeID(), id)
	}
	if backCmd.ControllerUUID() == nil || *backCmd.ControllerUUID() != u {
		t.Errorf("ControllerUUID = %v, want %s", backCmd.ControllerUUID(), u)
	}
	backCtrl, ok := backCmd.Payload.(*Control)
	if !ok {
		t.Fatalf("Command.Payload = %T, want *Control", backCmd.Payload)
	}
	if got := backCtrl.Cif0.Bandwidth.Get(); got == nil || *got != 8e6 {
		t.Errorf("Bandwidth = %v, want 8e6", got)
	}
}

func TestParseLengthMismatch(t *testing.T) {
	p := NewSignalDataPacket()
	p.Payload = &SignalData{Payload: []byte{1, 2, 3, 4}}
	if err := p.UpdateSize(); err != nil {
		t.Fatalf("UpdateSize: %v", err)
	}
	buf, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	truncated := buf[:len(buf)-4]
	if _, err := Parse(truncated); err == nil {
		t.Fatal("expected error parsing truncated packet")
	}
}

func TestUpdateSizeTimestampMismatch(t *testing.T) {
	p := NewSignalDataPacket()
	p.Payload = &SignalData{}
	p.Header.Tsi = TsiUTC // no IntegerTimestamp set
	if err := p.UpdateSize(); err == nil {
		t.Fatal("expected ErrTimestampModeMismatch")
	}
}
