/*
DESCRIPTION
  ackpayloads.go implements ValidationAck and ExecutionAck: both carry an
  optional Warning Indicator Field and an optional Error Indicator Field,
  present exactly when the requesting CAM's WarningsPermitted/
  ErrorsPermitted bits are set.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

// ValidationAck is a controllee's response to a validation request: can
// the requested Control be carried out, without actually doing it.
type ValidationAck struct {
	Warnings *AckFieldContainer
	Errors   *AckFieldContainer
}

// NewValidationAckPayload returns an empty ValidationAck.
func NewValidationAckPayload() *ValidationAck { return &ValidationAck{} }

func (v *ValidationAck) encode(w *bitio.Writer, cam ControlAckMode) error {
	return encodeAckSides(w, cam, v.Warnings, v.Errors)
}

func parseValidationAck(r *bitio.Reader, cam ControlAckMode) (*ValidationAck, error) {
	warnings, errs, err := decodeAckSides(r, cam)
	if err != nil {
		return nil, err
	}
	return &ValidationAck{Warnings: warnings, Errors: errs}, nil
}

// ExecutionAck is a controllee's response after actually carrying out a
// requested Control.
type ExecutionAck struct {
	Warnings *AckFieldContainer
	Errors   *AckFieldContainer
}

// NewExecutionAckPayload returns an empty ExecutionAck.
func NewExecutionAckPayload() *ExecutionAck { return &ExecutionAck{} }

func (e *ExecutionAck) encode(w *bitio.Writer, cam ControlAckMode) error {
	return encodeAckSides(w, cam, e.Warnings, e.Errors)
}

func parseExecutionAck(r *bitio.Reader, cam ControlAckMode) (*ExecutionAck, error) {
	warnings, errs, err := decodeAckSides(r, cam)
	if err != nil {
		return nil, err
	}
	return &ExecutionAck{Warnings: warnings, Errors: errs}, nil
}

func encodeAckSides(w *bitio.Writer, cam ControlAckMode, warnings, errs *AckFieldContainer) error {
	if cam.WarningsPermitted() {
		if warnings == nil {
			warnings = NewAckFieldContainer()
		}
		if err := warnings.Encode(w); err != nil {
			return err
		}
	}
	if cam.ErrorsPermitted() {
		if errs == nil {
			errs = NewAckFieldContainer()
		}
		if err := errs.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeAckSides(r *bitio.Reader, cam ControlAckMode) (warnings, errs *AckFieldContainer, err error) {
	if cam.WarningsPermitted() {
		if warnings, err = ParseAckFieldContainer(r); err != nil {
			return nil, nil, err
		}
	}
	if cam.ErrorsPermitted() {
		if errs, err = ParseAckFieldContainer(r); err != nil {
			return nil, nil, err
		}
	}
	return warnings, errs, nil
}
