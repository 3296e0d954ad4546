/*
DESCRIPTION
  cam.go implements the Control Acknowledgement Mode (CAM) word: the 32-bit
  header of every Command payload, carrying identifier presence/format,
  execution semantics, and which acknowledgements are requested.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

// ActionMode selects what a controller asks a controllee to do with the
// fields carried in a Control payload.
type ActionMode uint8

// ActionMode values. 0b11 is reserved.
const (
	ActionModeNoAction ActionMode = 0b00
	ActionModeDryRun   ActionMode = 0b01
	ActionModeExecute  ActionMode = 0b10
)

// TimingControlMode selects when a controllee should act on a Control
// payload relative to its timestamp.
type TimingControlMode uint8

// TimingControlMode values. 5..7 are reserved.
const (
	TimingControlIgnoreTimestamp               TimingControlMode = 0
	TimingControlDeviceExecutionOnly           TimingControlMode = 1
	TimingControlLateAndSpecifiedExecution     TimingControlMode = 2
	TimingControlEarlyAndSpecifiedExecution    TimingControlMode = 3
	TimingControlPermittedEarlyOrLateExecution TimingControlMode = 4
)

// ControlAckMode is the 32-bit CAM word.
type ControlAckMode uint32

const (
	camBitControlleeEnable           = 31
	camBitControlleeIDFormat         = 30
	camBitControllerEnable           = 29
	camBitControllerIDFormat         = 28
	camBitPartialPacketImplPermitted = 27
	camBitWarningsPermitted          = 26
	camBitErrorsPermitted            = 25
	camActionModeShift               = 23
	camBitNackOnly                   = 22
	camTimingControlShift            = 12
	camBitActionScheduledOrExecuted  = 10
	camBitRequestValidationAck       = 20
	camBitRequestExecutionAck        = 19
	camBitRequestQueryStateAck       = 18
	camBitWarning                    = 17
	camBitError                      = 16
	camBitPartialActionTaken         = 11
)

func (c ControlAckMode) bit(n int) bool { return c>>uint(n)&1 == 1 }

func (c *ControlAckMode) setBit(n int, v bool) {
	if v {
		*c |= 1 << uint(n)
	} else {
		*c &^= 1 << uint(n)
	}
}

// ControlleeEnabled reports whether a controllee identifier is present.
func (c ControlAckMode) ControlleeEnabled() bool { return c.bit(camBitControlleeEnable) }

// ControlleeIsUUID reports whether the controllee identifier is a 128-bit
// UUID (true) rather than a 32-bit id (false).
func (c ControlAckMode) ControlleeIsUUID() bool { return c.bit(camBitControlleeIDFormat) }

// ControllerEnabled reports whether a controller identifier is present.
func (c ControlAckMode) ControllerEnabled() bool { return c.bit(camBitControllerEnable) }

// ControllerIsUUID reports whether the controller identifier is a 128-bit
// UUID (true) rather than a 32-bit id (false).
func (c ControlAckMode) ControllerIsUUID() bool { return c.bit(camBitControllerIDFormat) }

// PartialPacketImplPermitted reports the corresponding permission bit.
func (c ControlAckMode) PartialPacketImplPermitted() bool {
	return c.bit(camBitPartialPacketImplPermitted)
}

// SetPartialPacketImplPermitted sets the corresponding permission bit.
func (c *ControlAckMode) SetPartialPacketImplPermitted(v bool) {
	c.setBit(camBitPartialPacketImplPermitted, v)
}

// WarningsPermitted reports the corresponding permission bit.
func (c ControlAckMode) WarningsPermitted() bool { return c.bit(camBitWarningsPermitted) }

// SetWarningsPermitted sets the corresponding permission bit.
func (c *ControlAckMode) SetWarningsPermitted(v bool) { c.setBit(camBitWarningsPermitted, v) }

// ErrorsPermitted reports the corresponding permission bit.
func (c ControlAckMode) ErrorsPermitted() bool { return c.bit(camBitErrorsPermitted) }

// SetErrorsPermitted sets the corresponding permission bit.
func (c *ControlAckMode) SetErrorsPermitted(v bool) { c.setBit(camBitErrorsPermitted, v) }

// ActionMode returns the two-bit action mode field.
func (c ControlAckMode) ActionMode() ActionMode {
	return ActionMode(c >> camActionModeShift & 0b11)
}

// SetActionMode sets the two-bit action mode field.
func (c *ControlAckMode) SetActionMode(m ActionMode) {
	*c = *c&^(0b11<<camActionModeShift) | ControlAckMode(m&0b11)<<camActionModeShift
}

// NackOnly reports the corresponding bit.
func (c ControlAckMode) NackOnly() bool { return c.bit(camBitNackOnly) }

// SetNackOnly sets the corresponding bit.
func (c *ControlAckMode) SetNackOnly(v bool) { c.setBit(camBitNackOnly, v) }

// TimingControlMode returns the three-bit timing control field.
func (c ControlAckMode) TimingControlMode() TimingControlMode {
	return TimingControlMode(c >> camTimingControlShift & 0b111)
}

// SetTimingControlMode sets the three-bit timing control field.
func (c *ControlAckMode) SetTimingControlMode(m TimingControlMode) {
	*c = *c&^(0b111<<camTimingControlShift) | ControlAckMode(m&0b111)<<camTimingControlShift
}

// ActionScheduledOrExecuted reports the corresponding execution-status bit,
// set by a controllee in an ack to indicate the requested action was
// scheduled or carried out.
func (c ControlAckMode) ActionScheduledOrExecuted() bool {
	return c.bit(camBitActionScheduledOrExecuted)
}

// SetActionScheduledOrExecuted sets the corresponding execution-status bit.
func (c *ControlAckMode) SetActionScheduledOrExecuted(v bool) {
	c.setBit(camBitActionScheduledOrExecuted, v)
}

// PartialActionTaken reports the corresponding execution-status bit.
func (c ControlAckMode) PartialActionTaken() bool { return c.bit(camBitPartialActionTaken) }

// SetPartialActionTaken sets the corresponding execution-status bit.
func (c *ControlAckMode) SetPartialActionTaken(v bool) { c.setBit(camBitPartialActionTaken, v) }

// Validation reports whether a ValidationAck was requested.
func (c ControlAckMode) Validation() bool { return c.bit(camBitRequestValidationAck) }

// SetValidation sets whether a ValidationAck is requested.
func (c *ControlAckMode) SetValidation(v bool) { c.setBit(camBitRequestValidationAck, v) }

// Execution reports whether an ExecutionAck was requested.
func (c ControlAckMode) Execution() bool { return c.bit(camBitRequestExecutionAck) }

// SetExecution sets whether an ExecutionAck is requested.
func (c *ControlAckMode) SetExecution(v bool) { c.setBit(camBitRequestExecutionAck, v) }

// State reports whether a QueryAck (state report) was requested.
func (c ControlAckMode) State() bool { return c.bit(camBitRequestQueryStateAck) }

// SetState sets whether a QueryAck is requested.
func (c *ControlAckMode) SetState(v bool) { c.setBit(camBitRequestQueryStateAck, v) }

// Error reports the error report bit, set by a controllee ack that
// contains error conditions.
func (c ControlAckMode) Error() bool { return c.bit(camBitError) }

// SetError sets the error report bit.
func (c *ControlAckMode) SetError(v bool) { c.setBit(camBitError, v) }

// Warning reports the warning report bit.
func (c ControlAckMode) Warning() bool { return c.bit(camBitWarning) }

// SetWarning sets the warning report bit.
func (c *ControlAckMode) SetWarning(v bool) { c.setBit(camBitWarning, v) }

// setControlleeID marks the controllee side enabled with 32-bit-id format.
func (c *ControlAckMode) setControlleeID() {
	c.setBit(camBitControlleeEnable, true)
	c.setBit(camBitControlleeIDFormat, false)
}

// setControlleeUUID marks the controllee side enabled with uuid128 format.
func (c *ControlAckMode) setControlleeUUID() {
	c.setBit(camBitControlleeEnable, true)
	c.setBit(camBitControlleeIDFormat, true)
}

// clearControllee disables the controllee side entirely.
func (c *ControlAckMode) clearControllee() {
	c.setBit(camBitControlleeEnable, false)
	c.setBit(camBitControlleeIDFormat, false)
}

// setControllerID marks the controller side enabled with 32-bit-id format.
func (c *ControlAckMode) setControllerID() {
	c.setBit(camBitControllerEnable, true)
	c.setBit(camBitControllerIDFormat, false)
}

// setControllerUUID marks the controller side enabled with uuid128 format.
func (c *ControlAckMode) setControllerUUID() {
	c.setBit(camBitControllerEnable, true)
	c.setBit(camBitControllerIDFormat, true)
}

// clearController disables the controller side entirely.
func (c *ControlAckMode) clearController() {
	c.setBit(camBitControllerEnable, false)
	c.setBit(camBitControllerIDFormat, false)
}
