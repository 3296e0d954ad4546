/*
DESCRIPTION
  ack.go implements AckResponse, the 32-bit bitmap a controllee returns per
  reported field in a ValidationAck/ExecutionAck/QueryAck payload, carrying
  13 standard condition flags and 12 user-defined flags.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/pkg/errors"

// AckResponse is a 32-bit bitmap of condition flags explaining why a field
// produced a warning or error.
type AckResponse uint32

const (
	ackBitFieldNotExecuted       = 31
	ackBitDeviceFailure          = 30
	ackBitErroneousField         = 29
	ackBitParamOutOfRange        = 28
	ackBitUnsupportedPrecision   = 27
	ackBitFieldValueInvalid      = 26
	ackBitTimestampProblem       = 25
	ackBitHazardousPower         = 24
	ackBitDistortion             = 23
	ackBitInBandCompliance       = 22
	ackBitOutOfBandCompliance    = 21
	ackBitCoSiteInterference     = 20
	ackBitRegionalInterference   = 19
)

func (a AckResponse) bit(n int) bool { return a>>uint(n)&1 == 1 }

func (a *AckResponse) setBit(n int, v bool) {
	if v {
		*a |= 1 << uint(n)
	} else {
		*a &^= 1 << uint(n)
	}
}

// EmptyAckResponse returns an AckResponse with no flags set.
func EmptyAckResponse() AckResponse { return 0 }

// FieldNotExecuted reports the corresponding standard condition bit.
func (a AckResponse) FieldNotExecuted() bool { return a.bit(ackBitFieldNotExecuted) }

// SetFieldNotExecuted sets the corresponding standard condition bit.
func (a *AckResponse) SetFieldNotExecuted(v bool) { a.setBit(ackBitFieldNotExecuted, v) }

// DeviceFailure reports the corresponding standard condition bit.
func (a AckResponse) DeviceFailure() bool { return a.bit(ackBitDeviceFailure) }

// SetDeviceFailure sets the corresponding standard condition bit.
func (a *AckResponse) SetDeviceFailure(v bool) { a.setBit(ackBitDeviceFailure, v) }

// ErroneousField reports the corresponding standard condition bit.
func (a AckResponse) ErroneousField() bool { return a.bit(ackBitErroneousField) }

// SetErroneousField sets the corresponding standard condition bit.
func (a *AckResponse) SetErroneousField(v bool) { a.setBit(ackBitErroneousField, v) }

// ParamOutOfRange reports the corresponding standard condition bit.
func (a AckResponse) ParamOutOfRange() bool { return a.bit(ackBitParamOutOfRange) }

// SetParamOutOfRange sets the corresponding standard condition bit.
func (a *AckResponse) SetParamOutOfRange(v bool) { a.setBit(ackBitParamOutOfRange, v) }

// UnsupportedPrecision reports the corresponding standard condition bit.
func (a AckResponse) UnsupportedPrecision() bool { return a.bit(ackBitUnsupportedPrecision) }

// SetUnsupportedPrecision sets the corresponding standard condition bit.
func (a *AckResponse) SetUnsupportedPrecision(v bool) { a.setBit(ackBitUnsupportedPrecision, v) }

// FieldValueInvalid reports the corresponding standard condition bit.
func (a AckResponse) FieldValueInvalid() bool { return a.bit(ackBitFieldValueInvalid) }

// SetFieldValueInvalid sets the corresponding standard condition bit.
func (a *AckResponse) SetFieldValueInvalid(v bool) { a.setBit(ackBitFieldValueInvalid, v) }

// TimestampProblem reports the corresponding standard condition bit.
func (a AckResponse) TimestampProblem() bool { return a.bit(ackBitTimestampProblem) }

// SetTimestampProblem sets the corresponding standard condition bit.
func (a *AckResponse) SetTimestampProblem(v bool) { a.setBit(ackBitTimestampProblem, v) }

// HazardousPower reports the corresponding standard condition bit.
func (a AckResponse) HazardousPower() bool { return a.bit(ackBitHazardousPower) }

// SetHazardousPower sets the corresponding standard condition bit.
func (a *AckResponse) SetHazardousPower(v bool) { a.setBit(ackBitHazardousPower, v) }

// Distortion reports the corresponding standard condition bit.
func (a AckResponse) Distortion() bool { return a.bit(ackBitDistortion) }

// SetDistortion sets the corresponding standard condition bit.
func (a *AckResponse) SetDistortion(v bool) { a.setBit(ackBitDistortion, v) }

// InBandCompliance reports the corresponding standard condition bit.
func (a AckResponse) InBandCompliance() bool { return a.bit(ackBitInBandCompliance) }

// SetInBandCompliance sets the corresponding standard condition bit.
func (a *AckResponse) SetInBandCompliance(v bool) { a.setBit(ackBitInBandCompliance, v) }

// OutOfBandCompliance reports the corresponding standard condition bit.
func (a AckResponse) OutOfBandCompliance() bool { return a.bit(ackBitOutOfBandCompliance) }

// SetOutOfBandCompliance sets the corresponding standard condition bit.
func (a *AckResponse) SetOutOfBandCompliance(v bool) { a.setBit(ackBitOutOfBandCompliance, v) }

// CoSiteInterference reports the corresponding standard condition bit.
func (a AckResponse) CoSiteInterference() bool { return a.bit(ackBitCoSiteInterference) }

// SetCoSiteInterference sets the corresponding standard condition bit.
func (a *AckResponse) SetCoSiteInterference(v bool) { a.setBit(ackBitCoSiteInterference, v) }

// RegionalInterference reports the corresponding standard condition bit.
func (a AckResponse) RegionalInterference() bool { return a.bit(ackBitRegionalInterference) }

// SetRegionalInterference sets the corresponding standard condition bit.
func (a *AckResponse) SetRegionalInterference(v bool) { a.setBit(ackBitRegionalInterference, v) }

// UserDefined reports user-defined condition bit n, where n is in [1,12].
// Bits outside that range return ErrOutOfRange.
func (a AckResponse) UserDefined(n int) (bool, error) {
	if n < 1 || n > 12 {
		return false, errors.Wrapf(ErrOutOfRange, "ack user-defined bit %d not in [1,12]", n)
	}
	return a.bit(n), nil
}

// SetUserDefined sets user-defined condition bit n, where n is in [1,12].
// Bits outside that range return ErrOutOfRange and leave a unchanged.
func (a *AckResponse) SetUserDefined(n int, v bool) error {
	if n < 1 || n > 12 {
		return errors.Wrapf(ErrOutOfRange, "ack user-defined bit %d not in [1,12]", n)
	}
	a.setBit(n, v)
	return nil
}

// sizeWords returns the word count of an AckResponse on the wire.
func (a AckResponse) sizeWords() int { return 1 }
