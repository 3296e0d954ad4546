/*
DESCRIPTION
  trailer.go implements the optional signal-data trailer word: eight
  single-bit status indicators, a two-bit sample-frame indicator, a
  two-bit user-defined field, and an associated-context-packet count, each
  gated by its own enable bit(s).

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/pkg/errors"

// SampleFrameIndicator classifies a signal-data packet's position within a
// multi-packet sample frame.
type SampleFrameIndicator uint8

// SampleFrameIndicator values.
const (
	SampleFrameNotApplicable   SampleFrameIndicator = 0
	SampleFrameFirstDataPacket SampleFrameIndicator = 1
	SampleFrameMiddleDataPacket SampleFrameIndicator = 2
	SampleFrameFinalDataPacket SampleFrameIndicator = 3
)

const (
	trailerBitCalibratedTimeEnable    = 31
	trailerBitValidDataEnable         = 30
	trailerBitReferenceLockEnable     = 29
	trailerBitAgcMgcEnable            = 28
	trailerBitDetectedSignalEnable    = 27
	trailerBitSpectralInversionEnable = 26
	trailerBitOverRangeEnable         = 25
	trailerBitSampleLossEnable        = 24
	trailerSampleFrameEnableShift     = 22 // 2 bits, 23:22.
	trailerUserDefinedEnableShift     = 20 // 2 bits, 21:20.

	trailerBitCalibratedTimeValue    = 19
	trailerBitValidDataValue         = 18
	trailerBitReferenceLockValue     = 17
	trailerBitAgcMgcValue            = 16
	trailerBitDetectedSignalValue    = 15
	trailerBitSpectralInversionValue = 14
	trailerBitOverRangeValue         = 13
	trailerBitSampleLossValue        = 12
	trailerSampleFrameValueShift     = 10 // 2 bits, 11:10.
	trailerUserDefinedValueShift     = 8  // 2 bits, 9:8.

	trailerBitAssociatedCountEnable = 7
	trailerCountMask                = 0x7f // 7 bits, 6:0.
)

// Trailer is the optional 32-bit signal-data trailer.
type Trailer uint32

func (t Trailer) bit(n int) bool { return t>>uint(n)&1 == 1 }

func (t *Trailer) setBit(n int, v bool) {
	if v {
		*t |= 1 << uint(n)
	} else {
		*t &^= 1 << uint(n)
	}
}

func trailerOptBit(t Trailer, enableBit, valueBit int) *bool {
	if !t.bit(enableBit) {
		return nil
	}
	v := t.bit(valueBit)
	return &v
}

func (t *Trailer) setOptBit(enableBit, valueBit int, v *bool) {
	if v == nil {
		t.setBit(enableBit, false)
		t.setBit(valueBit, false)
		return
	}
	t.setBit(enableBit, true)
	t.setBit(valueBit, *v)
}

// CalibratedTime reports the calibrated-time indicator, or nil if not enabled.
func (t Trailer) CalibratedTime() *bool {
	return trailerOptBit(t, trailerBitCalibratedTimeEnable, trailerBitCalibratedTimeValue)
}

// SetCalibratedTime sets or clears the calibrated-time indicator.
func (t *Trailer) SetCalibratedTime(v *bool) {
	t.setOptBit(trailerBitCalibratedTimeEnable, trailerBitCalibratedTimeValue, v)
}

// ValidData reports the valid-data indicator, or nil if not enabled.
func (t Trailer) ValidData() *bool {
	return trailerOptBit(t, trailerBitValidDataEnable, trailerBitValidDataValue)
}

// SetValidData sets or clears the valid-data indicator.
func (t *Trailer) SetValidData(v *bool) {
	t.setOptBit(trailerBitValidDataEnable, trailerBitValidDataValue, v)
}

// ReferenceLock reports the reference-lock indicator, or nil if not enabled.
func (t Trailer) ReferenceLock() *bool {
	return trailerOptBit(t, trailerBitReferenceLockEnable, trailerBitReferenceLockValue)
}

// SetReferenceLock sets or clears the reference-lock indicator.
func (t *Trailer) SetReferenceLock(v *bool) {
	t.setOptBit(trailerBitReferenceLockEnable, trailerBitReferenceLockValue, v)
}

// AgcMgc reports the AGC/MGC indicator, or nil if not enabled.
func (t Trailer) AgcMgc() *bool {
	return trailerOptBit(t, trailerBitAgcMgcEnable, trailerBitAgcMgcValue)
}

// SetAgcMgc sets or clears the AGC/MGC indicator.
func (t *Trailer) SetAgcMgc(v *bool) {
	t.setOptBit(trailerBitAgcMgcEnable, trailerBitAgcMgcValue, v)
}

// DetectedSignal reports the detected-signal indicator, or nil if not enabled.
func (t Trailer) DetectedSignal() *bool {
	return trailerOptBit(t, trailerBitDetectedSignalEnable, trailerBitDetectedSignalValue)
}

// SetDetectedSignal sets or clears the detected-signal indicator.
func (t *Trailer) SetDetectedSignal(v *bool) {
	t.setOptBit(trailerBitDetectedSignalEnable, trailerBitDetectedSignalValue, v)
}

// SpectralInversion reports the spectral-inversion indicator, or nil if not enabled.
func (t Trailer) SpectralInversion() *bool {
	return trailerOptBit(t, trailerBitSpectralInversionEnable, trailerBitSpectralInversionValue)
}

// SetSpectralInversion sets or clears the spectral-inversion indicator.
func (t *Trailer) SetSpectralInversion(v *bool) {
	t.setOptBit(trailerBitSpectralInversionEnable, trailerBitSpectralInversionValue, v)
}

// OverRange reports the over-range indicator, or nil if not enabled.
func (t Trailer) OverRange() *bool {
	return trailerOptBit(t, trailerBitOverRangeEnable, trailerBitOverRangeValue)
}

// SetOverRange sets or clears the over-range indicator.
func (t *Trailer) SetOverRange(v *bool) {
	t.setOptBit(trailerBitOverRangeEnable, trailerBitOverRangeValue, v)
}

// SampleLoss reports the sample-loss indicator, or nil if not enabled.
func (t Trailer) SampleLoss() *bool {
	return trailerOptBit(t, trailerBitSampleLossEnable, trailerBitSampleLossValue)
}

// SetSampleLoss sets or clears the sample-loss indicator.
func (t *Trailer) SetSampleLoss(v *bool) {
	t.setOptBit(trailerBitSampleLossEnable, trailerBitSampleLossValue, v)
}

// SampleFrame reports the sample-frame indicator, or nil if its two-bit
// enable field is zero.
func (t Trailer) SampleFrame() *SampleFrameIndicator {
	enable := uint8(t >> trailerSampleFrameEnableShift & 0b11)
	if enable == 0 {
		return nil
	}
	v := SampleFrameIndicator(t >> trailerSampleFrameValueShift & 0b11)
	return &v
}

// SetSampleFrame sets or clears the sample-frame indicator. A non-nil value
// sets the enable field to 0b11 (fully enabled); nil clears both enable and
// value fields.
func (t *Trailer) SetSampleFrame(v *SampleFrameIndicator) error {
	if v == nil {
		*t &^= 0b11 << trailerSampleFrameEnableShift
		*t &^= 0b11 << trailerSampleFrameValueShift
		return nil
	}
	if *v > SampleFrameFinalDataPacket {
		return errors.Wrapf(ErrOutOfRange, "sample frame indicator %d", *v)
	}
	*t |= 0b11 << trailerSampleFrameEnableShift
	*t = *t&^(0b11<<trailerSampleFrameValueShift) | Trailer(*v)<<trailerSampleFrameValueShift
	return nil
}

// UserDefined reports the two-bit user-defined field, or nil if its
// two-bit enable field is zero.
func (t Trailer) UserDefined() *uint8 {
	enable := uint8(t >> trailerUserDefinedEnableShift & 0b11)
	if enable == 0 {
		return nil
	}
	v := uint8(t >> trailerUserDefinedValueShift & 0b11)
	return &v
}

// SetUserDefined sets or clears the two-bit user-defined field.
func (t *Trailer) SetUserDefined(v *uint8) error {
	if v == nil {
		*t &^= 0b11 << trailerUserDefinedEnableShift
		*t &^= 0b11 << trailerUserDefinedValueShift
		return nil
	}
	if *v > 0b11 {
		return errors.Wrapf(ErrOutOfRange, "user-defined trailer field %d", *v)
	}
	*t |= 0b11 << trailerUserDefinedEnableShift
	*t = *t&^(0b11<<trailerUserDefinedValueShift) | Trailer(*v)<<trailerUserDefinedValueShift
	return nil
}

// AssociatedContextPacketCount reports the 7-bit count, or nil if its
// enable bit is clear.
func (t Trailer) AssociatedContextPacketCount() *uint8 {
	if !t.bit(trailerBitAssociatedCountEnable) {
		return nil
	}
	v := uint8(t & trailerCountMask)
	return &v
}

// SetAssociatedContextPacketCount sets or clears the 7-bit count.
func (t *Trailer) SetAssociatedContextPacketCount(v *uint8) error {
	if v == nil {
		t.setBit(trailerBitAssociatedCountEnable, false)
		*t &^= trailerCountMask
		return nil
	}
	if *v > trailerCountMask {
		return errors.Wrapf(ErrOutOfRange, "associated context packet count %d", *v)
	}
	t.setBit(trailerBitAssociatedCountEnable, true)
	*t = *t&^trailerCountMask | Trailer(*v)
	return nil
}
