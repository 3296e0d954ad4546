/*
DESCRIPTION
  coverage_test.go exercises the wire paths packet_test.go's scenarios
  don't reach: CIF7 replica counts, CIF0 meta-bit coherence with CIF1/2/3
  presence, the AckFieldContainer/WIF/EIF path, Cancellation, and the
  Spectrum sub-struct.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCif7ReplicaCount(t *testing.T) {
	p := NewContextPacket()
	ctx := p.Payload.(*Context)
	ctx.Cif1 = NewCif1Fields()
	gain := Gain(0x0102)
	ctx.Cif1.AuxGain.Set(&gain)
	ctx.Cif1.AuxGain.SetReplicas([]Gain{0x0304, 0x0506})

	cif7 := Cif7(0)
	cif7.SetCurrent(true)
	cif7.SetAverage(true)
	cif7.SetStdDev(true)
	ctx.Cif7 = &cif7

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	backCtx := back.Payload.(*Context)
	require.NotNil(t, backCtx.Cif1)
	require.NotNil(t, backCtx.Cif7)

	got := backCtx.Cif1.AuxGain
	require.NotNil(t, got.Get())
	require.Equal(t, gain, *got.Get())
	require.Equal(t, []Gain{0x0304, 0x0506}, got.Replicas())
}

func TestCif7CurrentAbsentStillDecodesReplicas(t *testing.T) {
	p := NewContextPacket()
	ctx := p.Payload.(*Context)
	ctx.Cif1 = NewCif1Fields()
	gain := Gain(0x0102)
	ctx.Cif1.AuxGain.Set(&gain)
	ctx.Cif1.AuxGain.SetReplicas([]Gain{0x0304})

	cif7 := Cif7(0)
	cif7.SetAverage(true) // Current not set: no primary rides the wire.
	ctx.Cif7 = &cif7

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	backCtx := back.Payload.(*Context)
	got := backCtx.Cif1.AuxGain
	require.True(t, got.Enabled())
	require.Equal(t, []Gain{0x0304}, got.Replicas())
}

func TestCif0MetaBitCoherence(t *testing.T) {
	p := NewContextPacket()
	ctx := p.Payload.(*Context)
	ctx.Cif1 = NewCif1Fields()
	hs := uint32(3)
	ctx.Cif1.HealthStatus.Set(&hs)

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	backCtx := back.Payload.(*Context)
	require.NotNil(t, backCtx.Cif1)
	require.Nil(t, backCtx.Cif2)
	require.Nil(t, backCtx.Cif3)
	require.Equal(t, hs, *backCtx.Cif1.HealthStatus.Get())

	word0 := backCtx.Cif0.Word(true, false, false, false)
	require.True(t, word0>>uint(cif0BitCif1Enabled)&1 == 1)
	require.True(t, word0>>uint(cif0BitCif2Enabled)&1 == 0)
	require.True(t, word0>>uint(cif0BitCif3Enabled)&1 == 0)
}

func TestValidationAckWIFEIFRoundTrip(t *testing.T) {
	p := NewValidationAckPacket()
	cmd := p.Payload.(*Command)
	cmd.CAM.SetWarningsPermitted(true)
	cmd.CAM.SetErrorsPermitted(true)

	ack := cmd.Payload.(*ValidationAck)
	ack.Warnings = NewAckFieldContainer()
	warn := EmptyAckResponse()
	warn.SetDistortion(true)
	ack.Warnings.Cif0.Set(cif0BitBandwidth, &warn)

	ack.Errors = NewAckFieldContainer()
	fail := EmptyAckResponse()
	fail.SetDeviceFailure(true)
	ack.Errors.Cif0.Set(cif0BitGain, &fail)

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	backCmd := back.Payload.(*Command)
	require.True(t, backCmd.CAM.Validation())

	backAck, ok := backCmd.Payload.(*ValidationAck)
	require.True(t, ok)
	require.NotNil(t, backAck.Warnings)
	gotWarn := backAck.Warnings.Cif0.Get(cif0BitBandwidth)
	require.NotNil(t, gotWarn)
	require.True(t, gotWarn.Distortion())

	require.NotNil(t, backAck.Errors)
	gotErr := backAck.Errors.Cif0.Get(cif0BitGain)
	require.NotNil(t, gotErr)
	require.True(t, gotErr.DeviceFailure())
}

func TestExecutionAckUnimplementedFieldRejected(t *testing.T) {
	w := NewAckFieldContainer()
	// Mark an unimplemented CIF1 bit (array-of-cifs, 11) as enabled in the
	// raw indicator word without a matching entry, then try to decode it.
	raw := uint32(1 << 11)
	err := w.Cif1.decode(nil, raw, cif1ReservedBits, 1)
	require.Error(t, err)
}

func TestCancellationRoundTrip(t *testing.T) {
	p := NewCancellationPacket()
	cmd := p.Payload.(*Command)
	cancel := cmd.Payload.(*Cancellation)
	cancel.Cif0Bits = 1 << uint(cif0BitBandwidth)
	cif1Bits := uint32(1 << uint(cif1BitHealthStatus))
	cancel.Cif1Bits = &cif1Bits

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	require.True(t, back.Header.Indicators.CancellationPacket())

	backCmd := back.Payload.(*Command)
	backCancel, ok := backCmd.Payload.(*Cancellation)
	require.True(t, ok)
	require.True(t, backCancel.Cif0Bits>>uint(cif0BitBandwidth)&1 == 1)
	require.NotNil(t, backCancel.Cif1Bits)
	require.True(t, *backCancel.Cif1Bits>>uint(cif1BitHealthStatus)&1 == 1)
	require.Nil(t, backCancel.Cif2Bits)
}

func TestSpectrumRoundTrip(t *testing.T) {
	p := NewContextPacket()
	ctx := p.Payload.(*Context)
	ctx.Cif1 = NewCif1Fields()

	bw, rf, sr := 6e6, 100e6, 8e6
	ctx.Cif0.Bandwidth.Set(&bw)
	ctx.Cif0.RfRefFreq.Set(&rf)
	ctx.Cif0.SampleRate.Set(&sr)

	spec := Spectrum{
		SpectrumType:       0x01,
		WindowType:         1,
		NumTransformPoints: 1280,
		F1Index:            -640,
	}
	ctx.Cif1.Spectrum.Set(&spec)

	require.NoError(t, p.UpdateSize())
	buf, err := p.Serialize()
	require.NoError(t, err)

	back, err := Parse(buf)
	require.NoError(t, err)
	backCtx := back.Payload.(*Context)
	require.NotNil(t, backCtx.Cif1)
	gotSpec := backCtx.Cif1.Spectrum.Get()
	require.NotNil(t, gotSpec)
	require.Equal(t, spec.SpectrumType, gotSpec.SpectrumType)
	require.Equal(t, spec.NumTransformPoints, gotSpec.NumTransformPoints)
	require.Equal(t, spec.F1Index, gotSpec.F1Index)
}
