/*
DESCRIPTION
  cif0.go implements CIF0's field schema: the 22 data-carrying bits (30
  down to 8, excluding 17), the context-field-changed flag bit (31, which
  has no data slot), and the four meta-bits (4-1) gating CIF1/2/3/7
  presence, and the device-id field (17). Bits 7-5 and 0 are reserved.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

const (
	cif0BitReferencePointID           = 30
	cif0BitBandwidth                  = 29
	cif0BitIfRefFreq                  = 28
	cif0BitRfRefFreq                  = 27
	cif0BitRfRefFreqOffset            = 26
	cif0BitIfBandOffset               = 25
	cif0BitReferenceLevel             = 24
	cif0BitGain                       = 23
	cif0BitOverRangeCount             = 22
	cif0BitSampleRate                 = 21
	cif0BitTimestampAdjustment        = 20
	cif0BitTimestampCalibrationTime   = 19
	cif0BitTemperature                = 18
	cif0BitDeviceID                   = 17
	cif0BitStateEventIndicators       = 16
	cif0BitDataPayloadFormat          = 15
	cif0BitFormattedGPS               = 14
	cif0BitFormattedINS               = 13
	cif0BitEcefEphemeris              = 12
	cif0BitRelativeEphemeris          = 11
	cif0BitEphemerisRefID             = 10
	cif0BitGpsAscii                   = 9
	cif0BitContextAssociationLists    = 8

	cif0BitContextFieldChanged = 31

	cif0BitCif7Enabled = 1
	cif0BitCif3Enabled = 2
	cif0BitCif2Enabled = 3
	cif0BitCif1Enabled = 4

	cif0RadixFreq        = 20
	cif0RadixLevel       = 7
	cif0RadixTemperature = 6
)

// cif0ReservedBits names the bit positions the data-section container must
// skip without requiring a schema entry: the flag-only context-changed
// bit, the four CIF1/2/3/7 meta-bits (consumed by Context/Command before
// the data walk), and the spec-reserved gap.
var cif0ReservedBits = map[int]bool{
	cif0BitContextFieldChanged: true,
	cif0BitCif1Enabled:         true,
	cif0BitCif2Enabled:         true,
	cif0BitCif3Enabled:         true,
	cif0BitCif7Enabled:         true,
	7: true, 6: true, 5: true, 0: true,
}

// Cif0Fields holds CIF0's 23 data-carrying fields.
type Cif0Fields struct {
	ReferencePointID         *CifField[uint32]
	Bandwidth                *CifField[float64]
	IfRefFreq                *CifField[float64]
	RfRefFreq                *CifField[float64]
	RfRefFreqOffset          *CifField[float64]
	IfBandOffset             *CifField[float64]
	ReferenceLevel           *CifField[float64]
	Gain                     *CifField[Gain]
	OverRangeCount           *CifField[uint32]
	SampleRate               *CifField[float64]
	TimestampAdjustment      *CifField[int64]
	TimestampCalibrationTime *CifField[uint32]
	Temperature              *CifField[float64]
	DeviceID                 *CifField[DeviceIdentifier]
	StateEventIndicators     *CifField[uint32]
	DataPayloadFormat        *CifField[uint64]
	FormattedGPS             *CifField[FormattedGPS]
	FormattedINS             *CifField[FormattedGPS]
	EcefEphemeris            *CifField[EcefEphemeris]
	RelativeEphemeris        *CifField[EcefEphemeris]
	EphemerisRefID           *CifField[uint32]
	GpsAscii                 *CifField[GpsAscii]
	ContextAssociationLists  *CifField[ContextAssociationLists]

	// ContextFieldChanged is bit 31: a flag with no associated data field.
	ContextFieldChanged bool
}

// NewCif0Fields returns an empty (all-absent) Cif0Fields.
func NewCif0Fields() *Cif0Fields {
	return &Cif0Fields{
		ReferencePointID:         newCifField(cif0BitReferencePointID, u32Codec()),
		Bandwidth:                newCifField(cif0BitBandwidth, u64RadixCodec(cif0RadixFreq)),
		IfRefFreq:                newCifField(cif0BitIfRefFreq, u64RadixCodec(cif0RadixFreq)),
		RfRefFreq:                newCifField(cif0BitRfRefFreq, u64RadixCodec(cif0RadixFreq)),
		RfRefFreqOffset:          newCifField(cif0BitRfRefFreqOffset, i64RadixCodec(cif0RadixFreq)),
		IfBandOffset:             newCifField(cif0BitIfBandOffset, i64RadixCodec(cif0RadixFreq)),
		ReferenceLevel:           newCifField(cif0BitReferenceLevel, maskedI16RadixCodec(cif0RadixLevel)),
		Gain:                     newCifField(cif0BitGain, gainCodec()),
		OverRangeCount:           newCifField(cif0BitOverRangeCount, u32Codec()),
		SampleRate:               newCifField(cif0BitSampleRate, u64RadixCodec(cif0RadixFreq)),
		TimestampAdjustment:      newCifField(cif0BitTimestampAdjustment, i64PlainCodec()),
		TimestampCalibrationTime: newCifField(cif0BitTimestampCalibrationTime, u32Codec()),
		Temperature:              newCifField(cif0BitTemperature, maskedI16RadixCodec(cif0RadixTemperature)),
		DeviceID:                 newCifField(cif0BitDeviceID, deviceIdentifierCodec()),
		StateEventIndicators:     newCifField(cif0BitStateEventIndicators, u32Codec()),
		DataPayloadFormat:        newCifField(cif0BitDataPayloadFormat, u64PlainCodec()),
		FormattedGPS:             newCifField(cif0BitFormattedGPS, formattedGPSCodec()),
		FormattedINS:             newCifField(cif0BitFormattedINS, formattedGPSCodec()),
		EcefEphemeris:            newCifField(cif0BitEcefEphemeris, ecefEphemerisCodec()),
		RelativeEphemeris:        newCifField(cif0BitRelativeEphemeris, ecefEphemerisCodec()),
		EphemerisRefID:           newCifField(cif0BitEphemerisRefID, u32Codec()),
		GpsAscii:                 newCifField(cif0BitGpsAscii, gpsAsciiCodec()),
		ContextAssociationLists:  newCifField(cif0BitContextAssociationLists, contextAssociationListsCodec()),
	}
}

// Entries returns the schema in descending bit order for the container walk.
func (c *Cif0Fields) Entries() []cifEntry {
	return []cifEntry{
		c.ReferencePointID,
		c.Bandwidth,
		c.IfRefFreq,
		c.RfRefFreq,
		c.RfRefFreqOffset,
		c.IfBandOffset,
		c.ReferenceLevel,
		c.Gain,
		c.OverRangeCount,
		c.SampleRate,
		c.TimestampAdjustment,
		c.TimestampCalibrationTime,
		c.Temperature,
		c.DeviceID,
		c.StateEventIndicators,
		c.DataPayloadFormat,
		c.FormattedGPS,
		c.FormattedINS,
		c.EcefEphemeris,
		c.RelativeEphemeris,
		c.EphemerisRefID,
		c.GpsAscii,
		c.ContextAssociationLists,
	}
}

// Word computes CIF0's 32-bit indicator word, including the
// context-field-changed flag and the supplied CIF1/2/3/7 meta-bits (those
// are owned by the containing payload, which knows whether CIF1/2/3/7 are
// populated).
func (c *Cif0Fields) Word(cif1, cif2, cif3, cif7 bool) uint32 {
	w := cifWord(c.Entries())
	if c.ContextFieldChanged {
		w |= 1 << cif0BitContextFieldChanged
	}
	if cif1 {
		w |= 1 << cif0BitCif1Enabled
	}
	if cif2 {
		w |= 1 << cif0BitCif2Enabled
	}
	if cif3 {
		w |= 1 << cif0BitCif3Enabled
	}
	if cif7 {
		w |= 1 << cif0BitCif7Enabled
	}
	return w
}
