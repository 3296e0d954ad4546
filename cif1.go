/*
DESCRIPTION
  cif1.go implements CIF1's field schema: spatial, polarization and
  auxiliary-measurement fields. CIF1 has no meta-bits of its own — CIF1/2/3
  presence is entirely gated by CIF0's meta-bits.

  Several bits the standard defines are not yet implemented here and are
  deliberately excluded from both Entries and cif1ReservedBits, so the
  container's unimplemented-field fallback (cif_container.go) reports them
  if a peer ever sets one: the structured 3-D pointing vector (bit 28),
  array-of-CIFs (bit 11), sector/step-scan (bit 9) and index-list (bit 7).

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

const (
	cif1BitPhaseOffset                     = 31
	cif1BitPolarization                    = 30
	cif1BitThreeDPointingVector            = 29
	cif1BitSpatialScanType                 = 27
	cif1BitSpatialReferenceType            = 26
	cif1BitBeamWidths                      = 25
	cif1BitRange                           = 24
	cif1BitEbNoBER                         = 20
	cif1BitThreshold                       = 19
	cif1BitCompressionPoint                = 18
	cif1BitInterceptPoints                 = 17
	cif1BitSnrFigure                       = 16
	cif1BitAuxFrequency                    = 15
	cif1BitAuxGain                         = 14
	cif1BitAuxBandwidth                    = 13
	cif1BitSpectrum                        = 10
	cif1BitDiscreteIO32                    = 6
	cif1BitDiscreteIO64                    = 5
	cif1BitHealthStatus                    = 4
	cif1BitV49SpecCompliance               = 3
	cif1BitVersionBuildCode                = 2
	cif1BitBufferSize                      = 1

	cif1RadixPhaseOffset = 7
	cif1RadixRange       = 6
	cif1RadixAuxFreq     = 20
	cif1RadixCompression = 7
)

// cif1ReservedBits names the bits the standard leaves reserved. It
// deliberately omits the unimplemented bits documented above: those fall
// through cif_container.go's lookup miss and report ErrUnimplementedField
// instead of being silently skipped.
var cif1ReservedBits = map[int]bool{
	23: true, 22: true, 21: true,
	12: true,
	8:  true,
	0:  true,
}

// Cif1Fields holds CIF1's data-carrying fields.
type Cif1Fields struct {
	PhaseOffsetRadians               *CifField[float64]
	Polarization                     *CifField[int32]
	ThreeDPointingVector             *CifField[int32]
	SpatialScanType                  *CifField[uint32]
	SpatialReferenceType             *CifField[uint32]
	BeamWidths                       *CifField[uint32]
	RangeMeters                      *CifField[float64]
	EbNoBER                          *CifField[int32]
	Threshold                        *CifField[Threshold]
	CompressionPointDBm              *CifField[float64]
	SecondThirdOrderInterceptPoints  *CifField[int32]
	SnrFigure                        *CifField[int32]
	AuxFrequency                     *CifField[float64]
	AuxGain                          *CifField[Gain]
	AuxBandwidth                     *CifField[float64]
	Spectrum                         *CifField[Spectrum]
	DiscreteIO32                     *CifField[uint32]
	DiscreteIO64                     *CifField[uint64]
	HealthStatus                     *CifField[uint32]
	V49SpecCompliance                *CifField[uint32]
	VersionBuildCode                 *CifField[uint32]
	BufferSize                       *CifField[uint64]
}

// NewCif1Fields returns an empty (all-absent) Cif1Fields.
func NewCif1Fields() *Cif1Fields {
	return &Cif1Fields{
		PhaseOffsetRadians:              newCifField(cif1BitPhaseOffset, maskedI16RadixCodec(cif1RadixPhaseOffset)),
		Polarization:                    newCifField(cif1BitPolarization, i32Codec()),
		ThreeDPointingVector:            newCifField(cif1BitThreeDPointingVector, i32Codec()),
		SpatialScanType:                 newCifField(cif1BitSpatialScanType, u32Codec()),
		SpatialReferenceType:            newCifField(cif1BitSpatialReferenceType, u32Codec()),
		BeamWidths:                      newCifField(cif1BitBeamWidths, u32Codec()),
		RangeMeters:                     newCifField(cif1BitRange, maskedI32RadixCodec(cif1RadixRange)),
		EbNoBER:                         newCifField(cif1BitEbNoBER, i32Codec()),
		Threshold:                       newCifField(cif1BitThreshold, thresholdCodec()),
		CompressionPointDBm:             newCifField(cif1BitCompressionPoint, maskedI16RadixCodec(cif1RadixCompression)),
		SecondThirdOrderInterceptPoints: newCifField(cif1BitInterceptPoints, i32Codec()),
		SnrFigure:                       newCifField(cif1BitSnrFigure, i32Codec()),
		AuxFrequency:                    newCifField(cif1BitAuxFrequency, u64RadixCodec(cif1RadixAuxFreq)),
		AuxGain:                         newCifField(cif1BitAuxGain, gainCodec()),
		AuxBandwidth:                    newCifField(cif1BitAuxBandwidth, u64RadixCodec(cif1RadixAuxFreq)),
		Spectrum:                        newCifField(cif1BitSpectrum, spectrumCodec()),
		DiscreteIO32:                    newCifField(cif1BitDiscreteIO32, u32Codec()),
		DiscreteIO64:                    newCifField(cif1BitDiscreteIO64, u64PlainCodec()),
		HealthStatus:                    newCifField(cif1BitHealthStatus, u32Codec()),
		V49SpecCompliance:               newCifField(cif1BitV49SpecCompliance, u32Codec()),
		VersionBuildCode:                newCifField(cif1BitVersionBuildCode, u32Codec()),
		BufferSize:                      newCifField(cif1BitBufferSize, u64PlainCodec()),
	}
}

// Entries returns the schema in descending bit order for the container walk.
func (c *Cif1Fields) Entries() []cifEntry {
	return []cifEntry{
		c.PhaseOffsetRadians,
		c.Polarization,
		c.ThreeDPointingVector,
		c.SpatialScanType,
		c.SpatialReferenceType,
		c.BeamWidths,
		c.RangeMeters,
		c.EbNoBER,
		c.Threshold,
		c.CompressionPointDBm,
		c.SecondThirdOrderInterceptPoints,
		c.SnrFigure,
		c.AuxFrequency,
		c.AuxGain,
		c.AuxBandwidth,
		c.Spectrum,
		c.DiscreteIO32,
		c.DiscreteIO64,
		c.HealthStatus,
		c.V49SpecCompliance,
		c.VersionBuildCode,
		c.BufferSize,
	}
}

// Word computes CIF1's 32-bit indicator word.
func (c *Cif1Fields) Word() uint32 { return cifWord(c.Entries()) }
