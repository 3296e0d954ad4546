/*
DESCRIPTION
  cif3.go implements CIF3's field schema: timestamp-detail/skew fields,
  pulse-timing extension fields, and environmental measurements. Age (17)
  and shelf-life (16) are defined by the standard but not yet implemented
  here; they are deliberately excluded from both Entries and
  cif3ReservedBits so the container's unimplemented-field fallback
  (cif_container.go) reports them if a peer ever sets one.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

const (
	cif3BitTimestampDetails     = 31
	cif3BitTimestampSkew        = 30
	cif3BitRiseTime             = 27
	cif3BitFallTime             = 26
	cif3BitOffsetTime           = 25
	cif3BitPulseWidth           = 24
	cif3BitPeriod               = 23
	cif3BitDuration             = 22
	cif3BitDwell                = 21
	cif3BitJitter               = 20
	cif3BitAirTemperature       = 7
	cif3BitGroundTemperature    = 6
	cif3BitHumidity             = 5
	cif3BitBarometricPressure   = 4
	cif3BitSeaAndSwellState     = 3
	cif3BitTroposphericState    = 2
	cif3BitNetworkID            = 1

	cif3RadixTemperature = 6
)

// cif3ReservedBits names the bits the standard leaves reserved. It
// deliberately omits age (17) and shelf-life (16): see the file doc comment.
var cif3ReservedBits = map[int]bool{
	29: true, 28: true,
	19: true, 18: true,
	15: true, 14: true, 13: true, 12: true, 11: true, 10: true, 9: true, 8: true,
	0: true,
}

// Cif3Fields holds CIF3's data-carrying fields.
type Cif3Fields struct {
	TimestampDetails   *CifField[uint64]
	TimestampSkew      *CifField[int64]
	RiseTime           *CifField[int64]
	FallTime           *CifField[int64]
	OffsetTime         *CifField[int64]
	PulseWidth         *CifField[int64]
	Period             *CifField[int64]
	Duration           *CifField[int64]
	Dwell              *CifField[int64]
	Jitter             *CifField[int64]
	AirTemperatureC    *CifField[float64]
	GroundTemperatureC *CifField[float64]
	Humidity           *CifField[uint32]
	BarometricPressure *CifField[uint32]
	SeaAndSwellState   *CifField[uint32]
	TroposphericState  *CifField[uint32]
	NetworkID          *CifField[uint32]
}

// NewCif3Fields returns an empty (all-absent) Cif3Fields.
func NewCif3Fields() *Cif3Fields {
	return &Cif3Fields{
		TimestampDetails:   newCifField(cif3BitTimestampDetails, u64PlainCodec()),
		TimestampSkew:      newCifField(cif3BitTimestampSkew, i64PlainCodec()),
		RiseTime:           newCifField(cif3BitRiseTime, i64PlainCodec()),
		FallTime:           newCifField(cif3BitFallTime, i64PlainCodec()),
		OffsetTime:         newCifField(cif3BitOffsetTime, i64PlainCodec()),
		PulseWidth:         newCifField(cif3BitPulseWidth, i64PlainCodec()),
		Period:             newCifField(cif3BitPeriod, i64PlainCodec()),
		Duration:           newCifField(cif3BitDuration, i64PlainCodec()),
		Dwell:              newCifField(cif3BitDwell, i64PlainCodec()),
		Jitter:             newCifField(cif3BitJitter, i64PlainCodec()),
		AirTemperatureC:    newCifField(cif3BitAirTemperature, maskedI16RadixCodec(cif3RadixTemperature)),
		GroundTemperatureC: newCifField(cif3BitGroundTemperature, maskedI16RadixCodec(cif3RadixTemperature)),
		Humidity:           newCifField(cif3BitHumidity, u32Codec()),
		BarometricPressure: newCifField(cif3BitBarometricPressure, u32Codec()),
		SeaAndSwellState:   newCifField(cif3BitSeaAndSwellState, u32Codec()),
		TroposphericState:  newCifField(cif3BitTroposphericState, u32Codec()),
		NetworkID:          newCifField(cif3BitNetworkID, u32Codec()),
	}
}

// Entries returns the schema in descending bit order for the container walk.
func (c *Cif3Fields) Entries() []cifEntry {
	return []cifEntry{
		c.TimestampDetails,
		c.TimestampSkew,
		c.RiseTime,
		c.FallTime,
		c.OffsetTime,
		c.PulseWidth,
		c.Period,
		c.Duration,
		c.Dwell,
		c.Jitter,
		c.AirTemperatureC,
		c.GroundTemperatureC,
		c.Humidity,
		c.BarometricPressure,
		c.SeaAndSwellState,
		c.TroposphericState,
		c.NetworkID,
	}
}

// Word computes CIF3's 32-bit indicator word.
func (c *Cif3Fields) Word() uint32 { return cifWord(c.Entries()) }
