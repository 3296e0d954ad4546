/*
DESCRIPTION
  formattedgps.go implements the FormattedGPS sub-struct, reused verbatim
  for FormattedINS: an 11-word block of OUI/timestamp header words followed
  by fixed-point latitude/longitude/altitude and course fields.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/fixedpoint"

const (
	gpsLatLonRadix  = 22 // degrees, Q9.22.
	gpsAltitudeRadix = 5  // meters, Q27.5.
	gpsSpeedRadix    = 16 // m/s, Q16.16.
	gpsAngleRadix    = 22 // degrees, Q9.22.
)

// FormattedGPS is the 11-word formatted-GPS sub-struct (also used, with
// identical wire shape, for formatted-INS).
type FormattedGPS struct {
	Tsi Tsi
	Tsf Tsf
	OUI uint32 // 24 bits.

	IntegerTimestamp    uint32
	FractionalTimestamp uint64

	LatitudeDegrees  float64
	LongitudeDegrees float64
	AltitudeMeters   float64

	SpeedOverGroundMetersPerSec float64
	HeadingAngleDegrees         float64
	TrackAngleDegrees           float64
	MagneticVariationDegrees    float64
}

// FormattedGPSSizeWords is the fixed wire size of a FormattedGPS block.
const FormattedGPSSizeWords = 11

// ParseFormattedGPS decodes a FormattedGPS from its 11 wire words.
func ParseFormattedGPS(w [FormattedGPSSizeWords]uint32) FormattedGPS {
	return FormattedGPS{
		Tsi:                         Tsi(w[0] >> 30 & 0x3),
		Tsf:                         Tsf(w[0] >> 28 & 0x3),
		OUI:                         w[0] & 0xff_ffff,
		IntegerTimestamp:            w[1],
		FractionalTimestamp:         uint64(w[2])<<32 | uint64(w[3]),
		LatitudeDegrees:             fixedpoint.DecodeI32(int32(w[4]), gpsLatLonRadix),
		LongitudeDegrees:            fixedpoint.DecodeI32(int32(w[5]), gpsLatLonRadix),
		AltitudeMeters:              fixedpoint.DecodeI32(int32(w[6]), gpsAltitudeRadix),
		SpeedOverGroundMetersPerSec: fixedpoint.DecodeI32(int32(w[7]), gpsSpeedRadix),
		HeadingAngleDegrees:         fixedpoint.DecodeI32(int32(w[8]), gpsAngleRadix),
		TrackAngleDegrees:           fixedpoint.DecodeI32(int32(w[9]), gpsAngleRadix),
		MagneticVariationDegrees:    fixedpoint.DecodeI32(int32(w[10]), gpsAngleRadix),
	}
}

// Encode packs g into its 11 wire words.
func (g FormattedGPS) Encode() [FormattedGPSSizeWords]uint32 {
	var w [FormattedGPSSizeWords]uint32
	w[0] = uint32(g.Tsi&0x3)<<30 | uint32(g.Tsf&0x3)<<28 | g.OUI&0xff_ffff
	w[1] = g.IntegerTimestamp
	w[2] = uint32(g.FractionalTimestamp >> 32)
	w[3] = uint32(g.FractionalTimestamp)
	w[4] = uint32(fixedpoint.EncodeI32(g.LatitudeDegrees, gpsLatLonRadix))
	w[5] = uint32(fixedpoint.EncodeI32(g.LongitudeDegrees, gpsLatLonRadix))
	w[6] = uint32(fixedpoint.EncodeI32(g.AltitudeMeters, gpsAltitudeRadix))
	w[7] = uint32(fixedpoint.EncodeI32(g.SpeedOverGroundMetersPerSec, gpsSpeedRadix))
	w[8] = uint32(fixedpoint.EncodeI32(g.HeadingAngleDegrees, gpsAngleRadix))
	w[9] = uint32(fixedpoint.EncodeI32(g.TrackAngleDegrees, gpsAngleRadix))
	w[10] = uint32(fixedpoint.EncodeI32(g.MagneticVariationDegrees, gpsAngleRadix))
	return w
}
