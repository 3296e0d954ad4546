/*
DESCRIPTION
  ecefephemeris.go implements the ECEF (earth-centered, earth-fixed)
  ephemeris sub-struct: a 13-word block of OUI/timestamp header words
  followed by fixed-point position, attitude, and velocity fields.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/fixedpoint"

const (
	ecefPositionRadix = 5  // meters, Q27.5.
	ecefAttitudeRadix = 22 // radians, Q9.22.
	ecefVelocityRadix = 16 // m/s, Q16.16.
)

// EcefEphemeris is the 13-word ECEF ephemeris sub-struct: manufacturer OUI
// and timestamp mode, an integer and fractional timestamp, and
// position/attitude/velocity in earth-centered, earth-fixed coordinates.
type EcefEphemeris struct {
	Tsi Tsi
	Tsf Tsf
	OUI uint32 // 24 bits.

	IntegerTimestamp    uint32
	FractionalTimestamp uint64

	PositionXMeters float64
	PositionYMeters float64
	PositionZMeters float64

	AttitudeAlphaRadians float64
	AttitudeBetaRadians  float64
	AttitudePhiRadians   float64

	VelocityDXMetersPerSec float64
	VelocityDYMetersPerSec float64
	VelocityDZMetersPerSec float64
}

// EcefEphemerisSizeWords is the fixed wire size of an EcefEphemeris block.
const EcefEphemerisSizeWords = 13

// ParseEcefEphemeris decodes an EcefEphemeris from its 13 wire words.
func ParseEcefEphemeris(w [EcefEphemerisSizeWords]uint32) EcefEphemeris {
	return EcefEphemeris{
		Tsi:                  Tsi(w[0] >> 30 & 0x3),
		Tsf:                  Tsf(w[0] >> 28 & 0x3),
		OUI:                  w[0] & 0xff_ffff,
		IntegerTimestamp:     w[1],
		FractionalTimestamp:  uint64(w[2])<<32 | uint64(w[3]),
		PositionXMeters:      fixedpoint.DecodeI32(int32(w[4]), ecefPositionRadix),
		PositionYMeters:      fixedpoint.DecodeI32(int32(w[5]), ecefPositionRadix),
		PositionZMeters:      fixedpoint.DecodeI32(int32(w[6]), ecefPositionRadix),
		AttitudeAlphaRadians: fixedpoint.DecodeI32(int32(w[7]), ecefAttitudeRadix),
		AttitudeBetaRadians:  fixedpoint.DecodeI32(int32(w[8]), ecefAttitudeRadix),
		AttitudePhiRadians:   fixedpoint.DecodeI32(int32(w[9]), ecefAttitudeRadix),
		VelocityDXMetersPerSec: fixedpoint.DecodeI32(int32(w[10]), ecefVelocityRadix),
		VelocityDYMetersPerSec: fixedpoint.DecodeI32(int32(w[11]), ecefVelocityRadix),
		VelocityDZMetersPerSec: fixedpoint.DecodeI32(int32(w[12]), ecefVelocityRadix),
	}
}

// Encode packs e into its 13 wire words.
func (e EcefEphemeris) Encode() [EcefEphemerisSizeWords]uint32 {
	var w [EcefEphemerisSizeWords]uint32
	w[0] = uint32(e.Tsi&0x3)<<30 | uint32(e.Tsf&0x3)<<28 | e.OUI&0xff_ffff
	w[1] = e.IntegerTimestamp
	w[2] = uint32(e.FractionalTimestamp >> 32)
	w[3] = uint32(e.FractionalTimestamp)
	w[4] = uint32(fixedpoint.EncodeI32(e.PositionXMeters, ecefPositionRadix))
	w[5] = uint32(fixedpoint.EncodeI32(e.PositionYMeters, ecefPositionRadix))
	w[6] = uint32(fixedpoint.EncodeI32(e.PositionZMeters, ecefPositionRadix))
	w[7] = uint32(fixedpoint.EncodeI32(e.AttitudeAlphaRadians, ecefAttitudeRadix))
	w[8] = uint32(fixedpoint.EncodeI32(e.AttitudeBetaRadians, ecefAttitudeRadix))
	w[9] = uint32(fixedpoint.EncodeI32(e.AttitudePhiRadians, ecefAttitudeRadix))
	w[10] = uint32(fixedpoint.EncodeI32(e.VelocityDXMetersPerSec, ecefVelocityRadix))
	w[11] = uint32(fixedpoint.EncodeI32(e.VelocityDYMetersPerSec, ecefVelocityRadix))
	w[12] = uint32(fixedpoint.EncodeI32(e.VelocityDZMetersPerSec, ecefVelocityRadix))
	return w
}
