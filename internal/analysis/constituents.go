package analysis

import "math"

// constituentSpeeds maps tidal constituent names to their angular speeds in
// degrees per hour, the convention published in the NOAA/IHO harmonic
// constant tables.
var constituentSpeeds = map[string]float64{
	"M2":  28.9841042, // principal lunar semidiurnal
	"S2":  30.0000000, // principal solar semidiurnal
	"N2":  28.4397295, // larger lunar elliptic semidiurnal
	"K2":  30.0821373, // lunisolar semidiurnal
	"K1":  15.0410686, // lunisolar diurnal
	"O1":  13.9430356, // principal lunar diurnal
	"P1":  14.9589314, // principal solar diurnal
	"Q1":  13.3986609, // larger lunar elliptic diurnal
	"M4":  57.9682084, // shallow-water overtide of M2
	"MS4": 58.9841042, // shallow-water quarter diurnal
	"MF":  1.0980331,  // lunar fortnightly
	"MM":  0.5443747,  // lunar monthly
	"SSA": 0.0821373,  // solar semiannual
	"SA":  0.0410686,  // solar annual
}

// ConstituentFrequency returns the angular frequency of a named constituent
// in radians per second, or false for a name outside the table.
func ConstituentFrequency(name string) (float64, bool) {
	speed, ok := constituentSpeeds[name]
	if !ok {
		return 0, false
	}
	return speed * math.Pi / 180 / 3600, true
}
