package domain

import "time"

// TimestampLayout is the combined date+time format of a gauge record row.
const TimestampLayout = "2006/01/02 15:04:05"

// Reading is one timestamped tide-gauge observation. A nil SeaLevel or
// SeaLevelRise is the missing sentinel: the field was absent or carried a
// quality flag in the source file.
type Reading struct {
	Timestamp    time.Time
	SeaLevel     *float64
	SeaLevelRise *float64
}

// Valid reports whether the reading carries a usable sea-level value.
func (r Reading) Valid() bool {
	return r.SeaLevel != nil
}

// Series is an ordered sequence of readings, indexed by timestamp in source
// order. Operations never mutate a series in place; they return derived
// copies.
type Series []Reading

// Valid counts the readings with a present sea-level value.
func (s Series) Valid() int {
	n := 0
	for _, r := range s {
		if r.Valid() {
			n++
		}
	}
	return n
}

// Missing counts the readings whose sea-level value is the missing sentinel.
func (s Series) Missing() int {
	return len(s) - s.Valid()
}

// ConstituentResult pairs a tidal constituent name with its fitted amplitude
// and phase (radians). Results align index-for-index with the constituent
// names requested from the harmonic solver.
type ConstituentResult struct {
	Name      string
	Amplitude float64
	Phase     float64
}

// Level returns a pointer to v, for building readings in literals and tests.
func Level(v float64) *float64 {
	return &v
}
