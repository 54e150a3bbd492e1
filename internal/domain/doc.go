// Package domain models tide-gauge observation records and the series
// operations derived from them.
//
// # Data Source
//
// Records originate from UK tide-gauge archive files (BODC-style hourly and
// quarter-hour exports). Each file carries an 11-line free-text header
// (station name, datum, units) followed by whitespace-separated rows:
//
//	<index> <date YYYY/MM/DD> <time HH:MM:SS> <sea level[flag]> <sea level rise[flag]>
//
// The date and time columns combine into the reading's timestamp, which acts
// as the ordering key of the series. Timestamps are presumed strictly
// increasing within one file; no component re-sorts.
//
// # Quality Flags
//
// Gauge operators annotate unreliable numeric fields by appending a single
// letter directly to the value text, with no separator:
//
//	M  improbable value flagged by the quality-control suite
//	T  interpolated from a tidal prediction
//	N  null or absent observation
//
// e.g. "1.234M". Any flagged value becomes the missing sentinel; the letter
// itself is not preserved downstream. Missing is modeled as a nil *float64,
// never as a float NaN, so equality and comparisons stay well behaved.
//
// # Contiguous Blocks
//
// A contiguous block is a maximal run of consecutive readings sharing the
// same validity classification (sea level present or missing). Run
// identifiers are assigned in a single left-to-right scan, incrementing each
// time the classification flips. [LongestContiguous] returns the rows of the
// run with the highest count, first maximum winning on ties. If the longest
// run in a record happens to be a run of missing values, that run is
// returned as-is; callers that need valid data check the block themselves.
package domain
