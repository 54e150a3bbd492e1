package domain

import "errors"

// Error taxonomy for the analysis toolkit. Callers match with errors.Is;
// every failure is terminal for the operation that raised it — nothing
// retries and nothing is swallowed.
var (
	// ErrNotFound reports a requested input file path that does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrParseFailure reports a row that failed timestamp or numeric
	// decoding after flag sanitization. The wrap carries file and line
	// context.
	ErrParseFailure = errors.New("parse failure")

	// ErrIncompatibleData reports two series that cannot be structurally
	// joined.
	ErrIncompatibleData = errors.New("incompatible series")

	// ErrInsufficientData reports a trend fit attempted with fewer than two
	// valid readings.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrSolverFailure reports inputs rejected by the harmonic solver, with
	// the solver's message attached.
	ErrSolverFailure = errors.New("harmonic solver failure")
)
