package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/harborline/tidal-analysis/internal/domain"
)

// Solver fits per-frequency amplitude and phase to aligned (elapsed seconds,
// value) arrays. Implementations own the numerical method; the adapter owns
// array construction and epoch normalization.
type Solver interface {
	Solve(freqs, times, values []float64) (amps, phases []float64, err error)
}

// Harmonic decomposes a cleaned series into tidal constituents through a
// Solver.
type Harmonic struct {
	solver Solver
}

// NewHarmonic wraps a solver. A nil solver selects the built-in
// least-squares implementation.
func NewHarmonic(s Solver) *Harmonic {
	if s == nil {
		s = LeastSquaresSolver{}
	}
	return &Harmonic{solver: s}
}

// Analyze fits the named constituents to the series. Both the reference
// epoch and every series timestamp are normalized to timezone-naive instants
// first: the fit operates on a naive elapsed-seconds-since-epoch axis.
// Missing readings and their elapsed times drop out in lockstep before the
// solver runs. Amplitudes and phases align index-for-index with names; an
// unknown name or rejected input is domain.ErrSolverFailure.
func (h *Harmonic) Analyze(s domain.Series, names []string, epoch time.Time) (amps, phases []float64, err error) {
	freqs := make([]float64, len(names))
	for i, name := range names {
		f, ok := ConstituentFrequency(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown constituent %q", domain.ErrSolverFailure, name)
		}
		freqs[i] = f
	}

	epoch = naive(epoch)
	times := make([]float64, 0, len(s))
	values := make([]float64, 0, len(s))
	for _, r := range s {
		if !r.Valid() {
			continue
		}
		times = append(times, naive(r.Timestamp).Sub(epoch).Seconds())
		values = append(values, *r.SeaLevel)
	}

	amps, phases, err = h.solver.Solve(freqs, times, values)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrSolverFailure, err)
	}
	return amps, phases, nil
}

// naive strips the location from a timestamp, keeping its wall-clock fields.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// LeastSquaresSolver fits constituents by ordinary least squares against the
// known angular frequencies: one cosine and one sine column per constituent
// plus a mean column, solved by QR decomposition.
type LeastSquaresSolver struct{}

// Solve returns amplitude sqrt(a²+b²) and phase atan2(b, a) per frequency,
// where a and b are the fitted cosine and sine coefficients, so a reading
// model of A·cos(ωt − φ) recovers A and φ directly.
func (LeastSquaresSolver) Solve(freqs, times, values []float64) ([]float64, []float64, error) {
	if len(times) != len(values) {
		return nil, nil, fmt.Errorf("time/value arrays misaligned: %d vs %d", len(times), len(values))
	}

	n := len(times)
	cols := 1 + 2*len(freqs)
	if n < cols {
		return nil, nil, fmt.Errorf("fitting %d constituents needs at least %d readings, have %d", len(freqs), cols, n)
	}

	design := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j, w := range freqs {
			design.Set(i, 1+2*j, math.Cos(w*times[i]))
			design.Set(i, 2+2*j, math.Sin(w*times[i]))
		}
	}
	rhs := mat.NewVecDense(n, values)

	var coef mat.Dense
	if err := coef.Solve(design, rhs); err != nil {
		return nil, nil, fmt.Errorf("least-squares solve: %w", err)
	}

	amps := make([]float64, len(freqs))
	phases := make([]float64, len(freqs))
	for j := range freqs {
		a := coef.At(1+2*j, 0)
		b := coef.At(2+2*j, 0)
		amps[j] = math.Hypot(a, b)
		phases[j] = math.Atan2(b, a)
	}
	return amps, phases, nil
}
