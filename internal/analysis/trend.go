// Package analysis derives sea-level statistics from cleaned gauge series:
// an ordinary-least-squares rise trend with significance, and harmonic
// decomposition into named tidal constituents behind a solver boundary.
package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/harborline/tidal-analysis/internal/domain"
)

// Trend is an ordinary-least-squares fit of sea level against time.
type Trend struct {
	// Slope is the fitted rate of change in level units per day.
	Slope float64
	// PValue is the two-sided significance of the slope under the null
	// hypothesis of zero slope.
	PValue float64
}

// dayNumber maps a timestamp onto the regression's independent axis:
// fractional days since the Unix epoch.
func dayNumber(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(24*time.Hour)
}

// EstimateTrend fits a line to (time, sea level), ignoring missing readings.
// Fewer than two valid readings — or readings that all share one timestamp —
// is domain.ErrInsufficientData.
func EstimateTrend(s domain.Series) (Trend, error) {
	var xs, ys []float64
	for _, r := range s {
		if !r.Valid() {
			continue
		}
		xs = append(xs, dayNumber(r.Timestamp))
		ys = append(ys, *r.SeaLevel)
	}

	if len(xs) < 2 {
		return Trend{}, fmt.Errorf("%w: trend fit needs at least 2 valid readings, have %d", domain.ErrInsufficientData, len(xs))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	p, err := slopePValue(xs, ys, intercept, slope)
	if err != nil {
		return Trend{}, err
	}
	return Trend{Slope: slope, PValue: p}, nil
}

// slopePValue computes the two-sided p-value of the slope from the fit
// residuals using a Student's t distribution with n-2 degrees of freedom.
func slopePValue(xs, ys []float64, intercept, slope float64) (float64, error) {
	n := len(xs)
	xMean := stat.Mean(xs, nil)

	var rss, sxx float64
	for i := range xs {
		resid := ys[i] - (intercept + slope*xs[i])
		rss += resid * resid
		dx := xs[i] - xMean
		sxx += dx * dx
	}

	if sxx == 0 {
		return 0, fmt.Errorf("%w: all readings share one timestamp", domain.ErrInsufficientData)
	}

	// A perfect fit (or the minimal two-point fit) leaves no residual
	// variance to test against: certain unless the slope is exactly flat.
	if n == 2 || rss == 0 {
		if slope == 0 {
			return 1, nil
		}
		return 0, nil
	}

	se := math.Sqrt(rss/float64(n-2)) / math.Sqrt(sxx)
	t := math.Abs(slope / se)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.Survival(t), nil
}
