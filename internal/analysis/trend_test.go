package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/tidal-analysis/internal/domain"
)

// dailySeries builds one reading per day from start using f(dayNumber).
func dailySeries(start time.Time, days int, f func(x float64) float64) domain.Series {
	s := make(domain.Series, days)
	for i := range s {
		ts := start.AddDate(0, 0, i)
		s[i] = domain.Reading{Timestamp: ts, SeaLevel: domain.Level(f(dayNumber(ts)))}
	}
	return s
}

func TestEstimateTrend(t *testing.T) {
	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("exact line recovers its slope", func(t *testing.T) {
		s := dailySeries(start, 100, func(x float64) float64 { return 2*x + 5 })

		trend, err := EstimateTrend(s)

		require.NoError(t, err)
		assert.InDelta(t, 2.0, trend.Slope, 1e-9)
		assert.InDelta(t, 0.0, trend.PValue, 1e-12)
	})

	t.Run("missing readings are ignored", func(t *testing.T) {
		s := dailySeries(start, 100, func(x float64) float64 { return 2*x + 5 })
		s[10].SeaLevel = nil
		s[11].SeaLevel = nil

		trend, err := EstimateTrend(s)

		require.NoError(t, err)
		assert.InDelta(t, 2.0, trend.Slope, 1e-9)
	})

	t.Run("flat noise has no significant slope", func(t *testing.T) {
		i := 0
		s := dailySeries(start, 50, func(float64) float64 {
			i++
			if i%2 == 0 {
				return 1
			}
			return -1
		})

		trend, err := EstimateTrend(s)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, trend.Slope, 0.01)
		assert.Greater(t, trend.PValue, 0.5)
	})

	t.Run("two points fit perfectly", func(t *testing.T) {
		s := dailySeries(start, 2, func(x float64) float64 { return 3 * x })

		trend, err := EstimateTrend(s)

		require.NoError(t, err)
		assert.InDelta(t, 3.0, trend.Slope, 1e-9)
		assert.Equal(t, 0.0, trend.PValue)
	})

	t.Run("fewer than two valid points", func(t *testing.T) {
		s := dailySeries(start, 5, func(float64) float64 { return 1 })
		for i := 1; i < len(s); i++ {
			s[i].SeaLevel = nil
		}

		_, err := EstimateTrend(s)

		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("all readings at one instant", func(t *testing.T) {
		s := domain.Series{
			{Timestamp: start, SeaLevel: domain.Level(1)},
			{Timestamp: start, SeaLevel: domain.Level(2)},
			{Timestamp: start, SeaLevel: domain.Level(3)},
		}

		_, err := EstimateTrend(s)

		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})
}
