package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hourly builds a series of hourly readings from start, one per value.
// A nil value becomes a missing reading.
func hourly(start time.Time, values []*float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Reading{
			Timestamp:    start.Add(time.Duration(i) * time.Hour),
			SeaLevel:     v,
			SeaLevelRise: Level(0.0001),
		}
	}
	return s
}

func TestCombine(t *testing.T) {
	day1 := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(1946, 1, 2, 0, 0, 0, 0, time.UTC)

	a := hourly(day2, []*float64{Level(1), Level(2)})
	b := hourly(day1, []*float64{Level(3), Level(4), Level(5)})

	t.Run("second argument comes first", func(t *testing.T) {
		joined, err := Combine(a, b)

		require.NoError(t, err)
		require.Len(t, joined, 5)
		assert.Equal(t, 3.0, *joined[0].SeaLevel)
		assert.Equal(t, 5.0, *joined[2].SeaLevel)
		assert.Equal(t, 1.0, *joined[3].SeaLevel)
		assert.Equal(t, 2.0, *joined[4].SeaLevel)
	})

	t.Run("no re-sorting", func(t *testing.T) {
		// a holds the later timestamps, so passing it first leaves the
		// result out of chronological order. That is the documented rule.
		joined, err := Combine(b, a)

		require.NoError(t, err)
		assert.Equal(t, day2, joined[0].Timestamp)
		assert.Equal(t, day1, joined[2].Timestamp)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		joined, err := Combine(a, b)

		require.NoError(t, err)
		joined[0].SeaLevel = Level(99)
		assert.Equal(t, 3.0, *b[0].SeaLevel)
	})

	t.Run("nil series is incompatible", func(t *testing.T) {
		_, err := Combine(nil, b)
		require.ErrorIs(t, err, ErrIncompatibleData)

		_, err = Combine(a, nil)
		require.ErrorIs(t, err, ErrIncompatibleData)
	})
}

func TestExtractRange(t *testing.T) {
	day1 := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)

	// Two days at hourly intervals, two readings flagged missing.
	values := make([]*float64, 48)
	for i := range values {
		values[i] = Level(float64(i % 7))
	}
	values[5] = nil
	values[30] = nil
	s := hourly(day1, values)

	t.Run("inclusive day bounds", func(t *testing.T) {
		window, err := ExtractRange("19460101", "19460102", s)

		require.NoError(t, err)
		assert.Len(t, window, 48)
	})

	t.Run("missing rows are retained, mean over present values only", func(t *testing.T) {
		window, err := ExtractRange("19460101", "19460102", s)

		require.NoError(t, err)
		assert.Equal(t, 2, window.Missing())

		var sum float64
		for _, r := range window {
			if r.Valid() {
				sum += *r.SeaLevel
			}
		}
		assert.InDelta(t, 0, sum, 1e-9)
	})

	t.Run("rise column is dropped", func(t *testing.T) {
		window, err := ExtractRange("19460101", "19460101", s)

		require.NoError(t, err)
		require.Len(t, window, 24)
		for _, r := range window {
			assert.Nil(t, r.SeaLevelRise)
		}
	})

	t.Run("input series is unchanged", func(t *testing.T) {
		_, err := ExtractRange("19460101", "19460102", s)

		require.NoError(t, err)
		assert.Equal(t, 0.0, *s[0].SeaLevel)
		assert.NotNil(t, s[0].SeaLevelRise)
	})

	t.Run("rows outside the bound are excluded", func(t *testing.T) {
		window, err := ExtractRange("19460102", "19460102", s)

		require.NoError(t, err)
		require.Len(t, window, 24)
		assert.Equal(t, day1.AddDate(0, 0, 1), window[0].Timestamp)
	})

	t.Run("malformed bound", func(t *testing.T) {
		_, err := ExtractRange("1946-01-01", "19460102", s)
		require.Error(t, err)
	})

	t.Run("all-missing window keeps its rows", func(t *testing.T) {
		missing := hourly(day1, []*float64{nil, nil, nil})
		window, err := ExtractRange("19460101", "19460101", missing)

		require.NoError(t, err)
		assert.Len(t, window, 3)
		assert.Equal(t, 3, window.Missing())
	})
}

func TestExtractYear(t *testing.T) {
	start := time.Date(1946, 12, 31, 22, 0, 0, 0, time.UTC)
	s := hourly(start, []*float64{Level(1), Level(2), Level(3), Level(4)})

	year, err := ExtractYear(1946, s)
	require.NoError(t, err)

	ranged, err := ExtractRange("19460101", "19461231", s)
	require.NoError(t, err)

	assert.Equal(t, ranged, year)
	require.Len(t, year, 2) // rows at 22:00 and 23:00 on Dec 31
}

func TestLongestContiguous(t *testing.T) {
	day1 := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("longest valid run wins", func(t *testing.T) {
		var values []*float64
		for i := 0; i < 3; i++ {
			values = append(values, Level(1))
		}
		values = append(values, nil, nil)
		for i := 0; i < 10; i++ {
			values = append(values, Level(2))
		}
		values = append(values, nil)

		block := LongestContiguous(hourly(day1, values))

		require.Len(t, block, 10)
		for _, r := range block {
			require.True(t, r.Valid())
			assert.Equal(t, 2.0, *r.SeaLevel)
		}
	})

	t.Run("first maximum wins ties", func(t *testing.T) {
		values := []*float64{Level(1), Level(1), nil, Level(2), Level(2)}

		block := LongestContiguous(hourly(day1, values))

		require.Len(t, block, 2)
		assert.Equal(t, 1.0, *block[0].SeaLevel)
	})

	t.Run("a longer missing run is returned as-is", func(t *testing.T) {
		values := []*float64{Level(1), Level(2), nil, nil, nil, Level(3)}

		block := LongestContiguous(hourly(day1, values))

		require.Len(t, block, 3)
		assert.Equal(t, 3, block.Missing())
	})

	t.Run("single run", func(t *testing.T) {
		values := []*float64{Level(1), Level(2)}
		block := LongestContiguous(hourly(day1, values))
		assert.Len(t, block, 2)
	})

	t.Run("empty series", func(t *testing.T) {
		assert.Nil(t, LongestContiguous(nil))
	})
}
