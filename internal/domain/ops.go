package domain

import (
	"fmt"
	"time"
)

// dayLayout is the 8-digit date form used for range bounds, e.g. "19460115".
const dayLayout = "20060102"

// Combine concatenates two series, b first then a. Callers pass the data to
// be appended as the first argument and the data to be prepended as the
// second; downstream tooling depends on this ordering, so it is load-bearing
// rather than incidental. No deduplication or re-sorting happens: the result
// order is whatever the concatenation yields.
func Combine(a, b Series) (Series, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: cannot join a nil series", ErrIncompatibleData)
	}

	joined := make(Series, 0, len(a)+len(b))
	joined = append(joined, b...)
	joined = append(joined, a...)
	return joined, nil
}

// ExtractRange slices the sea-level column over an inclusive day range and
// centers the present values on zero. Bounds are 8-digit YYYYMMDD strings;
// the end bound covers the whole end day. Rows whose value is missing stay
// in the result as missing — they are only excluded from the mean. The rise
// column is dropped. The input series is not modified.
func ExtractRange(start, end string, s Series) (Series, error) {
	from, err := time.Parse(dayLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start bound %q: %w", start, err)
	}
	to, err := time.Parse(dayLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end bound %q: %w", end, err)
	}
	// Inclusive of the end date's whole day.
	to = to.AddDate(0, 0, 1)

	var window Series
	for _, r := range s {
		if r.Timestamp.Before(from) || !r.Timestamp.Before(to) {
			continue
		}
		window = append(window, Reading{Timestamp: r.Timestamp, SeaLevel: r.SeaLevel})
	}

	var sum float64
	var n int
	for _, r := range window {
		if r.Valid() {
			sum += *r.SeaLevel
			n++
		}
	}
	if n == 0 {
		return window, nil
	}

	mean := sum / float64(n)
	for i, r := range window {
		if r.Valid() {
			window[i].SeaLevel = Level(*r.SeaLevel - mean)
		}
	}
	return window, nil
}

// ExtractYear slices one calendar year and centers it, equivalent to
// ExtractRange over YYYY0101..YYYY1231.
func ExtractYear(year int, s Series) (Series, error) {
	return ExtractRange(fmt.Sprintf("%04d0101", year), fmt.Sprintf("%04d1231", year), s)
}

// LongestContiguous returns the rows of the run with the highest member
// count. Runs are maximal stretches of identical validity classification,
// numbered in a single left-to-right scan; the count comparison is a stable
// argmax, so the first run to reach the maximum wins ties. No filter demands
// the winning run be a valid-type run: when a stretch of missing values
// outnumbers every valid stretch, that stretch is returned unchanged.
func LongestContiguous(s Series) Series {
	if len(s) == 0 {
		return nil
	}

	runIDs := make([]int, len(s))
	counts := []int{1}
	run := 0
	for i := 1; i < len(s); i++ {
		if s[i].Valid() != s[i-1].Valid() {
			run++
			counts = append(counts, 0)
		}
		runIDs[i] = run
		counts[run]++
	}

	best := 0
	for id, c := range counts {
		if c > counts[best] {
			best = id
		}
	}

	block := make(Series, 0, counts[best])
	for i, r := range s {
		if runIDs[i] == best {
			block = append(block, r)
		}
	}
	return block
}
