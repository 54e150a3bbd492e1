package gaugefile

import (
	"fmt"
	"regexp"
	"strconv"
)

// flagSuffixes are the quality-flag markers appended to numeric field text:
// M (improbable), N (null), T (tidal prediction). Each is an independent
// suffix test against the entire field, not one combined alternation, so
// pathological strings ending in more than one marker keep exact matching
// semantics. Which letter matched is not preserved — all map to missing.
var flagSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`M$`),
	regexp.MustCompile(`N$`),
	regexp.MustCompile(`T$`),
}

// Sanitize converts one raw numeric field to a value or the missing
// sentinel. A flagged field becomes nil; anything else must parse as a
// float.
func Sanitize(raw string) (*float64, error) {
	for _, re := range flagSuffixes {
		if re.MatchString(raw) {
			return nil, nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("value %q is not numeric", raw)
	}
	return &v, nil
}
