package timeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Time values throughout the engine are microseconds, matching the draft
// file format.
const (
	Second int64 = 1_000_000
	Minute       = 60 * Second
)

// Timerange places a segment on the timeline: a start offset and a duration,
// both in microseconds.
type Timerange struct {
	Start    int64
	Duration int64
}

// End returns the first microsecond past the range.
func (t Timerange) End() int64 {
	return t.Start + t.Duration
}

// Time expressions are compound duration strings: an optional minutes part
// followed by an optional seconds part, e.g. "1m30s", "4.2s", "2m", "0s".
var exprPattern = regexp.MustCompile(`^(?:(\d+(?:\.\d+)?)m)?(?:(\d+(?:\.\d+)?)s)?$`)

// ParseExpr parses a time expression into microseconds. At least one of the
// minutes/seconds parts must be present; units other than m and s are
// rejected.
func ParseExpr(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty time expression")
	}
	m := exprPattern.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid time expression %q", s)
	}

	var total float64
	if m[1] != "" {
		minutes, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time expression %q: %v", s, err)
		}
		total += minutes * float64(Minute)
	}
	if m[2] != "" {
		seconds, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time expression %q: %v", s, err)
		}
		total += seconds * float64(Second)
	}

	return int64(math.Round(total)), nil
}

// Trange builds a Timerange from a start expression and a duration expression.
func Trange(start, duration string) (Timerange, error) {
	s, err := ParseExpr(start)
	if err != nil {
		return Timerange{}, err
	}
	d, err := ParseExpr(duration)
	if err != nil {
		return Timerange{}, err
	}
	return Timerange{Start: s, Duration: d}, nil
}
