// Package timeseries provides the hourly capacity-factor series type and
// the statistical primitives the analyzers are built on: descriptive
// statistics, run-length detection, and calendar resampling.
package timeseries

import (
	"math"
	"time"
)

// Missing marks a gap in a series. Gaps are kept in place so that
// consecutive-run detection and bucket means can treat them explicitly
// instead of silently coercing them to zero.
var Missing = math.NaN()

// IsMissing reports whether v is the gap marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Series is an hourly capacity-factor series for one country.
// Timestamps are unique and sorted ascending; values are in [0,1] or
// Missing. Times and Values are parallel slices of equal length.
type Series struct {
	Country string
	Times   []time.Time
	Values  []float64
}

// Len returns the number of samples, gaps included.
func (s *Series) Len() int {
	return len(s.Values)
}

// ValidCount returns the number of non-missing samples.
func (s *Series) ValidCount() int {
	n := 0
	for _, v := range s.Values {
		if !IsMissing(v) {
			n++
		}
	}
	return n
}

// ValidValues returns the non-missing values in series order.
func (s *Series) ValidValues() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mask applies cond to every sample and returns the aligned boolean
// sequence. Gaps always map to false, so a gap can never satisfy a
// threshold condition and always breaks a run.
func (s *Series) Mask(cond func(float64) bool) []bool {
	mask := make([]bool, len(s.Values))
	for i, v := range s.Values {
		mask[i] = !IsMissing(v) && cond(v)
	}
	return mask
}
