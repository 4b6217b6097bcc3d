package analysis

import (
	"github.com/chrissnell/windstats/internal/timeseries"
)

// ExtremeSummary counts calm and high-wind hours and the longest
// consecutive stretch of each.
type ExtremeSummary struct {
	Country       string
	LowThreshold  float64
	HighThreshold float64
	LowHours      int
	HighHours     int
	MaxConsecLow  int
	MaxConsecHigh int
}

// Extremes classifies every sample against the low and high thresholds.
// Both comparisons are inclusive: a sample at exactly low counts as a
// low-wind hour, a sample at exactly high counts as a high-wind hour.
// Gaps count toward neither side and break consecutive runs.
func Extremes(s *timeseries.Series, low, high float64) (ExtremeSummary, error) {
	if low >= high {
		return ExtremeSummary{}, &ConfigError{Msg: "low threshold must be below high threshold"}
	}

	lowMask := s.Mask(func(v float64) bool { return v <= low })
	highMask := s.Mask(func(v float64) bool { return v >= high })

	sum := ExtremeSummary{
		Country:       s.Country,
		LowThreshold:  low,
		HighThreshold: high,
		MaxConsecLow:  timeseries.LongestRun(lowMask),
		MaxConsecHigh: timeseries.LongestRun(highMask),
	}
	for i := range lowMask {
		if lowMask[i] {
			sum.LowHours++
		}
		if highMask[i] {
			sum.HighHours++
		}
	}
	return sum, nil
}
