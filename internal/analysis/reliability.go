package analysis

import (
	"github.com/chrissnell/windstats/internal/timeseries"
)

// ReliabilityRecord captures how often the capacity factor clears one
// threshold and the worst consecutive stretch below it.
type ReliabilityRecord struct {
	Threshold      float64
	ProbAbove      float64
	ProbBelow      float64
	MaxConsecBelow int
}

// Reliability computes one record per threshold, in the caller's
// order. Probabilities are taken over the valid (non-missing) sample
// count, not the raw row count, so gaps do not bias them; ProbBelow is
// the exact complement of ProbAbove. The below-run mask uses a strict
// less-than, matching the above mask's inclusive greater-or-equal.
func Reliability(s *timeseries.Series, thresholds []float64) ([]ReliabilityRecord, error) {
	if len(thresholds) == 0 {
		return nil, &ConfigError{Msg: "threshold set is empty"}
	}
	seen := make(map[float64]bool, len(thresholds))
	for _, thr := range thresholds {
		if seen[thr] {
			return nil, &ConfigError{Msg: "threshold set contains duplicates"}
		}
		seen[thr] = true
	}

	valid := s.ValidCount()
	if valid == 0 {
		return nil, &DataError{Country: s.Country, Msg: "no valid samples for reliability analysis"}
	}

	records := make([]ReliabilityRecord, 0, len(thresholds))
	for _, thr := range thresholds {
		above := 0
		for _, v := range s.Values {
			if !timeseries.IsMissing(v) && v >= thr {
				above++
			}
		}
		belowMask := s.Mask(func(v float64) bool { return v < thr })

		pAbove := float64(above) / float64(valid)
		records = append(records, ReliabilityRecord{
			Threshold:      thr,
			ProbAbove:      pAbove,
			ProbBelow:      1 - pAbove,
			MaxConsecBelow: timeseries.LongestRun(belowMask),
		})
	}
	return records, nil
}
