package timeseries

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrNoValidSamples is returned when a computation needs at least one
// non-missing sample and the series has none.
var ErrNoValidSamples = errors.New("series has no valid samples")

// Summary holds the descriptive statistics for one series.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe computes descriptive statistics over the non-missing values.
func Describe(s *Series) (Summary, error) {
	valid := s.ValidValues()
	if len(valid) == 0 {
		return Summary{}, ErrNoValidSamples
	}

	sorted := append([]float64(nil), valid...)
	sort.Float64s(sorted)

	sum := Summary{
		Count: len(valid),
		Mean:  stat.Mean(valid, nil),
		Min:   sorted[0],
		Q25:   stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Q50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		Q75:   stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:   sorted[len(sorted)-1],
	}
	if len(valid) > 1 {
		sum.Std = stat.StdDev(valid, nil)
	}
	return sum, nil
}

// HistogramBin is one bin of a capacity-factor histogram.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram counts the non-missing values into uniform bins over
// [0,1]. Values at a bin's upper edge fall into the next bin, except
// 1.0 which lands in the last bin.
func Histogram(s *Series, bins int) ([]HistogramBin, error) {
	if bins < 1 {
		return nil, errors.New("histogram needs at least one bin")
	}

	width := 1.0 / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = float64(i) * width
		out[i].High = float64(i+1) * width
	}

	for _, v := range s.Values {
		if IsMissing(v) || v < 0 || v > 1 {
			continue
		}
		idx := int(v / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out, nil
}
