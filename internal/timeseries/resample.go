package timeseries

import "time"

// Period selects the calendar granularity for Resample.
type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
)

func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	}
	return "unknown"
}

// Bucket is one resampled period: its calendar start and the mean of
// the non-missing samples inside it. An all-gap bucket has a Missing
// mean, never zero.
type Bucket struct {
	Start time.Time
	Mean  float64
}

// bucketStart truncates t to its calendar bucket boundary: midnight for
// days, the preceding Monday midnight for weeks, the first midnight of
// the month for months. A sample exactly on a boundary belongs to the
// bucket the boundary opens.
func bucketStart(t time.Time, p Period) time.Time {
	y, m, d := t.Date()
	switch p {
	case PeriodWeek:
		// time.Weekday is Sunday-based; shift so Monday is day zero.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -back)
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

// Resample groups the series into calendar buckets and returns the mean
// of each, in time order. Buckets with no samples at all are omitted;
// buckets whose samples are all gaps are kept with a Missing mean.
func Resample(s *Series, p Period) []Bucket {
	var out []Bucket
	var sum float64
	var n int
	var cur time.Time
	open := false

	flush := func() {
		if !open {
			return
		}
		b := Bucket{Start: cur, Mean: Missing}
		if n > 0 {
			b.Mean = sum / float64(n)
		}
		out = append(out, b)
	}

	for i, t := range s.Times {
		start := bucketStart(t, p)
		if !open || !start.Equal(cur) {
			flush()
			cur = start
			sum, n = 0, 0
			open = true
		}
		if v := s.Values[i]; !IsMissing(v) {
			sum += v
			n++
		}
	}
	flush()
	return out
}

// HourMean is the mean capacity factor for one hour of the day.
type HourMean struct {
	Hour int
	Mean float64
}

// DiurnalProfile averages the series by hour of day across all days.
// Hours with no valid samples get a Missing mean.
func DiurnalProfile(s *Series) []HourMean {
	var sums [24]float64
	var counts [24]int
	for i, t := range s.Times {
		if v := s.Values[i]; !IsMissing(v) {
			h := t.Hour()
			sums[h] += v
			counts[h]++
		}
	}

	out := make([]HourMean, 24)
	for h := 0; h < 24; h++ {
		out[h] = HourMean{Hour: h, Mean: Missing}
		if counts[h] > 0 {
			out[h].Mean = sums[h] / float64(counts[h])
		}
	}
	return out
}
