package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestDiurnalProfile(t *testing.T) {
	// Two days of data: hour 0 averages 0.2 and 0.4, hour 1 only has a
	// valid sample on day one.
	s := &Series{Country: "DK"}
	s.Times = []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC),
	}
	s.Values = []float64{0.2, 0.6, 0.4, Missing}

	profile := DiurnalProfile(s)
	if len(profile) != 24 {
		t.Fatalf("got %d hours, expected 24", len(profile))
	}
	if math.Abs(profile[0].Mean-0.3) > 1e-9 {
		t.Errorf("hour 0 mean = %.4f, expected 0.3", profile[0].Mean)
	}
	if math.Abs(profile[1].Mean-0.6) > 1e-9 {
		t.Errorf("hour 1 mean = %.4f, expected 0.6", profile[1].Mean)
	}
	// Hours with no samples at all must be missing, never zero.
	for h := 2; h < 24; h++ {
		if !IsMissing(profile[h].Mean) {
			t.Errorf("hour %d mean = %.4f, expected missing", h, profile[h].Mean)
		}
	}
}

func TestResampleMonthBoundary(t *testing.T) {
	// A sample exactly at a month's first midnight belongs to that
	// month, not the prior one.
	s := &Series{Country: "NL"}
	s.Times = []time.Time{
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC),
	}
	s.Values = []float64{0.1, 0.5, 0.7}

	buckets := Resample(s, PeriodMonth)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, expected 2", len(buckets))
	}

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !buckets[0].Start.Equal(jan) {
		t.Errorf("bucket 0 start = %v, expected %v", buckets[0].Start, jan)
	}
	if !buckets[1].Start.Equal(feb) {
		t.Errorf("bucket 1 start = %v, expected %v", buckets[1].Start, feb)
	}
	if math.Abs(buckets[0].Mean-0.1) > 1e-9 {
		t.Errorf("January mean = %.4f, expected 0.1", buckets[0].Mean)
	}
	if math.Abs(buckets[1].Mean-0.6) > 1e-9 {
		t.Errorf("February mean = %.4f, expected 0.6", buckets[1].Mean)
	}
}

func TestResampleWeekStartsMonday(t *testing.T) {
	// 2024-03-06 is a Wednesday; its week bucket starts Monday 03-04.
	// 2024-03-10 is the following Sunday, still the same bucket;
	// 2024-03-11 opens the next week.
	s := &Series{Country: "DE"}
	s.Times = []time.Time{
		time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	s.Values = []float64{0.2, 0.4, 0.9}

	buckets := Resample(s, PeriodWeek)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, expected 2", len(buckets))
	}

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if !buckets[0].Start.Equal(monday) {
		t.Errorf("bucket 0 start = %v, expected Monday %v", buckets[0].Start, monday)
	}
	if !buckets[1].Start.Equal(nextMonday) {
		t.Errorf("bucket 1 start = %v, expected Monday %v", buckets[1].Start, nextMonday)
	}
	if buckets[0].Start.Weekday() != time.Monday || buckets[1].Start.Weekday() != time.Monday {
		t.Error("week buckets must start on a Monday")
	}
	if math.Abs(buckets[0].Mean-0.3) > 1e-9 {
		t.Errorf("week mean = %.4f, expected 0.3", buckets[0].Mean)
	}
}

func TestResampleDay(t *testing.T) {
	s := hourly(time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC), 0.2, 0.4, 0.6, 0.8)
	buckets := Resample(s, PeriodDay)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, expected 2", len(buckets))
	}
	if math.Abs(buckets[0].Mean-0.3) > 1e-9 {
		t.Errorf("day 1 mean = %.4f, expected 0.3", buckets[0].Mean)
	}
	if math.Abs(buckets[1].Mean-0.7) > 1e-9 {
		t.Errorf("day 2 mean = %.4f, expected 0.7", buckets[1].Mean)
	}
}

func TestResampleAllGapBucketIsMissing(t *testing.T) {
	s := hourly(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Missing, Missing)
	buckets := Resample(s, PeriodDay)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, expected 1", len(buckets))
	}
	if !IsMissing(buckets[0].Mean) {
		t.Errorf("all-gap bucket mean = %.4f, expected missing", buckets[0].Mean)
	}
}
