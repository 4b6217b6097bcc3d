// Package report renders and exports analysis results. It consumes the
// records the analyzers return and never reaches back into the series.
package report

import (
	"github.com/chrissnell/windstats/internal/analysis"
	"github.com/chrissnell/windstats/internal/timeseries"
)

// CountryReport bundles every analysis result for one country.
type CountryReport struct {
	Country     string
	Summary     timeseries.Summary
	Histogram   []timeseries.HistogramBin
	Diurnal     []timeseries.HourMean
	Daily       []timeseries.Bucket
	Weekly      []timeseries.Bucket
	Monthly     []timeseries.Bucket
	Extremes    analysis.ExtremeSummary
	Reliability []analysis.ReliabilityRecord
	Power       analysis.PowerEstimate

	// Err is set when the country's pipeline failed; the other fields
	// are zero in that case.
	Err error
}

// Report is the full multi-country result set for one run.
type Report struct {
	InputFile string
	Countries []CountryReport
}

// Failed reports whether every country's pipeline failed.
func (r *Report) Failed() bool {
	for _, c := range r.Countries {
		if c.Err == nil {
			return false
		}
	}
	return len(r.Countries) > 0
}
