package report

import (
	"fmt"
	"io"

	"github.com/chrissnell/windstats/internal/timeseries"
)

// Presenter writes the human-readable report.
type Presenter struct {
	w io.Writer
}

// NewPresenter creates a Presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Print renders the whole report: per-country descriptive statistics,
// reliability tables, power estimates, and the cross-country extreme
// wind summary.
func (p *Presenter) Print(r *Report) {
	fmt.Fprintf(p.w, "Wind Capacity Factor Analysis\n")
	fmt.Fprintf(p.w, "=============================\n\n")
	fmt.Fprintf(p.w, "Input: %s\n", r.InputFile)

	for _, c := range r.Countries {
		if c.Err != nil {
			fmt.Fprintf(p.w, "\n--- %s: analysis failed: %v\n", c.Country, c.Err)
			continue
		}
		p.printCountry(&c)
	}

	p.printExtremeSummary(r)
}

func (p *Presenter) printCountry(c *CountryReport) {
	fmt.Fprintf(p.w, "\n--- %s Wind Capacity Factor Statistics ---\n", c.Country)
	fmt.Fprintf(p.w, "  count  %8d\n", c.Summary.Count)
	fmt.Fprintf(p.w, "  mean   %8.4f\n", c.Summary.Mean)
	fmt.Fprintf(p.w, "  std    %8.4f\n", c.Summary.Std)
	fmt.Fprintf(p.w, "  min    %8.4f\n", c.Summary.Min)
	fmt.Fprintf(p.w, "  25%%    %8.4f\n", c.Summary.Q25)
	fmt.Fprintf(p.w, "  50%%    %8.4f\n", c.Summary.Q50)
	fmt.Fprintf(p.w, "  75%%    %8.4f\n", c.Summary.Q75)
	fmt.Fprintf(p.w, "  max    %8.4f\n", c.Summary.Max)

	fmt.Fprintf(p.w, "\nReliability (%s)\n", c.Country)
	fmt.Fprintf(p.w, "%9s | %10s | %10s | %16s\n", "Threshold", "P(above)", "P(below)", "Max consec below")
	fmt.Fprintf(p.w, "----------+------------+------------+-----------------\n")
	for _, rec := range c.Reliability {
		fmt.Fprintf(p.w, "%9.3f | %10.4f | %10.4f | %13d h\n",
			rec.Threshold, rec.ProbAbove, rec.ProbBelow, rec.MaxConsecBelow)
	}

	fmt.Fprintf(p.w, "\n%s - Annual CF: %.2f%%, AEP: %.0f MWh (%.0f kW rated)\n",
		c.Country, c.Power.MeanCapacityFactor*100, c.Power.AnnualEnergyMWh, c.Power.RatedPowerKW)
	if c.Power.GapHours > 0 {
		fmt.Fprintf(p.w, "  note: %d missing hours contributed zero energy; AEP understates production\n",
			c.Power.GapHours)
	}
	fmt.Fprintf(p.w, "\nMonthly capacity factor (%s)\n", c.Country)
	for _, m := range c.Power.MonthlyCF {
		if timeseries.IsMissing(m.Mean) {
			fmt.Fprintf(p.w, "  %s  (no data)\n", m.Month.Format("2006-01"))
			continue
		}
		fmt.Fprintf(p.w, "  %s  %7.4f\n", m.Month.Format("2006-01"), m.Mean)
	}
}

func (p *Presenter) printExtremeSummary(r *Report) {
	fmt.Fprintf(p.w, "\nExtreme Wind Summary\n")
	fmt.Fprintf(p.w, "====================\n\n")
	fmt.Fprintf(p.w, "%-8s | %9s | %10s | %14s | %15s\n",
		"Country", "Low hours", "High hours", "Max consec low", "Max consec high")
	fmt.Fprintf(p.w, "---------+-----------+------------+----------------+----------------\n")
	for _, c := range r.Countries {
		if c.Err != nil {
			continue
		}
		e := c.Extremes
		fmt.Fprintf(p.w, "%-8s | %9d | %10d | %14d | %15d\n",
			c.Country, e.LowHours, e.HighHours, e.MaxConsecLow, e.MaxConsecHigh)
	}
}
