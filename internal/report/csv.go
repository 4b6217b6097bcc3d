package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chrissnell/windstats/internal/timeseries"
)

// ExportCSV writes the per-country artifact tables into dir: one
// reliability, diurnal, daily, weekly, monthly, and histogram CSV per
// country, plus a cross-country extreme-wind summary. File names embed
// the country code so concurrent-country runs never contend on a path.
func ExportCSV(dir string, r *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, c := range r.Countries {
		if c.Err != nil {
			continue
		}
		if err := exportCountry(dir, &c); err != nil {
			return err
		}
	}
	return writeTable(filepath.Join(dir, "extreme_summary.csv"),
		[]string{"Country", "Low_Wind_Hours", "High_Wind_Hours", "Max_Consec_Low", "Max_Consec_High"},
		func(w *csv.Writer) error {
			for _, c := range r.Countries {
				if c.Err != nil {
					continue
				}
				e := c.Extremes
				rec := []string{c.Country,
					strconv.Itoa(e.LowHours), strconv.Itoa(e.HighHours),
					strconv.Itoa(e.MaxConsecLow), strconv.Itoa(e.MaxConsecHigh)}
				if err := w.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
}

func exportCountry(dir string, c *CountryReport) error {
	name := func(table string) string {
		return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", c.Country, table))
	}

	err := writeTable(name("reliability"),
		[]string{"Threshold", "Probability_Above", "Probability_Below", "Max_Consec_Below"},
		func(w *csv.Writer) error {
			for _, rec := range c.Reliability {
				row := []string{
					formatFloat(rec.Threshold),
					formatFloat(rec.ProbAbove),
					formatFloat(rec.ProbBelow),
					strconv.Itoa(rec.MaxConsecBelow),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return err
	}

	err = writeTable(name("diurnal"), []string{"Hour", "Mean_CF"},
		func(w *csv.Writer) error {
			for _, h := range c.Diurnal {
				if err := w.Write([]string{strconv.Itoa(h.Hour), formatMaybe(h.Mean)}); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return err
	}

	for _, tbl := range []struct {
		table   string
		layout  string
		buckets []timeseries.Bucket
	}{
		{"daily", "2006-01-02", c.Daily},
		{"weekly", "2006-01-02", c.Weekly},
		{"monthly", "2006-01", c.Monthly},
	} {
		err = writeTable(name(tbl.table), []string{"Period_Start", "Mean_CF"},
			func(w *csv.Writer) error {
				for _, b := range tbl.buckets {
					if err := w.Write([]string{b.Start.Format(tbl.layout), formatMaybe(b.Mean)}); err != nil {
						return err
					}
				}
				return nil
			})
		if err != nil {
			return err
		}
	}

	return writeTable(name("histogram"), []string{"Bin_Low", "Bin_High", "Count"},
		func(w *csv.Writer) error {
			for _, b := range c.Histogram {
				row := []string{formatFloat(b.Low), formatFloat(b.High), strconv.Itoa(b.Count)}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
}

func writeTable(path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// formatMaybe renders a gap as an empty field rather than NaN text.
func formatMaybe(v float64) string {
	if timeseries.IsMissing(v) {
		return ""
	}
	return formatFloat(v)
}
