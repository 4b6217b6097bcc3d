// Package app wires the loader, analyzers, and report output into the
// one-shot analysis run.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chrissnell/windstats/internal/analysis"
	"github.com/chrissnell/windstats/internal/loader"
	"github.com/chrissnell/windstats/internal/report"
	"github.com/chrissnell/windstats/internal/timeseries"
	"github.com/chrissnell/windstats/pkg/config"
)

// App represents the analysis application
type App struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.Config, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the full analysis and writes the report and artifacts.
// Countries are analyzed concurrently; they share nothing but the
// input bytes, which each pipeline parses independently. A failed
// country is reported and skipped without aborting the others; Run
// returns an error only when no country succeeds or an export fails.
func (a *App) Run(ctx context.Context) error {
	raw, err := os.ReadFile(a.cfg.InputFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	a.logger.Infow("input loaded", "file", a.cfg.InputFile, "bytes", len(raw))

	results := make([]report.CountryReport, len(a.cfg.Countries))
	g, ctx := errgroup.WithContext(ctx)
	for i, country := range a.cfg.Countries {
		i, country := i, country
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.analyzeCountry(raw, country)
			if results[i].Err != nil {
				a.logger.Errorw("country analysis failed", "country", country, "error", results[i].Err)
			} else {
				a.logger.Infow("country analysis complete", "country", country,
					"samples", results[i].Summary.Count)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rep := &report.Report{InputFile: a.cfg.InputFile, Countries: results}

	report.NewPresenter(os.Stdout).Print(rep)

	if err := report.ExportCSV(a.cfg.OutputDir, rep); err != nil {
		return fmt.Errorf("exporting CSV artifacts: %w", err)
	}
	a.logger.Infow("CSV artifacts written", "dir", a.cfg.OutputDir)

	if a.cfg.ResultsDB != "" {
		runID, err := report.ExportSQLite(a.cfg.ResultsDB, rep)
		if err != nil {
			return fmt.Errorf("exporting results database: %w", err)
		}
		a.logger.Infow("results database updated", "path", a.cfg.ResultsDB, "run_id", runID)
	}

	if rep.Failed() {
		return fmt.Errorf("analysis failed for all %d countries", len(a.cfg.Countries))
	}
	return nil
}

// analyzeCountry runs the complete per-country pipeline: load, then
// the independent analyses over the loaded series.
func (a *App) analyzeCountry(raw []byte, country string) report.CountryReport {
	out := report.CountryReport{Country: country}

	series, err := loader.Load(bytes.NewReader(raw), country, loader.Options{SkipRows: a.cfg.SkipRows})
	if err != nil {
		out.Err = err
		return out
	}

	if out.Summary, err = timeseries.Describe(series); err != nil {
		out.Err = &analysis.DataError{Country: country, Msg: err.Error()}
		return out
	}
	if out.Histogram, err = timeseries.Histogram(series, a.cfg.HistogramBins); err != nil {
		out.Err = err
		return out
	}

	out.Diurnal = timeseries.DiurnalProfile(series)
	out.Daily = timeseries.Resample(series, timeseries.PeriodDay)
	out.Weekly = timeseries.Resample(series, timeseries.PeriodWeek)
	out.Monthly = timeseries.Resample(series, timeseries.PeriodMonth)

	if out.Extremes, err = analysis.Extremes(series, a.cfg.LowThreshold, a.cfg.HighThreshold); err != nil {
		out.Err = err
		return out
	}
	if out.Reliability, err = analysis.Reliability(series, a.cfg.ReliabilityThresholds); err != nil {
		out.Err = err
		return out
	}
	if out.Power, err = analysis.EstimatePower(series, a.cfg.RatedPowerKW); err != nil {
		out.Err = err
		return out
	}
	return out
}
