package report

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/chrissnell/windstats/internal/timeseries"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	input_file  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS summaries (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	country  TEXT NOT NULL,
	count    INTEGER NOT NULL,
	mean     REAL NOT NULL,
	std      REAL NOT NULL,
	min      REAL NOT NULL,
	q25      REAL NOT NULL,
	q50      REAL NOT NULL,
	q75      REAL NOT NULL,
	max      REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS reliability (
	run_id            TEXT NOT NULL REFERENCES runs(id),
	country           TEXT NOT NULL,
	threshold         REAL NOT NULL,
	prob_above        REAL NOT NULL,
	prob_below        REAL NOT NULL,
	max_consec_below  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS extremes (
	run_id           TEXT NOT NULL REFERENCES runs(id),
	country          TEXT NOT NULL,
	low_threshold    REAL NOT NULL,
	high_threshold   REAL NOT NULL,
	low_hours        INTEGER NOT NULL,
	high_hours       INTEGER NOT NULL,
	max_consec_low   INTEGER NOT NULL,
	max_consec_high  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS power_estimates (
	run_id             TEXT NOT NULL REFERENCES runs(id),
	country            TEXT NOT NULL,
	rated_power_kw     REAL NOT NULL,
	mean_cf            REAL NOT NULL,
	annual_energy_mwh  REAL NOT NULL,
	gap_hours          INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS monthly_cf (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	country  TEXT NOT NULL,
	month    TEXT NOT NULL,
	mean_cf  REAL
);
`

// ExportSQLite appends the run's result tables to a single-file SQLite
// database, creating it and its schema on first use. Every row carries
// the run ID so repeated runs against changing inputs stay separable.
func ExportSQLite(dbPath string, r *Report) (runID string, err error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open results database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return "", fmt.Errorf("failed to ping results database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return "", fmt.Errorf("failed to create results schema: %w", err)
	}

	runID = uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`INSERT INTO runs (id, created_at, input_file) VALUES (?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), r.InputFile); err != nil {
		return "", fmt.Errorf("failed to insert run row: %w", err)
	}

	for _, c := range r.Countries {
		if c.Err != nil {
			continue
		}
		if err = insertCountry(tx, runID, &c); err != nil {
			return "", fmt.Errorf("failed to insert results for %s: %w", c.Country, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit results: %w", err)
	}
	return runID, nil
}

func insertCountry(tx *sql.Tx, runID string, c *CountryReport) error {
	s := c.Summary
	if _, err := tx.Exec(
		`INSERT INTO summaries (run_id, country, count, mean, std, min, q25, q50, q75, max)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, c.Country, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max); err != nil {
		return err
	}

	for _, rec := range c.Reliability {
		if _, err := tx.Exec(
			`INSERT INTO reliability (run_id, country, threshold, prob_above, prob_below, max_consec_below)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, c.Country, rec.Threshold, rec.ProbAbove, rec.ProbBelow, rec.MaxConsecBelow); err != nil {
			return err
		}
	}

	e := c.Extremes
	if _, err := tx.Exec(
		`INSERT INTO extremes (run_id, country, low_threshold, high_threshold, low_hours, high_hours, max_consec_low, max_consec_high)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, c.Country, e.LowThreshold, e.HighThreshold, e.LowHours, e.HighHours, e.MaxConsecLow, e.MaxConsecHigh); err != nil {
		return err
	}

	p := c.Power
	if _, err := tx.Exec(
		`INSERT INTO power_estimates (run_id, country, rated_power_kw, mean_cf, annual_energy_mwh, gap_hours)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, c.Country, p.RatedPowerKW, p.MeanCapacityFactor, p.AnnualEnergyMWh, p.GapHours); err != nil {
		return err
	}

	for _, m := range p.MonthlyCF {
		var mean interface{}
		if !timeseries.IsMissing(m.Mean) {
			mean = m.Mean
		}
		if _, err := tx.Exec(
			`INSERT INTO monthly_cf (run_id, country, month, mean_cf) VALUES (?, ?, ?, ?)`,
			runID, c.Country, m.Month.Format("2006-01"), mean); err != nil {
			return err
		}
	}
	return nil
}
