// Package loader parses the ERA5-derived capacity-factor CSV into a
// per-country time series. The file carries a fixed metadata preamble
// before its header row; the header names a Date column plus one column
// per country code.
package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chrissnell/windstats/internal/timeseries"
)

// SchemaError reports a structural problem with the input file: a
// missing header, Date column, or country column. Schema problems are
// fatal for the affected country; row-level parse failures are not.
type SchemaError struct {
	Column string
	Msg    string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("input schema error: column %q %s", e.Column, e.Msg)
	}
	return fmt.Sprintf("input schema error: %s", e.Msg)
}

// Options controls preamble skipping and gap policy.
type Options struct {
	// SkipRows is the number of metadata lines before the header row.
	SkipRows int
	// DropGaps drops rows whose value fails to parse instead of
	// retaining them as explicit gaps.
	DropGaps bool
}

// Timestamp layouts seen across ERA5 CSV exports.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

func parseDate(field string) (time.Time, bool) {
	field = strings.TrimSpace(field)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadFile opens path and parses the series for country.
func LoadFile(path, country string, opts Options) (*timeseries.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()
	return Load(f, country, opts)
}

// Load parses the series for country from r. Rows with unparseable
// dates are dropped; rows with unparseable values are kept as gaps
// (unless Options.DropGaps). The result is sorted ascending by
// timestamp with duplicate timestamps resolved by keeping the first
// occurrence in file order.
func Load(r io.Reader, country string, opts Options) (*timeseries.Series, error) {
	br := bufio.NewReader(r)
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, &SchemaError{Msg: fmt.Sprintf("input ended inside the %d-line preamble", opts.SkipRows)}
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &SchemaError{Msg: "missing header row"}
	}

	dateCol, valueCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			dateCol = i
		case country:
			valueCol = i
		}
	}
	if dateCol < 0 {
		return nil, &SchemaError{Column: "Date", Msg: "not found in header"}
	}
	if valueCol < 0 {
		return nil, &SchemaError{Column: country, Msg: "not found in header"}
	}

	type row struct {
		t time.Time
		v float64
	}
	var rows []row

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line; recover row-locally like any other
			// unparseable row.
			continue
		}
		if dateCol >= len(record) || valueCol >= len(record) {
			continue
		}

		t, ok := parseDate(record[dateCol])
		if !ok {
			continue
		}

		v := timeseries.Missing
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(record[valueCol]), 64); err == nil {
			v = parsed
		}
		if timeseries.IsMissing(v) && opts.DropGaps {
			continue
		}
		rows = append(rows, row{t: t, v: v})
	}

	// Stable sort keeps file order among equal timestamps, so the
	// dedupe below keeps the first occurrence.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].t.Before(rows[j].t) })

	s := &timeseries.Series{Country: country}
	for _, rw := range rows {
		if n := len(s.Times); n > 0 && s.Times[n-1].Equal(rw.t) {
			continue
		}
		s.Times = append(s.Times, rw.t)
		s.Values = append(s.Values, rw.v)
	}
	return s, nil
}
