// Package report derives month-by-year accident counts from yearly tables.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fars-analysis/dataset"
	"github.com/couchcryptid/fars-analysis/observability"
)

// ReducedRow is an accident record projected down to the two fields needed
// for monthly counting.
type ReducedRow struct {
	Month int
	Year  int
}

// YearResult is the outcome of loading one requested year. A failed year
// keeps its slot with Err set instead of aborting the whole request.
type YearResult struct {
	Requested any // the year value exactly as the caller supplied it
	Rows      []ReducedRow
	Err       error
}

// Absent reports whether this year failed to load.
func (r YearResult) Absent() bool {
	return r.Err != nil
}

// Reader loads a set of years and reduces each to (month, year) rows.
type Reader struct {
	store   *dataset.Store
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewReader creates a Reader over the given store.
func NewReader(store *dataset.Store, logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{store: store, logger: logger, metrics: metrics}
}

// ReadYears loads each requested year independently. The result has one slot
// per input year in input order; a year that fails to build a filename, load,
// or parse gets an absent slot and a warning naming it, and processing
// continues with the remaining years.
func (r *Reader) ReadYears(years []any) []YearResult {
	results := make([]YearResult, len(years))
	for i, year := range years {
		results[i] = YearResult{Requested: year}

		rows, err := r.readYear(year)
		if err != nil {
			r.logger.Warn("skipping year",
				"year", fmt.Sprint(year),
				"error", err,
			)
			r.metrics.YearLoadFailures.Inc()
			results[i].Err = err
			continue
		}
		results[i].Rows = rows
	}
	return results
}

// readYear loads one year's table and projects it down to ReducedRows, each
// annotated with the table's year.
func (r *Reader) readYear(year any) ([]ReducedRow, error) {
	filename, err := dataset.BuildFilename(year)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := r.store.LoadYearTable(filename)
	if err != nil {
		return nil, err
	}
	r.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	r.metrics.TablesLoaded.Inc()
	r.metrics.RecordsParsed.Add(float64(len(table.Records)))

	rows := make([]ReducedRow, len(table.Records))
	for i, rec := range table.Records {
		rows[i] = ReducedRow{Month: rec.Month, Year: table.Year}
	}
	return rows, nil
}
