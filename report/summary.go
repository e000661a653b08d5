package report

import (
	"sort"
	"time"

	"github.com/couchcryptid/fars-analysis/accident"
	"github.com/couchcryptid/fars-analysis/observability"
)

// SummaryTable is a sparse month-by-year count table. A (month, year)
// combination with no accidents in the data is absent, not zero: grouped
// counting never materializes combinations that do not occur.
type SummaryTable struct {
	// Years lists the distinct successfully loaded years, ascending. These
	// are the table's columns.
	Years []int

	// Counts maps month → year → number of accidents.
	Counts map[int]map[int]int

	// GeneratedAt is the clock time the summary was produced.
	GeneratedAt time.Time
}

// Months returns the months present in the table, ascending.
func (t SummaryTable) Months() []int {
	months := make([]int, 0, len(t.Counts))
	for m := range t.Counts {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

// Count returns the accident count for a month/year combination. The second
// return value is false when the combination is absent from the data, which
// is distinct from a count of zero.
func (t SummaryTable) Count(month, year int) (int, bool) {
	byYear, ok := t.Counts[month]
	if !ok {
		return 0, false
	}
	n, ok := byYear[year]
	return n, ok
}

// Summarizer aggregates reduced per-year rows into a SummaryTable.
type Summarizer struct {
	reader  *Reader
	metrics *observability.Metrics
}

// NewSummarizer creates a Summarizer over the given reader.
func NewSummarizer(reader *Reader, metrics *observability.Metrics) *Summarizer {
	return &Summarizer{reader: reader, metrics: metrics}
}

// Summarize loads the requested years, discards the ones that failed, and
// pivots the surviving rows into a month-by-year count table. When every
// requested year fails it returns accident.ErrNoData. Nothing is cached
// between calls, so repeated calls with the same years yield identical
// tables.
func (s *Summarizer) Summarize(years []any) (SummaryTable, error) {
	results := s.reader.ReadYears(years)

	counts := make(map[int]map[int]int)
	yearSet := make(map[int]struct{})

	loaded := 0
	for _, res := range results {
		if res.Absent() {
			continue
		}
		loaded++
		for _, row := range res.Rows {
			byYear, ok := counts[row.Month]
			if !ok {
				byYear = make(map[int]int)
				counts[row.Month] = byYear
			}
			byYear[row.Year]++
			yearSet[row.Year] = struct{}{}
		}
	}

	if loaded == 0 {
		return SummaryTable{}, accident.ErrNoData
	}

	loadedYears := make([]int, 0, len(yearSet))
	for y := range yearSet {
		loadedYears = append(loadedYears, y)
	}
	sort.Ints(loadedYears)

	s.metrics.SummariesGenerated.Inc()

	return SummaryTable{
		Years:       loadedYears,
		Counts:      counts,
		GeneratedAt: accident.Now(),
	}, nil
}
