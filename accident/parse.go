package accident

import (
	"strconv"
	"strings"
)

// RecordFromRow builds a Record from a header-aligned CSV row. Rows shorter
// than the header simply omit the trailing columns; unparseable numeric
// fields are treated as unrecorded rather than errors, matching the source
// data's loose conventions.
func RecordFromRow(year int, columns, row []string) Record {
	fields := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(row) {
			fields[col] = row[i]
		}
	}

	rec := Record{
		State:  parseIntOrZero(fields[ColState]),
		Month:  parseIntOrZero(fields[ColMonth]),
		Year:   year,
		Fields: fields,
	}
	if v, ok := parseFloatField(fields[ColLatitude]); ok {
		rec.Latitude = &v
	}
	if v, ok := parseFloatField(fields[ColLongitude]); ok {
		rec.Longitude = &v
	}
	return rec
}

// parseIntOrZero parses a string as an int, returning 0 on failure.
func parseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// parseFloatField parses a string as float64, reporting whether a value was present.
func parseFloatField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
