package accident

import "time"

// Column names from the FARS accident file schema that this library models
// directly. Every other column is carried through in Record.Fields untouched.
const (
	ColState     = "STATE"
	ColMonth     = "MONTH"
	ColLatitude  = "LATITUDE"
	ColLongitude = "LONGITUD"
)

// FARS sentinel thresholds for unrecorded coordinates. A latitude above 90
// or a longitude above 900 means "value not recorded", not a measurement.
const (
	LatitudeSentinel  = 90.0
	LongitudeSentinel = 900.0
)

// Record is one reported traffic accident. State, Month, and Year are parsed
// from the source columns; Latitude and Longitude are nil when the source
// column is absent or not numeric. Fields holds every source column as-is.
type Record struct {
	State     int
	Month     int // 1-12
	Year      int
	Latitude  *float64
	Longitude *float64
	Fields    map[string]string
}

// SanitizedCoordinates returns the record's coordinates with FARS sentinel
// values replaced by nil. The record itself is never modified or dropped;
// sentinel detection happens exactly once, here.
func (r Record) SanitizedCoordinates() (lat, lon *float64) {
	if r.Latitude != nil && *r.Latitude <= LatitudeSentinel {
		v := *r.Latitude
		lat = &v
	}
	if r.Longitude != nil && *r.Longitude <= LongitudeSentinel {
		v := *r.Longitude
		lon = &v
	}
	return lat, lon
}

// Table holds every accident record for a single year. Tables are built fresh
// on every load and never cached or mutated after construction.
type Table struct {
	Year     int
	Columns  []string
	Records  []Record
	LoadedAt time.Time
}

// NewTable constructs a Table and stamps it with the current clock time.
func NewTable(year int, columns []string, records []Record) Table {
	return Table{
		Year:     year,
		Columns:  columns,
		Records:  records,
		LoadedAt: clock.Now(),
	}
}

// HasState reports whether any record in the table carries the given state code.
func (t Table) HasState(code int) bool {
	for _, r := range t.Records {
		if r.State == code {
			return true
		}
	}
	return false
}
