package accident

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{"STATE", "ST_CASE", "MONTH", "DAY", "YEAR", "LATITUDE", "LONGITUD"}

func TestRecordFromRow(t *testing.T) {
	row := []string{"1", "10001", "3", "15", "2013", "32.6410", "-85.3550"}
	rec := RecordFromRow(2013, testColumns, row)

	assert.Equal(t, 1, rec.State)
	assert.Equal(t, 3, rec.Month)
	assert.Equal(t, 2013, rec.Year)
	require.NotNil(t, rec.Latitude)
	assert.Equal(t, 32.6410, *rec.Latitude)
	require.NotNil(t, rec.Longitude)
	assert.Equal(t, -85.3550, *rec.Longitude)

	// Unmodeled columns stay reachable through Fields.
	assert.Equal(t, "10001", rec.Fields["ST_CASE"])
	assert.Equal(t, "15", rec.Fields["DAY"])
}

func TestRecordFromRow_ShortRow(t *testing.T) {
	rec := RecordFromRow(2013, testColumns, []string{"6", "10002", "7"})

	assert.Equal(t, 6, rec.State)
	assert.Equal(t, 7, rec.Month)
	assert.Nil(t, rec.Latitude)
	assert.Nil(t, rec.Longitude)
	_, ok := rec.Fields["LATITUDE"]
	assert.False(t, ok)
}

func TestRecordFromRow_UnparseableNumerics(t *testing.T) {
	rec := RecordFromRow(2013, testColumns, []string{"x", "10003", "", "1", "2013", "n/a", ""})

	assert.Equal(t, 0, rec.State)
	assert.Equal(t, 0, rec.Month)
	assert.Nil(t, rec.Latitude)
	assert.Nil(t, rec.Longitude)
}

func TestSanitizedCoordinates(t *testing.T) {
	lat := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		record  Record
		wantLat *float64
		wantLon *float64
	}{
		{
			name:    "valid coordinates pass through",
			record:  Record{Latitude: lat(32.64), Longitude: lat(-85.35)},
			wantLat: lat(32.64),
			wantLon: lat(-85.35),
		},
		{
			name:    "sentinel latitude nulled",
			record:  Record{Latitude: lat(99.9999), Longitude: lat(-85.35)},
			wantLat: nil,
			wantLon: lat(-85.35),
		},
		{
			name:    "sentinel longitude nulled",
			record:  Record{Latitude: lat(32.64), Longitude: lat(999.9999)},
			wantLat: lat(32.64),
			wantLon: nil,
		},
		{
			name:    "both sentinels nulled",
			record:  Record{Latitude: lat(99.9999), Longitude: lat(999.9999)},
			wantLat: nil,
			wantLon: nil,
		},
		{
			name:    "boundary values are valid",
			record:  Record{Latitude: lat(90.0), Longitude: lat(900.0)},
			wantLat: lat(90.0),
			wantLon: lat(900.0),
		},
		{
			name:    "absent coordinates stay absent",
			record:  Record{},
			wantLat: nil,
			wantLon: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLat, gotLon := tt.record.SanitizedCoordinates()
			if tt.wantLat == nil {
				assert.Nil(t, gotLat)
			} else {
				require.NotNil(t, gotLat)
				assert.Equal(t, *tt.wantLat, *gotLat)
			}
			if tt.wantLon == nil {
				assert.Nil(t, gotLon)
			} else {
				require.NotNil(t, gotLon)
				assert.Equal(t, *tt.wantLon, *gotLon)
			}
		})
	}
}

func TestNewTable_StampsClock(t *testing.T) {
	frozen := time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	table := NewTable(2013, testColumns, nil)

	assert.Equal(t, 2013, table.Year)
	assert.Equal(t, frozen, table.LoadedAt)
}

func TestTable_HasState(t *testing.T) {
	table := NewTable(2013, testColumns, []Record{{State: 1}, {State: 6}})

	assert.True(t, table.HasState(1))
	assert.True(t, table.HasState(6))
	assert.False(t, table.HasState(999))
}
