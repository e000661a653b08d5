package dataset

import (
	"testing"

	"github.com/couchcryptid/fars-analysis/accident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilename(t *testing.T) {
	tests := []struct {
		name     string
		year     any
		expected string
	}{
		{"integer year", 2013, "accident_2013.csv.bz2"},
		{"string year", "2013", "accident_2013.csv.bz2"},
		{"fractional year truncates", 2013.9, "accident_2013.csv.bz2"},
		{"fractional string truncates", "2013.9", "accident_2013.csv.bz2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildFilename(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildFilename_InvalidYear(t *testing.T) {
	_, err := BuildFilename("abc")

	var invalid accident.InvalidYearError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "abc")
}

func TestYearFromFilename(t *testing.T) {
	assert.Equal(t, 2013, yearFromFilename("accident_2013.csv.bz2"))
	assert.Equal(t, 2015, yearFromFilename("accident_2015.csv"))
	assert.Equal(t, 0, yearFromFilename("somefile.csv"))
	assert.Equal(t, 0, yearFromFilename("accident_.csv.bz2"))
}
