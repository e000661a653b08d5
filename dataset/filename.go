// Package dataset reads yearly FARS accident files from a data directory.
package dataset

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/couchcryptid/fars-analysis/accident"
)

// filenameRe matches the canonical yearly accident file name and captures the year.
var filenameRe = regexp.MustCompile(`^accident_(\d+)\.csv(?:\.bz2)?$`)

// BuildFilename maps a year to the canonical accident file name, e.g.
// 2013 → "accident_2013.csv.bz2". The year may be numeric or a string;
// fractional values truncate. No I/O is performed. Fails with
// accident.InvalidYearError when the year is not coercible to an integer.
func BuildFilename(year any) (string, error) {
	y, err := accident.CoerceYear(year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("accident_%d.csv.bz2", y), nil
}

// yearFromFilename extracts the year from a canonical accident file name,
// returning 0 when the name does not follow the pattern.
func yearFromFilename(filename string) int {
	m := filenameRe.FindStringSubmatch(filename)
	if m == nil {
		return 0
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return y
}
