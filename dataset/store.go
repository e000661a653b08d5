package dataset

import (
	"compress/bzip2"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/fars-analysis/accident"
)

// Store loads accident tables from a fixed data directory. Every load reads
// the file fresh; nothing is cached between calls.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// LoadYearTable resolves filename against the store's data directory and
// parses it into a table. Files ending in .bz2 are decompressed on the fly.
// A missing file is an error wrapping fs.ErrNotExist and terminates the call;
// so does any structural CSV error. The table's year is taken from the
// canonical filename pattern when it matches.
func (s *Store) LoadYearTable(filename string) (accident.Table, error) {
	path := filepath.Join(s.dir, filename)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return accident.Table{}, fmt.Errorf("accident data file %s does not exist: %w", path, err)
		}
		return accident.Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		r = bzip2.NewReader(f)
	}

	cr := csv.NewReader(r)
	// FARS exports occasionally ship rows shorter than the header; columns
	// are aligned per row by accident.RecordFromRow.
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return accident.Table{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return accident.Table{}, fmt.Errorf("parse %s: missing header row", path)
	}

	year := yearFromFilename(filename)
	columns := rows[0]
	records := make([]accident.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, accident.RecordFromRow(year, columns, row))
	}

	s.logger.Debug("loaded year table",
		"file", filename,
		"year", year,
		"records", len(records),
	)

	return accident.NewTable(year, columns, records), nil
}
