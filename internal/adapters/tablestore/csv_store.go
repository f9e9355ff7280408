package tablestore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dispatch-desk/internal/domain"
)

// CSV-backed implementation of the TableStore port. Each table lives in
// one file under Dir: a header row of column labels followed by data rows.
// Malformed files (wrong schema) are not repaired; behavior on such input
// is undefined by contract.
type CSVStore struct {
	Dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) path(id domain.TableID) string {
	return filepath.Join(s.Dir, string(id)+".csv")
}

// Load reads a table file. A missing file silently yields an empty table
// with the declared default schema.
func (s *CSVStore) Load(ctx context.Context, id domain.TableID) (*domain.Table, error) {
	f, err := os.Open(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewTable(domain.DefaultColumns(id)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load table %s: open %q: %w", id, s.path(id), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load table %s: read csv: %w", id, err)
	}
	if len(records) == 0 {
		return domain.NewTable(domain.DefaultColumns(id)), nil
	}

	t := domain.NewTable(records[0])
	for _, rec := range records[1:] {
		t.AppendRow(rec)
	}
	return t, nil
}

// Save writes the full table, header first, overwriting the prior file.
// On error the caller must not assume anything was persisted.
func (s *CSVStore) Save(ctx context.Context, id domain.TableID, t *domain.Table) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("save table %s: create data dir %q: %w", id, s.Dir, err)
	}

	f, err := os.Create(s.path(id))
	if err != nil {
		return fmt.Errorf("save table %s: create %q: %w", id, s.path(id), err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("save table %s: write header: %w", id, err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("save table %s: write row %d: %w", id, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("save table %s: flush: %w", id, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("save table %s: close %q: %w", id, s.path(id), err)
	}
	return nil
}
