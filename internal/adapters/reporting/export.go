package reporting

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dispatch-desk/internal/domain"
)

// Exporter pushes the flat table files into a SQL database for ad-hoc
// reporting. Each export replaces the prior snapshot wholesale, matching
// the full-overwrite semantics of the file store.
type Exporter struct {
	DB *sql.DB

	// Driver is "pgx" or "sqlite"; it only decides placeholder syntax.
	Driver string
}

func NewExporter(db *sql.DB, driver string) *Exporter {
	return &Exporter{DB: db, Driver: driver}
}

// InitSchema creates the five reporting tables. Column names are the
// file column labels, quoted; every column is TEXT since cells are
// stored untyped.
func (e *Exporter) InitSchema() error {
	if e.DB == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := e.DB.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range domain.AllTables {
		cols := make([]string, 0, len(domain.DefaultColumns(id)))
		for _, label := range domain.DefaultColumns(id) {
			cols = append(cols, quoteIdent(label)+" TEXT")
		}
		stmt := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (%s);",
			string(id), strings.Join(cols, ", "),
		)
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: create %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}

// Export replaces the reporting snapshot of one table with the rows of t.
// The target table's columns must match t's; exporting a file with a
// drifted header fails rather than being silently repaired.
func (e *Exporter) Export(id domain.TableID, t *domain.Table) error {
	if e.DB == nil {
		return errors.New("export table: DB is nil")
	}

	tx, err := e.DB.Begin()
	if err != nil {
		return fmt.Errorf("export %s: begin tx: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s;", string(id))); err != nil {
		return fmt.Errorf("export %s: clear prior snapshot: %w", id, err)
	}

	cols := make([]string, 0, len(t.Columns))
	for _, label := range t.Columns {
		cols = append(cols, quoteIdent(label))
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		string(id), strings.Join(cols, ", "), e.placeholders(len(t.Columns)),
	)

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("export %s: prepare insert: %w", id, err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		args := make([]any, len(t.Columns))
		for c := range t.Columns {
			if c < len(row) {
				args[c] = row[c]
			} else {
				args[c] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("export %s: insert row %d: %w", id, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export %s: commit tx: %w", id, err)
	}
	return nil
}

// placeholders renders the VALUES placeholder list for the driver:
// $1..$n for postgres, ?..? for sqlite.
func (e *Exporter) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if e.Driver == "pgx" {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

func quoteIdent(label string) string {
	return `"` + strings.ReplaceAll(label, `"`, `""`) + `"`
}
