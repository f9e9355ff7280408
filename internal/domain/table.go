package domain

import (
	"strconv"
	"strings"
)

// TableID names one of the five persisted tables.
type TableID string

const (
	TableZones   TableID = "zones"
	TableDebts   TableID = "debts"
	TableHistory TableID = "history"
	TableOrders  TableID = "orders"
	TableTrucks  TableID = "trucks"
)

// AllTables lists every table the store manages, in load order.
var AllTables = []TableID{TableZones, TableDebts, TableHistory, TableOrders, TableTrucks}

// DefaultColumns returns the declared schema for a table.
// The labels are the de facto file contract: renaming one breaks
// compatibility with previously written files.
func DefaultColumns(id TableID) []string {
	switch id {
	case TableZones:
		return []string{ColZoneName, ColZoneID, ColZoneStreets, ColZonePriceGazelle, ColZonePriceValday, ColZonePriceKamaz, ColZoneDistance}
	case TableDebts:
		return []string{ColClient, ColOrganization, ColDebtAmount, ColDocumentNo, ColDueDate, ColIssuedBy}
	case TableHistory:
		return []string{ColClient, ColOrganization, ColOperation, ColAmount, ColOperationDate, ColPerformedBy, ColNotes}
	case TableOrders:
		return []string{ColOrderNo, ColCreatedAt, ColStatus, ColDriver, ColClosedBy, ColCompletedCount}
	case TableTrucks:
		return []string{ColDriver, ColMaxCapacity, ColSideUnloading, ColStatus, ColCompletedOrders}
	}
	return nil
}

// Table is an ordered sequence of uniformly shaped rows under a named
// column schema, backed by a single flat file. Cells are stored as
// strings; numeric reads coerce on access.
type Table struct {
	Columns []string
	Rows    [][]string
}

func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) colIndex(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// Get returns the cell at (row, label). The second return is false when
// the row or label does not exist.
func (t *Table) Get(row int, label string) (string, bool) {
	c := t.colIndex(label)
	if c < 0 || row < 0 || row >= len(t.Rows) || c >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][c], true
}

// Set overwrites the cell at (row, label) and reports whether the
// coordinates were valid.
func (t *Table) Set(row int, label, value string) bool {
	c := t.colIndex(label)
	if c < 0 || row < 0 || row >= len(t.Rows) || c >= len(t.Rows[row]) {
		return false
	}
	t.Rows[row][c] = value
	return true
}

// Float coerces the cell at (row, label) to a float64. Missing cells and
// unparseable values coerce to zero; no stricter validation is applied.
func (t *Table) Float(row int, label string) float64 {
	v, ok := t.Get(row, label)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// Int coerces the cell at (row, label) to an int, zero on failure.
func (t *Table) Int(row int, label string) int {
	v, ok := t.Get(row, label)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// AppendRow appends cells as a new last row, padding or truncating to the
// schema width.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// FindRows returns the indexes of every row whose cell under label equals
// value exactly. Keys are natural, not enforced unique.
func (t *Table) FindRows(label, value string) []int {
	c := t.colIndex(label)
	if c < 0 {
		return nil
	}
	var out []int
	for i, row := range t.Rows {
		if c < len(row) && row[c] == value {
			out = append(out, i)
		}
	}
	return out
}

// DeleteMatching removes every row whose cell under label equals value and
// returns the number of rows removed.
func (t *Table) DeleteMatching(label, value string) int {
	c := t.colIndex(label)
	if c < 0 {
		return 0
	}
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		if c < len(row) && row[c] == value {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed
}

// ReplaceMatching overwrites every row whose cell under label equals value
// with cells. This is full-row replace: fields the caller omitted are lost,
// not preserved. Returns the number of rows replaced.
func (t *Table) ReplaceMatching(label, value string, cells []string) int {
	c := t.colIndex(label)
	if c < 0 {
		return 0
	}
	replaced := 0
	for i, row := range t.Rows {
		if c < len(row) && row[c] == value {
			next := make([]string, len(t.Columns))
			copy(next, cells)
			t.Rows[i] = next
			replaced++
		}
	}
	return replaced
}

// RowString renders a row with its column labels embedded, so a substring
// search can match a label as well as a value.
func (t *Table) RowString(row int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	var b strings.Builder
	for c, label := range t.Columns {
		if c > 0 {
			b.WriteString("; ")
		}
		b.WriteString(label)
		b.WriteString(": ")
		if c < len(t.Rows[row]) {
			b.WriteString(t.Rows[row][c])
		}
	}
	return b.String()
}

// UniqueValues returns the distinct non-empty values under label in
// first-seen order, used to populate selection choices and autocomplete.
func (t *Table) UniqueValues(label string) []string {
	c := t.colIndex(label)
	if c < 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if c >= len(row) {
			continue
		}
		v := row[c]
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy safe to hand across the API boundary.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
