package services

import (
	"strings"

	"dispatch-desk/internal/domain"
)

// Search returns the rows whose stringified representation contains the
// query, case-insensitively, in their original order. Row strings embed
// column labels, so a query may match a label ("valday") as well as a
// cell value. Linear scan; the tables hold hundreds of rows at most.
func Search(t *domain.Table, query string) *domain.Table {
	q := strings.ToLower(query)
	out := domain.NewTable(t.Columns)
	for i := range t.Rows {
		if strings.Contains(strings.ToLower(t.RowString(i)), q) {
			out.AppendRow(t.Rows[i])
		}
	}
	return out
}
