package domain

// Column labels of the history table.
const (
	ColOperation     = "Operation"
	ColAmount        = "Amount"
	ColOperationDate = "Operation Date"
	ColPerformedBy   = "Performed By"
	ColNotes         = "Notes"
)

// Operation kinds written by the debt flows. The column is free text;
// these are the values this system emits.
const (
	OpDebtAdded     = "debt added"
	OpDebtRepayment = "debt repayment"
)

// One append-only ledger entry. Entries are never mutated or deleted once
// written; table order is insertion order.
type HistoryEntry struct {
	Client       string
	Organization string
	Operation    string
	Amount       float64
	Date         string
	PerformedBy  string
	Notes        string
}

func (e HistoryEntry) Row() []string {
	return []string{
		e.Client,
		e.Organization,
		e.Operation,
		FormatNumber(e.Amount),
		e.Date,
		e.PerformedBy,
		e.Notes,
	}
}

func HistoryFromRow(t *Table, row int) HistoryEntry {
	client, _ := t.Get(row, ColClient)
	org, _ := t.Get(row, ColOrganization)
	op, _ := t.Get(row, ColOperation)
	date, _ := t.Get(row, ColOperationDate)
	by, _ := t.Get(row, ColPerformedBy)
	notes, _ := t.Get(row, ColNotes)
	return HistoryEntry{
		Client:       client,
		Organization: org,
		Operation:    op,
		Amount:       t.Float(row, ColAmount),
		Date:         date,
		PerformedBy:  by,
		Notes:        notes,
	}
}
