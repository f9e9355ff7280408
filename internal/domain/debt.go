package domain

// Column labels shared by the debts and history tables.
const (
	ColClient       = "Client"
	ColOrganization = "Organization"
)

// Column labels of the debts table.
const (
	ColDebtAmount = "Debt Amount"
	ColDocumentNo = "Document No"
	ColDueDate    = "Due Date"
	ColIssuedBy   = "Issued By"
)

// DateLayout is the on-file format for due dates and operation dates.
const DateLayout = "2006-01-02"

// An outstanding client debt. A debt row is removed from the table once
// its amount reaches exactly zero through reduction.
type Debt struct {
	Client       string
	Organization string
	Amount       float64
	DocumentNo   string
	DueDate      string
	IssuedBy     string
}

func (d Debt) Row() []string {
	return []string{
		d.Client,
		d.Organization,
		FormatNumber(d.Amount),
		d.DocumentNo,
		d.DueDate,
		d.IssuedBy,
	}
}

func DebtFromRow(t *Table, row int) Debt {
	client, _ := t.Get(row, ColClient)
	org, _ := t.Get(row, ColOrganization)
	doc, _ := t.Get(row, ColDocumentNo)
	due, _ := t.Get(row, ColDueDate)
	issuer, _ := t.Get(row, ColIssuedBy)
	return Debt{
		Client:       client,
		Organization: org,
		Amount:       t.Float(row, ColDebtAmount),
		DocumentNo:   doc,
		DueDate:      due,
		IssuedBy:     issuer,
	}
}
