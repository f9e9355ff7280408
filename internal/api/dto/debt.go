package dto

type DebtRequest struct {
	Client       string  `json:"client"`
	Organization string  `json:"organization"`
	Amount       float64 `json:"amount"`
	DocumentNo   string  `json:"document_no"`
	DueDate      string  `json:"due_date"`
	IssuedBy     string  `json:"issued_by"`
}

type ReduceDebtRequest struct {
	Client     string  `json:"client"`
	Amount     float64 `json:"amount"`
	CloseFully bool    `json:"close_fully"`
	Date       string  `json:"date"`
	ClosedBy   string  `json:"closed_by"`
	Note       string  `json:"note"`
	ReceiptNo  string  `json:"receipt_no"`
}

type ReduceDebtResponse struct {
	Closed bool `json:"closed"`
}

type DebtResponse struct {
	Client       string  `json:"client"`
	Organization string  `json:"organization"`
	Amount       float64 `json:"amount"`
	DocumentNo   string  `json:"document_no"`
	DueDate      string  `json:"due_date"`
	IssuedBy     string  `json:"issued_by"`
	Overdue      bool    `json:"overdue"`
}

type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

type DebtClientsResponse struct {
	Clients []string `json:"clients"`
}
