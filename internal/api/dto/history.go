package dto

type HistoryEntryResponse struct {
	Client       string  `json:"client"`
	Organization string  `json:"organization"`
	Operation    string  `json:"operation"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	PerformedBy  string  `json:"performed_by"`
	Notes        string  `json:"notes"`
}

type ListHistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}
