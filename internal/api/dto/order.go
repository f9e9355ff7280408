package dto

type OrderRequest struct {
	Number   string `json:"number"`
	Status   string `json:"status"`
	Driver   string `json:"driver"`
	ClosedBy string `json:"closed_by"`
}

type OrderStatusRequest struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

type OrderResponse struct {
	Number         string `json:"number"`
	CreatedAt      string `json:"created_at"`
	Status         string `json:"status"`
	StatusColor    string `json:"status_color,omitempty"`
	Driver         string `json:"driver"`
	ClosedBy       string `json:"closed_by"`
	CompletedCount int    `json:"completed_count"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
