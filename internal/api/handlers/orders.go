package handlers

import (
	"net/http"
	"time"

	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/services"
)

// OrderHandler serves the order manager page.
type OrderHandler struct {
	Tabs *services.Tables

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (h *OrderHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Handle dispatches /orders: list, add, delete.
func (h *OrderHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		methodNotAllowed(w, r, "GET, POST, DELETE")
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	t := h.Tabs.Snapshot(domain.TableOrders)
	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		o := domain.OrderFromRow(t, i)
		res.Orders = append(res.Orders, dto.OrderResponse{
			Number:         o.Number,
			CreatedAt:      o.CreatedAt,
			Status:         string(o.Status),
			StatusColor:    services.StatusColor(string(o.Status)),
			Driver:         o.Driver,
			ClosedBy:       o.ClosedBy,
			CompletedCount: o.CompletedCount,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Number == "" {
		writeError(w, r, http.StatusBadRequest, "number is required")
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	err = services.AddOrder(r.Context(), h.Tabs, services.AddOrderRequest{
		Number:   req.Number,
		Status:   status,
		Driver:   req.Driver,
		ClosedBy: req.ClosedBy,
	}, h.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		writeError(w, r, http.StatusBadRequest, "number query parameter is required")
		return
	}

	if err := services.DeleteOrder(r.Context(), h.Tabs, number); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Status serves order status transitions, with the completed-count and
// truck side effects applied by the service.
func (h *OrderHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.OrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.SetOrderStatus(r.Context(), h.Tabs, req.Number, status); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}
