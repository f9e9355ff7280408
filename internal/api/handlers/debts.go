package handlers

import (
	"net/http"
	"time"

	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/services"
)

// DebtHandler serves the client-debts page.
type DebtHandler struct {
	Tabs *services.Tables

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (h *DebtHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Handle dispatches /debts: list with overdue hints, or add a new debt.
func (h *DebtHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	default:
		methodNotAllowed(w, r, "GET, POST")
	}
}

func (h *DebtHandler) list(w http.ResponseWriter, r *http.Request) {
	t := h.Tabs.Snapshot(domain.TableDebts)
	now := h.now()

	res := dto.ListDebtsResponse{Debts: make([]dto.DebtResponse, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		d := domain.DebtFromRow(t, i)
		res.Debts = append(res.Debts, dto.DebtResponse{
			Client:       d.Client,
			Organization: d.Organization,
			Amount:       d.Amount,
			DocumentNo:   d.DocumentNo,
			DueDate:      d.DueDate,
			IssuedBy:     d.IssuedBy,
			Overdue:      services.OverdueDebt(t, i, now),
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DebtHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.DebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Client == "" {
		writeError(w, r, http.StatusBadRequest, "client is required")
		return
	}
	if req.Amount < 0 {
		writeError(w, r, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	err := services.AddDebt(r.Context(), h.Tabs, services.AddDebtRequest{
		Client:       req.Client,
		Organization: req.Organization,
		Amount:       req.Amount,
		DocumentNo:   req.DocumentNo,
		DueDate:      req.DueDate,
		IssuedBy:     req.IssuedBy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"status": "created"})
}

// Reduce serves partial repayment and full closure.
func (h *DebtHandler) Reduce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.ReduceDebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Client == "" {
		writeError(w, r, http.StatusBadRequest, "client is required")
		return
	}

	closed, err := services.ReduceDebt(r.Context(), h.Tabs, services.ReduceDebtRequest{
		Client:     req.Client,
		Amount:     req.Amount,
		CloseFully: req.CloseFully,
		Date:       req.Date,
		ClosedBy:   req.ClosedBy,
		Note:       req.Note,
		ReceiptNo:  req.ReceiptNo,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ReduceDebtResponse{Closed: closed})
}

// Clients serves the distinct client names for the debtor selector.
func (h *DebtHandler) Clients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	t := h.Tabs.Snapshot(domain.TableDebts)
	writeJSON(w, r, http.StatusOK, dto.DebtClientsResponse{
		Clients: t.UniqueValues(domain.ColClient),
	})
}
