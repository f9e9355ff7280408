package handlers

import (
	"net/http"

	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/services"
)

// HistoryHandler serves the read-only operation history page.
type HistoryHandler struct {
	Tabs *services.Tables
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	t := h.Tabs.Snapshot(domain.TableHistory)
	res := dto.ListHistoryResponse{Entries: make([]dto.HistoryEntryResponse, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		e := domain.HistoryFromRow(t, i)
		res.Entries = append(res.Entries, dto.HistoryEntryResponse{
			Client:       e.Client,
			Organization: e.Organization,
			Operation:    e.Operation,
			Amount:       e.Amount,
			Date:         e.Date,
			PerformedBy:  e.PerformedBy,
			Notes:        e.Notes,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}
