package handlers

import (
	"net/http"

	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/services"
)

// ZoneHandler serves the delivery-zone pricing page.
type ZoneHandler struct {
	Tabs *services.Tables
}

// Handle dispatches /zones by method: list, add, full-row edit, delete.
func (h *ZoneHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		methodNotAllowed(w, r, "GET, POST, PUT, DELETE")
	}
}

func (h *ZoneHandler) list(w http.ResponseWriter, r *http.Request) {
	t := h.Tabs.Snapshot(domain.TableZones)
	writeJSON(w, r, http.StatusOK, zonesResponse(t))
}

func (h *ZoneHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.ZoneRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	if err := services.AddZone(r.Context(), h.Tabs, zoneFromRequest(req)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *ZoneHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateZoneRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	if err := services.UpdateZone(r.Context(), h.Tabs, req.Name, zoneFromRequest(req.Zone)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ZoneHandler) delete(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name query parameter is required")
		return
	}

	if err := services.DeleteZone(r.Context(), h.Tabs, name); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Search serves the zone lookup: case-insensitive substring match over
// the stringified rows.
func (h *ZoneHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query().Get("q")
	t := services.Search(h.Tabs.Snapshot(domain.TableZones), q)
	writeJSON(w, r, http.StatusOK, zonesResponse(t))
}

// Suggest serves the autocomplete options for the lookup field.
func (h *ZoneHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	t := h.Tabs.Snapshot(domain.TableZones)
	writeJSON(w, r, http.StatusOK, dto.ZoneSuggestionsResponse{
		Suggestions: services.ZoneSuggestions(t),
	})
}

func zoneFromRequest(req dto.ZoneRequest) domain.Zone {
	return domain.Zone{
		Name:         req.Name,
		ID:           req.ZoneID,
		Streets:      req.Streets,
		PriceGazelle: req.PriceGazelle,
		PriceValday:  req.PriceValday,
		PriceKamaz:   req.PriceKamaz,
		AvgDistance:  req.AvgDistance,
	}
}

func zonesResponse(t *domain.Table) dto.ListZonesResponse {
	res := dto.ListZonesResponse{Zones: make([]dto.ZoneResponse, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		z := domain.ZoneFromRow(t, i)
		res.Zones = append(res.Zones, dto.ZoneResponse{
			Name:         z.Name,
			ZoneID:       z.ID,
			Streets:      z.Streets,
			PriceGazelle: z.PriceGazelle,
			PriceValday:  z.PriceValday,
			PriceKamaz:   z.PriceKamaz,
			AvgDistance:  z.AvgDistance,
		})
	}
	return res
}
