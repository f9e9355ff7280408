package handlers

import (
	"net/http"

	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/services"
)

// TruckHandler serves the truck roster page.
type TruckHandler struct {
	Tabs *services.Tables
}

// Handle dispatches /trucks: list, add, full-row edit, delete.
func (h *TruckHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

func (h *TruckHandler) list(w http.ResponseWriter, r *http.Request) {
	t := h.Tabs.Snapshot(domain.TableTrucks)
	res := dto.ListTrucksResponse{Trucks: make([]dto.TruckResponse, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		tr := domain.TruckFromRow(t, i)
		res.Trucks = append(res.Trucks, dto.TruckResponse{
			Driver:          tr.Driver,
			MaxCapacity:     tr.MaxCapacity,
			SideUnloading:   tr.SideUnloading,
			Status:          tr.Status,
			StatusColor:     services.StatusColor(tr.Status),
			CompletedOrders: tr.CompletedOrders,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *TruckHandler) add(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTruck(w, r)
	if !ok {
		return
	}

	if err := services.AddTruck(r.Context(), h.Tabs, req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *TruckHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTruckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Driver == "" {
		writeError(w, r, http.StatusBadRequest, "driver is required")
		return
	}
	status, err := domain.ParseTruckStatus(req.Truck.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.TruckRequest{
		Driver:        req.Truck.Driver,
		MaxCapacity:   req.Truck.MaxCapacity,
		SideUnloading: req.Truck.SideUnloading,
		Status:        status,
	}
	if err := services.UpdateTruck(r.Context(), h.Tabs, req.Driver, svcReq); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *TruckHandler) delete(w http.ResponseWriter, r *http.Request) {
	driver := r.URL.Query().Get("driver")
	if driver == "" {
		writeError(w, r, http.StatusBadRequest, "driver query parameter is required")
		return
	}

	if err := services.DeleteTruck(r.Context(), h.Tabs, driver); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Status serves the dedicated truck status editor, gated on active
// orders: 409 when the driver has orders Pending or InTransit.
func (h *TruckHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.TruckStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	status, err := domain.ParseTruckStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.SetTruckStatus(r.Context(), h.Tabs, req.Driver, status); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *TruckHandler) decodeTruck(w http.ResponseWriter, r *http.Request) (services.TruckRequest, bool) {
	var req dto.TruckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return services.TruckRequest{}, false
	}
	if req.Driver == "" {
		writeError(w, r, http.StatusBadRequest, "driver is required")
		return services.TruckRequest{}, false
	}
	status, err := domain.ParseTruckStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return services.TruckRequest{}, false
	}

	return services.TruckRequest{
		Driver:        req.Driver,
		MaxCapacity:   req.MaxCapacity,
		SideUnloading: req.SideUnloading,
		Status:        status,
	}, true
}
