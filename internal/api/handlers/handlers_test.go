package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch-desk/internal/adapters/tablestore"
	"dispatch-desk/internal/api/dto"
	"dispatch-desk/internal/services"
)

func newTestTables(t *testing.T) *services.Tables {
	t.Helper()
	tabs, err := services.LoadTables(context.Background(), tablestore.NewMemStore())
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	return tabs
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	h(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}
}

func TestZonesAddListSearch(t *testing.T) {
	h := &ZoneHandler{Tabs: newTestTables(t)}

	rr := postJSON(t, h.Handle, "/zones", dto.ZoneRequest{Name: "North", PriceValday: 500})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add zone: got %d: %s", rr.Code, rr.Body.String())
	}
	rr = postJSON(t, h.Handle, "/zones", dto.ZoneRequest{Name: "South", PriceValday: 300})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add zone: got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.Handle(rr, httptest.NewRequest(http.MethodGet, "/zones", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list zones: got %d", rr.Code)
	}
	var list dto.ListZonesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(list.Zones))
	}

	// Substring search hits the price column label.
	rr = httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/zones/search?q=valday", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("search: got %d", rr.Code)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(list.Zones) != 2 {
		t.Fatalf("search matches = %d, want 2", len(list.Zones))
	}
}

func TestZonesDeleteUnknownIs404(t *testing.T) {
	h := &ZoneHandler{Tabs: newTestTables(t)}
	rr := httptest.NewRecorder()
	h.Handle(rr, httptest.NewRequest(http.MethodDelete, "/zones?name=absent", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("delete unknown zone: got %d, want 404", rr.Code)
	}
}

func TestDebtReduceFlow(t *testing.T) {
	tabs := newTestTables(t)
	h := &DebtHandler{Tabs: tabs}

	rr := postJSON(t, h.Handle, "/debts", dto.DebtRequest{Client: "Ivanov", Amount: 1000})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add debt: got %d: %s", rr.Code, rr.Body.String())
	}

	rr = postJSON(t, h.Reduce, "/debts/reduce", dto.ReduceDebtRequest{Client: "Ivanov", Amount: 1000})
	if rr.Code != http.StatusOK {
		t.Fatalf("reduce: got %d: %s", rr.Code, rr.Body.String())
	}
	var res dto.ReduceDebtResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Closed {
		t.Error("full reduction did not report closed")
	}

	// Over-reduction of a missing debt is a 404 now.
	rr = postJSON(t, h.Reduce, "/debts/reduce", dto.ReduceDebtRequest{Client: "Ivanov", Amount: 1})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("reduce after closure: got %d, want 404", rr.Code)
	}
}

func TestDebtReduceTooLargeIs400(t *testing.T) {
	tabs := newTestTables(t)
	h := &DebtHandler{Tabs: tabs}

	postJSON(t, h.Handle, "/debts", dto.DebtRequest{Client: "Ivanov", Amount: 100})
	rr := postJSON(t, h.Reduce, "/debts/reduce", dto.ReduceDebtRequest{Client: "Ivanov", Amount: 500})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("over-reduction: got %d, want 400", rr.Code)
	}
}

func TestTruckStatusGateIs409(t *testing.T) {
	tabs := newTestTables(t)
	trucks := &TruckHandler{Tabs: tabs}
	orders := &OrderHandler{Tabs: tabs}

	rr := postJSON(t, trucks.Handle, "/trucks", dto.TruckRequest{Driver: "Sidorov", Status: "Free"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add truck: got %d: %s", rr.Code, rr.Body.String())
	}
	rr = postJSON(t, orders.Handle, "/orders", dto.OrderRequest{Number: "101", Status: "Pending", Driver: "Sidorov"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add order: got %d: %s", rr.Code, rr.Body.String())
	}

	rr = postJSON(t, trucks.Status, "/trucks/status", dto.TruckStatusRequest{Driver: "Sidorov", Status: "Free"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("gated edit: got %d, want 409", rr.Code)
	}

	rr = postJSON(t, orders.Status, "/orders/status", dto.OrderStatusRequest{Number: "101", Status: "Completed"})
	if rr.Code != http.StatusOK {
		t.Fatalf("complete order: got %d", rr.Code)
	}
	rr = postJSON(t, trucks.Status, "/trucks/status", dto.TruckStatusRequest{Driver: "Sidorov", Status: "Free"})
	if rr.Code != http.StatusOK {
		t.Fatalf("edit after completion: got %d, want 200", rr.Code)
	}
}

func TestOrderBadStatusIs400(t *testing.T) {
	h := &OrderHandler{Tabs: newTestTables(t)}
	rr := postJSON(t, h.Handle, "/orders", dto.OrderRequest{Number: "101", Status: "Teleported", Driver: "x"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad status: got %d, want 400", rr.Code)
	}
}
