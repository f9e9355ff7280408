package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dispatch-desk/internal/api/handlers"
	"dispatch-desk/internal/platform/metrics"
	"dispatch-desk/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of the concrete table store behind Tables.
func NewRouter(tabs *services.Tables) http.Handler {
	mux := http.NewServeMux()

	zoneHandler := &handlers.ZoneHandler{Tabs: tabs}
	debtHandler := &handlers.DebtHandler{Tabs: tabs}
	historyHandler := &handlers.HistoryHandler{Tabs: tabs}
	orderHandler := &handlers.OrderHandler{Tabs: tabs}
	truckHandler := &handlers.TruckHandler{Tabs: tabs}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/zones", zoneHandler.Handle)
	mux.HandleFunc("/zones/search", zoneHandler.Search)
	mux.HandleFunc("/zones/suggest", zoneHandler.Suggest)

	mux.HandleFunc("/debts", debtHandler.Handle)
	mux.HandleFunc("/debts/reduce", debtHandler.Reduce)
	mux.HandleFunc("/debts/clients", debtHandler.Clients)

	mux.HandleFunc("/history", historyHandler.List)

	mux.HandleFunc("/orders", orderHandler.Handle)
	mux.HandleFunc("/orders/status", orderHandler.Status)

	mux.HandleFunc("/trucks", truckHandler.Handle)
	mux.HandleFunc("/trucks/status", truckHandler.Status)

	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
