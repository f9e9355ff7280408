package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path"},
	)

	TableSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "table_saves_total", Help: "Full-file table writes by table."},
		[]string{"table"},
	)

	TableSaveErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "table_save_errors_total", Help: "Failed table writes by table."},
		[]string{"table"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		TableSaves,
		TableSaveErrors,
	)
}
