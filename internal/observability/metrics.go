package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Import run metrics, labeled by mode ("live" or "dry_run").
var (
	ImportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sportsite_import_runs_total",
		Help: "Completed roster import runs.",
	}, []string{"mode"})

	ImportPlayersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sportsite_import_players_created_total",
		Help: "Players created by roster imports.",
	})

	ImportPlayersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sportsite_import_players_updated_total",
		Help: "Players updated by roster imports.",
	})

	ImportPhotosAttached = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sportsite_import_photos_attached_total",
		Help: "Photos attached by roster imports.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sportsite_http_requests_total",
		Help: "HTTP requests by method and status.",
	}, []string{"method", "status"})

	httpDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sportsite_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordImport updates the import counters from one finished run.
func RecordImport(dryRun bool, created, updated, photosAttached int) {
	mode := "live"
	if dryRun {
		mode = "dry_run"
	}
	ImportRuns.WithLabelValues(mode).Inc()
	if dryRun {
		return
	}
	ImportPlayersCreated.Add(float64(created))
	ImportPlayersUpdated.Add(float64(updated))
	ImportPhotosAttached.Add(float64(photosAttached))
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// HTTPMetrics is chi middleware recording request counts and latency.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		httpRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		httpDuration.Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
