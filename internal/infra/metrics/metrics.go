// Package metrics provides Prometheus metrics for Mugshot: visit activity,
// badge unlock state, and HTTP request instrumentation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Visits ─────────────────────────────────────────────────────────────────

// VisitsLogged tracks visits recorded, by drink type.
var VisitsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mugshot",
	Name:      "visits_logged_total",
	Help:      "Total cafe visits recorded.",
}, []string{"drink"})

// VisitsDeleted tracks visits removed.
var VisitsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mugshot",
	Name:      "visits_deleted_total",
	Help:      "Total cafe visits deleted.",
})

// ─── Badges ─────────────────────────────────────────────────────────────────

// BadgesUnlocked tracks the unlocked badge count from the latest evaluation.
var BadgesUnlocked = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "mugshot",
	Name:      "badges_unlocked",
	Help:      "Unlocked badges as of the most recent evaluation.",
})

// BadgeEvaluations tracks how many times the badge engine has run.
var BadgeEvaluations = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mugshot",
	Name:      "badge_evaluations_total",
	Help:      "Total badge engine evaluations.",
})

// ─── HTTP ───────────────────────────────────────────────────────────────────

// RequestsTotal tracks HTTP requests by method, path pattern, and status.
var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mugshot",
	Name:      "http_requests_total",
	Help:      "Total HTTP requests served.",
}, []string{"method", "path", "status"})

// RequestDuration tracks HTTP request duration in seconds.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "mugshot",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "path"})

// Middleware instruments an HTTP handler with request count and duration.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		RequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
		RequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
