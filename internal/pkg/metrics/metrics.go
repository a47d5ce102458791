// Package metrics registers the application's Prometheus collectors.
// The registry is the default one; the router exposes it on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PunchIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_attendance_punch_ins_total",
		Help: "Punch-in attempts by outcome.",
	}, []string{"outcome"})

	PunchOuts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_attendance_punch_outs_total",
		Help: "Punch-out attempts by outcome.",
	}, []string{"outcome"})

	LeaveSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_leave_submissions_total",
		Help: "Leave requests submitted, by leave type.",
	}, []string{"leave_type"})

	LeaveReviews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_leave_reviews_total",
		Help: "Leave review decisions recorded.",
	}, []string{"decision"})

	LetterDrafts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_letter_drafts_total",
		Help: "Leave letter drafting calls by outcome.",
	}, []string{"outcome"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hrms_http_request_duration_seconds",
		Help:    "HTTP request latency by method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request latency. It sits outside the router's
// logger so /metrics itself is still counted.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		httpDuration.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Observe(time.Since(start).Seconds())
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

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
