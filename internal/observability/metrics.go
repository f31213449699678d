package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_http_requests_total",
			Help: "Total HTTP requests by status code",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "adpilot_http_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	ActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_campaign_actions_total",
			Help: "Campaign lifecycle actions by action and outcome",
		}, []string{"action", "outcome"},
	)
	PollTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_poll_ticks_total",
			Help: "Status poller ticks by result",
		}, []string{"result"},
	)
	AlertsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_alerts_emitted_total",
			Help: "Alerts emitted by rule",
		}, []string{"rule"},
	)
	PollersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "adpilot_pollers_active",
		Help: "Currently armed status pollers",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, Latency, ActionsTotal, PollTicks, AlertsEmitted, PollersActive)
}

func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Measure is HTTP middleware recording request counts and latency.
func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)
		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rr.code)).Inc()
	})
}
