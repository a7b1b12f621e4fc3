// Package metrics holds the prometheus collectors shared by services
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketwatch"

// KPI counts and times payload builds
// a nil *KPI is a no op so services can run without a registry
type KPI struct {
	Builds       *prometheus.CounterVec
	BuildSeconds *prometheus.HistogramVec
	ViewEvents   *prometheus.CounterVec
}

// NewKPI registers the kpi collectors on reg
func NewKPI(reg prometheus.Registerer) *KPI {
	f := promauto.With(reg)
	return &KPI{
		Builds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kpi_builds_total",
			Help:      "KPI payloads built by tab and mode",
		}, []string{"tab", "mode"}),
		BuildSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kpi_build_seconds",
			Help:      "Time spent building a KPI payload",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005, 0.025},
		}, []string{"tab"}),
		ViewEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kpi_view_events_total",
			Help:      "View events recorded by outcome",
		}, []string{"outcome"}),
	}
}

// Observe records one successful build
func (k *KPI) Observe(tab, mode string, d time.Duration) {
	if k == nil {
		return
	}
	k.Builds.WithLabelValues(tab, mode).Inc()
	k.BuildSeconds.WithLabelValues(tab).Observe(d.Seconds())
}

// ViewEvent records the outcome of a view event write: ok, fail or dropped
func (k *KPI) ViewEvent(outcome string) {
	if k == nil {
		return
	}
	k.ViewEvents.WithLabelValues(outcome).Inc()
}

// HTTP counts requests by method and status
type HTTP struct {
	Requests *prometheus.CounterVec
}

// NewHTTP registers the http collectors on reg
func NewHTTP(reg prometheus.Registerer) *HTTP {
	return &HTTP{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status",
		}, []string{"method", "status"}),
	}
}

// Middleware counts every request once the handler returns
func (h *HTTP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		h.Requests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (s *statusWriter) WriteHeader(code int) {
	if !s.wrote {
		s.status = code
		s.wrote = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Write(b []byte) (int, error) {
	s.wrote = true
	return s.ResponseWriter.Write(b)
}

// Handler serves the gatherer in the prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
