package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/cors"
)

// Metrics owns a private registry so tests and multiple servers do not collide.
type Metrics struct {
	registry      *prometheus.Registry
	corsDecisions *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		corsDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ytproxy_cors_decisions_total",
			Help: "CORS filter decisions by request method and outcome",
		}, []string{"method", "outcome"}),
	}
	reg.MustRegister(m.corsDecisions)

	return m
}

// ObserveCORS implements cors.Observer.
func (m *Metrics) ObserveCORS(method cors.Method, outcome cors.Outcome) {
	m.corsDecisions.WithLabelValues(method.String(), outcome.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
