package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/cors"
	platformlogging "github.com/zenGate-Global/yt-http-gateway/platform/go/logging"
	"github.com/zenGate-Global/yt-http-gateway/platform/go/metrics"
	platformmiddleware "github.com/zenGate-Global/yt-http-gateway/platform/go/middleware"
)

// newRouter wires the edge chain. The CORS filter is the first stage that
// can answer a request; everything it lets through reaches next. m may be nil.
func newRouter(cfg config, logger *zap.Logger, next http.Handler, m *metrics.Metrics) http.Handler {
	corsOpts := []cors.Option{cors.WithPreflightStatus(cfg.PreflightStatus)}
	if m != nil {
		corsOpts = append(corsOpts, cors.WithObserver(m))
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		platformmiddleware.RequestTrace,
		platformlogging.RequestLogger(logger),
		cors.Middleware(corsOpts...),
	)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Handle("/*", next)

	return r
}
