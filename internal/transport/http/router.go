package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idlookup/internal/platform/middleware"
)

// Registrar mounts a group of routes. Domain handlers and health implement it.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig wires the public surface.
type RouterConfig struct {
	Logger   *slog.Logger
	Observer middleware.RequestObserver
	Health   Registrar
	// API handlers are mounted under /api/v1.
	API []Registrar
	// RequestTimeout bounds one request; it must exceed the upstream timeout.
	RequestTimeout time.Duration
	// MetricsHandler serves /metrics; defaults to promhttp.Handler().
	MetricsHandler http.Handler
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Observer != nil {
		r.Use(middleware.Metrics(cfg.Observer))
	}

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.RequestTimeout > 0 {
			api.Use(middleware.Timeout(cfg.RequestTimeout))
		}
		for _, h := range cfg.API {
			h.Register(api)
		}
	})

	return r
}
