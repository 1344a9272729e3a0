package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	CORSOrigins []string
	Registry    *prometheus.Registry
	Logger      log.FieldLogger

	// RateLimit is the per-client request budget in RateLimitWindow; 0 disables it.
	RateLimit       int
	RateLimitWindow time.Duration
}

// NewRouter wires the middleware stack and every route.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	metrics := middleware.NewMetrics(opts.Registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	r.Use(metrics.Handler)
	if opts.RateLimit > 0 {
		if opts.RateLimitWindow <= 0 {
			opts.RateLimitWindow = time.Minute
		}
		r.Use(middleware.NewRateLimiter(opts.RateLimit, opts.RateLimitWindow).Handler)
	}

	r.Get("/", h.Root)
	r.Get("/test", h.Test)
	r.Get("/health", h.Health)
	r.Get("/countries", h.Countries)
	r.Post("/flight", h.Flight)
	r.Get("/achievements", h.ListAchievements)
	r.Post("/achievements", h.CreateAchievement)
	r.Get("/sessions", h.ListSessions)
	r.Post("/sessions", h.CreateSession)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	return r
}
