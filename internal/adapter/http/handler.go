package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arena-ads/internal/config/configs"
	"arena-ads/internal/core/port"
	"arena-ads/internal/metrics"
)

// RateLimiter gates the public delivery endpoints. Implemented by the Redis
// fixed-window limiter; a nil limiter disables rate limiting.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Handler is the inbound HTTP adapter. It holds the usecase, the engine
// configuration, an optional rate limiter and metrics, and registers its
// routes on a chi.Router.
type Handler struct {
	svc     port.AdUseCase
	cfg     configs.Ads
	limiter RateLimiter
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. lim and m may be
// nil.
func NewHandler(svc port.AdUseCase, cfg configs.Ads, lim RateLimiter, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, cfg: cfg, limiter: lim, metrics: m, logger: logger}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/ads", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit)
			r.Post("/delivery", h.handleDelivery)
			r.Post("/events/click", h.handleClick)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/reports/campaign", h.handleCampaignReport)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
