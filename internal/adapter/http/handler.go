package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-pacing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the HTML dashboard and its JSON API. Every request runs its
// own render pass, so concurrent sessions share nothing but the alert
// store behind svc.
type Handler struct {
	svc     port.DashboardUseCase
	logger  *slog.Logger
	router  chi.Router
	refresh time.Duration
	now     func() time.Time
}

// Option customises a Handler. Options are applied in order by NewHandler
// after the defaults are set, so a later option wins over an earlier one.
type Option func(*Handler)

// WithRefresh sets the interval written into the page's meta refresh tag.
// It is how often every open dashboard re-runs a render pass and picks up
// alerts raised by other sessions. Non-positive values keep the 10 second
// default.
func WithRefresh(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.refresh = d
		}
	}
}

// WithClock replaces time.Now as the source of the reference date used
// when a request carries no as_of parameter. Tests use it to pin the date;
// production code has no reason to set it.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a handler with all routes configured. It accepts the
// dashboard usecase, a logger for request failures and the Prometheus
// gatherer whose collectors are exposed on /metrics. The HTML pages live at
// "/" and "/alerts", the JSON API under "/api/v1", and "/healthz" answers
// "ok" without touching the usecase. Routes are registered on a new
// chi.Router wrapped with request id and panic recovery middleware.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, gatherer prometheus.Gatherer, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, refresh: 10 * time.Second, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/", h.handleDashboard)
	r.Post("/alerts", h.handleRaiseAlertForm)
	r.Post("/alerts/clear", h.handleClearAlertsForm)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboardJSON)
		r.Get("/pacing", h.handlePacingJSON)
		r.Get("/margins", h.handleMarginsJSON)
		r.Get("/alerts", h.handleListAlerts)
		r.Post("/alerts", h.handleRaiseAlert)
		r.Delete("/alerts", h.handleClearAlerts)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler, ready to be set as the
// Handler of an http.Server.
func (h *Handler) Router() http.Handler {
	return h.router
}

// asOf reads the optional as_of query or form value (YYYY-MM-DD). The
// handler's clock is used when it is absent; a malformed value is returned
// as an error and answered with 400 by the callers.
func (h *Handler) asOf(r *http.Request) (time.Time, error) {
	raw := r.FormValue("as_of")
	if raw == "" {
		return h.now(), nil
	}
	return time.Parse(time.DateOnly, raw)
}
