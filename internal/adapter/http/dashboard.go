package httpadapter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
	"campaign-pacing/internal/core/port"
)

//go:embed templates/*.html
var templatesFS embed.FS

// barScale is the pace percentage drawn as a full-width bar.
const barScale = 150.0

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"brl":    pacing.FormatBRL,
	"volume": pacing.FormatVolume,
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"statusClass": statusClass,
	"marginClass": func(s domain.MarginStatus) string {
		return "margin-" + string(s)
	},
	"barWidth": func(pace float64) string {
		return fmt.Sprintf("%.1f%%", math.Min(pace, barScale)*100/barScale)
	},
	"date": func(t time.Time) string {
		return t.Format(time.DateOnly)
	},
}).ParseFS(templatesFS, "templates/*.html"))

type dashboardPage struct {
	*port.Dashboard
	RefreshSeconds int
	AsOfParam      string
}

func statusClass(s domain.PaceStatus) string {
	switch s {
	case domain.StatusUnder:
		return "under"
	case domain.StatusOver:
		return "over"
	default:
		return "ontrack"
	}
}

// handleDashboard renders one render pass as HTML. The page reloads itself
// at the configured interval so every session sees new broadcast alerts.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, "invalid 'as_of' date", http.StatusBadRequest)
		return
	}
	page := dashboardPage{
		Dashboard:      h.svc.Snapshot(r.Context(), asOf),
		RefreshSeconds: int(math.Ceil(h.refresh.Seconds())),
		AsOfParam:      r.FormValue("as_of"),
	}

	var buf bytes.Buffer
	if err = templates.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		h.logger.Error("render dashboard error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleRaiseAlertForm handles the per-row alert button and returns the
// browser to the dashboard.
func (h *Handler) handleRaiseAlertForm(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, "invalid 'as_of' date", http.StatusBadRequest)
		return
	}
	if _, err = h.svc.RaiseAlert(r.Context(), r.FormValue("campaign_id"), asOf); err != nil {
		status := h.alertErrorStatus(err)
		if errors.Is(err, port.ErrCampaignNotFound) {
			http.Error(w, "campaign not found", status)
			return
		}
		http.Error(w, "could not raise alert", status)
		return
	}
	http.Redirect(w, r, dashboardURL(r.FormValue("as_of")), http.StatusSeeOther)
}

func (h *Handler) handleClearAlertsForm(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAlerts(r.Context()); err != nil {
		h.logger.Error("clear alerts error", slog.Any("error", err))
		http.Error(w, "could not clear alerts", http.StatusServiceUnavailable)
		return
	}
	http.Redirect(w, r, dashboardURL(r.FormValue("as_of")), http.StatusSeeOther)
}

func dashboardURL(asOf string) string {
	if asOf == "" {
		return "/"
	}
	return "/?" + url.Values{"as_of": {asOf}}.Encode()
}
