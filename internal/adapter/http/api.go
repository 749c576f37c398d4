package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
	"campaign-pacing/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

type pacingResponse struct {
	PassID  string                `json:"pass_id"`
	AsOf    time.Time             `json:"as_of"`
	Summary pacing.Summary        `json:"summary"`
	Results []domain.PacingResult `json:"results"`
}

type marginsResponse struct {
	PassID  string                `json:"pass_id"`
	Results []domain.MarginResult `json:"results"`
}

type alertsResponse struct {
	Alerts []string `json:"alerts"`
}

type raiseAlertRequest struct {
	CampaignID string `json:"campaign_id"`
}

type raiseAlertResponse struct {
	Message string `json:"message"`
}

// handleDashboardJSON returns the whole render pass. A failed feed still
// yields 200 with source_error set, as the HTML page does.
func (h *Handler) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'as_of' date"})
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Snapshot(r.Context(), asOf))
}

// handlePacingJSON returns the pacing table and its summary. It answers
// 502 when the feed could not be read.
func (h *Handler) handlePacingJSON(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'as_of' date"})
		return
	}
	dash := h.svc.Snapshot(r.Context(), asOf)
	if dash.SourceError != "" {
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: dash.SourceError})
		return
	}
	h.writeJSON(w, http.StatusOK, pacingResponse{
		PassID:  dash.PassID,
		AsOf:    dash.AsOf,
		Summary: dash.Summary,
		Results: dash.Pacing,
	})
}

// handleMarginsJSON returns the margin table.
func (h *Handler) handleMarginsJSON(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'as_of' date"})
		return
	}
	dash := h.svc.Snapshot(r.Context(), asOf)
	if dash.SourceError != "" {
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: dash.SourceError})
		return
	}
	h.writeJSON(w, http.StatusOK, marginsResponse{PassID: dash.PassID, Results: dash.Margins})
}

func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.Alerts(r.Context())
	if err != nil {
		h.logger.Error("list alerts error", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, alertsResponse{Alerts: alerts})
}

// handleRaiseAlert broadcasts the status of the campaign named in the JSON
// body. Unknown or inactive campaigns give 404.
func (h *Handler) handleRaiseAlert(w http.ResponseWriter, r *http.Request) {
	var req raiseAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	asOf, err := h.asOf(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'as_of' date"})
		return
	}
	msg, err := h.svc.RaiseAlert(r.Context(), req.CampaignID, asOf)
	if err != nil {
		h.writeJSON(w, h.alertErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusCreated, raiseAlertResponse{Message: msg})
}

func (h *Handler) handleClearAlerts(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAlerts(r.Context()); err != nil {
		h.logger.Error("clear alerts error", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// alertErrorStatus maps RaiseAlert failures to a response code and logs
// the ones that are not the caller's fault.
func (h *Handler) alertErrorStatus(err error) int {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDataSource):
		h.logger.Error("raise alert error", slog.Any("error", err))
		return http.StatusBadGateway
	default:
		h.logger.Error("raise alert error", slog.Any("error", err))
		return http.StatusServiceUnavailable
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
