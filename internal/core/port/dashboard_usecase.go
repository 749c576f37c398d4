package port

import (
	"context"
	"errors"
	"time"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
)

// ErrCampaignNotFound is returned by RaiseAlert when the campaign id is
// empty, unknown, or not pace-tracked on the reference date (not started
// contracts are tracked, ended or invalid ones are not). Callers map it to
// 404.
var ErrCampaignNotFound = errors.New("campaign not found")

// DashboardUseCase defines the operations exposed to the presentation
// layer. Every call is an independent render pass: nothing computed is kept
// between calls, and sessions only share state through the AlertStore.
type DashboardUseCase interface {
	// Snapshot runs one render pass for the reference date asOf. It never
	// fails as a whole: a data source failure leaves the result tables empty
	// and is reported in SourceError, an alert read failure leaves Alerts
	// empty and is reported in AlertsError.
	Snapshot(ctx context.Context, asOf time.Time) *Dashboard

	// RaiseAlert broadcasts the current pacing status of campaignID to every
	// session and returns the message that was stored. ErrCampaignNotFound
	// is returned when the campaign is not pace-tracked on asOf.
	RaiseAlert(ctx context.Context, campaignID string, asOf time.Time) (string, error)

	// Alerts returns the active broadcast alerts.
	Alerts(ctx context.Context) ([]string, error)

	// ClearAlerts removes every broadcast alert.
	ClearAlerts(ctx context.Context) error
}

// Dashboard is the result of one render pass. It is a DTO for the HTTP
// and CLI layers and carries no behaviour.
type Dashboard struct {
	PassID      string                `json:"pass_id"`
	AsOf        time.Time             `json:"as_of"`
	Summary     pacing.Summary        `json:"summary"`
	Pacing      []domain.PacingResult `json:"pacing"`
	Margins     []domain.MarginResult `json:"margins"`
	Diagnostics []string              `json:"diagnostics,omitempty"`
	Alerts      []string              `json:"alerts"`
	SourceError string                `json:"source_error,omitempty"`
	AlertsError string                `json:"alerts_error,omitempty"`
}
