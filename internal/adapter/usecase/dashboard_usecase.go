package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
	"campaign-pacing/internal/core/port"
	"campaign-pacing/internal/telemetry"
)

// DashboardUseCase runs render passes: it reads both feeds, computes
// pacing and margins, and brokers the shared alert list. It keeps no state
// between calls, so one instance can serve every session concurrently.
type DashboardUseCase struct {
	src     port.DataSource
	alerts  port.AlertStore
	metrics *telemetry.Metrics
	logger  *slog.Logger

	// sourceTimeout bounds fetching both feeds; storeTimeout bounds a
	// single alert store operation.
	sourceTimeout time.Duration
	storeTimeout  time.Duration
}

// Option customises a DashboardUseCase.
type Option func(*DashboardUseCase)

// WithTimeouts overrides the default feed and alert store timeouts.
// Non-positive values keep the default.
func WithTimeouts(source, store time.Duration) Option {
	return func(u *DashboardUseCase) {
		if source > 0 {
			u.sourceTimeout = source
		}
		if store > 0 {
			u.storeTimeout = store
		}
	}
}

// NewDashboardUseCase creates a usecase over the given feeds and alert
// store. Every render pass reports to metrics and logs through logger with
// its pass id attached. Feed reads default to a 30 second budget and alert
// store calls to 5 seconds; use WithTimeouts to change them. The returned
// value is safe for concurrent use by any number of sessions.
func NewDashboardUseCase(src port.DataSource, alerts port.AlertStore, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *DashboardUseCase {
	u := &DashboardUseCase{
		src:           src,
		alerts:        alerts,
		metrics:       metrics,
		logger:        logger,
		sourceTimeout: 30 * time.Second,
		storeTimeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Snapshot runs one render pass for asOf. Failures degrade the result
// instead of failing it; see port.DashboardUseCase.
func (u *DashboardUseCase) Snapshot(ctx context.Context, asOf time.Time) *port.Dashboard {
	started := time.Now()
	dash := &port.Dashboard{
		PassID:  uuid.NewString(),
		AsOf:    domain.Day(asOf),
		Pacing:  []domain.PacingResult{},
		Margins: []domain.MarginResult{},
		Alerts:  []string{},
	}
	logger := u.logger.With(slog.String("pass_id", dash.PassID))
	u.metrics.RenderPasses.Inc()
	defer func() {
		u.metrics.RenderDuration.Observe(time.Since(started).Seconds())
	}()

	alerts, err := u.Alerts(ctx)
	if err != nil {
		logger.Warn("alerts unavailable", slog.Any("error", err))
		dash.AlertsError = err.Error()
	} else {
		dash.Alerts = alerts
	}

	contracts, facts, err := u.fetch(ctx)
	if err != nil {
		logger.Error("render pass aborted", slog.Any("error", err))
		u.metrics.SourceErrors.Inc()
		dash.SourceError = err.Error()
		return dash
	}

	results, pacingDiags := pacing.ComputePacing(contracts, facts, asOf)
	margins, marginDiags := pacing.ComputeMargins(contracts, facts)
	for _, d := range append(pacingDiags, marginDiags...) {
		logger.Warn("row skipped",
			slog.String("campaign_id", d.CampaignID),
			slog.Int("row", d.Row),
			slog.String("kind", d.Kind()),
			slog.Any("error", d.Err),
		)
		u.metrics.Diagnostics.WithLabelValues(d.Kind()).Inc()
		dash.Diagnostics = append(dash.Diagnostics, d.Error())
	}

	dash.Pacing = results
	dash.Margins = margins
	dash.Summary = pacing.Summarize(results)

	logger.Debug("render pass complete",
		slog.Int("contracts", len(contracts)),
		slog.Int("facts", len(facts)),
		slog.Int("paced", len(results)),
		slog.Int("margins", len(margins)),
		slog.Duration("took", time.Since(started)),
	)
	return dash
}

// RaiseAlert recomputes pacing for asOf and broadcasts the status of
// campaignID.
func (u *DashboardUseCase) RaiseAlert(ctx context.Context, campaignID string, asOf time.Time) (string, error) {
	if campaignID == "" {
		return "", port.ErrCampaignNotFound
	}
	contracts, facts, err := u.fetch(ctx)
	if err != nil {
		u.metrics.SourceErrors.Inc()
		return "", err
	}
	results, _ := pacing.ComputePacing(contracts, facts, asOf)

	var found *domain.PacingResult
	for i := range results {
		if results[i].CampaignID == campaignID {
			found = &results[i]
			break
		}
	}
	if found == nil {
		return "", fmt.Errorf("%w: %s", port.ErrCampaignNotFound, campaignID)
	}

	msg := AlertMessage(*found)
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	if err = u.alerts.Append(ctx, msg); err != nil {
		u.metrics.StorageErrors.WithLabelValues("append").Inc()
		return "", storageErr(err)
	}
	u.metrics.AlertsRaised.Inc()
	u.logger.Info("alert raised", slog.String("campaign_id", campaignID), slog.String("status", string(found.Status)))
	return msg, nil
}

// Alerts returns the broadcast alerts, never nil on success.
func (u *DashboardUseCase) Alerts(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	alerts, err := u.alerts.List(ctx)
	if err != nil {
		u.metrics.StorageErrors.WithLabelValues("list").Inc()
		return nil, storageErr(err)
	}
	if alerts == nil {
		alerts = []string{}
	}
	return alerts, nil
}

// ClearAlerts removes every broadcast alert.
func (u *DashboardUseCase) ClearAlerts(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	if err := u.alerts.Clear(ctx); err != nil {
		u.metrics.StorageErrors.WithLabelValues("clear").Inc()
		return storageErr(err)
	}
	u.metrics.AlertsCleared.Inc()
	u.logger.Info("alerts cleared")
	return nil
}

// AlertMessage renders the broadcast text for a pacing result in the
// dashboard's pt-BR vocabulary, e.g.
// "Alerta: Campanha IO-7 está com status Under!".
func AlertMessage(r domain.PacingResult) string {
	return fmt.Sprintf("Alerta: Campanha %s está com status %s!", r.CampaignID, r.Status)
}

// fetch reads both feeds concurrently under the source timeout.
func (u *DashboardUseCase) fetch(ctx context.Context) ([]domain.CampaignContract, []domain.DailyDeliveryFact, error) {
	ctx, cancel := context.WithTimeout(ctx, u.sourceTimeout)
	defer cancel()

	var (
		contracts []domain.CampaignContract
		facts     []domain.DailyDeliveryFact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		contracts, err = u.src.FetchCampaignContracts(gctx)
		return err
	})
	g.Go(func() (err error) {
		facts, err = u.src.FetchDailyFacts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, domain.ErrDataSource) {
			err = fmt.Errorf("%w: %w", domain.ErrDataSource, err)
		}
		return nil, nil, err
	}
	return contracts, facts, nil
}

func storageErr(err error) error {
	if errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}
