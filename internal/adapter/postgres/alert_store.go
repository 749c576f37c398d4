package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-pacing/internal/core/domain"
)

// AlertStore implements port.AlertStore on the global_alerts table. Each
// append is a single INSERT, so concurrent sessions never lose an entry,
// and the bigserial id keeps append order across processes. Every failure
// is wrapped in domain.ErrStorage.
type AlertStore struct {
	pool *pgxpool.Pool
}

// NewAlertStore returns an alert store on pool. It is the backend selected
// by ALERTS_BACKEND=postgres, for dashboards running on several hosts that
// cannot share a file. The caller owns and closes the pool.
func NewAlertStore(pool *pgxpool.Pool) *AlertStore {
	return &AlertStore{pool: pool}
}

// List returns messages in insertion order. An empty table yields an
// empty, non-nil slice.
func (s *AlertStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT message FROM global_alerts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query global_alerts: %w", domain.ErrStorage, err)
	}
	alerts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%w: scan global_alerts: %w", domain.ErrStorage, err)
	}
	if alerts == nil {
		alerts = []string{}
	}
	return alerts, nil
}

// Append inserts message at the end of the list.
func (s *AlertStore) Append(ctx context.Context, message string) error {
	if _, err := s.pool.Exec(ctx, `INSERT INTO global_alerts (message) VALUES ($1)`, message); err != nil {
		return fmt.Errorf("%w: insert global_alerts: %w", domain.ErrStorage, err)
	}
	return nil
}

// Clear deletes every message. Clearing an empty table is not an error.
func (s *AlertStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM global_alerts`); err != nil {
		return fmt.Errorf("%w: delete global_alerts: %w", domain.ErrStorage, err)
	}
	return nil
}
