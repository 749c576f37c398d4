package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"campaign-pacing/internal/adapter/filestore"
	"campaign-pacing/internal/adapter/postgres"
	"campaign-pacing/internal/adapter/usecase"
	"campaign-pacing/internal/adapter/xlsx"
	"campaign-pacing/internal/config"
	"campaign-pacing/internal/config/configs"
	"campaign-pacing/internal/core/port"
	"campaign-pacing/internal/db"
	"campaign-pacing/internal/telemetry"
)

// app holds what every subcommand shares: configuration, the logger and a
// lazily opened Postgres pool.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// postgres opens the pool on first use.
func (a *app) postgres(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool
	return pool, nil
}

func (a *app) dataSource(ctx context.Context) (port.DataSource, error) {
	if a.cfg.Source.Kind == configs.SourcePostgres {
		pool, err := a.postgres(ctx)
		if err != nil {
			return nil, err
		}
		return postgres.NewWarehouse(pool), nil
	}
	return xlsx.NewSource(a.cfg.Source.Path), nil
}

func (a *app) alertStore(ctx context.Context) (port.AlertStore, error) {
	if a.cfg.Alerts.Backend == configs.AlertsPostgres {
		pool, err := a.postgres(ctx)
		if err != nil {
			return nil, err
		}
		return postgres.NewAlertStore(pool), nil
	}
	return filestore.NewAlertStore(a.cfg.Alerts.Path), nil
}

// dashboard wires the configured feed and alert store into a usecase whose
// collectors are registered on reg.
func (a *app) dashboard(ctx context.Context, reg prometheus.Registerer) (*usecase.DashboardUseCase, error) {
	src, err := a.dataSource(ctx)
	if err != nil {
		return nil, err
	}
	store, err := a.alertStore(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewDashboardUseCase(src, store, telemetry.NewMetrics(reg), a.logger,
		usecase.WithTimeouts(a.cfg.Source.Timeout, a.cfg.Alerts.Timeout),
	), nil
}
