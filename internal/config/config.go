package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"campaign-pacing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the configs package for defaults. Use Load to
// construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the dashboard server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*). It is only
	// dialled when a postgres source or alert backend is selected.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Source selects the campaign feed (SOURCE_*).
	Source configs.Source `envPrefix:"SOURCE_"`

	// Alerts selects the shared alert store (ALERTS_*).
	Alerts configs.Alerts `envPrefix:"ALERTS_"`
}

// NeedsPostgres reports whether any configured backend requires a pool.
func (c Config) NeedsPostgres() bool {
	return c.Source.Kind == configs.SourcePostgres || c.Alerts.Backend == configs.AlertsPostgres
}

// Load reads configuration from environment variables into a Config. All
// fields get their defaults when no variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Source.Kind {
	case configs.SourceXLSX, configs.SourcePostgres:
	default:
		return fmt.Errorf("unknown SOURCE_KIND %q", c.Source.Kind)
	}
	switch c.Alerts.Backend {
	case configs.AlertsFile, configs.AlertsPostgres:
	default:
		return fmt.Errorf("unknown ALERTS_BACKEND %q", c.Alerts.Backend)
	}
	return nil
}
