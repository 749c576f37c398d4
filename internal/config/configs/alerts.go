package configs

import "time"

const (
	AlertsFile     = "file"
	AlertsPostgres = "postgres"
)

// Alerts selects the store shared by every dashboard session.
type Alerts struct {
	// Backend is "file" (default) or "postgres".
	Backend string `env:"BACKEND" envDefault:"file"`
	// Path is the JSON file used by the file backend.
	Path string `env:"PATH" envDefault:"global_alerts.json"`
	// Timeout bounds a single store operation, lock wait included.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
