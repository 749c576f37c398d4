package configs

import "time"

const (
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

// Source selects where contracts and daily delivery are read from.
type Source struct {
	// Kind is "xlsx" (default) or "postgres".
	Kind string `env:"KIND" envDefault:"xlsx"`
	// Path is the workbook read by the xlsx source.
	Path string `env:"PATH" envDefault:"campanhas.xlsx"`
	// Timeout bounds reading both feeds in one render pass.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
