package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-pacing/db/migrations"
	"campaign-pacing/internal/db"
)

func newMigrateCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			from, err := db.Migrate(a.cfg.Psql.Addr.String())
			if err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(from)),
				slog.Uint64("to", uint64(migrations.Version)),
			)
			return nil
		},
	}
}
