package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"campaign-pacing/internal/adapter/postgres"
	"campaign-pacing/internal/adapter/xlsx"
	"campaign-pacing/internal/config/configs"
	"campaign-pacing/internal/db"
)

func newSeedCmd(get func() *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write demo campaigns to the configured source",
		Long: `Generates a demo portfolio around today covering every pace status.
With SOURCE_KIND=xlsx the workbook at SOURCE_PATH is written; with
SOURCE_KIND=postgres the rows are upserted into the warehouse tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			ctx := cmd.Context()
			today := time.Now()

			if a.cfg.Source.Kind == configs.SourcePostgres {
				pool, err := a.postgres(ctx)
				if err != nil {
					return err
				}
				if err = db.Seed(ctx, postgres.NewWarehouse(pool), today); err != nil {
					return err
				}
				a.logger.Info("warehouse seeded")
				return nil
			}

			path := a.cfg.Source.Path
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			contracts, facts := db.DemoData(today, rand.New(rand.NewSource(today.UnixNano())))
			if err := xlsx.WriteWorkbook(path, contracts, facts); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			a.logger.Info("workbook written", slog.String("path", path), slog.Int("campaigns", len(contracts)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing workbook")
	return cmd
}
