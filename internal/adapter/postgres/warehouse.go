package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaign-pacing/internal/core/domain"
)

// Warehouse implements port.DataSource over the campaigns and
// daily_delivery tables using pgxpool. It is an outbound adapter: every
// fetch runs one query on the pool, converts rows into domain values and
// wraps any failure in domain.ErrDataSource so the render pass can report
// it and retry on the next refresh. It also offers the write helpers used
// by the seed command.
type Warehouse struct {
	pool *pgxpool.Pool
}

// NewWarehouse returns a data source reading through pool. The pool is
// owned by the caller, which must keep it open while the Warehouse is in
// use and close it afterwards. The schema is created by db.Migrate.
func NewWarehouse(pool *pgxpool.Pool) *Warehouse {
	return &Warehouse{pool: pool}
}

// FetchCampaignContracts returns every contract ordered by start date and
// insertion order. Models are normalised to upper case, a NULL budget
// becomes the empty string (not margin-tracked) and a NULL volume becomes
// NaN so the engine reports the row instead of pacing it against zero.
func (w *Warehouse) FetchCampaignContracts(ctx context.Context) ([]domain.CampaignContract, error) {
	query := `
        SELECT
            insertion_order,
            model,
            contracted_volume::float8,
            start_date,
            end_date,
            COALESCE(budget, '')
        FROM campaigns
        ORDER BY start_date, insertion_order`
	rows, err := w.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query campaigns: %w", domain.ErrDataSource, err)
	}
	contracts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignContract, error) {
		var (
			c      domain.CampaignContract
			model  string
			volume *float64
		)
		err := row.Scan(&c.ID, &model, &volume, &c.Start, &c.End, &c.Budget)
		c.Model = domain.NormalizeModel(model)
		// a NULL volume is reported by the engine like an unparsable cell
		c.ContractedVolume = math.NaN()
		if volume != nil {
			c.ContractedVolume = *volume
		}
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan campaigns: %w", domain.ErrDataSource, err)
	}
	return contracts, nil
}

// FetchDailyFacts returns delivery rows that fall inside their campaign's
// flight dates, ordered by campaign and date. Rows for unknown campaigns
// or outside the flight are filtered by the query itself. Revenue is read
// as text and parsed into a decimal so no precision is lost.
func (w *Warehouse) FetchDailyFacts(ctx context.Context) ([]domain.DailyDeliveryFact, error) {
	query := `
        SELECT
            d.insertion_order,
            d.date,
            d.impressions,
            d.clicks,
            d.completed_views,
            d.revenue::text
        FROM daily_delivery d
        JOIN campaigns c ON c.insertion_order = d.insertion_order
        WHERE d.date BETWEEN c.start_date AND c.end_date
        ORDER BY d.insertion_order, d.date`
	rows, err := w.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query daily_delivery: %w", domain.ErrDataSource, err)
	}
	facts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyDeliveryFact, error) {
		var (
			f       domain.DailyDeliveryFact
			revenue string
		)
		if err := row.Scan(&f.CampaignID, &f.Date, &f.Impressions, &f.Clicks, &f.CompletedViews, &revenue); err != nil {
			return f, err
		}
		var err error
		f.Revenue, err = decimal.NewFromString(revenue)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan daily_delivery: %w", domain.ErrDataSource, err)
	}
	return facts, nil
}

// UpsertContract stores contract terms keyed by insertion order, replacing
// any existing row for the same campaign. Dates are truncated to the
// calendar day and an empty budget is stored as NULL. It is used by the
// seed command.
func (w *Warehouse) UpsertContract(ctx context.Context, c domain.CampaignContract) error {
	var budget *string
	if c.HasBudget() {
		budget = &c.Budget
	}
	_, err := w.pool.Exec(ctx, `
        INSERT INTO campaigns (insertion_order, model, contracted_volume, start_date, end_date, budget)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (insertion_order) DO UPDATE SET
            model = EXCLUDED.model,
            contracted_volume = EXCLUDED.contracted_volume,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            budget = EXCLUDED.budget`,
		c.ID, string(c.Model), c.ContractedVolume, domain.Day(c.Start), domain.Day(c.End), budget)
	return err
}

// InsertFact appends one delivery row. Rows are never merged: several rows
// for the same campaign and day are summed by the engine, as they are in
// the workbook. It is used by the seed command.
func (w *Warehouse) InsertFact(ctx context.Context, f domain.DailyDeliveryFact) error {
	_, err := w.pool.Exec(ctx, `
        INSERT INTO daily_delivery (insertion_order, date, impressions, clicks, completed_views, revenue)
        VALUES ($1, $2, $3, $4, $5, $6::numeric)`,
		f.CampaignID, domain.Day(f.Date), f.Impressions, f.Clicks, f.CompletedViews, f.Revenue.String())
	return err
}
