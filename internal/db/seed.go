package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
)

// Seeder stores demo rows. postgres.Warehouse implements it.
type Seeder interface {
	UpsertContract(ctx context.Context, c domain.CampaignContract) error
	InsertFact(ctx context.Context, f domain.DailyDeliveryFact) error
}

// demoPlan describes one generated campaign. Pace is the share of the daily
// target actually delivered, so the demo covers every status.
type demoPlan struct {
	model     domain.DeliveryModel
	volume    float64
	startAgo  int
	runsFor   int
	pace      float64
	health    float64
	unitPrice float64
	markup    float64
}

var plans = []demoPlan{
	{domain.ModelCPM, 500000, 10, 30, 1.00, 0.0035, 0.012, 1.6},
	{domain.ModelCPM, 300000, 5, 20, 0.70, 0.0012, 0.010, 1.3},
	{domain.ModelCPM, 120000, 12, 15, 1.50, 0.0025, 0.015, 1.1},
	{domain.ModelCPV, 80000, 8, 30, 0.95, 0.65, 0.08, 1.5},
	{domain.ModelCPV, 40000, 3, 10, 0.60, 0.40, 0.09, 1.25},
	{domain.ModelCPV, 60000, 20, 40, 1.20, 0.55, 0.07, 0},
}

// DemoData builds a small portfolio whose flights surround today. Delivery
// covers every day from the start through yesterday.
func DemoData(today time.Time, r *rand.Rand) ([]domain.CampaignContract, []domain.DailyDeliveryFact) {
	today = domain.Day(today)
	var (
		contracts = make([]domain.CampaignContract, 0, len(plans))
		facts     []domain.DailyDeliveryFact
	)
	for i, p := range plans {
		c := domain.CampaignContract{
			ID:               fmt.Sprintf("IO-%04d", 1001+i),
			Model:            p.model,
			ContractedVolume: p.volume,
			Start:            today.AddDate(0, 0, -p.startAgo),
		}
		c.End = c.Start.AddDate(0, 0, p.runsFor-1)
		if p.markup > 0 {
			budget := decimal.NewFromFloat(p.volume * p.unitPrice * p.markup).Round(2)
			c.Budget = pacing.FormatBRL(budget)
		}
		contracts = append(contracts, c)

		daily := p.volume / float64(p.runsFor) * p.pace
		for d := c.Start; d.Before(today); d = d.AddDate(0, 0, 1) {
			// +-10% day to day noise
			volume := int64(daily * (0.9 + 0.2*r.Float64()))
			f := domain.DailyDeliveryFact{CampaignID: c.ID, Date: d}
			if p.model.IsCPM() {
				f.Impressions = volume
				f.Clicks = int64(float64(volume) * p.health)
			} else {
				f.CompletedViews = volume
				f.Impressions = int64(float64(volume) / p.health)
			}
			f.Revenue = decimal.NewFromFloat(float64(volume) * p.unitPrice).Round(2)
			facts = append(facts, f)
		}
	}
	return contracts, facts
}

// Seed writes DemoData for today through s.
func Seed(ctx context.Context, s Seeder, today time.Time) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	contracts, facts := DemoData(today, r)
	for _, c := range contracts {
		if err := s.UpsertContract(ctx, c); err != nil {
			return fmt.Errorf("seed contract %s: %w", c.ID, err)
		}
	}
	for _, f := range facts {
		if err := s.InsertFact(ctx, f); err != nil {
			return fmt.Errorf("seed delivery %s %s: %w", f.CampaignID, f.Date.Format(time.DateOnly), err)
		}
	}
	return nil
}
