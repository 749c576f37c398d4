package port

import (
	"context"

	"campaign-pacing/internal/core/domain"
)

// DataSource supplies the two feeds a render pass is computed from. It is
// an outbound port in hexagonal architecture. Implementations normalise
// their column naming before returning rows and wrap every failure in
// domain.ErrDataSource.
type DataSource interface {
	// FetchCampaignContracts returns the contract terms of every campaign.
	FetchCampaignContracts(ctx context.Context) ([]domain.CampaignContract, error)
	// FetchDailyFacts returns the daily delivery rows of those campaigns.
	FetchDailyFacts(ctx context.Context) ([]domain.DailyDeliveryFact, error)
}
