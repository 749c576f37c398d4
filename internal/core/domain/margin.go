package domain

import "github.com/shopspring/decimal"

// MarginResult is the programmatic margin of one budgeted campaign.
// Budget and Delivered keep exact decimal values; MarginPct is a percentage
// of Budget not yet consumed by delivered revenue.
type MarginResult struct {
	CampaignID string          `json:"campaign_id"`
	Budget     decimal.Decimal `json:"budget"`
	Delivered  decimal.Decimal `json:"delivered"`
	MarginPct  float64         `json:"margin_pct"`
	Status     MarginStatus    `json:"status"`
}
