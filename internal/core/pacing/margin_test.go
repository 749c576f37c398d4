package pacing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-pacing/internal/core/domain"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"R$ 1.234.567,89", "1234567.89"},
		{"R$1.234,5", "1234.5"},
		{"1234,56", "1234.56"},
		{"1.000.000", "1000000"},
		{"12.500", "12500"},
		{"1234.50", "1234.5"},
		{"1234", "1234"},
		{"  R$ 50.000,00 ", "50000"},
		{"$ 750.25", "750.25"},
		{"-1.500,00", "-1500"},
	}
	for _, tt := range tests {
		got, err := ParseBudget(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%q: got %s want %s", tt.raw, got, tt.want)
	}
}

func TestParseBudgetRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"R$", "abc", "1,2,3", "12,34.56,7", "--1",
		"US$ 1,234.56", "$1,234.56", "1,234,567", "1,5.0",
	} {
		_, err := ParseBudget(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidBudgetFormat, raw)
	}
}

func TestClassifyMargin(t *testing.T) {
	tests := []struct {
		pct  string
		want domain.MarginStatus
	}{
		{"45", domain.MarginGood},
		{"30.0", domain.MarginGood},
		{"29.9", domain.MarginMedium},
		{"20.0", domain.MarginMedium},
		{"19.9", domain.MarginPoor},
		{"-12", domain.MarginPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMargin(decimal.RequireFromString(tt.pct)), tt.pct)
	}
}

func TestComputeMargins(t *testing.T) {
	contracts := []domain.CampaignContract{
		{ID: "good", Budget: "R$ 1.000,00"},
		{ID: "no-budget"},
		{ID: "medium", Budget: "1000"},
		{ID: "broken", Budget: "mil reais"},
		{ID: "poor", Budget: "R$ 1.000,00"},
		{ID: "zero", Budget: "0,00"},
	}
	facts := []domain.DailyDeliveryFact{
		{CampaignID: "good", Revenue: decimal.RequireFromString("400")},
		{CampaignID: "good", Revenue: decimal.RequireFromString("300")},
		{CampaignID: "medium", Revenue: decimal.RequireFromString("701")},
		{CampaignID: "poor", Revenue: decimal.RequireFromString("801")},
		{CampaignID: "zero", Revenue: decimal.RequireFromString("10")},
	}

	got, diags := ComputeMargins(contracts, facts)

	require.Len(t, diags, 1)
	assert.Equal(t, "broken", diags[0].CampaignID)
	assert.Equal(t, 3, diags[0].Row)
	assert.ErrorIs(t, diags[0], domain.ErrInvalidBudgetFormat)

	require.Len(t, got, 4)
	assert.Equal(t, "good", got[0].CampaignID)
	assert.True(t, got[0].Delivered.Equal(decimal.NewFromInt(700)))
	assert.InDelta(t, 30.0, got[0].MarginPct, 1e-9)
	assert.Equal(t, domain.MarginGood, got[0].Status)

	assert.Equal(t, "medium", got[1].CampaignID)
	assert.InDelta(t, 29.9, got[1].MarginPct, 1e-9)
	assert.Equal(t, domain.MarginMedium, got[1].Status)

	assert.Equal(t, "poor", got[2].CampaignID)
	assert.InDelta(t, 19.9, got[2].MarginPct, 1e-9)
	assert.Equal(t, domain.MarginPoor, got[2].Status)

	assert.Equal(t, "zero", got[3].CampaignID)
	assert.Zero(t, got[3].MarginPct)
	assert.Equal(t, domain.MarginPoor, got[3].Status)
}
