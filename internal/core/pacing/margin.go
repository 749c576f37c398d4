package pacing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"campaign-pacing/internal/core/domain"
)

// Margin thresholds in percent, inclusive.
var (
	GoodMargin   = decimal.NewFromInt(30)
	MediumMargin = decimal.NewFromInt(20)
)

var hundred = decimal.NewFromInt(100)

// ComputeMargins returns one MarginResult per contract that carries a
// budget, in input order. Contracts without a budget are not reported;
// contracts whose budget cannot be parsed produce a Diagnostic.
func ComputeMargins(contracts []domain.CampaignContract, facts []domain.DailyDeliveryFact) ([]domain.MarginResult, []domain.Diagnostic) {
	revenue := make(map[string]decimal.Decimal)
	for _, f := range facts {
		revenue[f.CampaignID] = revenue[f.CampaignID].Add(f.Revenue)
	}

	results := make([]domain.MarginResult, 0, len(contracts))
	var diags []domain.Diagnostic
	for i, c := range contracts {
		if !c.HasBudget() {
			continue
		}
		budget, err := ParseBudget(c.Budget)
		if err != nil {
			diags = append(diags, domain.Diagnostic{CampaignID: c.ID, Row: i, Err: err})
			continue
		}
		delivered := revenue[c.ID]
		margin := decimal.Zero
		if budget.IsPositive() {
			margin = budget.Sub(delivered).Div(budget).Mul(hundred)
		}
		results = append(results, domain.MarginResult{
			CampaignID: c.ID,
			Budget:     budget,
			Delivered:  delivered,
			MarginPct:  margin.InexactFloat64(),
			Status:     ClassifyMargin(margin),
		})
	}
	return results, diags
}

// ClassifyMargin grades a margin percentage: 30 and above is Good, 20 and
// above is Medium, anything lower is Poor.
func ClassifyMargin(pct decimal.Decimal) domain.MarginStatus {
	switch {
	case pct.GreaterThanOrEqual(GoodMargin):
		return domain.MarginGood
	case pct.GreaterThanOrEqual(MediumMargin):
		return domain.MarginMedium
	default:
		return domain.MarginPoor
	}
}

var (
	currencySymbols = strings.NewReplacer("R$", "", "US$", "", "$", "", "€", "", "£", "")
	thousandsOnly   = regexp.MustCompile(`^-?\d{1,3}\.\d{3}$`)
)

// ParseBudget normalises a locale-formatted monetary string such as
// "R$ 1.234.567,89" or "1234.50" into a decimal. With a comma present,
// dots are thousands separators and the comma is the decimal mark, so a
// second comma or a dot after the comma is rejected. Without one, several
// dots are thousands separators, and a single dot followed by exactly three
// digits is read as a thousands separator too.
func ParseBudget(raw string) (decimal.Decimal, error) {
	s := currencySymbols.Replace(raw)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidBudgetFormat, raw)
	}

	switch {
	case strings.Contains(s, ","):
		// "1,234.56" and "1,234,567" are US grouping, not a decimal comma.
		if strings.Count(s, ",") > 1 || strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidBudgetFormat, raw)
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1, thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidBudgetFormat, raw)
	}
	return d, nil
}
