// Package pacing computes per-campaign pacing, delivery health and
// programmatic margin from contract terms and daily delivery rows. Every
// function in it is pure: no I/O, no clock reads, no shared state.
package pacing

import (
	"fmt"
	"math"
	"time"

	"campaign-pacing/internal/core/domain"
)

// Pace thresholds in percent. Values equal to a threshold are On Track.
const (
	UnderThreshold = 90.0
	OverThreshold  = 110.0
)

// Underperformance thresholds in percent.
const (
	MinCTR            = 0.20
	MinCompletionRate = 50.0
)

// totals is the sum of one campaign's delivery rows.
type totals struct {
	impressions    int64
	clicks         int64
	completedViews int64
}

// ComputePacing returns one PacingResult per contract still running on
// asOf, in input order, and a Diagnostic for every contract that could not
// be evaluated. Contracts whose end date is before asOf are left out.
// Facts are matched to contracts by campaign id only.
func ComputePacing(contracts []domain.CampaignContract, facts []domain.DailyDeliveryFact, asOf time.Time) ([]domain.PacingResult, []domain.Diagnostic) {
	asOf = domain.Day(asOf)
	delivered := sumByCampaign(facts)

	results := make([]domain.PacingResult, 0, len(contracts))
	var diags []domain.Diagnostic
	for i, c := range contracts {
		if err := validateContract(c); err != nil {
			diags = append(diags, domain.Diagnostic{CampaignID: c.ID, Row: i, Err: err})
			continue
		}
		if domain.Day(c.End).Before(asOf) {
			continue
		}
		res, err := pace(c, delivered[c.ID], asOf)
		if err != nil {
			diags = append(diags, domain.Diagnostic{CampaignID: c.ID, Row: i, Err: err})
			continue
		}
		results = append(results, res)
	}
	return results, diags
}

func pace(c domain.CampaignContract, t totals, asOf time.Time) (domain.PacingResult, error) {
	totalDays := domain.DaysBetween(c.Start, c.End) + 1
	if totalDays < 1 {
		return domain.PacingResult{}, fmt.Errorf("%w: end %s before start %s",
			domain.ErrInvalidContract, c.End.Format(time.DateOnly), c.Start.Format(time.DateOnly))
	}
	elapsedDays := clamp(domain.DaysBetween(c.Start, asOf)+1, 0, totalDays)

	dailyTarget := c.ContractedVolume / float64(totalDays)

	var cumulative float64
	if c.Model.IsCPM() {
		cumulative = float64(t.impressions)
	} else {
		cumulative = float64(t.completedViews)
	}

	expected := dailyTarget * float64(elapsedDays)
	var pacePct float64
	if expected > 0 {
		pacePct = cumulative * 100 / expected
	}

	res := domain.PacingResult{
		CampaignID:       c.ID,
		Model:            c.Model,
		ContractedVolume: c.ContractedVolume,
		ElapsedDays:      elapsedDays,
		TotalDays:        totalDays,
		DailyTarget:      dailyTarget,
		ExpectedToDate:   expected,
		DeliveredToDate:  cumulative,
		PacePct:          pacePct,
		Status:           ClassifyPace(pacePct),
	}

	if c.Model.IsCPM() {
		res.HealthMetric = "ctr"
		if cumulative > 0 {
			res.HealthValue = float64(t.clicks) * 100 / cumulative
		}
		res.Underperforming = res.HealthValue < MinCTR
	} else {
		res.HealthMetric = "completion_rate"
		if t.impressions > 0 {
			res.HealthValue = cumulative * 100 / float64(t.impressions)
		}
		res.Underperforming = res.HealthValue < MinCompletionRate
	}

	res.DaysRemaining = max(0, domain.DaysBetween(asOf, c.End))
	if res.DaysRemaining > 0 {
		res.RequiredDailyRate = (c.ContractedVolume - cumulative) / float64(res.DaysRemaining)
	}
	return res, nil
}

// ClassifyPace maps a pacing ratio to its status. 90 and 110 are On Track.
func ClassifyPace(pct float64) domain.PaceStatus {
	switch {
	case pct < UnderThreshold:
		return domain.StatusUnder
	case pct > OverThreshold:
		return domain.StatusOver
	default:
		return domain.StatusOnTrack
	}
}

func validateContract(c domain.CampaignContract) error {
	switch {
	case c.ID == "":
		return fmt.Errorf("%w: missing insertion order", domain.ErrInvalidContract)
	case math.IsNaN(c.ContractedVolume) || math.IsInf(c.ContractedVolume, 0):
		return fmt.Errorf("%w: contracted volume is not a number", domain.ErrInvalidContract)
	case c.ContractedVolume < 0:
		return fmt.Errorf("%w: negative contracted volume %g", domain.ErrInvalidContract, c.ContractedVolume)
	case c.Start.IsZero():
		return fmt.Errorf("%w: missing start date", domain.ErrInvalidContract)
	case c.End.IsZero():
		return fmt.Errorf("%w: missing end date", domain.ErrInvalidContract)
	}
	return nil
}

func sumByCampaign(facts []domain.DailyDeliveryFact) map[string]totals {
	out := make(map[string]totals)
	for _, f := range facts {
		t := out[f.CampaignID]
		t.impressions += f.Impressions
		t.clicks += f.Clicks
		t.completedViews += f.CompletedViews
		out[f.CampaignID] = t
	}
	return out
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
