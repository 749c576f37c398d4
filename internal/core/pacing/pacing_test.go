package pacing

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-pacing/internal/core/domain"
)

var day1 = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// day returns the n-th day of the test calendar, Day(1) being March 1st.
func day(n int) time.Time {
	return day1.AddDate(0, 0, n-1)
}

func dailyImpressions(id string, from, to int, impressions, clicks int64) []domain.DailyDeliveryFact {
	var facts []domain.DailyDeliveryFact
	for d := from; d <= to; d++ {
		facts = append(facts, domain.DailyDeliveryFact{
			CampaignID:  id,
			Date:        day(d),
			Impressions: impressions,
			Clicks:      clicks,
		})
	}
	return facts
}

// TestComputePacingEndToEnd covers a CPM campaign exactly on the lower pace
// boundary half way through its flight.
func TestComputePacingEndToEnd(t *testing.T) {
	contracts := []domain.CampaignContract{{
		ID: "C1", Model: domain.ModelCPM, ContractedVolume: 10000, Start: day(1), End: day(10),
	}}
	facts := dailyImpressions("C1", 1, 5, 900, 3)

	got, diags := ComputePacing(contracts, facts, day(5))
	require.Empty(t, diags)
	require.Len(t, got, 1)

	want := domain.PacingResult{
		CampaignID:        "C1",
		Model:             domain.ModelCPM,
		ContractedVolume:  10000,
		ElapsedDays:       5,
		TotalDays:         10,
		DailyTarget:       1000,
		ExpectedToDate:    5000,
		DeliveredToDate:   4500,
		PacePct:           90,
		Status:            domain.StatusOnTrack,
		Underperforming:   false,
		HealthMetric:      "ctr",
		HealthValue:       15.0 * 100 / 4500,
		DaysRemaining:     5,
		RequiredDailyRate: 1100,
	}
	if diff := cmp.Diff(want, got[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected pacing result (-want +got):\n%s", diff)
	}
}

func TestClassifyPace(t *testing.T) {
	tests := []struct {
		pct  float64
		want domain.PaceStatus
	}{
		{0, domain.StatusUnder},
		{89.9, domain.StatusUnder},
		{90.0, domain.StatusOnTrack},
		{100, domain.StatusOnTrack},
		{110.0, domain.StatusOnTrack},
		{110.1, domain.StatusOver},
		{250, domain.StatusOver},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPace(tt.pct), "pace %v", tt.pct)
	}
}

func TestComputePacingCTRFlag(t *testing.T) {
	tests := []struct {
		name   string
		clicks int64
		ctr    float64
		flag   bool
	}{
		{name: "one click per thousand", clicks: 1, ctr: 0.1, flag: true},
		{name: "three clicks per thousand", clicks: 3, ctr: 0.3, flag: false},
		{name: "two clicks per thousand", clicks: 2, ctr: 0.2, flag: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contracts := []domain.CampaignContract{{
				ID: "C1", Model: domain.ModelCPM, ContractedVolume: 10000, Start: day(1), End: day(10),
			}}
			facts := []domain.DailyDeliveryFact{{CampaignID: "C1", Date: day(1), Impressions: 1000, Clicks: tt.clicks}}

			got, diags := ComputePacing(contracts, facts, day(3))
			require.Empty(t, diags)
			require.Len(t, got, 1)
			assert.Equal(t, "ctr", got[0].HealthMetric)
			assert.InDelta(t, tt.ctr, got[0].HealthValue, 1e-9)
			assert.Equal(t, tt.flag, got[0].Underperforming)
		})
	}
}

func TestComputePacingZeroDeliveryIsUnderperforming(t *testing.T) {
	contracts := []domain.CampaignContract{
		{ID: "cpm", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(10)},
		{ID: "cpv", Model: domain.ModelCPV, ContractedVolume: 1000, Start: day(1), End: day(10)},
	}

	got, diags := ComputePacing(contracts, nil, day(2))
	require.Empty(t, diags)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Zero(t, r.DeliveredToDate, r.CampaignID)
		assert.Zero(t, r.HealthValue, r.CampaignID)
		assert.True(t, r.Underperforming, r.CampaignID)
		assert.Equal(t, domain.StatusUnder, r.Status, r.CampaignID)
	}
}

func TestComputePacingCompletionRate(t *testing.T) {
	contracts := []domain.CampaignContract{
		{ID: "V1", Model: domain.ModelCPV, ContractedVolume: 2000, Start: day(1), End: day(4)},
		// Any non-CPM model counts completed views.
		{ID: "V2", Model: domain.NormalizeModel(" cpcv "), ContractedVolume: 2000, Start: day(1), End: day(4)},
	}
	facts := []domain.DailyDeliveryFact{
		{CampaignID: "V1", Date: day(1), Impressions: 1000, CompletedViews: 400},
		{CampaignID: "V1", Date: day(2), Impressions: 1000, CompletedViews: 600},
		{CampaignID: "V2", Date: day(1), Impressions: 1000, CompletedViews: 450},
	}

	got, diags := ComputePacing(contracts, facts, day(2))
	require.Empty(t, diags)
	require.Len(t, got, 2)

	v1 := got[0]
	assert.Equal(t, "completion_rate", v1.HealthMetric)
	assert.InDelta(t, 1000.0, v1.DeliveredToDate, 1e-9)
	assert.InDelta(t, 50.0, v1.HealthValue, 1e-9)
	assert.False(t, v1.Underperforming)
	assert.InDelta(t, 100.0, v1.PacePct, 1e-9)

	v2 := got[1]
	assert.Equal(t, domain.DeliveryModel("CPCV"), v2.Model)
	assert.InDelta(t, 45.0, v2.HealthValue, 1e-9)
	assert.True(t, v2.Underperforming)
}

func TestComputePacingAggregatesDuplicateDays(t *testing.T) {
	contracts := []domain.CampaignContract{{
		ID: "C1", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(10),
	}}
	facts := []domain.DailyDeliveryFact{
		{CampaignID: "C1", Date: day(1), Impressions: 60},
		{CampaignID: "C1", Date: day(1), Impressions: 40},
		{CampaignID: "other", Date: day(1), Impressions: 1_000_000},
	}

	got, _ := ComputePacing(contracts, facts, day(1))
	require.Len(t, got, 1)
	assert.InDelta(t, 100.0, got[0].DeliveredToDate, 1e-9)
	assert.InDelta(t, 100.0, got[0].PacePct, 1e-9)
}

func TestComputePacingSkipsEndedCampaigns(t *testing.T) {
	contracts := []domain.CampaignContract{
		{ID: "ended", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(4)},
		{ID: "ends-today", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(5)},
		{ID: "running", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(9)},
	}

	got, diags := ComputePacing(contracts, nil, day(5))
	require.Empty(t, diags)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.CampaignID)
	}
	assert.Equal(t, []string{"ends-today", "running"}, ids)

	endsToday := got[0]
	assert.Equal(t, 0, endsToday.DaysRemaining)
	assert.Zero(t, endsToday.RequiredDailyRate)
	assert.Equal(t, 5, endsToday.ElapsedDays)
}

func TestComputePacingIgnoresClockTime(t *testing.T) {
	contracts := []domain.CampaignContract{{
		ID: "C1", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(5),
	}}

	got, _ := ComputePacing(contracts, nil, day(5).Add(23*time.Hour+59*time.Minute))
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].ElapsedDays)
}

func TestComputePacingBeforeStart(t *testing.T) {
	contracts := []domain.CampaignContract{{
		ID: "future", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(10), End: day(19),
	}}

	got, diags := ComputePacing(contracts, nil, day(3))
	require.Empty(t, diags)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ElapsedDays)
	assert.Zero(t, got[0].ExpectedToDate)
	assert.Zero(t, got[0].PacePct)
	assert.Equal(t, 16, got[0].DaysRemaining)
}

func TestComputePacingReportsBadRows(t *testing.T) {
	contracts := []domain.CampaignContract{
		{ID: "good-1", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(10)},
		{ID: "reversed", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(9), End: day(8)},
		{ID: "nan", Model: domain.ModelCPM, ContractedVolume: math.NaN(), Start: day(1), End: day(10)},
		{ID: "negative", Model: domain.ModelCPM, ContractedVolume: -5, Start: day(1), End: day(10)},
		{ID: "no-start", Model: domain.ModelCPM, ContractedVolume: 1000, End: day(10)},
		{ID: "", Model: domain.ModelCPM, ContractedVolume: 1000, Start: day(1), End: day(10)},
		{ID: "good-2", Model: domain.ModelCPV, ContractedVolume: 1000, Start: day(1), End: day(10)},
	}

	got, diags := ComputePacing(contracts, nil, day(2))

	require.Len(t, got, 2)
	assert.Equal(t, "good-1", got[0].CampaignID)
	assert.Equal(t, "good-2", got[1].CampaignID)

	require.Len(t, diags, 5)
	wantRows := []int{1, 2, 3, 4, 5}
	for i, d := range diags {
		assert.Equal(t, wantRows[i], d.Row)
		assert.ErrorIs(t, d, domain.ErrInvalidContract)
		assert.Equal(t, "invalid_contract", d.Kind())
	}
	assert.Equal(t, "reversed", diags[0].CampaignID)
}

func TestDailyTargetIsFiniteAndNonNegative(t *testing.T) {
	volumes := []float64{0, 1, 999.5, 1e9}
	spans := []int{0, 1, 30, 365}
	for _, v := range volumes {
		for _, span := range spans {
			contracts := []domain.CampaignContract{{
				ID: "C", Model: domain.ModelCPM, ContractedVolume: v, Start: day(1), End: day(1 + span),
			}}
			got, diags := ComputePacing(contracts, nil, day(1))
			require.Empty(t, diags)
			require.Len(t, got, 1)

			target := got[0].DailyTarget
			assert.False(t, math.IsNaN(target) || math.IsInf(target, 0), "volume %v span %d", v, span)
			assert.GreaterOrEqual(t, target, 0.0)
			assert.Equal(t, span+1, got[0].TotalDays)
		}
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]domain.PacingResult{
		{Status: domain.StatusUnder, PacePct: 50, Underperforming: true},
		{Status: domain.StatusOnTrack, PacePct: 100},
		{Status: domain.StatusOver, PacePct: 150},
		{Status: domain.StatusUnder, PacePct: 80},
	})
	assert.Equal(t, Summary{
		Campaigns:       4,
		Under:           2,
		OnTrack:         1,
		Over:            1,
		Underperforming: 1,
		MeanPacePct:     95,
	}, s)
}
