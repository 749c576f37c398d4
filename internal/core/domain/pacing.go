package domain

// PaceStatus partitions campaigns by pacing ratio.
type PaceStatus string

const (
	StatusUnder   PaceStatus = "Under"
	StatusOnTrack PaceStatus = "On Track"
	StatusOver    PaceStatus = "Over"
)

// PacingResult is the derived pacing state of one active campaign for a
// given reference date. It is recomputed on every render pass.
type PacingResult struct {
	CampaignID       string        `json:"campaign_id"`
	Model            DeliveryModel `json:"model"`
	ContractedVolume float64       `json:"contracted_volume"`
	ElapsedDays      int           `json:"elapsed_days"`
	TotalDays        int           `json:"total_days"`
	DailyTarget      float64       `json:"daily_target"`
	ExpectedToDate   float64       `json:"expected_to_date"`
	DeliveredToDate  float64       `json:"delivered_to_date"`
	PacePct          float64       `json:"pace_pct"`
	Status           PaceStatus    `json:"status"`

	// Underperforming is independent of Status. HealthMetric names the
	// value that produced it: "ctr" for CPM, "completion_rate" otherwise.
	Underperforming bool    `json:"underperforming"`
	HealthMetric    string  `json:"health_metric"`
	HealthValue     float64 `json:"health_value"`

	DaysRemaining     int     `json:"days_remaining"`
	RequiredDailyRate float64 `json:"required_daily_rate"`
}

// MarginStatus grades a campaign's remaining budget share.
type MarginStatus string

const (
	MarginGood   MarginStatus = "Good"
	MarginMedium MarginStatus = "Medium"
	MarginPoor   MarginStatus = "Poor"
)
