package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyDeliveryFact is one delivery row for a campaign on a calendar date.
// The pair (CampaignID, Date) is not unique; several rows for the same day
// are summed.
type DailyDeliveryFact struct {
	CampaignID     string
	Date           time.Time
	Impressions    int64
	Clicks         int64
	CompletedViews int64
	Revenue        decimal.Decimal
}

// Day truncates t to its calendar date in UTC. Every day-count in the
// engines goes through it so that clock time never shifts a result.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
