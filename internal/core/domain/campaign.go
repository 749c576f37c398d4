package domain

import (
	"strings"
	"time"
)

// DeliveryModel is the pricing model a campaign was sold under. It decides
// which delivery channel counts toward the contracted volume.
type DeliveryModel string

const (
	ModelCPM DeliveryModel = "CPM" // cost per thousand impressions
	ModelCPV DeliveryModel = "CPV" // cost per completed view
)

// NormalizeModel upper-cases and trims a raw model value. Unknown models are
// kept verbatim and treated as CPV-equivalent by the engines.
func NormalizeModel(raw string) DeliveryModel {
	return DeliveryModel(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsCPM reports whether delivery is counted in impressions.
func (m DeliveryModel) IsCPM() bool {
	return m == ModelCPM
}

// CampaignContract represents the contract terms of one insertion order.
// Sources must normalise column names before building it. A value that
// could not be parsed at the boundary is carried as NaN (ContractedVolume)
// or the zero time (Start, End) so the engine can report the row.
type CampaignContract struct {
	ID               string
	Model            DeliveryModel
	ContractedVolume float64
	Start            time.Time
	End              time.Time
	// Budget is the raw, possibly locale-formatted, monetary string
	// (e.g. "R$ 1.234,56"). Empty means the campaign carries no budget.
	Budget string
}

// HasBudget reports whether the contract is margin-tracked.
func (c CampaignContract) HasBudget() bool {
	return strings.TrimSpace(c.Budget) != ""
}
