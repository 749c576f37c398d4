package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataSource reports an unreachable or unparsable feed. The current
	// render pass is abandoned and retried on the next refresh.
	ErrDataSource = errors.New("data source error")
	// ErrInvalidContract marks a single malformed contract row.
	ErrInvalidContract = errors.New("invalid contract")
	// ErrInvalidBudgetFormat marks a budget string that cannot be normalised.
	ErrInvalidBudgetFormat = errors.New("invalid budget format")
	// ErrStorage reports a read or write failure of the alert store.
	ErrStorage = errors.New("alert storage error")
)

// Diagnostic describes a row that was skipped during a computation pass.
// Row is the zero-based index of the contract in the input sequence.
type Diagnostic struct {
	CampaignID string
	Row        int
	Err        error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("row %d (campaign %q): %v", d.Row, d.CampaignID, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Kind returns a short label for the class of failure, used for metrics
// and log attributes.
func (d Diagnostic) Kind() string {
	switch {
	case errors.Is(d.Err, ErrInvalidContract):
		return "invalid_contract"
	case errors.Is(d.Err, ErrInvalidBudgetFormat):
		return "invalid_budget"
	default:
		return "other"
	}
}
