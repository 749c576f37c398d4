package port

import "context"

// AlertStore is the shared broadcast list every viewing session polls. It
// has no owner: any session may append to, read or clear it. Entries have
// no identity and are returned in append order.
type AlertStore interface {
	// List returns the current alerts. A store that was never written to
	// returns an empty slice and no error.
	List(ctx context.Context) ([]string, error)
	// Append adds a message to the end of the list, keeping every entry
	// already present.
	Append(ctx context.Context, message string) error
	// Clear removes all entries. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
