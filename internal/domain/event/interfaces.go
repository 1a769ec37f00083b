package event

import "context"

// Gateway persists the full event collection. Every mutation flushes the whole
// store; loads replace it.
type Gateway interface {
	SaveEvents(ctx context.Context, events []Event) error
	LoadEvents(ctx context.Context) ([]Event, error)
}
