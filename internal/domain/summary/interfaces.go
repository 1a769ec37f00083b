package summary

import "context"

// Gateway persists the full summary collection.
type Gateway interface {
	SaveSummaries(ctx context.Context, summaries []Summary) error
	LoadSummaries(ctx context.Context) ([]Summary, error)
}
