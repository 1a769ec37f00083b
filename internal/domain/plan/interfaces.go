package plan

import "context"

// Gateway persists one plan record per year under a year-scoped key.
type Gateway interface {
	SaveYearlyPlan(ctx context.Context, p Plan) error
	// LoadYearlyPlan returns the stored plan for year, or the all-empty
	// default when none exists.
	LoadYearlyPlan(ctx context.Context, year int) (Plan, error)
}
