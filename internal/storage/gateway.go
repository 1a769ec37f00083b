// Package storage is the persistence gateway: it owns the JSON encoding of
// the three planner stores and the keys they live under. Malformed or missing
// persisted data is treated as absence, never as failure, so a corrupted
// entry can't block startup.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qiwen/planner-mcp/internal/domain/event"
	"github.com/qiwen/planner-mcp/internal/domain/plan"
	"github.com/qiwen/planner-mcp/internal/domain/summary"
	"github.com/qiwen/planner-mcp/internal/repository"
)

const (
	keyEvents    = "calendar_events"
	keySummaries = "calendar_summaries"
)

func planKey(year int) string {
	return fmt.Sprintf("yearly_plan_%d", year)
}

// Gateway implements the event, summary and plan gateway interfaces over a
// key-value store.
type Gateway struct {
	kv     repository.KV
	logger *slog.Logger
}

// NewGateway creates a persistence gateway.
func NewGateway(kv repository.KV, logger *slog.Logger) *Gateway {
	return &Gateway{kv: kv, logger: logger}
}

// SaveEvents writes the full event collection.
func (g *Gateway) SaveEvents(ctx context.Context, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	return g.save(ctx, keyEvents, events)
}

// LoadEvents reads the full event collection, empty when absent or corrupt.
func (g *Gateway) LoadEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if !g.load(ctx, keyEvents, &events) {
		return nil, nil
	}
	return events, nil
}

// SaveSummaries writes the full weekly summary collection.
func (g *Gateway) SaveSummaries(ctx context.Context, summaries []summary.Summary) error {
	if summaries == nil {
		summaries = []summary.Summary{}
	}
	return g.save(ctx, keySummaries, summaries)
}

// LoadSummaries reads the full weekly summary collection, empty when absent
// or corrupt.
func (g *Gateway) LoadSummaries(ctx context.Context) ([]summary.Summary, error) {
	var summaries []summary.Summary
	if !g.load(ctx, keySummaries, &summaries) {
		return nil, nil
	}
	return summaries, nil
}

// SaveYearlyPlan writes one year's plan under its year-scoped key.
func (g *Gateway) SaveYearlyPlan(ctx context.Context, p plan.Plan) error {
	return g.save(ctx, planKey(p.Year), p)
}

// LoadYearlyPlan reads one year's plan; absent or corrupt entries read as the
// all-empty default for that year.
func (g *Gateway) LoadYearlyPlan(ctx context.Context, year int) (plan.Plan, error) {
	var p plan.Plan
	if !g.load(ctx, planKey(year), &p) {
		return plan.Plan{Year: year}, nil
	}
	p.Year = year
	return p, nil
}

func (g *Gateway) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := g.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// load decodes the value under key into out. It reports false for missing or
// corrupt entries; callers then fall back to their defaults, discarding any
// partially decoded state.
func (g *Gateway) load(ctx context.Context, key string, out any) bool {
	value, err := g.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && g.logger != nil {
			g.logger.Warn("storage read failed, using defaults", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		if g.logger != nil {
			g.logger.Warn("corrupt storage entry, using defaults", "key", key, "error", err)
		}
		return false
	}
	return true
}
