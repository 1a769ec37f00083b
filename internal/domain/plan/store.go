package plan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Store keeps the yearly plan for the currently viewed year. Switching years
// replaces the active record with that year's persisted one.
type Store struct {
	gateway Gateway
	logger  *slog.Logger

	mu     sync.Mutex
	active *Plan
}

// NewStore creates a plan store with no active year.
func NewStore(gateway Gateway, logger *slog.Logger) *Store {
	return &Store{gateway: gateway, logger: logger}
}

// Load makes year the active year and returns its plan, default-initialized
// when nothing is persisted.
func (s *Store) Load(ctx context.Context, year int) (Plan, error) {
	if year <= 0 {
		return Plan{}, ErrInvalidInput
	}

	p, err := s.gateway.LoadYearlyPlan(ctx, year)
	if err != nil {
		return Plan{}, fmt.Errorf("loading yearly plan: %w", err)
	}
	p.Year = year

	s.mu.Lock()
	s.active = &p
	s.mu.Unlock()
	return p, nil
}

// UpdateField sets one category on the given year's plan and persists it. If
// the year is not the active one, its record is loaded (or defaulted) first.
func (s *Store) UpdateField(ctx context.Context, year int, field Field, value string) (Plan, error) {
	if year <= 0 || !field.Valid() {
		return Plan{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.Year != year {
		p, err := s.gateway.LoadYearlyPlan(ctx, year)
		if err != nil {
			return Plan{}, fmt.Errorf("loading yearly plan: %w", err)
		}
		p.Year = year
		s.active = &p
	}

	switch field {
	case FieldGoals:
		s.active.Goals = value
	case FieldWork:
		s.active.Work = value
	case FieldLife:
		s.active.Life = value
	case FieldOther:
		s.active.Other = value
	}

	if err := s.gateway.SaveYearlyPlan(ctx, *s.active); err != nil {
		if s.logger != nil {
			s.logger.Error("plan flush failed", "error", err, "year", year)
		}
		return Plan{}, fmt.Errorf("persisting yearly plan: %w", err)
	}
	return *s.active, nil
}
