package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/qiwen/planner-mcp/internal/calendar"
)

// Store owns the in-memory event collection. Events keep insertion order;
// consumers display them in store order. Every mutation is flushed through the
// gateway before returning.
type Store struct {
	gateway Gateway
	logger  *slog.Logger

	mu     sync.Mutex
	events []Event
}

// NewStore creates an empty event store.
func NewStore(gateway Gateway, logger *slog.Logger) *Store {
	return &Store{gateway: gateway, logger: logger}
}

// Load replaces the in-memory collection with the persisted one.
func (s *Store) Load(ctx context.Context) error {
	events, err := s.gateway.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

// AddRequest describes an event creation request.
type AddRequest struct {
	Date  string
	Title string
	Time  string
}

// EditRequest describes an event edit. The date is deliberately absent: it is
// fixed at creation.
type EditRequest struct {
	ID        string
	Title     string
	Time      string
	Completed bool
}

// Add creates a new event with a fresh id. The date must be a valid
// YYYY-MM-DD string and the title must be non-empty after trimming.
func (s *Store) Add(ctx context.Context, req AddRequest) (*Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	if _, err := calendar.ParseDate(req.Date); err != nil {
		return nil, ErrInvalidInput
	}

	ev := Event{
		ID:    uuid.NewString(),
		Date:  req.Date,
		Title: title,
		Time:  strings.TrimSpace(req.Time),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Edit updates title, time and completion of an existing event. The event's
// date is never changed.
func (s *Store) Edit(ctx context.Context, req EditRequest) (*Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(req.ID)
	if i < 0 {
		return nil, ErrEventNotFound
	}

	s.events[i].Title = title
	s.events[i].Time = strings.TrimSpace(req.Time)
	s.events[i].Completed = req.Completed

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	ev := s.events[i]
	return &ev, nil
}

// ToggleComplete flips the completed flag.
func (s *Store) ToggleComplete(ctx context.Context, id string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, ErrEventNotFound
	}

	s.events[i].Completed = !s.events[i].Completed

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	ev := s.events[i]
	return &ev, nil
}

// Delete removes the event. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}

	s.events = append(s.events[:i], s.events[i+1:]...)
	return s.flushLocked(ctx)
}

// QueryByDate returns the events on the given date in store order.
func (s *Store) QueryByDate(date string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Event
	for _, ev := range s.events {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	return out
}

// All returns a copy of the full collection in store order.
func (s *Store) All() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) indexLocked(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) flushLocked(ctx context.Context) error {
	snapshot := make([]Event, len(s.events))
	copy(snapshot, s.events)

	if err := s.gateway.SaveEvents(ctx, snapshot); err != nil {
		if s.logger != nil {
			s.logger.Error("event flush failed", "error", err)
		}
		return fmt.Errorf("persisting events: %w", err)
	}
	return nil
}
