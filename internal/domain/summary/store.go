package summary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Store owns the in-memory weekly summary collection, keyed by (year, month,
// week-in-month). Records are created lazily on first upsert and never
// deleted.
type Store struct {
	gateway Gateway
	logger  *slog.Logger

	mu        sync.Mutex
	summaries []Summary
}

// NewStore creates an empty summary store.
func NewStore(gateway Gateway, logger *slog.Logger) *Store {
	return &Store{gateway: gateway, logger: logger}
}

// Load replaces the in-memory collection with the persisted one.
func (s *Store) Load(ctx context.Context) error {
	summaries, err := s.gateway.LoadSummaries(ctx)
	if err != nil {
		return fmt.Errorf("loading summaries: %w", err)
	}

	s.mu.Lock()
	s.summaries = summaries
	s.mu.Unlock()
	return nil
}

// Upsert replaces the content under key, inserting the record on first use.
// Empty content is permitted.
func (s *Store) Upsert(ctx context.Context, key Key, content string) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(key)
	if i < 0 {
		s.summaries = append(s.summaries, Summary{
			ID:        key.ID(),
			Year:      key.Year,
			Month:     int(key.Month),
			WeekIndex: key.Week,
		})
		i = len(s.summaries) - 1
	}
	s.summaries[i].Content = content

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	rec := s.summaries[i]
	return &rec, nil
}

// Get returns the content under key, or the empty string when no record
// exists. It never fails.
func (s *Store) Get(key Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(key); i >= 0 {
		return s.summaries[i].Content
	}
	return ""
}

// ForMonth returns week-index → content for every stored week of the month.
func (s *Store) ForMonth(year int, month int) map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]string)
	for _, rec := range s.summaries {
		if rec.Year == year && rec.Month == month {
			out[rec.WeekIndex] = rec.Content
		}
	}
	return out
}

func (s *Store) indexLocked(key Key) int {
	for i := range s.summaries {
		if s.summaries[i].Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store) flushLocked(ctx context.Context) error {
	snapshot := make([]Summary, len(s.summaries))
	copy(snapshot, s.summaries)

	if err := s.gateway.SaveSummaries(ctx, snapshot); err != nil {
		if s.logger != nil {
			s.logger.Error("summary flush failed", "error", err)
		}
		return fmt.Errorf("persisting summaries: %w", err)
	}
	return nil
}
