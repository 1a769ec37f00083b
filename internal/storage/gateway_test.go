package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qiwen/planner-mcp/internal/domain/event"
	"github.com/qiwen/planner-mcp/internal/domain/plan"
	"github.com/qiwen/planner-mcp/internal/domain/summary"
	"github.com/qiwen/planner-mcp/internal/repository"
	"github.com/qiwen/planner-mcp/internal/repository/mocks"
	"github.com/qiwen/planner-mcp/internal/storage"
)

// memKV is a map-backed repository.KV for round-trip tests.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestGateway_EventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	gw := storage.NewGateway(kv, nil)

	events := []event.Event{
		{ID: "e1", Date: "2024-05-01", Title: "Team sync", Time: "09:00"},
		{ID: "e2", Date: "2024-05-02", Title: "Review", Completed: true},
	}
	require.NoError(t, gw.SaveEvents(ctx, events))

	loaded, err := gw.LoadEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, events, loaded)

	_, ok := kv.data["calendar_events"]
	require.True(t, ok, "events live under the calendar_events key")
}

func TestGateway_EmptyCollectionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	gw := storage.NewGateway(kv, nil)

	require.NoError(t, gw.SaveEvents(ctx, nil))
	require.Equal(t, `[]`, kv.data["calendar_events"], "nil encodes as an empty array, not null")

	loaded, err := gw.LoadEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestGateway_SummariesRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	gw := storage.NewGateway(kv, nil)

	summaries := []summary.Summary{
		{ID: "2024-5-0", Year: 2024, Month: 5, WeekIndex: 0, Content: "Shipped v1"},
	}
	require.NoError(t, gw.SaveSummaries(ctx, summaries))

	loaded, err := gw.LoadSummaries(ctx)
	require.NoError(t, err)
	require.Equal(t, summaries, loaded)

	_, ok := kv.data["calendar_summaries"]
	require.True(t, ok)
}

func TestGateway_PlanRoundTripPerYearKey(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	gw := storage.NewGateway(kv, nil)

	p := plan.Plan{Year: 2024, Goals: "g", Work: "w", Life: "l", Other: "o"}
	require.NoError(t, gw.SaveYearlyPlan(ctx, p))

	_, ok := kv.data["yearly_plan_2024"]
	require.True(t, ok, "plans are keyed per year")

	loaded, err := gw.LoadYearlyPlan(ctx, 2024)
	require.NoError(t, err)
	require.Equal(t, p, loaded)

	// A different year reads as defaults.
	other, err := gw.LoadYearlyPlan(ctx, 2025)
	require.NoError(t, err)
	require.Equal(t, plan.Plan{Year: 2025}, other)
}

func TestGateway_MissingKeysYieldDefaults(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewGateway(newMemKV(), nil)

	events, err := gw.LoadEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, events)

	summaries, err := gw.LoadSummaries(ctx)
	require.NoError(t, err)
	require.Empty(t, summaries)

	p, err := gw.LoadYearlyPlan(ctx, 2024)
	require.NoError(t, err)
	require.Equal(t, plan.Plan{Year: 2024}, p)
}

func TestGateway_CorruptEntriesYieldDefaults(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data["calendar_events"] = `{"not": "an array"`
	kv.data["calendar_summaries"] = `42`
	kv.data["yearly_plan_2024"] = `not json at all`
	gw := storage.NewGateway(kv, nil)

	events, err := gw.LoadEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, events)

	summaries, err := gw.LoadSummaries(ctx)
	require.NoError(t, err)
	require.Empty(t, summaries)

	p, err := gw.LoadYearlyPlan(ctx, 2024)
	require.NoError(t, err)
	require.Equal(t, plan.Plan{Year: 2024}, p)
}

func TestGateway_ReadFailureYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	kv := &mocks.KV{}
	kv.On("Get", ctx, "calendar_events").Return("", errors.New("io error"))
	gw := storage.NewGateway(kv, nil)

	events, err := gw.LoadEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, events)
	kv.AssertExpectations(t)
}

func TestGateway_WriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	kv := &mocks.KV{}
	kv.On("Set", ctx, "calendar_events", mock.Anything).Return(errors.New("disk full"))
	gw := storage.NewGateway(kv, nil)

	err := gw.SaveEvents(ctx, []event.Event{{ID: "e1", Date: "2024-05-01", Title: "x"}})
	require.Error(t, err)
}
