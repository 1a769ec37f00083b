package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qiwen/planner-mcp/internal/calendar"
	"github.com/qiwen/planner-mcp/internal/domain/event"
	"github.com/qiwen/planner-mcp/internal/domain/plan"
	"github.com/qiwen/planner-mcp/internal/domain/summary"
	"github.com/qiwen/planner-mcp/internal/ics"
)

// registerTools registers all planner tools on the server.
func registerTools(server *sdkmcp.Server, svc Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_month_view",
		Description: "Get the annotated month grid: day cells with lunar labels, holiday overrides, day kinds and events, plus per-week summaries",
	}, getMonthView(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_event",
		Description: "Add an event on a date. The date is fixed for the event's lifetime",
	}, addEvent(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "edit_event",
		Description: "Edit an event's title, time and completion. The date never changes",
	}, editEvent(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_event",
		Description: "Flip an event's completed flag",
	}, toggleEvent(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_event",
		Description: "Delete an event. Deleting an unknown id is a no-op",
	}, deleteEvent(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_events",
		Description: "List the events on a date in creation order",
	}, listEvents(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_week_summary",
		Description: "Create or replace the free-text summary of a week row of a month grid",
	}, setWeekSummary(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_week_summary",
		Description: "Get the summary of a week row; empty string when never set",
	}, getWeekSummary(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_yearly_plan",
		Description: "Get a year's four-category plan, default-empty when never edited",
	}, getYearlyPlan(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_yearly_plan",
		Description: "Set one field (goals, work, life, other) of a year's plan",
	}, updateYearlyPlan(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_month_ics",
		Description: "Export a month's events as an iCalendar document",
	}, exportMonthICS(svc))
}

func validMonth(year, month int) error {
	if year <= 0 || month < 1 || month > 12 {
		return invalidInput("year and month (1-12) are required")
	}
	return nil
}

func getMonthView(svc Services) func(context.Context, *sdkmcp.CallToolRequest, GetMonthViewInput) (*sdkmcp.CallToolResult, MonthViewOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetMonthViewInput) (*sdkmcp.CallToolResult, MonthViewOutput, error) {
		if err := validMonth(in.Year, in.Month); err != nil {
			return nil, MonthViewOutput{}, err
		}

		today := calendar.Today(svc.now())
		view := calendar.BuildMonthView(svc.Almanac, in.Year, time.Month(in.Month), today)
		summaries := svc.Summaries.ForMonth(in.Year, in.Month)

		weeks := make([]MonthWeek, len(view.Weeks))
		for wi, row := range view.Weeks {
			cells := make([]MonthCell, len(row))
			for ci, cell := range row {
				mc := MonthCell{DayCell: cell}
				if cell.Date != "" {
					mc.Events = svc.Events.QueryByDate(cell.Date)
				}
				cells[ci] = mc
			}
			weeks[wi] = MonthWeek{Cells: cells, Summary: summaries[wi]}
		}

		out := MonthViewOutput{Year: in.Year, Month: in.Month, Today: today.String(), Weeks: weeks}
		return nil, out, nil
	}
}

func addEvent(svc Services) func(context.Context, *sdkmcp.CallToolRequest, AddEventInput) (*sdkmcp.CallToolResult, event.Event, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in AddEventInput) (*sdkmcp.CallToolResult, event.Event, error) {
		ev, err := svc.Events.Add(ctx, event.AddRequest{Date: in.Date, Title: in.Title, Time: in.Time})
		if err != nil {
			return nil, event.Event{}, mapError(err)
		}
		return nil, *ev, nil
	}
}

func editEvent(svc Services) func(context.Context, *sdkmcp.CallToolRequest, EditEventInput) (*sdkmcp.CallToolResult, event.Event, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in EditEventInput) (*sdkmcp.CallToolResult, event.Event, error) {
		ev, err := svc.Events.Edit(ctx, event.EditRequest{ID: in.ID, Title: in.Title, Time: in.Time, Completed: in.Completed})
		if err != nil {
			return nil, event.Event{}, mapError(err)
		}
		return nil, *ev, nil
	}
}

func toggleEvent(svc Services) func(context.Context, *sdkmcp.CallToolRequest, EventIDInput) (*sdkmcp.CallToolResult, event.Event, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in EventIDInput) (*sdkmcp.CallToolResult, event.Event, error) {
		ev, err := svc.Events.ToggleComplete(ctx, in.ID)
		if err != nil {
			return nil, event.Event{}, mapError(err)
		}
		return nil, *ev, nil
	}
}

func deleteEvent(svc Services) func(context.Context, *sdkmcp.CallToolRequest, EventIDInput) (*sdkmcp.CallToolResult, DeleteEventOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in EventIDInput) (*sdkmcp.CallToolResult, DeleteEventOutput, error) {
		if err := svc.Events.Delete(ctx, in.ID); err != nil {
			return nil, DeleteEventOutput{}, mapError(err)
		}
		return nil, DeleteEventOutput{Deleted: true}, nil
	}
}

func listEvents(svc Services) func(context.Context, *sdkmcp.CallToolRequest, ListEventsInput) (*sdkmcp.CallToolResult, ListEventsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in ListEventsInput) (*sdkmcp.CallToolResult, ListEventsOutput, error) {
		if _, err := calendar.ParseDate(in.Date); err != nil {
			return nil, ListEventsOutput{}, invalidInput("date must be YYYY-MM-DD")
		}
		events := svc.Events.QueryByDate(in.Date)
		if events == nil {
			events = []event.Event{}
		}
		return nil, ListEventsOutput{Events: events}, nil
	}
}

func setWeekSummary(svc Services) func(context.Context, *sdkmcp.CallToolRequest, SetWeekSummaryInput) (*sdkmcp.CallToolResult, summary.Summary, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in SetWeekSummaryInput) (*sdkmcp.CallToolResult, summary.Summary, error) {
		if err := validMonth(in.Year, in.Month); err != nil {
			return nil, summary.Summary{}, err
		}
		if in.Week < 0 || in.Week > 5 {
			return nil, summary.Summary{}, invalidInput("week must be a grid row index between 0 and 5")
		}
		key := summary.Key{Year: in.Year, Month: time.Month(in.Month), Week: in.Week}
		rec, err := svc.Summaries.Upsert(ctx, key, in.Content)
		if err != nil {
			return nil, summary.Summary{}, mapError(err)
		}
		return nil, *rec, nil
	}
}

func getWeekSummary(svc Services) func(context.Context, *sdkmcp.CallToolRequest, WeekSummaryInput) (*sdkmcp.CallToolResult, WeekSummaryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in WeekSummaryInput) (*sdkmcp.CallToolResult, WeekSummaryOutput, error) {
		if err := validMonth(in.Year, in.Month); err != nil {
			return nil, WeekSummaryOutput{}, err
		}
		key := summary.Key{Year: in.Year, Month: time.Month(in.Month), Week: in.Week}
		return nil, WeekSummaryOutput{Content: svc.Summaries.Get(key)}, nil
	}
}

func getYearlyPlan(svc Services) func(context.Context, *sdkmcp.CallToolRequest, YearInput) (*sdkmcp.CallToolResult, plan.Plan, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in YearInput) (*sdkmcp.CallToolResult, plan.Plan, error) {
		p, err := svc.Plans.Load(ctx, in.Year)
		if err != nil {
			return nil, plan.Plan{}, mapError(err)
		}
		return nil, p, nil
	}
}

func updateYearlyPlan(svc Services) func(context.Context, *sdkmcp.CallToolRequest, UpdateYearlyPlanInput) (*sdkmcp.CallToolResult, plan.Plan, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpdateYearlyPlanInput) (*sdkmcp.CallToolResult, plan.Plan, error) {
		p, err := svc.Plans.UpdateField(ctx, in.Year, plan.Field(in.Field), in.Value)
		if err != nil {
			return nil, plan.Plan{}, mapError(err)
		}
		return nil, p, nil
	}
}

func exportMonthICS(svc Services) func(context.Context, *sdkmcp.CallToolRequest, ExportMonthInput) (*sdkmcp.CallToolResult, ExportMonthOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in ExportMonthInput) (*sdkmcp.CallToolResult, ExportMonthOutput, error) {
		if err := validMonth(in.Year, in.Month); err != nil {
			return nil, ExportMonthOutput{}, err
		}
		out, err := ics.ExportMonth(svc.Events.All(), in.Year, time.Month(in.Month), svc.now())
		if err != nil {
			return nil, ExportMonthOutput{}, mapError(err)
		}
		return nil, ExportMonthOutput{ICS: out}, nil
	}
}
