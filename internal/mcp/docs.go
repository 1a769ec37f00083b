package mcp

const serverInstructions = `Personal planner over a month-grid calendar.

Use get_month_view for the annotated grid of a month: each cell carries the
day number, its Chinese lunar label, any public-holiday or compensatory
workday override, a kind classification (today/holiday/weekend/workday) and
the events on that date; each week row carries its free-text summary.

Events are managed with add_event / edit_event / toggle_event / delete_event /
list_events. An event's date is fixed at creation: to move one, delete it and
add it again on the new date.

Week summaries are keyed by (year, month, week row index within that month's
grid) via set_week_summary / get_week_summary. Yearly plans hold four
free-text categories (goals, work, life, other) via get_yearly_plan /
update_yearly_plan. export_month_ics renders a month as iCalendar text.`
