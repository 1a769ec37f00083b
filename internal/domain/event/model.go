package event

// Event is one calendar entry pinned to a single date. The date is fixed at
// creation; editing only touches title, time and completion. Moving an event
// is delete plus re-add.
type Event struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Time      string `json:"time,omitempty"`
	Completed bool   `json:"completed"`
}
