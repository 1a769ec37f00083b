package plan

// Plan is the four-category yearly plan. Conceptually exactly one record
// exists per year; a missing record reads as all-empty defaults.
type Plan struct {
	Year  int    `json:"year"`
	Goals string `json:"goals"`
	Work  string `json:"work"`
	Life  string `json:"life"`
	Other string `json:"other"`
}

// Field names one of the plan's four free-text categories.
type Field string

const (
	FieldGoals Field = "goals"
	FieldWork  Field = "work"
	FieldLife  Field = "life"
	FieldOther Field = "other"
)

// Valid reports whether f names a known category.
func (f Field) Valid() bool {
	switch f {
	case FieldGoals, FieldWork, FieldLife, FieldOther:
		return true
	}
	return false
}
