package model

import "time"

// Event is a stored calendar row. Date, StartTime and EndTime are empty for
// note-only rows.
type Event struct {
	ID          int64
	Title       string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Completed   bool
	Description string
	CreatedAt   time.Time
}

// Dated reports whether the event sits on a calendar day.
func (e Event) Dated() bool {
	return e.Date != ""
}

// Timed reports whether the event has both ends of a time range.
func (e Event) Timed() bool {
	return e.StartTime != "" && e.EndTime != ""
}
