package event

import "zenned/internal/model"

const (
	// MaxTitleLength is the column width of events.title.
	MaxTitleLength = 255
	// DerivedTitleLength bounds a title taken from the description.
	DerivedTitleLength = 60
)

// --- UseCase Inputs ---

// ListInput filters by inclusive YYYY-MM-DD bounds; empty means unbounded.
type ListInput struct {
	UserID int64
	From   string
	To     string
}

// CreateInput is one event to store. NoteOnly rows ignore Date, StartTime
// and EndTime.
type CreateInput struct {
	UserID      int64
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Completed   bool
	Description string
	NoteOnly    bool
}

// TimeValue is a time-of-day patch. An empty Value clears the column.
type TimeValue struct {
	Value string
}

// UpdateInput patches the non-nil fields of one event.
type UpdateInput struct {
	UserID    int64
	ID        int64
	StartTime *TimeValue
	EndTime   *TimeValue
	Completed *bool
}

type DeleteInput struct {
	UserID int64
	ID     int64
}

type ExportInput struct {
	UserID int64
	From   string
	To     string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Events []model.Event
}

type CreateOutput struct {
	ID    int64
	Event model.Event
}

type ExportOutput struct {
	Filename string
	Content  []byte
	Count    int
}
