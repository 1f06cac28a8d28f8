package repository

// ListEventsOptions filters a user's events. From and To are inclusive
// YYYY-MM-DD bounds; empty means unbounded. Rows without a date only match
// when both bounds are empty.
type ListEventsOptions struct {
	UserID int64
	From   string
	To     string
}

// CreateEventOptions holds the columns of a new row. Empty Date, StartTime,
// EndTime and Description are stored as NULL.
type CreateEventOptions struct {
	UserID      int64
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Completed   bool
	Description string
}

// NullableTime is a TIME column update. Valid=false stores NULL.
type NullableTime struct {
	Value string
	Valid bool
}

// UpdateEventOptions updates only the non-nil fields.
type UpdateEventOptions struct {
	UserID    int64
	ID        int64
	StartTime *NullableTime
	EndTime   *NullableTime
	Completed *bool
}

// Empty reports whether there is nothing to update.
func (o UpdateEventOptions) Empty() bool {
	return o.StartTime == nil && o.EndTime == nil && o.Completed == nil
}

// DeleteEventOptions identifies one row.
type DeleteEventOptions struct {
	UserID int64
	ID     int64
}
