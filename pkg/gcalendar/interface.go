package gcalendar

import "context"

// IGCalendar inserts events into one Google calendar.
type IGCalendar interface {
	InsertEvent(ctx context.Context, ev EventInput) (Event, error)
}
