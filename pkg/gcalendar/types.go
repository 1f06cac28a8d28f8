package gcalendar

import "time"

// Config selects the credentials and target calendar.
type Config struct {
	CredentialsPath string
	CalendarID      string // default "primary"
	Timezone        string // IANA name sent with every event
}

// EventInput is a timed event to insert.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Event is what Google assigned to an inserted event.
type Event struct {
	ID       string
	HTMLLink string
}

type gcalendarImpl struct {
	service    calendarService
	calendarID string
	timezone   string
}
