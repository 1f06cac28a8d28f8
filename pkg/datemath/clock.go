package datemath

import (
	"fmt"
	"time"
)

// DateFormat is the ISO calendar-date layout used on the wire.
const DateFormat = "2006-01-02"

// Clock answers "what day is it" in a fixed IANA timezone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// NewFixedClock returns a Clock whose current instant is always now. Used in tests.
func NewFixedClock(now time.Time) *Clock {
	return &Clock{location: now.Location(), now: func() time.Time { return now }}
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Today returns the current calendar day in the clock's timezone.
func (c *Clock) Today() time.Time {
	return Day(c.now().In(c.location))
}
