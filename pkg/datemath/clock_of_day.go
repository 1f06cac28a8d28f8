package datemath

import "time"

// TimeOfDayFormat is the 24-hour HH:MM layout used for event start and end times.
const TimeOfDayFormat = "15:04"

// ParseTimeOfDay validates an HH:MM string. Seconds are accepted and dropped
// because Postgres TIME columns may come back as HH:MM:SS.
func ParseTimeOfDay(s string) (string, bool) {
	for _, layout := range []string{TimeOfDayFormat, "15:04:05"} {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeOfDayFormat), true
		}
	}
	return "", false
}

// CombineDateTime returns the instant at day + HH:MM in loc.
func CombineDateTime(day time.Time, hhmm string, loc *time.Location) (time.Time, bool) {
	clock, ok := ParseTimeOfDay(hhmm)
	if !ok {
		return time.Time{}, false
	}
	t, _ := time.Parse(TimeOfDayFormat, clock)
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), true
}
