package datemath

import "time"

// Calendar days are represented as time.Time at 00:00 UTC. Arithmetic on them
// never crosses a DST transition, so adding N days always moves N labels.

// Day truncates t to its calendar day, as seen in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD calendar date. Strings that have the
// right shape but name a day that does not exist (2024-02-31) are rejected.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateFormat) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate formats a calendar day as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// AddDays moves a calendar day by n days.
func AddDays(d time.Time, n int) time.Time {
	return Day(d).AddDate(0, 0, n)
}

// StartOfWeek returns the Sunday on or before d.
func StartOfWeek(d time.Time) time.Time {
	d = Day(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DiffDays returns the number of whole days from b to a (a - b).
func DiffDays(a, b time.Time) int {
	return int(Day(a).Sub(Day(b)).Hours() / 24)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
