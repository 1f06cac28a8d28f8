package datemath_test

import (
	"testing"
	"time"

	"zenned/pkg/datemath"
)

func TestNewClock(t *testing.T) {
	_, err := datemath.NewClock("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid clock: %v", err)
	}

	_, err = datemath.NewClock("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestClockToday(t *testing.T) {
	// 23:30 UTC on Mar 9 is already Mar 10 in UTC+7.
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	c := datemath.NewFixedClock(now.In(time.FixedZone("UTC+7", 7*3600)))

	got := datemath.FormatDate(c.Today())
	if got != "2024-03-10" {
		t.Errorf("Today() = %s, want 2024-03-10", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"2024-03-10", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-31", false},
		{"2024-13-01", false},
		{"2024-3-10", false},
		{"2024-03-10T00:00:00Z", false},
		{"", false},
		{"tomorrow", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := datemath.ParseDate(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && datemath.FormatDate(got) != tt.in {
				t.Errorf("round trip = %s", datemath.FormatDate(got))
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sunday is its own start", "2024-03-10", "2024-03-10"},
		{"wednesday", "2024-03-13", "2024-03-10"},
		{"saturday", "2024-03-16", "2024-03-10"},
		{"across month", "2024-04-03", "2024-03-31"},
		{"across year", "2025-01-01", "2024-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := datemath.ParseDate(tt.in)
			if got := datemath.FormatDate(datemath.StartOfWeek(d)); got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDiffDays(t *testing.T) {
	a, _ := datemath.ParseDate("2024-04-03")
	b, _ := datemath.ParseDate("2024-03-10")
	if got := datemath.DiffDays(a, b); got != 24 {
		t.Errorf("DiffDays() = %d, want 24", got)
	}
	if got := datemath.DiffDays(b, a); got != -24 {
		t.Errorf("DiffDays() = %d, want -24", got)
	}

	// A DST change in between must not lose a day.
	ny, _ := time.LoadLocation("America/New_York")
	before := time.Date(2024, 3, 9, 12, 0, 0, 0, ny)
	after := time.Date(2024, 3, 11, 12, 0, 0, 0, ny)
	if got := datemath.DiffDays(after, before); got != 2 {
		t.Errorf("DiffDays() across DST = %d, want 2", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{14, 7, 2},
		{13, 7, 1},
		{0, 7, 0},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
	}
	for _, tt := range tests {
		if got := datemath.FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"09:00", "09:00", true},
		{"23:59", "23:59", true},
		{"09:00:00", "09:00", true},
		{"24:00", "", false},
		{"9:00", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := datemath.ParseTimeOfDay(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %q, %v", tt.in, got, ok)
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	day, _ := datemath.ParseDate("2024-03-10")

	got, ok := datemath.CombineDateTime(day, "14:30", loc)
	if !ok {
		t.Fatal("expected ok")
	}
	want := time.Date(2024, 3, 10, 14, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime() = %v, want %v", got, want)
	}
}
