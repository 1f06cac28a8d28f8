package model

import "testing"

func TestEvent_DatedTimed(t *testing.T) {
	tests := []struct {
		name      string
		ev        Event
		wantDated bool
		wantTimed bool
	}{
		{name: "note", ev: Event{Title: "x"}},
		{name: "all day", ev: Event{Date: "2024-01-01"}, wantDated: true},
		{name: "half range", ev: Event{Date: "2024-01-01", StartTime: "09:00"}, wantDated: true},
		{name: "timed", ev: Event{Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"}, wantDated: true, wantTimed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Dated(); got != tt.wantDated {
				t.Errorf("Dated() = %v, want %v", got, tt.wantDated)
			}
			if got := tt.ev.Timed(); got != tt.wantTimed {
				t.Errorf("Timed() = %v, want %v", got, tt.wantTimed)
			}
		})
	}
}
