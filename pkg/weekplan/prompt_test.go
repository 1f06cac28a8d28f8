package weekplan_test

import (
	"strings"
	"testing"
	"time"

	"zenned/pkg/weekplan"
)

func TestResolveAnchor(t *testing.T) {
	today := time.Date(2024, 3, 13, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		anchor string
		want   string
	}{
		{"valid", "2024-03-10", "2024-03-10"},
		{"padded", " 2024-03-10 ", "2024-03-10"},
		{"empty", "", "2024-03-13"},
		{"not a date", "next week", "2024-03-13"},
		{"impossible date", "2024-02-31", "2024-03-13"},
		{"wrong shape", "03/10/2024", "2024-03-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekplan.ResolveAnchor(tt.anchor, today).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("ResolveAnchor(%q) = %s, want %s", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("anchor embedded", func(t *testing.T) {
		p := weekplan.BuildPrompt("  plan my exam week  ", today, "2024-03-13")

		for _, want := range []string{
			"Today is 2024-03-10 (Sunday)",
			"The anchor date is 2024-03-13 (Wednesday)",
			"<DayAbbrev> (<YYYY-MM-DD>)/<Title> :: <description> (<HH:MM>-<HH:MM>)",
			"Wed (2024-03-13)/",
			"The first line must be dated 2024-03-13",
			"never decrease",
			"placeholders",
		} {
			if !strings.Contains(p.System, want) {
				t.Errorf("system prompt missing %q", want)
			}
		}

		if !strings.HasPrefix(p.User, "plan my exam week\n\n") {
			t.Errorf("user prompt should start with trimmed text, got %q", p.User)
		}
		if !strings.Contains(p.User, "quotation marks") || !strings.Contains(p.User, "strictly") {
			t.Errorf("user prompt missing hard instruction: %q", p.User)
		}
	})

	t.Run("invalid anchor falls back to today", func(t *testing.T) {
		p := weekplan.BuildPrompt("gym twice", today, "2024-13-40")
		if !strings.Contains(p.System, "The anchor date is 2024-03-10 (Sunday)") {
			t.Errorf("expected fallback anchor, got:\n%s", p.System)
		}
	})
}
