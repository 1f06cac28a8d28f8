package weekplan

import (
	"regexp"
	"strings"
	"time"

	"zenned/pkg/datemath"
)

var (
	// dayPattern matches the day token at the start of a line, plus an
	// optional parenthesised ISO date. Longer names (Monday) keep their
	// first three letters.
	dayPattern = regexp.MustCompile(`^([A-Za-z]{3})[A-Za-z]*(?:\s*\((\d{4}-\d{2}-\d{2})\))?`)

	// slotPattern matches "<label> (HH:MM-HH:MM)" anywhere in a segment.
	slotPattern = regexp.MustCompile(`(.+?)\s*\((\d{2}:\d{2})-(\d{2}:\d{2})\)`)

	weekdays = map[string]int{
		"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
	}

	labelSeparators = []string{" — ", " - ", " : "}
)

// Parser converts schedule text into events.
type Parser struct {
	// MaxWeeks drops events dated MaxWeeks or more weeks past the anchor's
	// week start. Zero means no limit.
	MaxWeeks int
}

// NewState returns the initial state for a parse anchored at anchor. The
// anchor's own weekday does not count as already seen, so a first line for
// that weekday lands on the anchor itself.
func NewState(anchor time.Time) *State {
	day := datemath.Day(anchor)
	return &State{
		WeekStart:   datemath.StartOfWeek(day),
		LastWeekday: int(day.Weekday()) - 1,
		WeekOffset:  0,
	}
}

// Parse parses text with no forward limit and returns only the events.
func Parse(text string, anchor time.Time) []Event {
	var p Parser
	return p.Parse(text, anchor).Events
}

// Parse parses every line of text in order, threading one State through them.
func (p *Parser) Parse(text string, anchor time.Time) Result {
	st := NewState(anchor)
	res := Result{Events: []Event{}}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lr := p.ParseLine(st, line)
		if lr.Skipped {
			res.Diagnostics.SkippedLines++
			continue
		}
		if len(lr.Events) == 0 && lr.Truncated == 0 {
			res.Diagnostics.EmptyDays++
		}
		res.Diagnostics.DroppedSlots += lr.Dropped
		res.Diagnostics.TruncatedSlots += lr.Truncated
		res.Events = append(res.Events, lr.Events...)
	}

	return res
}

// ParseLine parses one schedule line and advances st. Lines without a slot
// separator or without a known day token are reported as skipped and leave
// st untouched. A recognised day line advances st even when none of its
// slots parse.
func (p *Parser) ParseLine(st *State, line string) LineResult {
	parts := strings.Split(strings.TrimSpace(line), "/")
	if len(parts) < 2 {
		return LineResult{Skipped: true}
	}

	m := dayPattern.FindStringSubmatch(strings.TrimSpace(parts[0]))
	if m == nil {
		return LineResult{Skipped: true}
	}
	weekday, ok := weekdays[strings.ToLower(m[1])]
	if !ok {
		return LineResult{Skipped: true}
	}

	day := resolveDate(st, weekday, m[2])
	date := datemath.FormatDate(day)

	var limit time.Time
	if p.MaxWeeks > 0 {
		limit = datemath.AddDays(st.WeekStart, 7*p.MaxWeeks)
	}

	var res LineResult
	for _, seg := range parts[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		sm := slotPattern.FindStringSubmatch(seg)
		if sm == nil {
			res.Dropped++
			continue
		}

		title, desc := splitLabel(sm[1])
		if title == "" {
			title, desc = desc, ""
		}
		if title == "" {
			res.Dropped++
			continue
		}

		if !limit.IsZero() && !day.Before(limit) {
			res.Truncated++
			continue
		}

		res.Events = append(res.Events, Event{
			Date:        date,
			Title:       title,
			Description: desc,
			StartTime:   sm[2],
			EndTime:     sm[3],
		})
	}

	return res
}

// resolveDate picks the line's calendar day and updates st.
func resolveDate(st *State, weekday int, explicit string) time.Time {
	if d, ok := datemath.ParseDate(explicit); ok {
		st.LastWeekday = weekday
		offset := datemath.FloorDiv(datemath.DiffDays(d, st.WeekStart)-weekday, 7)
		if offset >= 0 {
			st.WeekOffset = offset
		}
		return d
	}

	if weekday <= st.LastWeekday {
		st.WeekOffset++
	}
	st.LastWeekday = weekday
	return datemath.AddDays(st.WeekStart, weekday+7*st.WeekOffset)
}

// splitLabel separates a slot label into title and description.
func splitLabel(label string) (string, string) {
	if parts := strings.Split(label, "::"); len(parts) > 1 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], "::"))
	}
	for _, sep := range labelSeparators {
		if i := strings.Index(label, sep); i >= 0 {
			return strings.TrimSpace(label[:i]), strings.TrimSpace(label[i+len(sep):])
		}
	}
	return strings.TrimSpace(label), ""
}
