package weekplan

import (
	"fmt"
	"strings"
	"time"

	"zenned/pkg/datemath"
)

const systemPromptTemplate = `You are a scheduling assistant that converts a planning request into a day-by-day calendar.

Today is %s (%s). The anchor date is %s (%s).

Reply with schedule lines only, one line per day that has tasks, using exactly this grammar:
<DayAbbrev> (<YYYY-MM-DD>)/<Title> :: <description> (<HH:MM>-<HH:MM>)/<Title> :: <description> (<HH:MM>-<HH:MM>)

Example:
%s (%s)/Deep work :: outline the quarterly report (09:00-11:00)/Gym :: leg day (18:00-19:00)

Rules:
1. DayAbbrev is one of Sun, Mon, Tue, Wed, Thu, Fri, Sat and must match the weekday of the ISO date on the same line.
2. The first line must be dated %s, the anchor date.
3. ISO dates never decrease from one line to the next. A plan may span several weeks.
4. When the request asks for something "N days before" or "N weeks before" a deadline, count back from the deadline but never place anything before the anchor date.
5. Times use 24-hour HH:MM and every slot ends after it starts.
6. Every title names the actual task. Never write placeholders such as "Task", "TBD" or "Event".
7. Slots on the same line are separated by "/" and the title is separated from its description by "::".
8. Output nothing else: no greeting, no explanation, no headings, no bullets, no Markdown, no code fences.`

const userPromptSuffix = `

Follow the line format above strictly. Do not wrap anything in quotation marks and do not write escaped newline sequences such as "\n" or "\\n"; put each day on its own real line.`

// ResolveAnchor returns the calendar day named by anchor when it is a valid
// YYYY-MM-DD date, otherwise today's calendar day.
func ResolveAnchor(anchor string, today time.Time) time.Time {
	if d, ok := datemath.ParseDate(strings.TrimSpace(anchor)); ok {
		return d
	}
	return datemath.Day(today)
}

// BuildPrompt builds the system and user messages for a planning request.
// userText must be non-empty after trimming; that is checked by the caller.
func BuildPrompt(userText string, today time.Time, anchor string) Prompt {
	day := datemath.Day(today)
	anchorDay := ResolveAnchor(anchor, today)
	anchorISO := datemath.FormatDate(anchorDay)

	system := fmt.Sprintf(systemPromptTemplate,
		datemath.FormatDate(day), day.Weekday(),
		anchorISO, anchorDay.Weekday(),
		dayAbbrev(anchorDay.Weekday()), anchorISO,
		anchorISO,
	)

	return Prompt{
		System: system,
		User:   strings.TrimSpace(userText) + userPromptSuffix,
	}
}

func dayAbbrev(wd time.Weekday) string {
	return wd.String()[:3]
}
