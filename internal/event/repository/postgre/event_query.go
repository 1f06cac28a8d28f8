package postgre

import (
	"fmt"
	"strings"

	repo "zenned/internal/event/repository"
)

const selectColumns = `id, title,
	to_char(event_date, 'YYYY-MM-DD'),
	to_char(start_time, 'HH24:MI'),
	to_char(end_time, 'HH24:MI'),
	completed, description, created_at`

// buildListQuery builds the WHERE + ORDER clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.From != "" {
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d", idx))
		args = append(args, opt.From)
		idx++
	}
	if opt.To != "" {
		conditions = append(conditions, fmt.Sprintf("event_date <= $%d", idx))
		args = append(args, opt.To)
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY event_date, start_time, id")
	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateEvent. The row id
// is always the last argument.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateEventOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.StartTime != nil {
		sets = append(sets, fmt.Sprintf("start_time = $%d", idx))
		args = append(args, nullableTime(opt.StartTime))
		idx++
	}
	if opt.EndTime != nil {
		sets = append(sets, fmt.Sprintf("end_time = $%d", idx))
		args = append(args, nullableTime(opt.EndTime))
		idx++
	}
	if opt.Completed != nil {
		sets = append(sets, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}

	args = append(args, opt.ID)
	return fmt.Sprintf("SET %s WHERE id = $%d", strings.Join(sets, ", "), idx), args
}

func nullableTime(t *repo.NullableTime) any {
	if !t.Valid {
		return nil
	}
	return t.Value
}

// nullIfEmpty maps "" to SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
