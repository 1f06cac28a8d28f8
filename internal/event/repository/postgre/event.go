package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "zenned/internal/event/repository"
	"zenned/internal/model"
)

// ListEvents returns a user's events ordered by date, start time and id.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	table, err := r.ensureTable(ctx, opt.UserID)
	if err != nil {
		return nil, err
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM %s %s", selectColumns, table, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// CreateEvent inserts a row and returns its id.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (int64, error) {
	table, err := r.ensureTable(ctx, opt.UserID)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (title, event_date, start_time, end_time, completed, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, table)

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		opt.Title,
		nullIfEmpty(opt.Date),
		nullIfEmpty(opt.StartTime),
		nullIfEmpty(opt.EndTime),
		opt.Completed,
		nullIfEmpty(opt.Description),
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

// UpdateEvent applies a partial update to one row.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (bool, error) {
	if opt.Empty() {
		return false, repo.ErrFailedToUpdate
	}
	table, err := r.ensureTable(ctx, opt.UserID)
	if err != nil {
		return false, err
	}

	mods, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE %s %s", table, mods)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateEvent"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

// DeleteEvent removes one row.
func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) (bool, error) {
	table, err := r.ensureTable(ctx, opt.UserID)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	res, err := r.db.ExecContext(ctx, query, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteEvent"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

func scanEvent(rows *sql.Rows) (model.Event, error) {
	var (
		ev                      model.Event
		date, start, end, descr sql.NullString
	)
	if err := rows.Scan(&ev.ID, &ev.Title, &date, &start, &end, &ev.Completed, &descr, &ev.CreatedAt); err != nil {
		return model.Event{}, err
	}
	ev.Date = date.String
	ev.StartTime = start.String
	ev.EndTime = end.String
	ev.Description = descr.String
	return ev, nil
}
