package postgre

import (
	"context"
	"fmt"

	repo "zenned/internal/event/repository"
	"zenned/pkg/postgres"
)

// TableName returns the unquoted name of a user's events table.
func TableName(userID int64) string {
	return fmt.Sprintf("events_user_%d", userID)
}

// table returns the quoted table name for userID.
func (r *implRepository) table(userID int64) (string, error) {
	if userID <= 0 {
		return "", repo.ErrInvalidTable
	}
	quoted, err := postgres.QuoteIdentifier(TableName(userID))
	if err != nil {
		return "", repo.ErrInvalidTable
	}
	return quoted, nil
}

func (r *implRepository) EnsureTable(ctx context.Context, userID int64) error {
	_, err := r.ensureTable(ctx, userID)
	return err
}

// ensureTable creates the table once per process and returns its quoted name.
func (r *implRepository) ensureTable(ctx context.Context, userID int64) (string, error) {
	table, err := r.table(userID)
	if err != nil {
		return "", err
	}
	if _, ok := r.ensured.Get(table); ok {
		return table, nil
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id          BIGSERIAL PRIMARY KEY,
			title       VARCHAR(255) NOT NULL,
			event_date  DATE NULL,
			start_time  TIME NULL,
			end_time    TIME NULL,
			completed   BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, table)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ensureTable"), err)
		return "", repo.ErrFailedToEnsure
	}

	r.ensured.Add(table, struct{}{})
	return table, nil
}
