package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"zenned/internal/model"
	repo "zenned/internal/user/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, email, COALESCE(name, ''), password_hash, dark_mode, created_at`

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	var name any
	if opt.Name != "" {
		name = opt.Name
	}

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Email, name, opt.PasswordHash).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.DarkMode, &u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	arg := any(opt.Email)
	if opt.ID > 0 {
		query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
		arg = opt.ID
	}

	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.DarkMode, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) UpdateSettings(ctx context.Context, opt repo.UpdateSettingsOptions) (bool, error) {
	const query = `UPDATE users SET dark_mode = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, opt.DarkMode, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSettings"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateSettings"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}
