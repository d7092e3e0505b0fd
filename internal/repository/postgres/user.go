package postgres

import (
	"context"
	"errors"
	"fmt"

	"project-ninja-backend/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `
INSERT INTO users(id, fullname, username, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
`
	selectUserQuery           = `SELECT id, fullname, username, password_hash, role FROM users WHERE id=$1`
	selectUserByUsernameQuery = `SELECT id, fullname, username, password_hash, role FROM users WHERE username=$1`
	selectAllUsersQuery       = `SELECT id, fullname, username, password_hash, role FROM users ORDER BY fullname`
	selectUsersByIDsQuery     = `
SELECT u.id, u.fullname, u.username, u.password_hash, u.role
FROM unnest($1::text[]) WITH ORDINALITY AS ids(id, ord)
JOIN users u ON u.id = ids.id
ORDER BY ids.ord
`
)

// CreateUser inserts a user record.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if _, err := p.db.Exec(ctx, insertUserQuery, user.ID, user.Fullname, user.Username, user.PasswordHash, user.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, id).
		Scan(&u.ID, &u.Fullname, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername fetches a user by login name.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByUsernameQuery, username).
		Scan(&u.ID, &u.Fullname, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// ListUsers returns all user records.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectAllUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListUsersByIDs resolves users preserving the order of ids.
func (p *Postgres) ListUsersByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectUsersByIDsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]entities.User, error) {
	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Fullname, &u.Username, &u.PasswordHash, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
