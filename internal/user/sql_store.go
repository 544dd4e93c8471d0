package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vrotondo/session-auth-service/internal/db"
)

// SQLStore resolves users from Postgres.
type SQLStore struct {
	db *db.DB
}

func NewSQLStore(db *db.DB) *SQLStore {
	return &SQLStore{db: db}
}

// FindByUsername returns the lowest-id match, so lookups stay stable
// (insertion order) even if the uniqueness index is ever dropped.
func (s *SQLStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username
		FROM users
		WHERE username = $1
		ORDER BY id
		LIMIT 1
	`, username).Scan(&u.ID, &u.Username)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *SQLStore) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
