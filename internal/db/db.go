package db

import (
	"context"
	"database/sql"
)

type DB struct {
	*sql.DB
}

const usersMigration = `
CREATE TABLE IF NOT EXISTS users (
    id bigserial PRIMARY KEY,
    username text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);
`

// RunUsersMigration creates the users table consumed by the auth flow.
func RunUsersMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersMigration)
	return err
}
