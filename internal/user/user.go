package user

import "context"

// User is the record exposed by the auth flow. The serialized form
// carries exactly id and username, nothing else.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Store is a read-only view of the users table. Lookups return
// (nil, nil) when no row matches.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
