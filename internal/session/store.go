package session

import "context"

// Store associates an opaque session token with a user id, or with no
// user at all. Clearing a session empties its payload but keeps the
// token alive: a logged-out client presents the same token and simply
// reads as anonymous.
type Store interface {
	// Set stores or overwrites the association. Last write wins.
	Set(ctx context.Context, token string, userID int64) error
	// Get reports the stored user id. ok is false when the token is
	// unknown or the session carries no user.
	Get(ctx context.Context, token string) (userID int64, ok bool, err error)
	// Clear empties the payload for the token without deleting it.
	Clear(ctx context.Context, token string) error
}
