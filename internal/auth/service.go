package auth

import (
	"context"
	"errors"

	"github.com/vrotondo/session-auth-service/internal/session"
	"github.com/vrotondo/session-auth-service/internal/user"
)

var (
	// ErrUsernameRequired means the login request carried no username.
	ErrUsernameRequired = errors.New("auth: username is required")
	// ErrInvalidLogin means no user matches the presented username.
	ErrInvalidLogin = errors.New("auth: invalid login")
	// ErrNotAuthorized means no valid session resolves to a live user.
	ErrNotAuthorized = errors.New("auth: not authorized")
)

// Service composes user lookups with session mutations. Any error it
// returns that is not one of the sentinels above is an internal fault;
// the HTTP boundary decides how much of that to reveal.
type Service struct {
	users    user.Store
	sessions session.Store
}

func NewService(users user.Store, sessions session.Store) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

// Login resolves the username and binds the session token to the
// matched user's id.
func (s *Service) Login(ctx context.Context, token, username string) (*user.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidLogin
	}

	if err := s.sessions.Set(ctx, token, u.ID); err != nil {
		return nil, err
	}

	return u, nil
}

// CheckSession resolves the token to a user that still exists. A
// cleared or unknown session and a vanished user all read the same:
// not authorized.
func (s *Service) CheckSession(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrNotAuthorized
	}

	userID, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthorized
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotAuthorized
	}

	return u, nil
}

// Logout empties the session payload. The token itself survives, so a
// later login can reuse it. Logging out without a session is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Clear(ctx, token)
}
