package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vrotondo/session-auth-service/internal/auth"
	"github.com/vrotondo/session-auth-service/internal/session"
	"github.com/vrotondo/session-auth-service/internal/user"
)

const contextUserKey = "auth.user"

// UserFromContext returns the user attached by RequireSession.
func UserFromContext(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

type AuthMiddleware struct {
	service *auth.Service
	codec   *session.Codec
}

func NewAuthMiddleware(service *auth.Service, codec *session.Codec) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		codec:   codec,
	}
}

// RequireSession resolves the session cookie to a live user and aborts
// with the fixed 401 body otherwise. Store faults are logged but never
// leak past the boundary.
func (a *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" || !a.codec.Verify(cookie.Value) {
			abortNotAuthorized(c)
			return
		}

		u, err := a.service.CheckSession(c.Request.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, auth.ErrNotAuthorized) {
				slog.Error("session check failed", "error", err)
			}
			abortNotAuthorized(c)
			return
		}

		c.Set(contextUserKey, u)
		c.Next()
	}
}

func abortNotAuthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "401: Not Authorized",
	})
}
