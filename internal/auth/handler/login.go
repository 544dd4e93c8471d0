package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vrotondo/session-auth-service/internal/auth"
	"github.com/vrotondo/session-auth-service/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
}

// Login authenticates by username alone. Anything that is not a
// validation miss or an unknown username collapses into a generic 400;
// the real cause goes to the log, not the client.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request body rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	token, minted, err := h.sessionToken(c)
	if err != nil {
		slog.Error("login failed to mint session token", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	u, err := h.service.Login(c.Request.Context(), token, req.Username)
	switch {
	case err == nil:
		// ok
	case errors.Is(err, auth.ErrUsernameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
		return
	case errors.Is(err, auth.ErrInvalidLogin):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid login"})
		return
	default:
		slog.Error("login failed", "username", req.Username, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	if minted {
		session.SetCookie(c.Writer, token, time.Now().Add(h.sessionTTL), h.cookieOpts)
	}

	c.JSON(http.StatusOK, u)
}

// sessionToken reuses a verifiable token from the request cookie, or
// mints a fresh one for first-time clients.
func (h *Handler) sessionToken(c *gin.Context) (token string, minted bool, err error) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" && h.codec.Verify(cookie.Value) {
		return cookie.Value, false, nil
	}

	token, err = h.codec.Issue()
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}
