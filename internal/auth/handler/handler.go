package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vrotondo/session-auth-service/internal/auth"
	"github.com/vrotondo/session-auth-service/internal/middleware"
	"github.com/vrotondo/session-auth-service/internal/session"
)

type Handler struct {
	service    *auth.Service
	codec      *session.Codec
	cookieOpts session.CookieOptions
	sessionTTL time.Duration
}

func NewHandler(
	service *auth.Service,
	codec *session.Codec,
	cookieOpts session.CookieOptions,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		service:    service,
		codec:      codec,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, authMW *middleware.AuthMiddleware) {
	r.POST("/login", h.Login)
	r.GET("/check_session", authMW.RequireSession(), h.CheckSession)
	r.DELETE("/logout", h.Logout)
}

// CheckSession serializes the user resolved by RequireSession.
func (h *Handler) CheckSession(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		// RequireSession always runs first; this is a wiring bug.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "401: Not Authorized"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// Logout empties the session payload and answers 204 no matter what.
// The cookie and its token stay with the client.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" && h.codec.Verify(cookie.Value) {
		if err := h.service.Logout(c.Request.Context(), cookie.Value); err != nil {
			slog.Error("logout failed to clear session", "error", err)
		}
	}

	c.Status(http.StatusNoContent)
}
