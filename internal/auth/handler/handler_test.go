package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vrotondo/session-auth-service/internal/auth"
	"github.com/vrotondo/session-auth-service/internal/middleware"
	"github.com/vrotondo/session-auth-service/internal/session"
	"github.com/vrotondo/session-auth-service/internal/user"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *user.MemoryStore) {
	t.Helper()

	users := user.NewMemoryStore()
	sessions := session.NewMemoryStore()
	codec := session.NewCodec(testSecret)

	service := auth.NewService(users, sessions)
	authMW := middleware.NewAuthMiddleware(service, codec)
	h := NewHandler(service, codec, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	}, time.Hour)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router, authMW)

	return router, users
}

func do(router *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.CookieName)
	return nil
}

func TestLoginSuccess(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	w := do(router, http.MethodPost, "/login", `{"username":"Alice"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":1,"username":"Alice"}`, w.Body.String())

	cookie := sessionCookie(t, w)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
}

func TestLoginUnknownUsername(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/login", `{"username":"Ghost"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Invalid login"}`, w.Body.String())
}

func TestLoginMissingUsername(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/login", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Username is required"}`, w.Body.String())
}

func TestLoginEmptyUsername(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	w := do(router, http.MethodPost, "/login", `{"username":""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Username is required"}`, w.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/login", `{"username":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Login failed"}`, w.Body.String())
}

func TestCheckSessionAfterLogin(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	login := do(router, http.MethodPost, "/login", `{"username":"Alice"}`)
	cookie := sessionCookie(t, login)

	w := do(router, http.MethodGet, "/check_session", "", cookie)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":1,"username":"Alice"}`, w.Body.String())
}

func TestCheckSessionWithoutCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/check_session", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"401: Not Authorized"}`, w.Body.String())
}

func TestCheckSessionForgedCookie(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	forged := &http.Cookie{Name: session.CookieName, Value: "forged.token"}
	w := do(router, http.MethodGet, "/check_session", "", forged)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"401: Not Authorized"}`, w.Body.String())
}

func TestLogoutEndsSession(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	login := do(router, http.MethodPost, "/login", `{"username":"Alice"}`)
	cookie := sessionCookie(t, login)

	logout := do(router, http.MethodDelete, "/logout", "", cookie)
	require.Equal(t, http.StatusNoContent, logout.Code)
	require.Empty(t, logout.Body.String())

	// The cookie is not deleted; only the session payload is cleared.
	require.Empty(t, logout.Result().Cookies())

	w := do(router, http.MethodGet, "/check_session", "", cookie)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"401: Not Authorized"}`, w.Body.String())
}

func TestLogoutWithoutSession(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodDelete, "/logout", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
}

func TestReloginReusesToken(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	first := do(router, http.MethodPost, "/login", `{"username":"Alice"}`)
	cookie := sessionCookie(t, first)

	second := do(router, http.MethodPost, "/login", `{"username":"Alice"}`, cookie)
	require.Equal(t, http.StatusOK, second.Code)

	// A valid token is kept; no replacement cookie is issued.
	require.Empty(t, second.Result().Cookies())
}

func TestLoginReplacesForgedCookie(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	forged := &http.Cookie{Name: session.CookieName, Value: "forged.token"}
	w := do(router, http.MethodPost, "/login", `{"username":"Alice"}`, forged)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotEqual(t, forged.Value, cookie.Value)
}

func TestFullLifecycle(t *testing.T) {
	router, users := newTestRouter(t)
	users.Add("Alice")

	login := do(router, http.MethodPost, "/login", `{"username":"Alice"}`)
	require.Equal(t, http.StatusOK, login.Code)
	require.JSONEq(t, `{"id":1,"username":"Alice"}`, login.Body.String())
	cookie := sessionCookie(t, login)

	check := do(router, http.MethodGet, "/check_session", "", cookie)
	require.Equal(t, http.StatusOK, check.Code)
	require.JSONEq(t, `{"id":1,"username":"Alice"}`, check.Body.String())

	logout := do(router, http.MethodDelete, "/logout", "", cookie)
	require.Equal(t, http.StatusNoContent, logout.Code)

	recheck := do(router, http.MethodGet, "/check_session", "", cookie)
	require.Equal(t, http.StatusUnauthorized, recheck.Code)
	require.JSONEq(t, `{"message":"401: Not Authorized"}`, recheck.Body.String())
}
