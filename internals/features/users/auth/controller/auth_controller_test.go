package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwantayf_backend/internals/features/users/auth/service"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

type stubGateway struct {
	session   *service.Session
	signInErr error

	user       *service.User
	getUserErr error

	signOutCalls int
}

func (s *stubGateway) SignInWithPassword(_ context.Context, email, password string) (*service.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.session, nil
}

func (s *stubGateway) GetUser(_ context.Context, accessToken string) (*service.User, error) {
	if s.getUserErr != nil {
		return nil, s.getUserErr
	}
	return s.user, nil
}

func (s *stubGateway) SignOut(_ context.Context, accessToken string) error {
	s.signOutCalls++
	return nil
}

func newAuthApp(gw AuthGateway) *fiber.App {
	app := fiber.New()
	ctrl := NewAuthController(gw)
	app.Post("/api/auth/login", ctrl.Login)
	app.Post("/api/logout", ctrl.Logout)
	app.Get("/api/auth/me", ctrl.Me)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieValue(resp *http.Response, name string) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func TestLoginSetsSessionCookies(t *testing.T) {
	gw := &stubGateway{
		session: &service.Session{
			AccessToken:  "access-abc",
			RefreshToken: "refresh-def",
			ExpiresIn:    3600,
			User:         service.User{ID: "user-1", Email: "admin@school.test"},
		},
	}
	app := newAuthApp(gw)

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "admin@school.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	access, ok := cookieValue(resp, authMiddleware.AccessTokenCookie)
	require.True(t, ok, "access token cookie missing")
	assert.Equal(t, "access-abc", access)

	refresh, ok := cookieValue(resp, "sb-refresh-token")
	require.True(t, ok, "refresh token cookie missing")
	assert.Equal(t, "refresh-def", refresh)

	for _, c := range resp.Cookies() {
		assert.True(t, c.HttpOnly, "cookie %s must be httpOnly", c.Name)
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin@school.test", user["email"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	gw := &stubGateway{signInErr: service.ErrInvalidCredentials}
	app := newAuthApp(gw)

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "admin@school.test",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app := newAuthApp(&stubGateway{})

	resp := postJSON(t, app, "/api/auth/login", map[string]string{"email": "admin@school.test"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMeWithoutCookie(t *testing.T) {
	app := newAuthApp(&stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsUser(t *testing.T) {
	gw := &stubGateway{user: &service.User{ID: "user-1", Email: "admin@school.test"}}
	app := newAuthApp(gw)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: authMiddleware.AccessTokenCookie, Value: "access-abc"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
}

func TestMeInvalidToken(t *testing.T) {
	gw := &stubGateway{getUserErr: service.ErrInvalidCredentials}
	app := newAuthApp(gw)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: authMiddleware.AccessTokenCookie, Value: "stale"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookiesAndNotifiesUpstream(t *testing.T) {
	gw := &stubGateway{}
	app := newAuthApp(gw)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: authMiddleware.AccessTokenCookie, Value: "access-abc"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, gw.signOutCalls)

	for _, c := range resp.Cookies() {
		assert.Empty(t, c.Value, "cookie %s should be cleared", c.Name)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	gw := &stubGateway{}
	app := newAuthApp(gw)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, gw.signOutCalls)
}
