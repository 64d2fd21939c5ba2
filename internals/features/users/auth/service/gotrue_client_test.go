package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *GoTrueClient {
	return &GoTrueClient{
		BaseURL: baseURL,
		AnonKey: "anon-key",
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSignInWithPasswordSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin@school.test", body["email"])
		require.Equal(t, "secret123", body["password"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-abc",
			"refresh_token": "refresh-def",
			"expires_in":    3600,
			"user":          map[string]string{"id": "user-1", "email": "admin@school.test"},
		})
	}))
	defer srv.Close()

	session, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "admin@school.test", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "access-abc", session.AccessToken)
	assert.Equal(t, "refresh-def", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "admin@school.test", session.User.Email)
}

func TestSignInWithPasswordBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "admin@school.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPasswordUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "admin@school.test", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestSignInWithPasswordEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "admin@school.test", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "Bearer access-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "admin@school.test"})
	}))
	defer srv.Close()

	user, err := newTestClient(srv.URL).GetUser(context.Background(), "access-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "admin@school.test", user.Email)
}

func TestGetUserStaleToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetUser(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutHitsLogoutEndpoint(t *testing.T) {
	var hit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/logout", r.URL.Path)
		require.Equal(t, "Bearer access-abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SignOut(context.Background(), "access-abc")
	require.NoError(t, err)
	assert.True(t, hit)
}
