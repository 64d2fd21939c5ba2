package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alwantayf_backend/internals/configs"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// GoTrueClient talks to the hosted auth service (Supabase GoTrue). Staff
// identities live there; this backend only brokers sessions.
type GoTrueClient struct {
	BaseURL string
	AnonKey string
	HTTP    *http.Client
}

func NewGoTrueClient() *GoTrueClient {
	return &GoTrueClient{
		BaseURL: strings.TrimRight(configs.SupabaseURL, "/"),
		AnonKey: configs.SupabaseAnonKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignInWithPassword exchanges staff credentials for a session.
func (g *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	endpoint := g.BaseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", g.AnonKey)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("auth service error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.AccessToken == "" {
		return nil, ErrInvalidCredentials
	}
	return &session, nil
}

// GetUser validates an access token upstream and returns its owner.
func (g *GoTrueClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", g.AnonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("auth service error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// SignOut revokes the session upstream. Best-effort: cookie clearing is
// what actually ends the dashboard session.
func (g *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", g.AnonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
