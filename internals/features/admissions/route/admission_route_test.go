package route

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwantayf_backend/internals/configs"
)

// Review endpoints sit behind the auth gate; the submission endpoint does
// not. The gate fires before any handler runs, so a nil DB is safe for
// the 401 assertions.
func TestReviewEndpointsRequireSession(t *testing.T) {
	prev := configs.SupabaseJWTSecret
	configs.SupabaseJWTSecret = "test-secret"
	t.Cleanup(func() { configs.SupabaseJWTSecret = prev })

	app := fiber.New()
	AdmissionRoutes(app, nil)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admissions"},
		{http.MethodGet, "/api/admissions/some-id"},
		{http.MethodPatch, "/api/admissions/some-id"},
		{http.MethodDelete, "/api/admissions/some-id"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}
