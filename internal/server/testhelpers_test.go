package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"haven/internal/config"
	"haven/internal/notifications"
	"haven/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const (
	testAdminPassword = "test-admin-password"
	testSessionSecret = "test-session-secret-0123456789abcdef"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "0",
		AdminPassword: testAdminPassword,
		SessionSecret: testSessionSecret,
		Env:           "test",
	}
}

// newTestServer wires a Server with a fresh store and hub onto a bare Fiber
// app. Tests seed the store directly instead of mocking it.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	s := NewServerWithDeps(testConfig(), store.New(), notifications.NewHub())
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asAdmin attaches a valid admin session cookie to the request.
func asAdmin(t *testing.T, s *Server, req *http.Request) *http.Request {
	t.Helper()

	token, err := s.issueSessionToken()
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
