// ABOUTME: Test helpers for e2e tests
// ABOUTME: Assembles the full router over a temp-file credential store

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/greenloop/ewaste-portal/config"
	"github.com/greenloop/ewaste-portal/handlers"
	"github.com/greenloop/ewaste-portal/services"
	"github.com/greenloop/ewaste-portal/store"
)

const testSecret = "e2e-test-secret"

// newTestServer wires config, store, services, handlers, and middleware the
// same way main does, returning the assembled router.
func newTestServer(t *testing.T, mutate func(cfg *config.Config)) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Port:             "8080",
		JWTSecret:        testSecret,
		TokenTTLMinutes:  60,
		UsersFile:        filepath.Join(t.TempDir(), "users.json"),
		RateLimitEnabled: false,
		RateLimitAuth:    10,
	}
	if mutate != nil {
		mutate(cfg)
	}

	s := store.New(cfg.UsersFile)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	auth := services.NewAuthService(s, tokens)
	h := handlers.NewHandler(cfg, auth)

	return handlers.NewRouter(h, tokens, cfg)
}

// do sends a request through the router and returns the recorder.
func do(t *testing.T, router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/register", `{"username":"`+username+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Register status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Login status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode login body: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Login returned an empty token")
	}
	return resp.Token
}
