// ABOUTME: Test helpers for handler tests
// ABOUTME: Builds a Handler over a temp-file credential store

package handlers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/greenloop/ewaste-portal/config"
	"github.com/greenloop/ewaste-portal/services"
	"github.com/greenloop/ewaste-portal/store"
)

// newTestHandler builds a Handler backed by a temp-file store and a fixed
// signing key. The returned token service shares that key for minting test
// tokens.
func newTestHandler(t *testing.T) (*Handler, *services.TokenService) {
	t.Helper()

	cfg := &config.Config{
		Port:             "8080",
		JWTSecret:        "handler-test-secret",
		TokenTTLMinutes:  60,
		UsersFile:        filepath.Join(t.TempDir(), "users.json"),
		RateLimitEnabled: false,
	}

	s := store.New(cfg.UsersFile)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret), time.Hour)
	auth := services.NewAuthService(s, tokens)

	return NewHandler(cfg, auth), tokens
}
