// ABOUTME: Bearer-token authentication middleware for protected routes
// ABOUTME: Verifies signature and expiry, places the username claim in request context

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenVerifier checks a presented token and returns the username it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const usernameKey contextKey = "username"

// RequireAuth returns middleware gating a handler behind bearer-token auth.
// A request with no Authorization header is rejected with 401; a header that
// is present but malformed, badly signed, or expired is rejected with 403.
// On success the verified username is stored in the request context.
func RequireAuth(verifier TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Debug("Auth rejected: no credential presented", "path", r.URL.Path)
				writeJSONError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				slog.Debug("Auth rejected: invalid authorization format", "path", r.URL.Path)
				writeJSONError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			username, err := verifier.Verify(token)
			if err != nil {
				slog.Debug("Auth rejected: token verification failed", "path", r.URL.Path, "error", err.Error())
				writeJSONError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			slog.Debug("Auth: valid bearer token", "path", r.URL.Path, "user", username)
			ctx := context.WithValue(r.Context(), usernameKey, username)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUsername extracts the authenticated username from the request context.
// Returns an empty string if the request was not authenticated.
func GetUsername(r *http.Request) string {
	username, ok := r.Context().Value(usernameKey).(string)
	if !ok {
		return ""
	}
	return username
}
