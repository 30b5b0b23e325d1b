// ABOUTME: Router assembly applying middleware chains to the route table
// ABOUTME: Protected routes get bearer-token gating; auth routes get the stricter rate limit

package handlers

import (
	"net/http"
	"time"

	"github.com/greenloop/ewaste-portal/config"
	"github.com/greenloop/ewaste-portal/middleware"
)

// NewRouter builds the HTTP routing table from Routes(), applying logging and
// CORS to every endpoint, token verification to protected endpoints, and rate
// limiting to the register/login endpoints. Unmatched paths get a JSON 404.
func NewRouter(h *Handler, verifier middleware.TokenVerifier, cfg *config.Config) http.Handler {
	var authLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		authLimiter = middleware.NewRateLimiter(cfg.RateLimitAuth, time.Minute)
	}

	common := []func(http.HandlerFunc) http.HandlerFunc{
		middleware.LogRequest,
		middleware.CORS(cfg.CORSAllowedOrigins),
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		chain := make([]func(http.HandlerFunc) http.HandlerFunc, 0, len(common)+2)
		chain = append(chain, common...)
		if route.AuthRate {
			chain = append(chain, middleware.RateLimit(authLimiter, middleware.ClientIP))
		}
		if route.Protected {
			chain = append(chain, middleware.RequireAuth(verifier))
		}
		mux.HandleFunc(route.Path, middleware.Chain(route.Handler, chain...))
	}

	// Catch-all for unmatched routes
	mux.HandleFunc("/", middleware.Chain(h.NotFound, common...))

	return mux
}
