// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and auth gating

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
// Protected routes are gated behind bearer-token auth by the router.
type Route struct {
	Method    string           // HTTP method (GET, POST, etc.)
	Path      string           // URL path (e.g., "/api/register")
	Handler   http.HandlerFunc // Handler function
	Protected bool             // Requires a valid bearer token
	AuthRate  bool             // Subject to the stricter auth rate limit
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/health", Handler: h.Health},

		// Authentication
		{Method: http.MethodPost, Path: "/api/register", Handler: h.Register, AuthRate: true},
		{Method: http.MethodPost, Path: "/api/login", Handler: h.Login, AuthRate: true},

		// E-waste operations
		{Method: http.MethodPost, Path: "/api/classify", Handler: h.Classify, Protected: true},
		{Method: http.MethodGet, Path: "/api/recycling_locations", Handler: h.Locations, Protected: true},
		{Method: http.MethodGet, Path: "/api/education/guides", Handler: h.Guides},
	}
}
