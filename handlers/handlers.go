// ABOUTME: HTTP handler plumbing for the e-waste portal API
// ABOUTME: Holds shared dependencies and the writeJSON/writeError response helpers

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/greenloop/ewaste-portal/config"
	"github.com/greenloop/ewaste-portal/models"
	"github.com/greenloop/ewaste-portal/services"
)

type Handler struct {
	cfg       *config.Config
	auth      *services.AuthService
	locations []models.RecyclingLocation
	guides    []models.EducationGuide
}

// NewHandler wires the handler set. The location and guide tables are fixed
// reference data loaded once.
func NewHandler(cfg *config.Config, auth *services.AuthService) *Handler {
	return &Handler{
		cfg:       cfg,
		auth:      auth,
		locations: models.RecyclingLocations(),
		guides:    models.EducationGuides(),
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error body with the given status code. The message
// must be user-safe; internal detail belongs in the server-side log only.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// NotFound is the fallback for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, "Not found", http.StatusNotFound)
}
