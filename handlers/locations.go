// ABOUTME: Recycling location lookup handler with device-type filtering
// ABOUTME: Protected endpoint serving the fixed location directory

package handlers

import (
	"net/http"

	"github.com/greenloop/ewaste-portal/models"
)

// Locations returns recycling locations, optionally filtered by
// ?device_type=X. "All" or an absent filter returns the full list.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	deviceType := r.URL.Query().Get("device_type")
	h.writeJSON(w, http.StatusOK, models.FilterLocationsByType(h.locations, deviceType))
}
