// ABOUTME: Classification handler applying the static e-waste rule table
// ABOUTME: Protected endpoint; pure function of device type and condition

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/greenloop/ewaste-portal/models"
)

// Classify returns the disposal recommendation for a device.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.DeviceType == "" || req.DeviceCondition == "" {
		h.writeError(w, "Device type and condition are required.", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, models.Classify(req.DeviceType, req.DeviceCondition))
}
