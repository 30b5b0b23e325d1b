// ABOUTME: Health check handler
// ABOUTME: Reports API status and whether the insecure default signing key is active

package handlers

import "net/http"

// Health returns API health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := map[string]interface{}{
		"status": "ok",
	}
	if h.cfg != nil {
		resp["insecure_default_secret"] = h.cfg.UsingDefaultSecret()
	}

	h.writeJSON(w, http.StatusOK, resp)
}
