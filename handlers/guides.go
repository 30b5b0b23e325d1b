// ABOUTME: Education guide handler serving fixed public content
// ABOUTME: No authentication required

package handlers

import "net/http"

// Guides returns the education guide list.
func (h *Handler) Guides(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.guides)
}
