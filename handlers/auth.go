// ABOUTME: Registration and login handlers
// ABOUTME: Validates input at the boundary and maps service errors to HTTP statuses

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/greenloop/ewaste-portal/models"
	"github.com/greenloop/ewaste-portal/services"
)

// Register creates a new account from {username, password}.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.writeError(w, "Username and password are required.", http.StatusBadRequest)
		return
	}

	if err := h.auth.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			h.writeError(w, "Username already exists. Please choose a different one.", http.StatusConflict)
			return
		}
		slog.Error("Registration failed", "username", req.Username, "error", err)
		h.writeError(w, "Registration failed. Please try again later.", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, models.MessageResponse{
		Message: "Registration successful! You can now log in.",
	})
}

// Login verifies credentials and returns a bearer token. Unknown usernames,
// wrong passwords, and missing fields all produce the same 401 body.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.writeError(w, "Invalid username or password.", http.StatusUnauthorized)
			return
		}
		slog.Error("Login failed", "error", err)
		h.writeError(w, "Login failed. Please try again later.", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.LoginResponse{
		Message:  "Login successful!",
		Token:    token,
		Username: req.Username,
	})
}
