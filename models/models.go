// ABOUTME: Shared API response models for the e-waste portal
// ABOUTME: JSON-serializable structures matching frontend expectations

package models

// ErrorResponse is the uniform JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// MessageResponse carries a single user-facing confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
