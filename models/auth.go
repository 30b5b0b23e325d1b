// ABOUTME: Auth request/response models for registration and login
// ABOUTME: Defines the JSON contracts of /api/register and /api/login

package models

// CredentialsRequest represents the body of register and login calls
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. The token is a signed,
// time-limited bearer credential; no session state is kept server-side.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}
