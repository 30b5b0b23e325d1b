// ABOUTME: Account model persisted by the credential store
// ABOUTME: Holds a unique username and its bcrypt password hash, never the raw password

package models

// Account is a registered user. Usernames are case-sensitive and unique
// across the collection; PasswordHash is the opaque output of bcrypt.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
