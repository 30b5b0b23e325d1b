// ABOUTME: Authenticator implementing registration and login over the credential store
// ABOUTME: bcrypt password hashing, duplicate checks, and token minting on success

package services

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/greenloop/ewaste-portal/models"
	"github.com/greenloop/ewaste-portal/store"
)

var (
	// ErrDuplicateUsername means an account with that username already exists.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
	// deliberately indistinguishable to resist username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Default account created on an empty store so a fresh install is immediately
// usable. A convenience for demos, not a security feature; disable with
// SEED_DEFAULT_USER=false.
const (
	DefaultUsername = "testuser"
	DefaultPassword = "password123"
)

// AuthService implements registration and login. The store is reloaded before
// every check so externally written accounts are honored.
type AuthService struct {
	store  *store.FileStore
	tokens *TokenService
}

// NewAuthService constructs an AuthService over the given store and token service.
func NewAuthService(s *store.FileStore, tokens *TokenService) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

// Register creates a new account. The password is hashed with bcrypt at the
// default cost (10); the raw password is never stored or logged. Field
// presence is validated at the handler boundary.
func (s *AuthService) Register(username, password string) error {
	accounts := s.store.Load()

	for _, account := range accounts {
		if account.Username == username {
			return ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	accounts = append(accounts, models.Account{
		Username:     username,
		PasswordHash: string(hash),
	})

	if err := s.store.Save(accounts); err != nil {
		return fmt.Errorf("persisting account: %w", err)
	}

	slog.Info("Account registered", "username", username)
	return nil
}

// Login verifies the credentials and mints a session token. Unknown usernames
// and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	accounts := s.store.Load()

	var account *models.Account
	for i := range accounts {
		if accounts[i].Username == username {
			account = &accounts[i]
			break
		}
	}

	if account == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", fmt.Errorf("minting token: %w", err)
	}

	return token, nil
}

// SeedDefaultUser creates the default account if the store is empty. Called
// once at startup when enabled in config.
func (s *AuthService) SeedDefaultUser() error {
	accounts := s.store.Load()
	if len(accounts) > 0 {
		return nil
	}

	slog.Info("Credential store is empty, seeding default account", "username", DefaultUsername)
	if err := s.Register(DefaultUsername, DefaultPassword); err != nil {
		return fmt.Errorf("seeding default account: %w", err)
	}
	return nil
}
