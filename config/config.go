// ABOUTME: Configuration loader for the e-waste portal backend
// ABOUTME: Loads settings from environment variables (and optional .env) with defaults

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// InsecureDefaultSecret is the fallback token signing key used when
// JWT_SECRET_KEY is not set. It is public knowledge by definition and
// must never be used outside local development.
const InsecureDefaultSecret = "ewaste-dev-secret-do-not-use-in-production"

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow all)

	// Auth
	JWTSecret       string // token signing key
	TokenTTLMinutes int    // session token lifetime (default 60)
	UsersFile       string // path of the persisted account collection
	SeedDefaultUser bool   // create testuser on an empty store (default: true)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitAuth    int  // Requests per minute for register/login (default: 10)
}

// UsingDefaultSecret reports whether the insecure built-in signing key is active.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == InsecureDefaultSecret
}

func Load() (*Config, error) {
	// Optional .env file for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		JWTSecret:       getEnv("JWT_SECRET_KEY", InsecureDefaultSecret),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 60),
		UsersFile:       getEnv("USERS_FILE", "users.json"),
		SeedDefaultUser: getEnvBool("SEED_DEFAULT_USER", true),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitAuth:    getEnvInt("RATE_LIMIT_AUTH", 10),
	}

	if cfg.TokenTTLMinutes < 1 {
		return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be at least 1, got %d", cfg.TokenTTLMinutes)
	}
	if cfg.RateLimitAuth < 1 || cfg.RateLimitAuth > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_AUTH must be between 1 and 10000, got %d", cfg.RateLimitAuth)
	}

	if cfg.UsingDefaultSecret() {
		slog.Warn("JWT_SECRET_KEY not set, using insecure built-in signing key; do not run this in production")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
