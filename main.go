// ABOUTME: Entry point for the e-waste portal backend service
// ABOUTME: Provides HTTP API for account auth, e-waste classification, and recycling data

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/greenloop/ewaste-portal/config"
	"github.com/greenloop/ewaste-portal/handlers"
	"github.com/greenloop/ewaste-portal/logger"
	"github.com/greenloop/ewaste-portal/services"
	"github.com/greenloop/ewaste-portal/store"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting E-Waste Portal Backend")
	slog.Info("Credential store configured", "path", cfg.UsersFile)

	// Wire the auth core
	credentials := store.New(cfg.UsersFile)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	auth := services.NewAuthService(credentials, tokens)

	if cfg.SeedDefaultUser {
		if err := auth.SeedDefaultUser(); err != nil {
			slog.Error("Failed to seed default account", "error", err)
			os.Exit(1)
		}
	}

	// Build handlers and routing table
	h := handlers.NewHandler(cfg, auth)
	router := handlers.NewRouter(h, tokens, cfg)

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
