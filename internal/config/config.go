package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "smartconnect.db"
	defaultJWTAccessTTL    = "24h"
	defaultCleanupSchedule = "0 3 * * *"
	defaultRetentionDays   = "30"
	defaultJWTSecret       = "change-me-jwt-secret"
)

// Config holds the runtime configuration for the API process.
// Values come from the environment; cmd/api loads .env first via godotenv.
type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	InternalToken   string
	CleanupSchedule string
	RetentionDays   int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = envOrDefault("PORT", defaultPort)
	cfg.DatabaseURL = envOrDefault("DATABASE_URL", defaultDatabaseURL)
	cfg.InternalToken = os.Getenv("INTERNAL_TOKEN")
	cfg.CleanupSchedule = envOrDefault("NOTIFICATION_CLEANUP_SCHEDULE", defaultCleanupSchedule)

	cfg.JWTSecret = envOrDefault("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	ttl, err := time.ParseDuration(envOrDefault("JWT_ACCESS_TTL", defaultJWTAccessTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}
	cfg.JWTAccessTTL = ttl

	days, err := strconv.Atoi(envOrDefault("NOTIFICATION_RETENTION_DAYS", defaultRetentionDays))
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("invalid NOTIFICATION_RETENTION_DAYS")
	}
	cfg.RetentionDays = days

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
