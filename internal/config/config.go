// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port       int
	DBPath     string
	StaticPath string

	JWTSecret         string
	TokenTTL          time.Duration
	AllowRegistration bool

	StockAlertSchedule string
	CORSOrigin         string

	LogLevel  string
	LogFormat string
}

// devJWTSecret is used when JWT_SECRET is unset; Load warns about it.
const devJWTSecret = "garagedesk-dev-secret-change-me"

// Load reads .env files (missing files are fine) and then the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "./data/garage.db"),
		StaticPath:         getEnv("STATIC_PATH", "./web/static"),
		JWTSecret:          getEnv("JWT_SECRET", devJWTSecret),
		StockAlertSchedule: getEnv("STOCK_ALERT_SCHEDULE", "0 7 * * *"),
		CORSOrigin:         getEnv("CORS_ORIGIN", "*"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.AllowRegistration, err = strconv.ParseBool(getEnv("ALLOW_REGISTRATION", "true")); err != nil {
		return nil, fmt.Errorf("invalid ALLOW_REGISTRATION: %w", err)
	}

	if cfg.JWTSecret == devJWTSecret {
		slog.Warn("JWT_SECRET not set, using development secret")
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
