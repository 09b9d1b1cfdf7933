// Package config loads application configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	AppName string
	AppEnv  string
	Port    string

	LogLevel string

	// Auth; empty JWTSecret disables authentication entirely.
	JWTSecret string
	JWTTTL    time.Duration

	// Seeded admin account, used only when auth is enabled.
	AdminUser     string
	AdminPassword string

	// Reversal policy applied when a confirmed sale is cancelled.
	RestockOnCancel       bool
	ReverseLedgerOnCancel bool

	AllowedOrigins []string
}

// Load reads configuration, preferring real environment variables over
// the .env file.
func Load() Config {
	// Missing .env is fine; env vars may be set by the runtime.
	_ = godotenv.Load()

	return Config{
		AppName: getEnv("APP_NAME", "pdv"),
		AppEnv:  getEnv("APP_ENV", "development"),
		Port:    getEnv("APP_PORT", "8080"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getEnvDuration("JWT_TTL", 8*time.Hour),

		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		RestockOnCancel:       getEnvBool("RESTOCK_ON_CANCEL", false),
		ReverseLedgerOnCancel: getEnvBool("REVERSE_LEDGER_ON_CANCEL", false),

		AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),
	}
}

// AuthEnabled reports whether the API requires authentication.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String renders the config for startup logging, secrets omitted.
func (c Config) String() string {
	return fmt.Sprintf("app=%s env=%s port=%s auth=%t restock_on_cancel=%t reverse_ledger_on_cancel=%t",
		c.AppName, c.AppEnv, c.Port, c.AuthEnabled(), c.RestockOnCancel, c.ReverseLedgerOnCancel)
}
