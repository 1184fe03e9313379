// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible), used for contact-form rate limiting.
	// Optional — the limiter is disabled when the host is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Contact form delivery
	ContactRecipients []string // parsed from a comma-separated list
	ContactSender     string
	MailAPIKey        string
	MailBaseURL       string

	// Public asset tree served for hero images, brand logos, and
	// product images.
	PublicDir string

	// Contact endpoint rate limit: at most ContactRateLimit submissions
	// per ContactRateWindow per client IP.
	ContactRateLimit  int
	ContactRateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	// Best effort — a missing .env file is the normal case outside dev.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "intraasia"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "intraasia"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		ContactRecipients: splitList(os.Getenv("CONTACT_RECIPIENTS")),
		ContactSender:     os.Getenv("CONTACT_SENDER"),
		MailAPIKey:        os.Getenv("MAIL_API_KEY"),
		MailBaseURL:       envOrDefault("MAIL_BASE_URL", "https://api.resend.com"),

		PublicDir: envOrDefault("PUBLIC_DIR", "public"),

		ContactRateLimit:  envOrDefaultInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: envOrDefaultDuration("CONTACT_RATE_WINDOW", time.Minute),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// MailConfigured reports whether the contact form can deliver mail. The
// contact handler treats a false result as a validation-class failure
// rather than crashing.
func (c *Config) MailConfigured() bool {
	return len(c.ContactRecipients) > 0 && c.ContactSender != "" && c.MailAPIKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrDefaultInt reads an integer environment variable. Unset, empty, or
// unparsable values fall back.
func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envOrDefaultDuration reads a duration environment variable ("30s", "5m").
func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
