package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type Config struct {
	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: SQLite database file (default: ./clubhouse.db)
	DatabaseURL    string // Required for postgres: connection string

	EmailDomain string // Optional: institutional email domain (default: cmrit.ac.in)

	Issuer              string        // Optional: expected token issuer (default: campus-idp)
	Audience            []string      // Optional: comma separated accepted audiences (default: clubhouse)
	JWKSURL             string        // Optional: identity provider JWKS; empty selects the local dev key
	JWKSRefreshInterval time.Duration // Optional: JWKS refresh interval (default: 15m)
	DevKeyFile          string        // Optional: dev signing key, created on first start (default: ./clubhouse-dev.key)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	SignUpLimit httpx.RateLimitConfig // RATELIMIT_SIGNUP_*
	WriteLimit  httpx.RateLimitConfig // RATELIMIT_WRITE_*
	ReadLimit   httpx.RateLimitConfig // RATELIMIT_READ_*
}

func LoadConfig() Config {
	return Config{
		DatabaseDriver: strings.ToLower(getEnvOrDefault("CLUBHOUSE_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("CLUBHOUSE_DATABASE_FILE", "clubhouse.db"),
		DatabaseURL:    os.Getenv("CLUBHOUSE_DATABASE_URL"),

		EmailDomain: getEnvOrDefault("INSTITUTION_EMAIL_DOMAIN", service.DefaultEmailDomain),

		Issuer:              getEnvOrDefault("AUTH_ISSUER", "campus-idp"),
		Audience:            getEnvListOrDefault("AUTH_AUDIENCE", []string{"clubhouse"}),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		JWKSRefreshInterval: getEnvDurationOrDefault("AUTH_JWKS_REFRESH_INTERVAL", 15*time.Minute),
		DevKeyFile:          getEnvOrDefault("AUTH_DEV_KEY_FILE", "clubhouse-dev.key"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		SignUpLimit: httpx.RateLimitFromEnv("SIGNUP", httpx.SignUpLimit),
		WriteLimit:  httpx.RateLimitFromEnv("WRITE", httpx.WriteLimit),
		ReadLimit:   httpx.RateLimitFromEnv("READ", httpx.ReadLimit),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
