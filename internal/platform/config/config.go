// Package config loads all runtime configuration from the environment
// exactly once, at boot. Nothing else in the codebase reads env vars, so
// a running server's behavior never shifts under it.
package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the full runtime configuration for the server.
type Config struct {
	Port string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	RunMigrations bool

	JWTSecret  string
	TokenTTL   time.Duration
	CookieName string

	AllowedOrigins []string

	MarketstackAPIKey  string
	MarketstackBaseURL string
	MarketstackTimeout time.Duration

	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from environment variables, applying defaults
// suitable for local development.
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getenv("DB_HOST", "127.0.0.1"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "tradefolio"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",

		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   3 * 24 * time.Hour,
		CookieName: getenv("COOKIE_NAME", "token"),

		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS",
			"http://localhost:3000,http://localhost:3001")),

		MarketstackAPIKey:  os.Getenv("MARKETSTACK_API_KEY"),
		MarketstackBaseURL: getenv("MARKETSTACK_BASE_URL", "https://api.marketstack.com/v2"),
		MarketstackTimeout: 10 * time.Second,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
