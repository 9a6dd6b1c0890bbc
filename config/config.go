package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	HTTPPort    string
	JWTSecret   string
	TokenExpiry time.Duration

	// NATSURL is optional; the core runs without a broker and the
	// publisher falls back to a no-op.
	NATSURL           string
	NATSClientID      string
	NATSMaxReconnects int
	NATSReconnectWait time.Duration
}

// Load reads configuration from environment variables, applying defaults
// suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		TokenExpiry:       getEnvAsDuration("TOKEN_EXPIRY", 24*time.Hour),
		NATSURL:           getEnv("NATS_URL", ""),
		NATSClientID:      getEnv("NATS_CLIENT_ID", "instaclone-core"),
		NATSMaxReconnects: getEnvAsInt("NATS_MAX_RECONNECTS", 10),
		NATSReconnectWait: getEnvAsDuration("NATS_RECONNECT_WAIT", 2*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
