// Package config resolves runtime settings from the environment, seeded from
// the nearest .env file so local runs need no exported variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings carries everything a scrape run needs.
type Settings struct {
	// DataDir holds the checkpoint files, one per roster.
	DataDir string
	// USPSEndpoint overrides the standardization URL; empty means the
	// public USPS lookup.
	USPSEndpoint string
	// Timeout bounds each outbound HTTP request.
	Timeout time.Duration
	// RateLimit caps standardization requests per second.
	RateLimit float64
	// ListenAddr is the inspection server bind address.
	ListenAddr string
	// Debug turns on pipeline tracing.
	Debug bool
}

// LoadEnv seeds the process environment from a .env file in the working
// directory or up to two parents. Already-set variables win.
func LoadEnv() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

// FromEnv loads the .env file and resolves all settings with their defaults.
func FromEnv() Settings {
	LoadEnv()
	return Settings{
		DataDir:      GetEnv("GOVPOST_DATA_DIR", "data"),
		USPSEndpoint: GetEnv("GOVPOST_USPS_ENDPOINT", ""),
		Timeout:      time.Duration(GetEnvInt("GOVPOST_TIMEOUT_SECONDS", 30)) * time.Second,
		RateLimit:    GetEnvFloat("GOVPOST_RATE_LIMIT", 1),
		ListenAddr:   GetEnv("GOVPOST_LISTEN_ADDR", ":8080"),
		Debug:        GetEnvBool("GOVPOST_DEBUG", false),
	}
}

// GetEnv gets an environment variable with a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetEnvFloat gets a float environment variable with a default.
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
