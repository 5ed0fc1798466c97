package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Supported LOG_FORMAT values.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config aggregates application-wide configuration values.
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	Port           string
	LogLevel       zerolog.Level
	LogFormat      string
	SessionIdleTTL time.Duration
	SessionSweep   string
	ShutdownGrace  time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
// A missing API key is not an error here: searches report it instead.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:   firstEnv("API_KEY", "GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
		Port:           getEnv("PORT", "8080"),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", LogFormatJSON)),
		SessionIdleTTL: parseDuration(getEnv("SESSION_IDLE_TTL", "30m"), 30*time.Minute),
		SessionSweep:   getEnv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		ShutdownGrace:  parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}
	cfg.LogLevel = level

	if cfg.LogFormat != LogFormatJSON && cfg.LogFormat != LogFormatConsole {
		return nil, fmt.Errorf("invalid LOG_FORMAT value: %q", cfg.LogFormat)
	}

	if _, err := cron.ParseStandard(cfg.SessionSweep); err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_SCHEDULE value: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
	}
	return ""
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
