package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// service configuration, loaded from environment variables
type Config struct {
	Provider       string
	Port           string
	SessionTimeout time.Duration
	SweepSchedule  string
	CORSOrigins    []string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:       getEnvOrDefault("AI_PROVIDER", "openrouter"),
		Port:           getEnvOrDefault("PORT", "8080"),
		SessionTimeout: getEnvDurationOrDefault("SESSION_TIMEOUT", 2*time.Hour),
		SweepSchedule:  getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		CORSOrigins:    splitOrigins(getEnvOrDefault("CORS_ORIGINS", "*")),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "openrouter" && config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: openrouter, gemini")
	}
	if config.SessionTimeout <= 0 {
		return errors.New("SESSION_TIMEOUT must be positive")
	}
	// Provider credentials are validated by the provider's own config
	return nil
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// plain hour count also accepted, matches SESSION_TIMEOUT_HOURS style configs
		if hours, err := strconv.Atoi(value); err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultValue
}
