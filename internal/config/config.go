package config

import (
	"os"
	"time"

	"helphood/internal/gemini"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Gemini. An empty key disables the upstream and every answer comes
	// from the fallback classifier.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Database (optional, answer outcome counters)
	DatabaseURL string

	// Upstream reachability probe, 0 disables it
	UpstreamProbeInterval time.Duration

	// Assistant overrides from the optional YAML file
	Assistant *AssistantConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", ":3000"),
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL:         getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		UpstreamProbeInterval: getDuration("UPSTREAM_PROBE_INTERVAL", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AIConfigured returns true if a Gemini API key is present.
func (c *Config) AIConfigured() bool {
	return c.GeminiAPIKey != ""
}

// PersistOutcomes returns true if answer outcomes are stored in Postgres.
func (c *Config) PersistOutcomes() bool {
	return c.DatabaseURL != ""
}

// GeminiConfig returns the upstream client settings. Sampling and safety
// settings are always the built-in ones.
func (c *Config) GeminiConfig() gemini.Config {
	return gemini.Config{
		BaseURL:    c.GeminiBaseURL,
		Model:      c.GeminiModel,
		APIKey:     c.GeminiAPIKey,
		Generation: gemini.DefaultGeneration(),
		Safety:     gemini.DefaultSafetySettings(),
	}
}

// SystemPrompt returns the YAML prompt override, or "" for the built-in prompt.
func (c *Config) SystemPrompt() string {
	if c.Assistant == nil {
		return ""
	}
	return c.Assistant.SystemPrompt
}
