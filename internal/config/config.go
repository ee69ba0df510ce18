// Package config provides configuration for the briefbot server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Completion provider
	GroqAPIKey        string
	GroqBaseURL       string
	Model             string
	CompletionTimeout time.Duration

	// Users demo database
	DatabaseURL string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("PORT", 8000),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:       getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:             getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		CompletionTimeout: time.Duration(getEnvInt("COMPLETION_TIMEOUT_MS", 30000)) * time.Millisecond,
		DatabaseURL:       getEnv("DATABASE_URL", ":memory:"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
