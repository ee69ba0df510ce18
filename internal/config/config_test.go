package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("COMPLETION_TIMEOUT_MS", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	if cfg.HTTPPort != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.HTTPPort)
	}
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected default model: %s", cfg.Model)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Fatalf("unexpected default base URL: %s", cfg.GroqBaseURL)
	}
	if cfg.CompletionTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.CompletionTimeout)
	}
	if cfg.DatabaseURL != ":memory:" {
		t.Fatalf("unexpected default database URL: %s", cfg.DatabaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_MODEL", "other-model")
	t.Setenv("COMPLETION_TIMEOUT_MS", "1500")

	cfg := Load()
	if cfg.HTTPPort != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.HTTPPort)
	}
	if cfg.GroqAPIKey != "test-key" {
		t.Fatalf("unexpected api key: %s", cfg.GroqAPIKey)
	}
	if cfg.Model != "other-model" {
		t.Fatalf("unexpected model: %s", cfg.Model)
	}
	if cfg.CompletionTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected timeout: %v", cfg.CompletionTimeout)
	}
}
