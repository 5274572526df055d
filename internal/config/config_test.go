package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Provider != "openrouter" {
		t.Fatalf("expected default provider openrouter, got %s", cfg.Provider)
	}
	if cfg.SessionTimeout != 2*time.Hour {
		t.Fatalf("expected default session timeout 2h, got %v", cfg.SessionTimeout)
	}
	if cfg.SweepSchedule == "" {
		t.Fatal("expected non-empty sweep schedule")
	}
}

func TestLoadConfigInvalidProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "skynet")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestSessionTimeoutParsing(t *testing.T) {
	t.Setenv("SESSION_TIMEOUT", "30m")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SessionTimeout != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", cfg.SessionTimeout)
	}

	t.Setenv("SESSION_TIMEOUT", "3")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SessionTimeout != 3*time.Hour {
		t.Fatalf("expected bare integer to mean hours, got %v", cfg.SessionTimeout)
	}
}

func TestCORSOriginsSplit(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://example.com")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[1] != "https://example.com" {
		t.Fatalf("expected trimmed origin, got %q", cfg.CORSOrigins[1])
	}
}
