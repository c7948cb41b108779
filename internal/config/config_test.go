package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Name != "portfolio-service" {
		t.Fatalf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.Auth.TokenTTLMillis != 86400000 {
		t.Fatalf("expected 24h default ttl, got %d", cfg.Auth.TokenTTLMillis)
	}
	if cfg.Seed.File != "data/resume.json" {
		t.Fatalf("unexpected seed file %q", cfg.Seed.File)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Fatal("expected default CORS origins")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("AUTH_TOKEN_TTL_MILLIS", "60000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com, https://other.example")
	t.Setenv("RESUME_IMPORT_ON_START", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:9999" {
		t.Fatalf("unexpected addr %q", cfg.App.Addr())
	}
	if cfg.Auth.TokenTTL() != time.Minute {
		t.Fatalf("expected 1m ttl got %v", cfg.Auth.TokenTTL())
	}
	if cfg.Seed.ImportOnStart {
		t.Fatal("RESUME_IMPORT_ON_START=false must disable seeding")
	}

	found := 0
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "https://example.com" || origin == "https://other.example" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("extra origins missing from %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL_MILLIS", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed AUTH_TOKEN_TTL_MILLIS")
	}
}

func TestTokenTTLFallback(t *testing.T) {
	if (AuthConfig{TokenTTLMillis: 0}).TokenTTL() != 24*time.Hour {
		t.Fatal("zero ttl must fall back to 24h")
	}
	if (AuthConfig{TokenTTLMillis: -5}).TokenTTL() != 24*time.Hour {
		t.Fatal("negative ttl must fall back to 24h")
	}
	if (AuthConfig{TokenTTLMillis: 1500}).TokenTTL() != 1500*time.Millisecond {
		t.Fatal("ttl must convert from milliseconds")
	}
}

func TestCacheTTL(t *testing.T) {
	if (SeedConfig{CacheTTLSec: 0}).CacheTTL() != 0 {
		t.Fatal("zero cache ttl must disable caching")
	}
	if (SeedConfig{CacheTTLSec: 300}).CacheTTL() != 5*time.Minute {
		t.Fatal("cache ttl must convert from seconds")
	}
}
