package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/farooque06/portfolio/internal/typing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Typing.TypingInterval != 100*time.Millisecond {
		t.Errorf("expected typing interval 100ms, got %s", cfg.Typing.TypingInterval)
	}
	if cfg.Typing.DeletingInterval != 50*time.Millisecond {
		t.Errorf("expected deleting interval 50ms, got %s", cfg.Typing.DeletingInterval)
	}
	if cfg.Typing.PauseAtFull != 2*time.Second {
		t.Errorf("expected pause 2s, got %s", cfg.Typing.PauseAtFull)
	}
	if !cfg.Intro {
		t.Error("expected intro enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	data := `port: 9000
intro: false
typing:
  typing_interval: 80ms
  pause_at_full: 3s
relay:
  endpoint: https://relay.example.com/submit
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_RELAY__ACCESS_KEY", "secret")
	t.Setenv("PORTFOLIO_TYPING__DELETING_INTERVAL", "25ms")
	t.Setenv("PORTFOLIO_CORS__ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Intro {
		t.Error("intro should be disabled")
	}
	if cfg.Typing.TypingInterval != 80*time.Millisecond {
		t.Errorf("typing interval = %s", cfg.Typing.TypingInterval)
	}
	if cfg.Typing.DeletingInterval != 25*time.Millisecond {
		t.Errorf("deleting interval = %s", cfg.Typing.DeletingInterval)
	}
	if cfg.Typing.PauseAtFull != 3*time.Second {
		t.Errorf("pause = %s", cfg.Typing.PauseAtFull)
	}
	if cfg.Relay.Endpoint != "https://relay.example.com/submit" {
		t.Errorf("endpoint = %q", cfg.Relay.Endpoint)
	}
	if cfg.Relay.AccessKey != "secret" {
		t.Errorf("access key = %q", cfg.Relay.AccessKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestBarePortOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Port)
	}

	t.Setenv("PORT", "abc")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Port = 70000 }},
		{"mode", func(c *Config) { c.Mode = "verbose" }},
		{"typing interval", func(c *Config) { c.Typing.TypingInterval = 0 }},
		{"endpoint", func(c *Config) { c.Relay.Endpoint = "ftp://x" }},
		{"timeout", func(c *Config) { c.Relay.Timeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Typing.PauseAtFull = -1
	if err := cfg.Validate(); !errors.Is(err, typing.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}
