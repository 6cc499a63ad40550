package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caprice1026-disc/AI-TRPG/testutil"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.Safety.Violence != "low" {
		t.Errorf("Safety.Violence = %q, want default %q", cfg.Safety.Violence, "low")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteConfig(t, dir,
		"server_url: http://gm.example:8080\nrequest_timeout: 10s\nsafety:\n  violence: none\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != "http://gm.example:8080" {
		t.Errorf("ServerURL = %q, want file value", cfg.ServerURL)
	}
	if cfg.Safety.Violence != "none" {
		t.Errorf("Safety.Violence = %q, want %q", cfg.Safety.Violence, "none")
	}
	if got := cfg.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", got)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteConfig(t, dir, "request_timeout: 5s\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default backfilled", cfg.ServerURL)
	}
}

func TestConfigTimeoutDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", 30 * time.Second},
		{"invalid", "soon", 30 * time.Second},
		{"valid", "90s", 90 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RequestTimeout: tt.value}
			if got := cfg.Timeout(); got != tt.want {
				t.Errorf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	cfg := DefaultConfig()
	cfg.ServerURL = "http://gm.example"
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.ServerURL != "http://gm.example" {
		t.Errorf("ServerURL = %q, want round-tripped value", loaded.ServerURL)
	}
}
