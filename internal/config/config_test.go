package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Scope != "readonly" {
		t.Errorf("expected scope 'readonly', got %q", cfg.Scope)
	}
	if !cfg.ReadOnly() {
		t.Error("default scope should be read-only")
	}
	if cfg.LookbackDays != 28 {
		t.Errorf("expected lookback_days 28, got %d", cfg.LookbackDays)
	}
	if cfg.RowLimit != 1000 {
		t.Errorf("expected row_limit 1000, got %d", cfg.RowLimit)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
credentials_path = "/etc/gscctl/creds.json"
scope = "full"
lookback_days = 7
log_level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CredentialsPath != "/etc/gscctl/creds.json" {
		t.Errorf("expected credentials_path from file, got %q", cfg.CredentialsPath)
	}
	if cfg.ReadOnly() {
		t.Error("scope 'full' should not be read-only")
	}
	if cfg.LookbackDays != 7 {
		t.Errorf("expected lookback_days 7, got %d", cfg.LookbackDays)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GSCCTL_SCOPE", "full")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scope != "full" {
		t.Errorf("expected env override scope 'full', got %q", cfg.Scope)
	}
}
