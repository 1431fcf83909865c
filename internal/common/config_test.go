package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Store.Type != "embedded" {
		t.Errorf("default store type: got %s", cfg.Store.Type)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if len(cfg.Analysis.WarningChecks) != 3 {
		t.Errorf("default warning checks: got %v", cfg.Analysis.WarningChecks)
	}
}

func TestLoadFromFilesOverride(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")
	os.WriteFile(base, []byte("[server]\nport = 9000\nhost = \"0.0.0.0\"\n"), 0644)
	os.WriteFile(override, []byte("[server]\nport = 9100\n"), 0644)

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("later file must override port: got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("earlier file values must survive: got %s", cfg.Server.Host)
	}
}

func TestValidateRejectsBadStoreType(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Type = "postgres"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown store type")
	}
}

func TestValidateCSVRequiresPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Type = "csv"
	cfg.Store.CSV.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for csv store without path")
	}
}

func TestValidateEODHDRequiresKey(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Type = "eodhd"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for eodhd store without api key")
	}
}

func TestValidateRejectsUnknownWarningCheck(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Analysis.WarningChecks = []string{"vibes"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown warning check")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AESTIMO_SERVER_PORT", "9999")
	t.Setenv("AESTIMO_STORE_TYPE", "csv")
	t.Setenv("AESTIMO_STORE_CSV_PATH", "/tmp/f.csv")
	t.Setenv("AESTIMO_ANALYSIS_WARNING_CHECKS", "leverage, capital_efficiency")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9999 {
		t.Errorf("port from env: got %d", cfg.Server.Port)
	}
	if cfg.Store.Type != "csv" || cfg.Store.CSV.Path != "/tmp/f.csv" {
		t.Errorf("store from env: got %s %s", cfg.Store.Type, cfg.Store.CSV.Path)
	}
	if len(cfg.Analysis.WarningChecks) != 2 || cfg.Analysis.WarningChecks[0] != "leverage" {
		t.Errorf("warning checks from env: got %v", cfg.Analysis.WarningChecks)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 7070, "0.0.0.0")

	if cfg.Server.Port != 7070 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("flag overrides: got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 7070 || cfg.Server.Host != "0.0.0.0" {
		t.Error("zero-value flags must not override")
	}
}
