package config

import "testing"

type testConfig struct {
	Backend string `env:"REGNET_LEDGER_BACKEND" envDefault:"bolt"`
	Path    string `env:"REGNET_LEDGER_PATH"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Backend != "bolt" {
		t.Fatalf("expected default backend bolt, got %q", cfg.Backend)
	}
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("REGNET_LEDGER_BACKEND", "sqlite")
	t.Setenv("REGNET_LEDGER_PATH", "/tmp/regnet.sqlite")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Fatalf("expected backend sqlite, got %q", cfg.Backend)
	}
	if cfg.Path != "/tmp/regnet.sqlite" {
		t.Fatalf("expected path override, got %q", cfg.Path)
	}
}
