package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.UI.LogLevel != "warn" {
		t.Errorf("default log level = %q, want warn", cfg.UI.LogLevel)
	}
	if cfg.LossDelay() != 7500*time.Millisecond {
		t.Errorf("default loss delay = %s, want 7.5s", cfg.LossDelay())
	}
	if cfg.CloseDelay() != 18*time.Second {
		t.Errorf("default close delay = %s, want 18s", cfg.CloseDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadAppliesFileValuesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roulette.hcl")
	content := `
ui {
  log_level = "debug"
}

spin {
  loss_delay_ms = 100
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.UI.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.UI.LogLevel)
	}
	if cfg.UI.LogFile != "roulette.log" {
		t.Errorf("log file default not applied, got %q", cfg.UI.LogFile)
	}
	if cfg.LossDelay() != 100*time.Millisecond {
		t.Errorf("loss delay = %s, want 100ms", cfg.LossDelay())
	}
	if cfg.CloseDelay() != 18*time.Second {
		t.Errorf("close delay default not applied, got %s", cfg.CloseDelay())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.UI.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "negative loss delay",
			mutate:  func(c *Config) { c.Spin.LossDelayMS = -1 },
			wantErr: true,
		},
		{
			name:    "close before loss",
			mutate:  func(c *Config) { c.Spin.CloseDelayMS = c.Spin.LossDelayMS - 1 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
