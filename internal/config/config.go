package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete widget configuration
type Config struct {
	UI   UISettings   `hcl:"ui,block"`
	Spin SpinSettings `hcl:"spin,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	ShowOdds bool   `hcl:"show_odds,optional"`
}

// SpinSettings contains the scripted overlay delays. They are plain
// configuration constants: nothing about the sequence is derived from
// an outcome.
type SpinSettings struct {
	LossDelayMS  int `hcl:"loss_delay_ms,optional"`
	CloseDelayMS int `hcl:"close_delay_ms,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		UI: UISettings{
			LogLevel: "warn",
			LogFile:  "roulette.log",
			ShowOdds: true,
		},
		Spin: SpinSettings{
			LossDelayMS:  7500,
			CloseDelayMS: 18000,
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}
	if cfg.Spin.LossDelayMS == 0 {
		cfg.Spin.LossDelayMS = defaults.Spin.LossDelayMS
	}
	if cfg.Spin.CloseDelayMS == 0 {
		cfg.Spin.CloseDelayMS = defaults.Spin.CloseDelayMS
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	if c.Spin.LossDelayMS <= 0 {
		return fmt.Errorf("loss delay must be positive")
	}
	if c.Spin.CloseDelayMS <= 0 {
		return fmt.Errorf("close delay must be positive")
	}
	if c.Spin.CloseDelayMS <= c.Spin.LossDelayMS {
		return fmt.Errorf("close delay must be after loss delay")
	}

	return nil
}

// LossDelay returns the delay before the loss message appears.
func (c *Config) LossDelay() time.Duration {
	return time.Duration(c.Spin.LossDelayMS) * time.Millisecond
}

// CloseDelay returns the delay before the overlay auto-closes.
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.Spin.CloseDelayMS) * time.Millisecond
}
