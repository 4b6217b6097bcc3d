package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.InputFile = "" }},
		{"negative skip rows", func(c *Config) { c.SkipRows = -1 }},
		{"no countries", func(c *Config) { c.Countries = nil }},
		{"inverted thresholds", func(c *Config) { c.LowThreshold = 0.6; c.HighThreshold = 0.4 }},
		{"equal thresholds", func(c *Config) { c.LowThreshold = 0.5; c.HighThreshold = 0.5 }},
		{"empty reliability set", func(c *Config) { c.ReliabilityThresholds = nil }},
		{"duplicate reliability threshold", func(c *Config) { c.ReliabilityThresholds = []float64{0.1, 0.3, 0.1} }},
		{"zero rated power", func(c *Config) { c.RatedPowerKW = 0 }},
		{"zero histogram bins", func(c *Config) { c.HistogramBins = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestYAMLProviderLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "input_file: wind.csv\nrated_power_kw: 2500\ncountries: [DK]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.InputFile != "wind.csv" {
		t.Errorf("InputFile = %q, expected wind.csv", cfg.InputFile)
	}
	if cfg.RatedPowerKW != 2500 {
		t.Errorf("RatedPowerKW = %v, expected 2500", cfg.RatedPowerKW)
	}
	if len(cfg.Countries) != 1 || cfg.Countries[0] != "DK" {
		t.Errorf("Countries = %v, expected [DK]", cfg.Countries)
	}
	// Fields absent from the file keep their defaults.
	if cfg.SkipRows != 52 {
		t.Errorf("SkipRows = %d, expected default 52", cfg.SkipRows)
	}
	if cfg.HighThreshold != 0.517 {
		t.Errorf("HighThreshold = %v, expected default 0.517", cfg.HighThreshold)
	}
}

func TestYAMLProviderRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rated_power_kw: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewYAMLProvider(path).LoadConfig(); err == nil {
		t.Error("expected validation error for negative rated power")
	}
}
