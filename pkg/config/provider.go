// Package config holds the analysis run parameters and their sources.
package config

import (
	"fmt"
	"sort"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Config, error)
}

// Config represents the complete analysis configuration
type Config struct {
	// InputFile is the ERA5-derived capacity-factor CSV.
	InputFile string `yaml:"input_file"`
	// SkipRows is the metadata preamble length before the header row.
	// The published ERA5 exports carry 52 such lines, but the count is
	// a property of the file, not of this tool.
	SkipRows int `yaml:"skip_rows"`
	// Countries are the column codes to analyze.
	Countries []string `yaml:"countries"`

	// LowThreshold and HighThreshold classify calm and high-wind hours.
	LowThreshold  float64 `yaml:"low_threshold"`
	HighThreshold float64 `yaml:"high_threshold"`
	// ReliabilityThresholds are evaluated in the order given.
	ReliabilityThresholds []float64 `yaml:"reliability_thresholds"`

	// RatedPowerKW is the nominal turbine rating for power estimates.
	RatedPowerKW  float64 `yaml:"rated_power_kw"`
	HistogramBins int     `yaml:"histogram_bins"`

	// OutputDir receives the CSV artifacts. ResultsDB, when set, also
	// writes the result tables into a single-file SQLite database.
	OutputDir string `yaml:"output_dir"`
	ResultsDB string `yaml:"results_db"`
}

// Default returns the configuration matching the published analysis:
// DE/DK/NL over one year of hourly ERA5 data, calm below 0.035, high
// wind above 0.517, a 3 MW nominal turbine.
func Default() *Config {
	return &Config{
		InputFile:             "data/ERA5_Wind_2024.csv",
		SkipRows:              52,
		Countries:             []string{"DE", "DK", "NL"},
		LowThreshold:          0.035,
		HighThreshold:         0.517,
		ReliabilityThresholds: []float64{0.1, 0.2, 0.3, 0.4},
		RatedPowerKW:          3000,
		HistogramBins:         50,
		OutputDir:             "output",
	}
}

// Validate rejects configurations the analyzers would refuse anyway,
// so a bad file fails before any data is read.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file is required")
	}
	if c.SkipRows < 0 {
		return fmt.Errorf("skip_rows must not be negative")
	}
	if len(c.Countries) == 0 {
		return fmt.Errorf("at least one country code is required")
	}
	if c.LowThreshold >= c.HighThreshold {
		return fmt.Errorf("low_threshold %.3f must be below high_threshold %.3f", c.LowThreshold, c.HighThreshold)
	}
	if len(c.ReliabilityThresholds) == 0 {
		return fmt.Errorf("reliability_thresholds must not be empty")
	}
	sorted := append([]float64(nil), c.ReliabilityThresholds...)
	sort.Float64s(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("reliability_thresholds contains duplicate %.3f", sorted[i])
		}
	}
	if c.RatedPowerKW <= 0 {
		return fmt.Errorf("rated_power_kw must be positive")
	}
	if c.HistogramBins < 1 {
		return fmt.Errorf("histogram_bins must be at least 1")
	}
	return nil
}
