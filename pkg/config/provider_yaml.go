package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig loads the configuration from the YAML file, layered over
// the defaults: fields absent from the file keep their default values.
func (y *YAMLProvider) LoadConfig() (*Config, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(cfgFile, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// StaticProvider wraps an in-memory Config, for flag-only runs with no
// configuration file.
type StaticProvider struct {
	config *Config
}

// NewStaticProvider creates a provider returning cfg as-is.
func NewStaticProvider(cfg *Config) *StaticProvider {
	return &StaticProvider{config: cfg}
}

// LoadConfig validates and returns the wrapped configuration.
func (s *StaticProvider) LoadConfig() (*Config, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	return s.config, nil
}
