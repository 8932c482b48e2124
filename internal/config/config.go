// Package config loads the msysmake settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds msysmake configuration
type Config struct {
	LogLevel         string   `yaml:"log_level"`
	LogFormat        string   `yaml:"log_format"`
	ExecutableSuffix string   `yaml:"executable_suffix"`
	Languages        []string `yaml:"languages"`
	DefinitionsFile  string   `yaml:"definitions_file"`
	SearchSystemPath bool     `yaml:"search_system_path"`
	TrialCompile     bool     `yaml:"trial_compile"`
	MakeSearchDirs   []string `yaml:"make_search_dirs"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		ExecutableSuffix: ".exe",
		Languages:        []string{"C", "CXX"},
		SearchSystemPath: true,
	}
}

// DefaultPath returns $HOME/.config/msysmake/config.yaml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "msysmake", "config.yaml")
}

// LoadConfig loads configuration from file. Fields missing from the file
// keep their defaults; a missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
