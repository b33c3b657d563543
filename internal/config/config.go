package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written into a ledger directory.
const FileName = "tourledger.yaml"

// Config represents the top-level tourledger.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Storage  StorageConfig  `yaml:"storage"`
}

// BusinessConfig identifies the ledger owner.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig selects and locates the document store backend.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // "file" or "sqlite"
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

// Load reads a tourledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger
// rooted at dir.
func Default(businessName, dir string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Storage: StorageConfig{
			Backend:    "file",
			Dir:        filepath.Join(dir, "data"),
			SQLitePath: filepath.Join(dir, "data", "tourledger.db"),
		},
	}
}
