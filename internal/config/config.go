package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level capitex.yaml configuration.
type Config struct {
	Bank  BankConfig  `yaml:"bank"`
	Store StoreConfig `yaml:"store"`
	Git   GitConfig   `yaml:"git"`
}

// BankConfig identifies the branded banking station.
type BankConfig struct {
	Name string `yaml:"name"`
}

// StoreConfig locates the flat user store, relative to the data directory.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// GitConfig controls snapshotting the store into git history.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a capitex.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new station.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Store: StoreConfig{
			Path: "bank_users.csv",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "CapitEx Station",
			AuthorEmail: "station@capitex.dev",
		},
	}
}
