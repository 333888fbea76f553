package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file fintrack looks for in its working directory.
const FileName = "fintrack.yaml"

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Currency   string           `yaml:"currency"`
	Workers    int              `yaml:"workers"`
	Paths      PathsConfig      `yaml:"paths"`
	Vocabulary VocabularyConfig `yaml:"vocabulary,omitempty"`
}

// PathsConfig locates the inbox and ledger directories, relative to the
// config file unless absolute.
type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Ledger string `yaml:"ledger"`
}

// VocabularyConfig holds user keywords appended to the built-in tables.
type VocabularyConfig struct {
	Exclusions []string `yaml:"exclusions,omitempty"`
	Debit      []string `yaml:"debit_keywords,omitempty"`
	Credit     []string `yaml:"credit_keywords,omitempty"`
	WalletLoad []string `yaml:"wallet_load_keywords,omitempty"`
	Recharge   []string `yaml:"recharge_keywords,omitempty"`
}

// Load reads a fintrack.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Currency: "NPR",
		Workers:  1,
		Paths: PathsConfig{
			Inbox:  "inbox",
			Ledger: "ledger",
		},
	}
}
