// Package config loads the retrieval configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied after loading
const (
	DefaultMaxPullRequests = 200
	DefaultSort            = "ASC"
	DefaultTemplate        = "- ${{TITLE}} (#${{NUMBER}}) by @${{AUTHOR}}"
)

// Config holds the repository, date window and rendering settings for one
// retrieval run. Dates are RFC 3339 strings, parsed at use.
type Config struct {
	Owner           string `yaml:"owner"`
	Repo            string `yaml:"repo"`
	RepoPath        string `yaml:"repoPath"`
	FromTag         string `yaml:"fromTag"`
	ToTag           string `yaml:"toTag"`
	From            string `yaml:"from"`
	To              string `yaml:"to"`
	MaxPullRequests int    `yaml:"maxPullRequests"`
	Sort            string `yaml:"sort"`
	Template        string `yaml:"template"`
	Token           string `yaml:"-"`
}

// Load reads the config file at path (skipped when path is empty), applies
// environment overrides, then fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Token = token
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Validate checks that the settings required by every run are present.
func (c *Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("owner and repo are required")
	}
	if c.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.MaxPullRequests <= 0 {
		c.MaxPullRequests = DefaultMaxPullRequests
	}
	if c.Sort == "" {
		c.Sort = DefaultSort
	}
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.RepoPath == "" {
		c.RepoPath = "."
	}
}
