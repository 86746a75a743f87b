package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spacieba/miss-france/internal/models"
)

// Config holds everything the server needs for one party night. The
// candidate roster lives here because it is fixed for the season: it is
// seeded into the registry at startup and read-only afterwards.
type Config struct {
	Server struct {
		Port    int    `yaml:"port"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Admin struct {
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Candidates []CandidateConfig `yaml:"candidates"`
}

// CandidateConfig is one roster entry in the config file.
type CandidateConfig struct {
	Name     string `yaml:"name"`
	PhotoURL string `yaml:"photo_url"`
}

// Load reads YAML config from path and applies defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with defaults applied and no roster, for runs
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8081
	}
	if c.Database.Path == "" {
		c.Database.Path = "missfrance.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Candidates))
	for _, cand := range c.Candidates {
		if cand.Name == "" {
			return fmt.Errorf("config: candidate with empty name")
		}
		if seen[cand.Name] {
			return fmt.Errorf("config: duplicate candidate %q", cand.Name)
		}
		seen[cand.Name] = true
	}
	return nil
}

// Roster converts the configured candidates to registry models, in file
// order.
func (c *Config) Roster() []models.Candidate {
	roster := make([]models.Candidate, 0, len(c.Candidates))
	for i, cand := range c.Candidates {
		roster = append(roster, models.Candidate{
			Name:         cand.Name,
			PhotoURL:     cand.PhotoURL,
			DisplayOrder: i + 1,
		})
	}
	return roster
}
