package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"NexusBoard/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Prefs struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"prefs"`
	Watch struct {
		File string `yaml:"file"`
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
	Analysis struct {
		RiskAppetite int                         `yaml:"risk_appetite"`
		Thresholds   map[string]model.Thresholds `yaml:"thresholds"`
	} `yaml:"analysis"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NEXUSBOARD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PREFS_STATE_FILE"); v != "" {
		cfg.Prefs.StateFile = v
	}
	if v := os.Getenv("WATCH_FILE"); v != "" {
		cfg.Watch.File = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("RISK_APPETITE"); v != "" {
		var appetite int
		if _, err := fmt.Sscanf(v, "%d", &appetite); err == nil {
			cfg.Analysis.RiskAppetite = appetite
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/nexusboard.db"
	}
	if cfg.Prefs.StateFile == "" {
		cfg.Prefs.StateFile = "data/prefs_state.json"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 * * * *"
	}
	if cfg.Analysis.RiskAppetite == 0 {
		cfg.Analysis.RiskAppetite = 50
	}

	return cfg, nil
}

// Validate checks that all required fields are in range.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Analysis.RiskAppetite < 0 || c.Analysis.RiskAppetite > 100 {
		return fmt.Errorf("analysis.risk_appetite must be between 0 and 100")
	}
	for name := range c.Analysis.Thresholds {
		switch model.Profile(name) {
		case model.ProfileConservative, model.ProfileBalanced, model.ProfileAggressive:
		default:
			return fmt.Errorf("analysis.thresholds: unknown profile %q", name)
		}
	}
	return nil
}
