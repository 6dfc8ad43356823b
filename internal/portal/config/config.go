package config

import (
	"econgov-portal/pkg/config"
)

// Dashboard holds query-layer tuning for the chart endpoints.
type Dashboard struct {
	DefaultPeriods int    `mapstructure:"default_periods"`
	CacheTTL       string `mapstructure:"cache_ttl"`
}

// Maintenance holds settings for the administrative maintenance actions.
type Maintenance struct {
	MigrationsPath string `mapstructure:"migrations_path"`
}

// Config holds the full configuration for the portal service.
type Config struct {
	App         config.App      `mapstructure:"app"`
	Logger      config.Logger   `mapstructure:"logger"`
	Database    config.Database `mapstructure:"database"`
	Redis       config.Redis    `mapstructure:"redis"`
	API         config.API      `mapstructure:"api"`
	Admin       config.Admin    `mapstructure:"admin"`
	Telegram    config.Telegram `mapstructure:"telegram"`
	Dashboard   Dashboard       `mapstructure:"dashboard"`
	Maintenance Maintenance     `mapstructure:"maintenance"`
}

// Load loads the portal configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
