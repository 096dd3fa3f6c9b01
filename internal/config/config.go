// Package config loads agropop settings from AGROPOP_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `env:"AGROPOP_DB_PATH" envDefault:"agropop.db"`

	// Seed drives the machine factory's generator. Zero picks one from the clock.
	Seed uint64 `env:"AGROPOP_SEED" envDefault:"0"`

	// Admin credentials bootstrap the first user during seeding. Leaving
	// AdminUser empty skips the admin seeder.
	AdminUser  string `env:"AGROPOP_ADMIN_USER"`
	AdminPass  string `env:"AGROPOP_ADMIN_PASS"`
	AdminEmail string `env:"AGROPOP_ADMIN_EMAIL"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
