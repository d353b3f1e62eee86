// Package config loads the YAML configuration of the billlookup CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the CLI configuration file.
type Config struct {
	Database      DatabaseConfig `yaml:"database"`
	LookupTimeout time.Duration  `yaml:"lookup_timeout" validate:"gte=0"`
	Company       CompanyConfig  `yaml:"company"`
}

// DatabaseConfig selects the data store. DSN is used by postgres, Path by
// sqlite.
type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	DSN    string `yaml:"dsn" validate:"required_if=Driver postgres"`
	Path   string `yaml:"path" validate:"required_if=Driver sqlite"`
}

type CompanyConfig struct {
	Name           string `yaml:"name"`
	Address        string `yaml:"address"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

var validate = validator.New()

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "./data/bills.db",
		},
		LookupTimeout: 5 * time.Second,
		Company: CompanyConfig{
			Name:           "My Company Name",
			Address:        "123 Business Rd, Bengaluru | 080-1234567",
			CurrencySymbol: "₹",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults when
// allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && allowMissing:
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
