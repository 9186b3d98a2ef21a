// Package config loads application configuration from environment variables,
// with a .env file picked up in development.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// StorageBackend selects where state is persisted: "json" or "sqlite".
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"json"`
	// DataPath is the JSON state file used by the json backend.
	DataPath string `env:"DATA_PATH" envDefault:"data/storage.json"`
	// DBPath is the database file used by the sqlite backend.
	DBPath string `env:"DB_PATH" envDefault:"data/guide.db"`

	// MapRows are the row letters of the map grid, top to bottom.
	MapRows []string `env:"MAP_ROWS" envSeparator:"," envDefault:"A,B,C,D"`
	// MapCols is the number of map columns.
	MapCols int `env:"MAP_COLS" envDefault:"5"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads the configuration, loading .env first when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.StorageBackend {
	case "json", "sqlite":
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want json or sqlite)", cfg.StorageBackend)
	}
	return cfg, nil
}
