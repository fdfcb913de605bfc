package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB DBConfig `toml:"database"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

// Dir returns the app config directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ironlog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CatalogPath returns the path to the optional user training-day catalog.
func CatalogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "training_days.toml"), nil
}

// FallbackSessionPath returns the path of the degraded-mode session file.
func FallbackSessionPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fallback_session.toml"), nil
}

// LoadConfig reads the configuration, falling back to a local database file
// in the config dir when no config file exists. A .env file and the
// IRONLOG_DB variable override the connection string.
func LoadConfig() (*Config, error) {
	// Optional; most installs have no .env.
	_ = godotenv.Load()

	var cfg Config

	path, err := GetConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, err
			}
		}
	}

	if env := os.Getenv("IRONLOG_DB"); env != "" {
		cfg.DB.ConnectionString = env
	}

	if cfg.DB.ConnectionString == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		cfg.DB.ConnectionString = filepath.Join(dir, "ironlog.db")
	}

	return &cfg, nil
}
