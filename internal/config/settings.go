package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings is user preference state, persisted independently of sessions.
type Settings struct {
	Sound bool `toml:"sound"` // Terminal bell when the rest timer expires.
}

func DefaultSettings() *Settings {
	return &Settings{Sound: true}
}

// SettingsPath returns the path to the settings file.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// LoadSettingsFile reads settings from path, returning defaults when the
// file does not exist.
func LoadSettingsFile(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettingsFile writes settings to path.
func SaveSettingsFile(path string, s *Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// LoadSettings reads settings from the default location.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), nil
	}
	return LoadSettingsFile(path)
}

// SaveSettings writes settings to the default location.
func SaveSettings(s *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return SaveSettingsFile(path, s)
}
