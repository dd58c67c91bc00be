// Package project persists application preferences and export payloads.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/piwi3910/knitgauge/internal/model"
)

// EnvPrefix is the prefix of environment variables that override config
// keys, e.g. KNITGAUGE_LOCALE.
const EnvPrefix = "KNITGAUGE"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.knitgauge/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".knitgauge")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// NewViper returns a viper instance with every config key defaulted and
// environment overrides enabled. It does not read a file.
func NewViper() *viper.Viper {
	def := model.DefaultAppConfig()
	v := viper.New()
	v.SetDefault("default_unit", string(def.DefaultUnit))
	v.SetDefault("default_garment", string(def.DefaultGarment))
	v.SetDefault("default_format", string(def.DefaultFormat))
	v.SetDefault("locale", def.Locale)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("debug", def.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadAppConfig reads an AppConfig from a TOML file, applying defaults and
// KNITGAUGE_* environment overrides. A missing file yields the defaults
// (plus environment) with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := NewViper()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return model.AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return model.AppConfig{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}
	return DecodeAppConfig(v)
}

// DecodeAppConfig unmarshals and validates the config held by v.
func DecodeAppConfig(v *viper.Viper) (model.AppConfig, error) {
	var cfg model.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveAppConfig persists an AppConfig to the given path as TOML.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
