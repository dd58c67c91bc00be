package model

import "fmt"

// AppConfig holds application-wide preferences. It never stores
// measurements; a session's values live only as long as the session.
type AppConfig struct {
	// Defaults applied to new sessions
	DefaultUnit    Unit        `mapstructure:"default_unit" toml:"default_unit" json:"default_unit"`
	DefaultGarment GarmentType `mapstructure:"default_garment" toml:"default_garment" json:"default_garment"`
	DefaultFormat  Format      `mapstructure:"default_format" toml:"default_format" json:"default_format"`

	// Application preferences
	Locale    string `mapstructure:"locale" toml:"locale" json:"locale"`             // BCP 47 tag, e.g. "en", "ja"
	OutputDir string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir"` // where rendered files go
	Debug     bool   `mapstructure:"debug" toml:"debug" json:"debug"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSelection.
func DefaultAppConfig() AppConfig {
	sel := DefaultSelection()
	return AppConfig{
		DefaultUnit:    sel.Unit,
		DefaultGarment: sel.Garment,
		DefaultFormat:  sel.Format,
		Locale:         "en",
		OutputDir:      ".",
		Debug:          false,
	}
}

// Validate checks that every default names a supported value.
func (c AppConfig) Validate() error {
	if _, err := ParseUnit(string(c.DefaultUnit)); err != nil {
		return fmt.Errorf("default_unit: %w", err)
	}
	if _, err := ParseGarmentType(string(c.DefaultGarment)); err != nil {
		return fmt.Errorf("default_garment: %w", err)
	}
	if _, err := ParseFormat(string(c.DefaultFormat)); err != nil {
		return fmt.Errorf("default_format: %w", err)
	}
	return nil
}

// ApplyToSelection copies the configured defaults into a selection state.
// This is used when creating a new session so it inherits the user's
// saved defaults. Values that do not parse are left as they were.
func (c AppConfig) ApplyToSelection(s *SelectionState) {
	if u, err := ParseUnit(string(c.DefaultUnit)); err == nil {
		s.Unit = u
	}
	if g, err := ParseGarmentType(string(c.DefaultGarment)); err == nil {
		s.Garment = g
	}
	if f, err := ParseFormat(string(c.DefaultFormat)); err == nil {
		s.Format = f
	}
}
