// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zxygithub/evm/internal/codec"
	"github.com/zxygithub/evm/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// StoreFileName is the store file created inside the data directory.
	StoreFileName = "env.json"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
	ErrInvalidLoadOptions = errors.New("invalid load options")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Config is the resolved application configuration.
	Config struct {
		Storage StorageConfig `json:"storage" mapstructure:"storage"`
		Export  ExportConfig  `json:"export" mapstructure:"export"`
		UI      UIConfig      `json:"ui" mapstructure:"ui"`

		// Source is the config file that was read, empty when only defaults and
		// environment variables apply.
		Source string `json:"-" mapstructure:"-"`
	}

	// StorageConfig locates the store file and backups.
	StorageConfig struct {
		// EnvFile overrides <DataDir>/env.json.
		EnvFile string `json:"env_file" mapstructure:"env_file"`
		// DataDir holds the store and default backups.
		DataDir string `json:"data_dir" mapstructure:"data_dir"`
	}

	// ExportConfig controls `evm export` defaults.
	ExportConfig struct {
		DefaultFormat string `json:"default_format" mapstructure:"default_format"`
	}

	// UIConfig controls diagnostics and styling.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// InvalidConfigError aggregates field validation failures.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// InvalidLoadOptionsError aggregates LoadOptions validation failures.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}
)

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not one of the known schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// EnvFilePath returns the store file location.
func (c *Config) EnvFilePath() string {
	if c.Storage.EnvFile != "" {
		return c.Storage.EnvFile
	}
	return filepath.Join(c.Storage.DataDir, StoreFileName)
}

// ExportFormat parses Export.DefaultFormat.
func (c *Config) ExportFormat() (codec.Format, error) {
	return codec.ParseFormat(c.Export.DefaultFormat)
}

// Validate checks values that can still be wrong after schema validation,
// such as those supplied through environment variables.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ExportFormat(); err != nil {
		errs = append(errs, fmt.Errorf("export.default_format: %w", err))
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		errs = append(errs, errors.New("storage.data_dir must not be empty"))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate rejects whitespace-only paths. Empty paths mean "not set".
func (o LoadOptions) Validate() error {
	var errs []error
	for _, p := range []types.FilesystemPath{o.ConfigFilePath, o.ConfigDirPath} {
		if p.IsSet() {
			if err := p.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
