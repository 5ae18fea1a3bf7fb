// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// Configuration is read from config.cue or config.toml in the evm config directory
// ($XDG_CONFIG_HOME/evm on Linux, ~/Library/Application Support/evm on macOS,
// %APPDATA%\evm on Windows). CUE files and decoded TOML documents are both checked
// against the embedded #Config schema (config_schema.cue). Environment variables
// prefixed with EVM_ override file values, for example EVM_STORAGE_ENV_FILE.
package config
