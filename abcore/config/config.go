/*
   Copyright 2025 The tp Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the application configuration.
//
// Configuration comes from a YAML file, then environment variables:
//
//	ADDRESSBOOK_LOG_LEVEL  overrides logging.level
//	ADDRESSBOOK_BACKEND    overrides storage.backend
//	ADDRESSBOOK_PREFS      overrides userPrefsFilePath
//
// A missing file is not an error; defaults are used.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"

	"github.com/tanruiquan/tp/abcore/errors"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "config.yaml"

// Environment variables that override file settings.
const (
	EnvLogLevel = "ADDRESSBOOK_LOG_LEVEL"
	EnvBackend  = "ADDRESSBOOK_BACKEND"
	EnvPrefs    = "ADDRESSBOOK_PREFS"
)

// Config is the application configuration.
type Config struct {
	Logging           LoggingConfig `yaml:"logging"`
	Storage           StorageConfig `yaml:"storage"`
	UserPrefsFilePath string        `yaml:"userPrefsFilePath"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File, when set, receives log output instead of stderr.
	File string `yaml:"file,omitempty"`
}

// StorageConfig configures address book storage.
type StorageConfig struct {
	Backend Backend `yaml:"backend"`

	// SQLitePath is the database file used by the SQLite backend.
	SQLitePath string `yaml:"sqlitePath"`

	// History is the number of snapshots the SQLite backend keeps.
	History int `yaml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Backend:    JSON,
			SQLitePath: "data/addressbook.db",
			History:    10,
		},
		UserPrefsFilePath: "preferences.yaml",
	}
}

// Load reads the config file at path over the defaults and applies
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if raw := os.Getenv(EnvBackend); raw != "" {
		b, err := ParseBackend(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBackend, err)
		}
		c.Storage.Backend = b
	}
	if path := os.Getenv(EnvPrefs); path != "" {
		c.UserPrefsFilePath = path
	}
	return nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	col := rxmerr.NewCollector()
	if !validLevels[c.Logging.Level] {
		col.Append(&errors.ValidationError{Type: "Config", Field: "logging.level", Reason: "unknown level " + c.Logging.Level})
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		col.Append(&errors.ValidationError{Type: "Config", Field: "logging.format", Reason: "must be console or json"})
	}
	if err := c.Storage.Backend.Validate(); err != nil {
		col.Append(err)
	}
	if c.Storage.Backend == SQLite && c.Storage.SQLitePath == "" {
		col.Append(&errors.ValidationError{Type: "Config", Field: "storage.sqlitePath", Reason: "required by the sqlite backend"})
	}
	if c.Storage.History < 1 {
		col.Append(&errors.ValidationError{Type: "Config", Field: "storage.history", Reason: "must be at least 1"})
	}
	if c.UserPrefsFilePath == "" {
		col.Append(&errors.ValidationError{Type: "Config", Field: "userPrefsFilePath", Reason: "must not be empty"})
	}
	return col.Err()
}
