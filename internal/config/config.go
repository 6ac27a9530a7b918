// Package config loads runtime settings from an optional YAML file and
// TASKLIST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"tasklist/internal/store"
)

// DefaultPath is read when no config file is given explicitly.
const DefaultPath = "tasklist.yaml"

// Config holds all runtime settings.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	View    ViewConfig    `mapstructure:"view"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// StorageConfig selects where the task list snapshot is kept.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "sqlite", "file", or "memory"
	Path    string `mapstructure:"path"`
}

// ViewConfig configures how the view is derived.
type ViewConfig struct {
	Locale string `mapstructure:"locale"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.backend", store.BackendSQLite)
	v.SetDefault("storage.path", "./data/tasklist.db")
	v.SetDefault("view.locale", "en")
}

// Load reads configuration from path (DefaultPath when empty), falling back
// to defaults when the file does not exist. Environment variables such as
// TASKLIST_SERVER_PORT or TASKLIST_STORAGE_PATH override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("tasklist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT and DB_PATH are honoured for compatibility with container setups.
	_ = v.BindEnv("server.port", "TASKLIST_SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.path", "TASKLIST_STORAGE_PATH", "DB_PATH")

	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case store.BackendSQLite, store.BackendFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
		}
	case store.BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be 'sqlite', 'file', or 'memory', got %q", c.Storage.Backend)
	}

	if _, err := language.Parse(c.View.Locale); err != nil {
		return fmt.Errorf("invalid view.locale %q: %w", c.View.Locale, err)
	}
	return nil
}

// Language returns the collation language for name ordering.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.View.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
