// Package config loads hoplite configuration from YAML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete hoplite configuration
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Paradigm ParadigmConfig `yaml:"paradigm"`
	Log      LogConfig      `yaml:"log"`
}

// DataConfig locates the verb lists
type DataConfig struct {
	// Dir is the directory holding verb files
	Dir string `yaml:"dir"`
	// Glob selects verb files under Dir (doublestar syntax)
	Glob string `yaml:"glob"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins feeds the CORS middleware; empty means any origin
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Watch reloads the lexicon when verb files change
	Watch bool `yaml:"watch"`
}

// StoreConfig configures paradigm persistence
type StoreConfig struct {
	// Path is the SQLite database file
	Path string `yaml:"path"`
}

// ParadigmConfig configures the paradigm builder
type ParadigmConfig struct {
	// Workers is the worker pool size (0 = GOMAXPROCS)
	Workers int `yaml:"workers"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data:   DataConfig{Dir: "data", Glob: "**/*.txt"},
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Path: "hoplite.db"},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Data.Glob == "" {
		return fmt.Errorf("data.glob is required")
	}
	if c.Paradigm.Workers < 0 {
		return fmt.Errorf("paradigm.workers must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// loadLayer reads a YAML file without defaults, so that Merge only applies
// the keys the file sets.
func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Data.Dir != "" {
		c.Data.Dir = other.Data.Dir
	}
	if other.Data.Glob != "" {
		c.Data.Glob = other.Data.Glob
	}

	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if len(other.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = other.Server.AllowedOrigins
	}
	if other.Server.Watch {
		c.Server.Watch = true
	}

	if other.Store.Path != "" {
		c.Store.Path = other.Store.Path
	}
	if other.Paradigm.Workers != 0 {
		c.Paradigm.Workers = other.Paradigm.Workers
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
