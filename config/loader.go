package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "hoplite.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/hoplite"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load layers, in increasing precedence, the defaults, the user config
// (~/.config/hoplite/config.yaml) and the project config (hoplite.yaml in
// the working directory or a parent).
func (l *Loader) Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return l.LoadFrom(home, cwd)
}

// LoadFrom is Load with explicit home and working directories. Empty
// directories are skipped.
func (l *Loader) LoadFrom(home, dir string) (*Config, error) {
	config := DefaultConfig()

	if home != "" {
		userConfigPath := filepath.Join(home, UserConfigDir, UserConfigFile)
		if userConfig, err := loadLayer(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if _, statErr := os.Stat(userConfigPath); !os.IsNotExist(statErr) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	if projectConfigPath := findProjectConfig(dir); projectConfigPath != "" {
		if projectConfig, err := loadLayer(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// findProjectConfig searches for hoplite.yaml in dir and its parents
func findProjectConfig(dir string) string {
	if dir == "" {
		return ""
	}
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
