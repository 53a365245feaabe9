package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/logger"
)

// Config represents the complete configuration for fspreview
type Config struct {
	// Platform selects the icon table and theme ("desktop" or "mobile")
	Platform domain.Platform `mapstructure:"platform"`

	// IconSize is the default size for icon lookups; 0 means the icon package default
	IconSize int `mapstructure:"icon_size"`

	// DataDir holds the view history database
	DataDir string `mapstructure:"data_dir"`

	// Log configures the global logger
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the rotating log file
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	if !c.Platform.IsValid() {
		return fmt.Errorf("%w: invalid platform: %q", domain.ErrConfigInvalid, c.Platform)
	}
	if c.IconSize < 0 {
		return fmt.Errorf("%w: icon_size cannot be negative: %d", domain.ErrConfigInvalid, c.IconSize)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir cannot be empty", domain.ErrConfigInvalid)
	}
	if c.Log.File.Enabled && c.Log.File.Path == "" {
		return fmt.Errorf("%w: log.file.path is required when file logging is enabled", domain.ErrConfigInvalid)
	}
	return nil
}

// LoggerConfig converts the log section into a logger configuration.
// Logs go to stderr so they never mix with rendered output.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.Config{
		Level:   logger.ParseLevel(c.Log.Level),
		Format:  logger.ParseFormat(c.Log.Format),
		Outputs: []logger.OutputConfig{{Type: logger.OutputStderr}},
	}

	if c.Log.File.Enabled {
		cfg.Outputs = append(cfg.Outputs, logger.OutputConfig{Type: logger.OutputFile})
		cfg.File = logger.FileConfig{
			Enabled:    true,
			Path:       ExpandPath(c.Log.File.Path),
			MaxSizeMB:  c.Log.File.MaxSizeMB,
			MaxAgeDays: c.Log.File.MaxAgeDays,
			MaxBackups: c.Log.File.MaxBackups,
			Compress:   c.Log.File.Compress,
		}
	}

	return cfg
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
