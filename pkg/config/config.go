package config

import (
	"github.com/sdejongh/checknorris/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Remotes RemotesConfig `yaml:"remotes"`
	Compare CompareConfig `yaml:"compare"`
	Rclone  RcloneConfig  `yaml:"rclone"`
	Exclude []string      `yaml:"exclude"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RemotesConfig identifies the two trees being reconciled
type RemotesConfig struct {
	Source string `yaml:"source"` // e.g. "dropbox:"
	Dest   string `yaml:"dest"`   // e.g. "box:/SAOA"
}

// CompareConfig holds comparison behavior settings
type CompareConfig struct {
	CaseInsensitive         bool    `yaml:"case_insensitive"`
	ModTimeToleranceSeconds float64 `yaml:"modtime_tolerance_seconds"`

	// Dirs restricts per-directory aggregation to these top-level
	// directories. Empty means no restriction. Global counts always
	// cover the full source listing.
	Dirs []string `yaml:"dirs"`
}

// RcloneConfig holds settings passed through to the rclone listing tool
type RcloneConfig struct {
	Binary     string   `yaml:"binary"`
	ConfigFile string   `yaml:"config_file"`
	Checkers   int      `yaml:"checkers"`
	FastList   bool     `yaml:"fast_list"`
	ExtraArgs  []string `yaml:"extra_args"`
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"` // subset of: csv, json, html, status
	Quiet   bool     `yaml:"quiet"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
	File  string `yaml:"file"`  // Log file path (empty = console only)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Remotes: RemotesConfig{},
		Compare: CompareConfig{
			CaseInsensitive:         true,
			ModTimeToleranceSeconds: 120,
		},
		Rclone: RcloneConfig{
			Binary:   "rclone",
			Checkers: 16,
			FastList: true,
		},
		Exclude: []string{
			".DS_Store",
			"Thumbs.db",
			"._*",
			"~$*",
			"*.boxnote",
			"*.tmp",
		},
		Output: OutputConfig{
			Dir:     "./reports",
			Formats: []string{"csv", "json", "html", "status"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Compare.ModTimeToleranceSeconds < 0 {
		return &models.ValidationError{
			Field:   "compare.modtime_tolerance_seconds",
			Message: "must not be negative",
		}
	}

	if c.Rclone.Binary == "" {
		return &models.ValidationError{
			Field:   "rclone.binary",
			Message: "must not be empty",
		}
	}

	if c.Rclone.Checkers < 1 {
		return &models.ValidationError{
			Field:   "rclone.checkers",
			Message: "must be at least 1",
		}
	}

	validFormats := map[string]bool{"csv": true, "json": true, "html": true, "status": true}
	for _, f := range c.Output.Formats {
		if !validFormats[f] {
			return &models.ValidationError{
				Field:   "output.formats",
				Message: "must contain only 'csv', 'json', 'html', or 'status'",
			}
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
