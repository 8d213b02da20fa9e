package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/checknorris/pkg/config"
)

// validateVerifyFlags validates the verify command flags
func validateVerifyFlags() error {
	if verifyFlags.Source == "" {
		return fmt.Errorf("source remote is required")
	}
	if verifyFlags.Dest == "" {
		return fmt.Errorf("destination remote is required")
	}
	if verifyFlags.Source == verifyFlags.Dest {
		return fmt.Errorf("source and destination cannot be the same: %s", verifyFlags.Source)
	}
	if verifyFlags.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", verifyFlags.Tolerance)
	}
	if verifyFlags.Checkers < 0 {
		return fmt.Errorf("checkers must not be negative, got %d", verifyFlags.Checkers)
	}

	validFormats := map[string]bool{"csv": true, "json": true, "html": true, "status": true}
	for _, f := range verifyFlags.Formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid report format: %s (valid: csv, json, html, status)", f)
		}
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags.
// Only flags the user actually set take effect, so a config file value
// survives unless overridden.
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	cfg.Remotes.Source = verifyFlags.Source
	cfg.Remotes.Dest = verifyFlags.Dest

	if flags.Changed("dirs") {
		cfg.Compare.Dirs = verifyFlags.Dirs
	}
	if flags.Changed("case-sensitive") {
		cfg.Compare.CaseInsensitive = !verifyFlags.CaseSensitive
	}
	if flags.Changed("tolerance") {
		cfg.Compare.ModTimeToleranceSeconds = verifyFlags.Tolerance
	}
	if flags.Changed("checkers") {
		cfg.Rclone.Checkers = verifyFlags.Checkers
	}
	if flags.Changed("no-fast-list") {
		cfg.Rclone.FastList = !verifyFlags.NoFastList
	}
	if flags.Changed("exclude") {
		cfg.Exclude = verifyFlags.Exclude
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = verifyFlags.OutputDir
	}
	if flags.Changed("format") {
		cfg.Output.Formats = verifyFlags.Formats
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = verifyFlags.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = verifyFlags.LogLevel
	}

	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
	}
}
