package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/checknorris/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify checknorris configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}

			fmt.Printf("Source Remote: %s\n", cfg.Remotes.Source)
			fmt.Printf("Dest Remote: %s\n", cfg.Remotes.Dest)
			fmt.Printf("Case Insensitive: %t\n", cfg.Compare.CaseInsensitive)
			fmt.Printf("Modtime Tolerance: %gs\n", cfg.Compare.ModTimeToleranceSeconds)
			fmt.Printf("Rclone Binary: %s\n", cfg.Rclone.Binary)
			fmt.Printf("Rclone Checkers: %d\n", cfg.Rclone.Checkers)
			fmt.Printf("Fast List: %t\n", cfg.Rclone.FastList)
			fmt.Printf("Exclusions: %s\n", strings.Join(cfg.Exclude, ", "))
			fmt.Printf("Output Dir: %s\n", cfg.Output.Dir)
			fmt.Printf("Output Formats: %s\n", strings.Join(cfg.Output.Formats, ", "))
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
