package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tickwheel/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: schema version, picker layout,
physics constants and logging settings.`,
		Example: `  # Validate current configuration
  tickwheel config validate

  # Validate and show detailed information
  tickwheel config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Hour cycle: %s (resolved %s)\n",
		cfg.Picker.HourCycle, config.ResolveHourCycle(cfg.Picker.HourCycle, cfg.Picker.Locale))
	cmd.Printf("  Loop: %t\n", cfg.Picker.Loop)
	cmd.Printf("  Presentation: %s\n", cfg.Picker.Presentation)
	cmd.Printf("  Friction: %g\n", cfg.Physics.Friction)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
