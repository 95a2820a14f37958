package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/tickwheel/internal/config"
	"github.com/rshade/tickwheel/internal/logging"
	"github.com/rshade/tickwheel/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// interactive reports whether a TUI can be shown. Tests replace it.
//
//nolint:gochecknoglobals // swapped in tests
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the tickwheel CLI.
// It wires up config loading, logging and tracing, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "tickwheel",
		Short:   "Scroll-wheel time and date picker",
		Long:    "tickwheel: pick a time of day or a calendar date with inertial scroll wheels",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
				cfg := config.GetGlobalConfig()
				if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
					return fmt.Errorf("loading config overlay: %w", err)
				}
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections replace the user config")
	cmd.AddCommand(
		NewTimeCmd(), NewDateCmd(), NewRemindCmd(),
		newConfigCmd(), newVersionCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Pick a time starting from 07:30
  tickwheel time --value 07:30

  # Pick a time on a 24-hour dial, drawn inline
  tickwheel time --hour-cycle 24 --embedded

  # Pick a date
  tickwheel date --value 2026-12-24

  # Pick a recurring reminder time and date
  tickwheel remind --value 08:00 --recurring

  # Normalize a value without opening the picker
  tickwheel time --value 7:5 --no-tui

  # Initialize configuration
  tickwheel config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigShowCmd(),
		NewConfigValidateCmd(), NewConfigPathCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("tickwheel %s\n", version.GetVersion())
			if commit := version.GetGitCommit(); commit != "" {
				cmd.Printf("commit: %s\n", commit)
			}
			if date := version.GetBuildDate(); date != "" {
				cmd.Printf("built: %s\n", date)
			}
		},
	}
}
