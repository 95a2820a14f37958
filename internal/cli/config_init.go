package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tickwheel/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $TICKWHEEL_HOME/config.yaml (default ~/.tickwheel/config.yaml)
with the built-in defaults. An existing file is only replaced with --force
or after confirming the interactive prompt.`,
		Example: `  # Create configuration
  tickwheel config init

  # Create configuration, overwriting existing
  tickwheel config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			cfg.SetPath(path)
			if cfg.Exists() && !force {
				answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path)
				if !answer.Accepted {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
			}

			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
