package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cardform/internal/cli"
	"github.com/pluqqy/cardform/pkg/files"
	"github.com/pluqqy/cardform/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Long: `Creates the settings file with default values.

The file lives in your user config directory unless --config points elsewhere.
An existing file is only replaced after confirmation.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := settingsPath(cmd)
	if err != nil {
		return fmt.Errorf("failed to resolve settings path: %w", err)
	}
	logger := cli.LoggerFromContext(cmd.Context())

	if _, err := os.Stat(path); err == nil {
		ok, err := cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("Settings already exist at %s. Overwrite with defaults?", path), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo(cmd.OutOrStdout(), "Kept existing settings")
			return nil
		}
	}

	if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	logger.Debug("settings written", "path", path)

	cli.PrintSuccess(cmd.OutOrStdout(), "Wrote default settings to %s", path)
	cli.PrintInfo(cmd.OutOrStdout(), "Run 'cardform' to start building a card form.")
	return nil
}
