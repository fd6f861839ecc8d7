package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cardform/pkg/files"
	"github.com/pluqqy/cardform/pkg/models"
)

// settingsPath returns the --config flag when set, otherwise the per-user default
func settingsPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	return files.DefaultSettingsPath()
}

// loadSettings reads settings for a command, failing only on a malformed file
func loadSettings(cmd *cobra.Command) (*models.Settings, error) {
	path, err := settingsPath(cmd)
	if err != nil {
		return models.DefaultSettings(), nil
	}
	settings, err := files.ReadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	return settings, nil
}
