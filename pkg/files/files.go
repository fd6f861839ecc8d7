package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/cardform/pkg/models"
)

const (
	AppDir           = "cardform"
	SettingsFileName = "settings.yaml"
	DebugLogFile     = "cardform-debug.log"
)

// ErrInvalidSettings is returned when a settings file parses but holds unusable values
var ErrInvalidSettings = errors.New("invalid settings")

// DefaultSettingsPath returns <user config dir>/cardform/settings.yaml
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFileName), nil
}

// ReadSettings loads settings from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// ValidateSettings rejects settings that cannot produce an export target
func ValidateSettings(settings *models.Settings) error {
	if settings.Output.DefaultFilename == "" {
		return fmt.Errorf("%w: output.default_filename cannot be empty", ErrInvalidSettings)
	}
	if filepath.Base(settings.Output.DefaultFilename) != settings.Output.DefaultFilename {
		return fmt.Errorf("%w: output.default_filename must not contain a directory", ErrInvalidSettings)
	}
	return nil
}

// WriteSettings stores settings at path, creating parent directories
func WriteSettings(path string, settings *models.Settings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// WriteFile writes content to a file, creating its directory if needed
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
