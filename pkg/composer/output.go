package composer

import (
	"fmt"
	"path/filepath"

	"github.com/pluqqy/cardform/pkg/files"
	"github.com/pluqqy/cardform/pkg/models"
)

// ExportPath resolves where exported markup is written. An explicit path wins,
// otherwise the settings' export directory and default filename are used.
func ExportPath(path string, settings *models.Settings) string {
	if path != "" {
		return path
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return filepath.Join(settings.Output.ExportPath, settings.Output.DefaultFilename)
}

// WriteMarkupFile writes composed markup to path, or to the settings default
// when path is empty. It returns the path written.
func WriteMarkupFile(content string, path string, settings *models.Settings) (string, error) {
	target := ExportPath(path, settings)
	if err := files.WriteFile(target, content+"\n"); err != nil {
		return "", fmt.Errorf("failed to write markup: %w", err)
	}
	return target, nil
}
