package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/cardform/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParseRows turns row arguments such as "card-number,cvv" into kinds per row.
// Each kind may appear once across all rows, matching the palette rule.
func ParseRows(args []string) ([][]models.Kind, error) {
	seen := make(map[models.Kind]int)
	rows := make([][]models.Kind, 0, len(args))

	for i, arg := range args {
		var row []models.Kind
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			kind, err := models.ParseKind(part)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			if prev, dup := seen[kind]; dup {
				return nil, fmt.Errorf("row %d: %s is already placed in row %d", i+1, kind, prev)
			}
			seen[kind] = i + 1
			row = append(row, kind)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
