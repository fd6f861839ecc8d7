package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/cardform/internal/cli"
	"github.com/pluqqy/cardform/pkg/composer"
	"github.com/pluqqy/cardform/pkg/layout"
	"github.com/pluqqy/cardform/pkg/models"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// NewComposeCommand creates the compose command
func NewComposeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose [row...]",
		Short: "Generate card form markup from rows given on the command line",
		Long: `Build a layout without the interactive builder and print its markup.

Each argument is one row; separate components that share a row with commas.
Every component may be placed once. With no rows the default form is printed.

Examples:
  # Card number on its own row, expiry and CVV side by side, then submit
  cardform compose card-number card-expiry,cvv submit

  # Write to the configured export file
  cardform compose card-number cvv submit --export

  # Write to a specific file and copy to the clipboard
  cardform compose card-number submit --file form.html --copy`,
		RunE: runCompose,
	}

	cmd.Flags().StringP("file", "f", "", "Write markup to this file instead of stdout")
	cmd.Flags().Bool("export", false, "Write markup to the export path from settings")
	cmd.Flags().Bool("copy", false, "Copy markup to the clipboard")

	return cmd
}

// buildLayout places kinds row by row on a fresh builder state
func buildLayout(rows [][]models.Kind, opts ...layout.Option) (*layout.State, error) {
	st := layout.New(opts...)
	for _, kinds := range rows {
		rowID := st.AddRow()
		for _, kind := range kinds {
			if _, ok := st.PlaceComponent(rowID, kind); !ok {
				return nil, fmt.Errorf("could not place %s", kind)
			}
		}
	}
	return st, nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	logger := cli.LoggerFromContext(cmd.Context())

	rows, err := cli.ParseRows(args)
	if err != nil {
		return fmt.Errorf("invalid rows: %w", err)
	}

	st, err := buildLayout(rows, layout.WithLogger(logger))
	if err != nil {
		return err
	}
	markup := composer.ComposeLayout(st.Layout())

	file, _ := cmd.Flags().GetString("file")
	export, _ := cmd.Flags().GetBool("export")
	copyMarkup, _ := cmd.Flags().GetBool("copy")

	written := file != "" || export
	if written {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		path, err := composer.WriteMarkupFile(markup, file, settings)
		if err != nil {
			return err
		}
		logger.Debug("markup exported", "path", path, "rows", st.RowCount())
		cli.PrintSuccess(cmd.ErrOrStderr(), "Markup written to %s", path)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), markup)
	}

	if copyMarkup {
		if err := copyToClipboard(markup); err != nil {
			// The markup already reached a file, so a missing clipboard is not fatal
			if written {
				cli.PrintWarning(cmd.ErrOrStderr(), "Could not copy to clipboard: %v", err)
				return nil
			}
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess(cmd.ErrOrStderr(), "Markup copied to clipboard")
	}
	return nil
}
