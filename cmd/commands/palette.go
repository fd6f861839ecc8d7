package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cardform/internal/cli"
	"github.com/pluqqy/cardform/pkg/models"
)

// paletteEntry is the structured form of one palette template
type paletteEntry struct {
	Kind        string   `yaml:"kind" json:"kind"`
	Tag         string   `yaml:"tag" json:"tag"`
	Label       string   `yaml:"label" json:"label"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	AriaLabel   string   `yaml:"aria_label,omitempty" json:"aria_label,omitempty"`
	ButtonText  string   `yaml:"button_text,omitempty" json:"button_text,omitempty"`
	Fields      []string `yaml:"fields" json:"fields"`
}

// NewPaletteCommand creates the palette command
func NewPaletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the card form components and their defaults",
		Long: `List every component that can be placed in a card form, with the
custom element it renders to and its default attribute values.

Examples:
  # Show as a table
  cardform palette

  # Show as YAML
  cardform palette -o yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return cli.ValidateOutputFormat(format)
		},
		RunE: runPalette,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func paletteEntries() []paletteEntry {
	var entries []paletteEntry
	for _, tmpl := range models.DefaultPalette() {
		var fields []string
		for _, f := range models.VisibleFields(tmpl.Kind) {
			fields = append(fields, string(f))
		}
		entries = append(entries, paletteEntry{
			Kind:        string(tmpl.Kind),
			Tag:         models.TagName(tmpl.Kind),
			Label:       tmpl.Label,
			Placeholder: tmpl.Placeholder,
			AriaLabel:   tmpl.AriaLabel,
			ButtonText:  tmpl.ButtonText,
			Fields:      fields,
		})
	}
	return entries
}

func runPalette(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	entries := paletteEntries()

	if format != string(cli.FormatText) {
		if err := cli.OutputResults(cmd.OutOrStdout(), format, entries); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("KIND", "ELEMENT", "LABEL", "DEFAULT", "FIELDS")
	for _, e := range entries {
		def := e.Placeholder
		if def == "" {
			def = e.ButtonText
		}
		table.Row(e.Kind, e.Tag, e.Label, cli.TruncateString(def, 24), strings.Join(e.Fields, ","))
	}
	return table.Flush()
}
