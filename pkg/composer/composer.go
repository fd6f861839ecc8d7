// Package composer turns a card form layout into the markup a checkout page
// embeds. Composition is pure: the same layout always yields byte-identical
// output.
package composer

import (
	"fmt"
	"html"
	"strings"

	"github.com/pluqqy/cardform/pkg/models"
)

// DefaultMarkup is emitted for a layout without rows, meaning the card form
// falls back to its built-in arrangement.
const DefaultMarkup = `<primer-card-form>
  <!-- Default layout with all components -->
</primer-card-form>`

const flexRowOpen = `<div style="display: flex; gap: 8px; flex-wrap: wrap;">`

// ComposeLayout renders the layout as <primer-card-form> markup
func ComposeLayout(layout models.Layout) string {
	if len(layout) == 0 {
		return DefaultMarkup
	}

	var content strings.Builder
	for _, row := range layout {
		switch len(row.Components) {
		case 0:
			continue
		case 1:
			content.WriteString("    " + ComposeComponent(row.Components[0]) + "\n")
		default:
			content.WriteString("    " + flexRowOpen + "\n")
			for _, c := range row.Components {
				content.WriteString("      " + ComposeComponent(c) + "\n")
			}
			content.WriteString("    </div>\n")
		}
	}

	var output strings.Builder
	output.WriteString("<primer-card-form>\n")
	output.WriteString("  <div slot=\"card-form-content\">\n")
	output.WriteString(content.String())
	output.WriteString("  </div>\n")
	output.WriteString("</primer-card-form>")
	return output.String()
}

// ComposeComponent renders a single component tag. Only attributes whose
// value is non-empty and differs from the kind's default are written.
func ComposeComponent(c models.Component) string {
	tag := models.TagName(c.Kind)
	if tag == "" {
		return "<!-- Unknown component -->"
	}

	attrs := buildAttributes(c)
	if len(attrs) == 0 {
		return fmt.Sprintf("<%s></%s>", tag, tag)
	}
	return fmt.Sprintf("<%s %s></%s>", tag, strings.Join(attrs, " "), tag)
}

type attribute struct {
	name  string
	field models.Field
}

// attributesFor fixes the emission order per kind. Inputs write label,
// placeholder, aria-label. Submit writes only its button text; its label and
// aria-label stay in the builder.
func attributesFor(kind models.Kind) []attribute {
	if kind == models.KindSubmit {
		return []attribute{
			{"button-text", models.FieldButtonText},
		}
	}
	return []attribute{
		{"label", models.FieldLabel},
		{"placeholder", models.FieldPlaceholder},
		{"aria-label", models.FieldAriaLabel},
	}
}

func buildAttributes(c models.Component) []string {
	defaults, _ := models.DefaultTemplate(c.Kind)

	var attrs []string
	for _, a := range attributesFor(c.Kind) {
		value := c.Fields.Get(a.field)
		if strings.TrimSpace(value) == "" || value == defaults.Fields.Get(a.field) {
			continue
		}
		attrs = append(attrs, fmt.Sprintf(`%s="%s"`, a.name, html.EscapeString(value)))
	}
	return attrs
}
