package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/cardform/pkg/dnd"
	"github.com/pluqqy/cardform/pkg/models"
)

func (m *LayoutBuilderModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	header := renderHeader(m.width, "Card Form Layout Builder")

	if m.editor.Active() && m.form != nil {
		c := m.editor.Component()
		title := fmt.Sprintf("Configure %s", c.Label)
		return lipgloss.JoinVertical(lipgloss.Left, header, "", contentStyle.Render(m.form.view(title, m.width)))
	}

	columnWidth := (m.width - 6) / 2
	if columnWidth < 30 {
		columnWidth = 30
	}
	paneHeight := m.height/2 - 4
	if !m.showPreview {
		paneHeight = m.height - 14
	}
	if paneHeight < 8 {
		paneHeight = 8
	}

	rows := m.paneStyle(rowsPane).
		Width(columnWidth).
		Height(paneHeight).
		Render(m.rowsView(columnWidth - 4))
	palette := m.paneStyle(palettePane).
		Width(columnWidth).
		Height(paneHeight).
		Render(m.paletteView())

	sections := []string{
		header,
		"",
		contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rows, "  ", palette)),
	}

	if m.showPreview {
		heading := GetActiveHeaderStyle(m.activePane == previewPane).Render("GENERATED HTML")
		previewBox := m.paneStyle(previewPane).
			Width(m.width - 4).
			Render(heading + "\n" + m.preview.View())
		sections = append(sections, contentStyle.Render(previewBox))
	}

	if m.clearConfirm.Active() {
		sections = append(sections, "", m.clearConfirm.ViewWithWidth(m.width))
	} else if m.showHints {
		sections = append(sections, contentStyle.Render(m.helpView()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *LayoutBuilderModel) paneStyle(p pane) lipgloss.Style {
	if m.activePane == p {
		return ActiveBorderStyle.Padding(0, 1)
	}
	return InactiveBorderStyle.Padding(0, 1)
}

func (m *LayoutBuilderModel) rowsView(width int) string {
	var b strings.Builder
	b.WriteString(GetActiveHeaderStyle(m.activePane == rowsPane).Render("LAYOUT BUILDER"))
	b.WriteString("\n\n")

	rows := m.state.Layout()
	if len(rows) == 0 {
		style := EmptyInactiveStyle
		if m.activePane == rowsPane {
			style = EmptyActiveStyle
		}
		b.WriteString(style.Render("Start building your card form"))
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render("Press 'a' to add a row, then place components from the palette"))
		return b.String()
	}

	active, dragging := m.coord.Active()
	hover, hovering := m.coord.Hover()

	for i, row := range rows {
		b.WriteString(m.rowLine(i, row, active, dragging, hover, hovering, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *LayoutBuilderModel) rowLine(i int, row models.Row, active dnd.Entity, dragging bool, hover dnd.Target, hovering bool, width int) string {
	cursorHere := m.activePane == rowsPane && i == m.rowCursor

	handle := fmt.Sprintf("Row %d", i+1)
	switch {
	case dragging && active.Type == dnd.RowEntity && active.RowID == row.ID:
		handle = DragStyle.Render("≡ " + handle)
	case dragging && hovering && hover.RowID == row.ID && hover.ComponentID == "":
		handle = DropTargetStyle.Render("▸ " + handle)
	case cursorHere && m.compCursor == rowHandle:
		handle = SelectedStyle.Render("▸ " + handle)
	default:
		handle = NormalStyle.Render("  " + handle)
	}

	if len(row.Components) == 0 {
		return handle + "  " + EmptyInactiveStyle.Render("(drop components here)")
	}

	chips := make([]string, 0, len(row.Components))
	for j, c := range row.Components {
		chip := "[" + c.Label + "]"
		switch {
		case dragging && active.Type == dnd.ComponentEntity && active.ComponentID == c.ID:
			chip = DragStyle.Render(chip)
		case dragging && hovering && hover.ComponentID == c.ID:
			chip = DropTargetStyle.Render(chip)
		case cursorHere && m.compCursor == j:
			chip = SelectedStyle.Render(chip)
		default:
			chip = NormalStyle.Render(chip)
		}
		chips = append(chips, chip)
	}

	line := handle + "  " + strings.Join(chips, " ")
	if lipgloss.Width(line) > width && width > 0 {
		return lipgloss.NewStyle().Width(width).Render(line)
	}
	return line
}

func (m *LayoutBuilderModel) paletteView() string {
	var b strings.Builder
	b.WriteString(GetActiveHeaderStyle(m.activePane == palettePane).Render("COMPONENT PALETTE"))
	b.WriteString(DescriptionStyle.Render(fmt.Sprintf("  %d/%d placed", m.placedKinds(), len(models.Kinds()))))
	b.WriteString("\n\n")

	palette := m.state.Palette()
	if len(palette) == 0 {
		b.WriteString(EmptyInactiveStyle.Render("All components are placed"))
		return b.String()
	}

	active, dragging := m.coord.Active()
	for i, tmpl := range palette {
		line := tmpl.Label
		switch {
		case dragging && active.Type == dnd.PaletteItem && active.Kind == tmpl.Kind:
			line = DragStyle.Render("≡ " + line)
		case m.activePane == palettePane && i == m.paletteCursor:
			line = SelectedStyle.Render("▸ " + line)
		default:
			line = NormalStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.state.RowCount() == 0 {
		b.WriteString("\n")
		b.WriteString(ConfirmWarningStyle.Render("⚠ Add at least one row to start placing components"))
	}
	return b.String()
}

func (m *LayoutBuilderModel) helpView() string {
	var help []string
	switch {
	case m.Dragging():
		help = []string{"↑/↓/←/→ choose target", "enter drop", "esc cancel"}
	case m.activePane == palettePane:
		help = []string{"tab switch pane", "↑/↓ select", "enter drag", "p add to selected row", "a add row", "y copy", "s export", "q quit"}
	default:
		help = []string{"tab switch pane", "↑/↓ row", "←/→ component", "enter drag", "e edit", "x remove", "a add row", "C clear all", "y copy", "s export", "v preview", "? hints", "q quit"}
	}

	return HelpBorderStyle.
		Width(m.width - 4).
		Render(DescriptionStyle.Render(strings.Join(help, " • ")))
}
