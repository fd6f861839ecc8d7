package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/cardform/pkg/composer"
	"github.com/pluqqy/cardform/pkg/dnd"
	"github.com/pluqqy/cardform/pkg/models"
)

func statusCmd(format string, args ...interface{}) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}

func (m *LayoutBuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.clearConfirm.Active() {
			return m, m.clearConfirm.Update(msg)
		}
		if m.editor.Active() {
			return m, m.handleFormKeys(msg)
		}
		return m, m.handleKeys(msg)
	}

	if m.showPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *LayoutBuilderModel) handleKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		if m.Dragging() {
			return nil
		}
		return tea.Quit

	case "esc":
		if m.Dragging() {
			m.coord.Cancel()
			return statusCmd("Drag cancelled")
		}
		return nil

	case "tab":
		m.cyclePane(1)
		return nil

	case "shift+tab":
		m.cyclePane(-1)
		return nil

	case "up", "k":
		m.moveVertical(-1)
		return nil

	case "down", "j":
		m.moveVertical(1)
		return nil

	case "left", "h":
		m.moveHorizontal(-1)
		return nil

	case "right", "l":
		m.moveHorizontal(1)
		return nil

	case "enter", " ":
		if m.Dragging() {
			return m.drop()
		}
		return m.pickUp()
	}

	// Structural actions are disabled mid-gesture so a drop always lands on
	// the layout the user was looking at.
	if m.Dragging() {
		return nil
	}

	switch msg.String() {
	case "a":
		m.state.AddRow()
		m.rowCursor = m.state.RowCount() - 1
		m.compCursor = rowHandle
		m.activePane = rowsPane
		return statusCmd("✓ Added row %d", m.state.RowCount())

	case "p":
		return m.placeSelected()

	case "x", "delete":
		return m.removeSelected()

	case "e":
		return m.openEditor()

	case "C":
		if m.state.RowCount() == 0 {
			return nil
		}
		m.clearConfirm.ShowInline("Clear all rows and return every component to the palette?", true,
			func() tea.Cmd {
				m.state.ClearAll()
				return statusCmd("✓ Layout cleared")
			}, nil)
		return nil

	case "y":
		return m.copyMarkup()

	case "s":
		return m.exportMarkup()

	case "v":
		m.showPreview = !m.showPreview
		if !m.showPreview && m.activePane == previewPane {
			m.activePane = rowsPane
		}
		m.updateViewportSizes()
		return nil

	case "?":
		m.showHints = !m.showHints
		return nil
	}
	return nil
}

func (m *LayoutBuilderModel) cyclePane(delta int) {
	panes := []pane{rowsPane, palettePane}
	if m.showPreview {
		panes = append(panes, previewPane)
	}
	idx := 0
	for i, p := range panes {
		if p == m.activePane {
			idx = i
		}
	}
	idx = (idx + delta + len(panes)) % len(panes)
	m.activePane = panes[idx]
}

func (m *LayoutBuilderModel) moveVertical(delta int) {
	switch m.activePane {
	case rowsPane:
		rows := m.state.Layout()
		next := m.rowCursor + delta
		if next < 0 || next >= len(rows) {
			return
		}
		m.rowCursor = next
		if n := len(rows[next].Components); m.compCursor >= n {
			m.compCursor = n - 1
		}
		m.hover()
	case palettePane:
		next := m.paletteCursor + delta
		if next >= 0 && next < len(m.state.Palette()) {
			m.paletteCursor = next
		}
	case previewPane:
		if delta < 0 {
			m.preview.LineUp(1)
		} else {
			m.preview.LineDown(1)
		}
	}
}

func (m *LayoutBuilderModel) moveHorizontal(delta int) {
	if m.activePane != rowsPane {
		return
	}
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	next := m.compCursor + delta
	if next < rowHandle || next >= len(row.Components) {
		return
	}
	m.compCursor = next
	m.hover()
}

// hover reports the cursor position to an in-flight gesture
func (m *LayoutBuilderModel) hover() {
	if !m.Dragging() {
		return
	}
	if t, ok := m.cursorTarget(); ok {
		m.coord.Move(t)
	}
}

// pickUp starts a keyboard gesture for whatever is under the cursor
func (m *LayoutBuilderModel) pickUp() tea.Cmd {
	switch m.activePane {
	case palettePane:
		tmpl, ok := m.selectedTemplate()
		if !ok {
			return nil
		}
		if m.state.RowCount() == 0 {
			return statusCmd("Add at least one row to start placing components")
		}
		m.coord.Start(dnd.Palette(tmpl.Kind))
		m.activePane = rowsPane
		m.hover()
		return statusCmd("Dragging %s: move to a row and press enter, esc to cancel", tmpl.Label)

	case rowsPane:
		row, ok := m.selectedRow()
		if !ok {
			return nil
		}
		if _, c, ok := m.selectedComponent(); ok {
			m.coord.Start(dnd.ComponentOf(row.ID, c.ID))
			m.hover()
			return statusCmd("Dragging %s within its row", c.Label)
		}
		m.coord.Start(dnd.RowOf(row.ID))
		m.hover()
		return statusCmd("Dragging row %d", m.rowCursor+1)
	}
	return nil
}

func (m *LayoutBuilderModel) drop() tea.Cmd {
	entity, _ := m.coord.Active()
	var outcome dnd.Outcome
	if t, ok := m.cursorTarget(); ok {
		outcome = m.coord.Drop(&t)
	} else {
		outcome = m.coord.Drop(nil)
	}

	switch outcome {
	case dnd.OutcomePlaced:
		if row, ok := m.selectedRow(); ok {
			m.compCursor = len(row.Components) - 1
		}
		return statusCmd("✓ Placed %s", entity.Kind)
	case dnd.OutcomeRowsReordered:
		if idx := m.state.RowIndex(entity.RowID); idx >= 0 {
			m.rowCursor = idx
			m.compCursor = rowHandle
		}
		return statusCmd("✓ Row moved")
	case dnd.OutcomeComponentsReordered:
		if idx := m.state.ComponentIndex(entity.RowID, entity.ComponentID); idx >= 0 {
			m.compCursor = idx
		}
		return statusCmd("✓ Component moved")
	case dnd.OutcomeIgnored:
		if entity.Type == dnd.ComponentEntity {
			return statusCmd("Components can only be reordered within their own row")
		}
		return statusCmd("Nothing to change")
	}
	return statusCmd("Drag cancelled")
}

// placeSelected is the button equivalent of dragging a palette entry onto
// the selected row
func (m *LayoutBuilderModel) placeSelected() tea.Cmd {
	tmpl, ok := m.selectedTemplate()
	if !ok {
		return statusCmd("All components are placed")
	}
	row, ok := m.selectedRow()
	if !ok {
		return statusCmd("Add at least one row to start placing components")
	}
	if _, placed := m.state.PlaceComponent(row.ID, tmpl.Kind); !placed {
		return nil
	}
	return statusCmd("✓ Added %s to row %d", tmpl.Label, m.rowCursor+1)
}

func (m *LayoutBuilderModel) removeSelected() tea.Cmd {
	if m.activePane != rowsPane {
		return nil
	}
	if row, c, ok := m.selectedComponent(); ok {
		m.state.RemoveComponent(row.ID, c.ID)
		return statusCmd("✓ Removed %s", c.Label)
	}
	if row, ok := m.selectedRow(); ok {
		m.state.RemoveRow(row.ID)
		return statusCmd("✓ Removed row")
	}
	return nil
}

func (m *LayoutBuilderModel) openEditor() tea.Cmd {
	_, c, ok := m.selectedComponent()
	if !ok || m.activePane != rowsPane {
		return nil
	}
	m.editor.Open(c)
	m.form = newConfigForm(m.editor.Fields(), m.editor.Draft(), m.width)
	return m.form.focusCmd()
}

func (m *LayoutBuilderModel) copyMarkup() tea.Cmd {
	markup := m.markup
	return func() tea.Msg {
		if err := clipboard.WriteAll(markup); err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to copy to clipboard: %v", err))
		}
		return StatusMsg("✓ Markup copied to clipboard")
	}
}

func (m *LayoutBuilderModel) exportMarkup() tea.Cmd {
	markup, settings, logger := m.markup, m.settings, m.logger
	return func() tea.Msg {
		path, err := composer.WriteMarkupFile(markup, "", settings)
		if err != nil {
			logger.Error("export failed", "err", err)
			return StatusMsg(fmt.Sprintf("× Failed to export: %v", err))
		}
		logger.Info("markup exported", "path", path)
		return StatusMsg(fmt.Sprintf("✓ Exported to %s", path))
	}
}

func (m *LayoutBuilderModel) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		m.form = nil
		return statusCmd("Edit cancelled")

	case "ctrl+s":
		return m.commitForm()

	case "enter":
		if m.form.onLastField() {
			return m.commitForm()
		}
		return m.form.next()

	case "tab", "down":
		return m.form.next()

	case "shift+tab", "up":
		return m.form.prev()
	}

	cmd := m.form.update(msg)
	field, value := m.form.focused()
	if err := m.editor.SetField(field, value); err != nil {
		m.logger.Warn("draft update rejected", "field", field, "err", err)
	}
	return cmd
}

func (m *LayoutBuilderModel) commitForm() tea.Cmd {
	label := m.editor.Component().Label
	m.form = nil
	if !m.editor.Commit() {
		return statusCmd("× Component no longer exists")
	}
	return statusCmd("✓ Updated %s", label)
}

// placedKinds is used by the palette view to show how much of the form is done
func (m *LayoutBuilderModel) placedKinds() int {
	return len(models.Kinds()) - len(m.state.Palette())
}
