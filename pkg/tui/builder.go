package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/cardform/pkg/composer"
	"github.com/pluqqy/cardform/pkg/dnd"
	"github.com/pluqqy/cardform/pkg/editor"
	"github.com/pluqqy/cardform/pkg/layout"
	"github.com/pluqqy/cardform/pkg/models"
)

type pane int

const (
	rowsPane pane = iota
	palettePane
	previewPane
)

// rowHandle is the component cursor value that selects the row itself
const rowHandle = -1

// LayoutBuilderModel is the card form builder screen. It owns no layout data
// of its own: every change goes through layout.State, either directly for
// button actions or through the dnd.Coordinator for gestures.
type LayoutBuilderModel struct {
	state    *layout.State
	coord    *dnd.Coordinator
	editor   *editor.ConfigEditor
	settings *models.Settings
	logger   *log.Logger

	activePane    pane
	rowCursor     int
	compCursor    int
	paletteCursor int

	form         *configForm
	clearConfirm *ConfirmationModel
	preview      viewport.Model
	markup       string
	showPreview  bool
	showHints    bool

	width  int
	height int
}

// NewLayoutBuilderModel creates a builder with an empty layout
func NewLayoutBuilderModel(settings *models.Settings, logger *log.Logger) *LayoutBuilderModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = log.Default()
	}

	st := layout.New(layout.WithLogger(logger))
	m := &LayoutBuilderModel{
		state:        st,
		coord:        dnd.NewCoordinator(st, logger),
		editor:       editor.New(st),
		settings:     settings,
		logger:       logger,
		activePane:   rowsPane,
		compCursor:   rowHandle,
		clearConfirm: NewConfirmation(),
		preview:      viewport.New(80, 10),
		showPreview:  settings.UI.ShowPreview,
		showHints:    settings.UI.ShowHints,
	}

	m.markup = composer.ComposeLayout(st.Layout())
	st.Subscribe(func(l models.Layout) {
		m.markup = composer.ComposeLayout(l)
		m.clampCursors()
		m.updatePreview()
	})
	m.updatePreview()
	return m
}

func (m *LayoutBuilderModel) Init() tea.Cmd {
	return nil
}

// State exposes the layout for callers that render or export it
func (m *LayoutBuilderModel) State() *layout.State {
	return m.state
}

// Markup returns the markup generated for the current layout
func (m *LayoutBuilderModel) Markup() string {
	return m.markup
}

func (m *LayoutBuilderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSizes()
	m.updatePreview()
}

func (m *LayoutBuilderModel) updateViewportSizes() {
	previewHeight := m.height/2 - 6
	if previewHeight < 5 {
		previewHeight = 5
	}
	m.preview.Width = m.width - 6 // Account for outer padding (2), borders (2) and inner padding (2)
	if m.preview.Width < 20 {
		m.preview.Width = 20
	}
	m.preview.Height = previewHeight
}

func (m *LayoutBuilderModel) updatePreview() {
	content := m.markup
	if m.preview.Width > 0 {
		content = wordwrap.String(content, m.preview.Width)
	}
	m.preview.SetContent(content)
}

// clampCursors keeps cursors on existing entries after a structural change
func (m *LayoutBuilderModel) clampCursors() {
	rows := m.state.Layout()
	if m.rowCursor >= len(rows) {
		m.rowCursor = len(rows) - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}

	if len(rows) == 0 {
		m.compCursor = rowHandle
	} else if n := len(rows[m.rowCursor].Components); m.compCursor >= n {
		m.compCursor = n - 1
	}
	if m.compCursor < rowHandle {
		m.compCursor = rowHandle
	}

	if n := len(m.state.Palette()); m.paletteCursor >= n {
		m.paletteCursor = n - 1
	}
	if m.paletteCursor < 0 {
		m.paletteCursor = 0
	}
}

// selectedRow returns the row under the cursor
func (m *LayoutBuilderModel) selectedRow() (models.Row, bool) {
	rows := m.state.Layout()
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return models.Row{}, false
	}
	return rows[m.rowCursor], true
}

// selectedComponent returns the component under the cursor, if the cursor is
// not on a row handle
func (m *LayoutBuilderModel) selectedComponent() (models.Row, models.Component, bool) {
	row, ok := m.selectedRow()
	if !ok || m.compCursor < 0 || m.compCursor >= len(row.Components) {
		return row, models.Component{}, false
	}
	return row, row.Components[m.compCursor], true
}

// selectedTemplate returns the palette entry under the palette cursor
func (m *LayoutBuilderModel) selectedTemplate() (models.Template, bool) {
	palette := m.state.Palette()
	if m.paletteCursor < 0 || m.paletteCursor >= len(palette) {
		return models.Template{}, false
	}
	return palette[m.paletteCursor], true
}

// cursorTarget is the drop target under the row cursor
func (m *LayoutBuilderModel) cursorTarget() (dnd.Target, bool) {
	row, ok := m.selectedRow()
	if !ok {
		return dnd.Target{}, false
	}
	t := dnd.Target{RowID: row.ID}
	if m.compCursor >= 0 && m.compCursor < len(row.Components) {
		t.ComponentID = row.Components[m.compCursor].ID
	}
	return t, true
}

// Dragging reports whether a keyboard gesture is in progress
func (m *LayoutBuilderModel) Dragging() bool {
	return m.coord.Phase() == dnd.Dragging
}

// Editing reports whether the component configuration form is open
func (m *LayoutBuilderModel) Editing() bool {
	return m.editor.Active()
}
