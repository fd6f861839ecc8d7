package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles yes/no prompts shown above the help pane
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
	viewWidth   int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowInline activates a single line confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// ViewWithWidth renders the confirmation centered in width
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

// View renders the confirmation message with its options
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	message := fmt.Sprintf("%s %s", m.message, formatConfirmOptions(m.destructive))

	if m.viewWidth > 0 && lipgloss.Width(message) < m.viewWidth {
		return lipgloss.NewStyle().
			Width(m.viewWidth).
			Align(lipgloss.Center).
			Render(message)
	}

	return message
}

func formatConfirmOptions(destructive bool) string {
	yes, no := ConfirmWarningStyle, NormalStyle
	if destructive {
		yes = ConfirmDangerStyle
	}
	return yes.Render("[y]es") + " / " + no.Render("[n]o")
}
