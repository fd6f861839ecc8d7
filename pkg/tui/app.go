package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pluqqy/cardform/pkg/models"
)

type App struct {
	builder   *LayoutBuilderModel
	width     int
	height    int
	statusMsg string
}

func NewApp(settings *models.Settings, logger *log.Logger) *App {
	return &App{
		builder: NewLayoutBuilderModel(settings, logger),
	}
}

func (a *App) Init() tea.Cmd {
	return a.builder.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Leave a line for the status bar
		a.builder.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// Any key press dismisses the previous status
		a.statusMsg = ""

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	m, cmd := a.builder.Update(msg)
	if b, ok := m.(*LayoutBuilderModel); ok {
		a.builder = b
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.builder.View()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Builder returns the builder screen
func (a *App) Builder() *LayoutBuilderModel {
	return a.builder
}

// StatusMsg carries a one line message for the status bar
type StatusMsg string
