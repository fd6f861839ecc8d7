package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/cardform/pkg/models"
)

// configForm renders one text input per editable field of a component. The
// values live in the editor's draft; the inputs only mirror them.
type configForm struct {
	fields     []models.Field
	inputs     []textinput.Model
	focusIndex int
}

func newConfigForm(fields []models.Field, draft models.Fields, width int) *configForm {
	inputWidth := width - 24
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 60 {
		inputWidth = 60
	}

	f := &configForm{fields: fields}
	for _, field := range fields {
		input := textinput.New()
		input.CharLimit = 0
		input.Width = inputWidth
		input.Prompt = ""
		input.SetValue(draft.Get(field))
		f.inputs = append(f.inputs, input)
	}
	f.updateFocus()
	return f
}

func (f *configForm) updateFocus() {
	for i := range f.inputs {
		if i == f.focusIndex {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *configForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *configForm) next() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focusIndex = (f.focusIndex + 1) % len(f.inputs)
	f.updateFocus()
	return nil
}

func (f *configForm) prev() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focusIndex = (f.focusIndex - 1 + len(f.inputs)) % len(f.inputs)
	f.updateFocus()
	return nil
}

func (f *configForm) onLastField() bool {
	return f.focusIndex == len(f.inputs)-1
}

// update forwards a key to the focused input
func (f *configForm) update(msg tea.KeyMsg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return cmd
}

// focused returns the field under focus and its current input value
func (f *configForm) focused() (models.Field, string) {
	return f.fields[f.focusIndex], f.inputs[f.focusIndex].Value()
}

func (f *configForm) view(title string, width int) string {
	labelStyle := lipgloss.NewStyle().
		Width(14).
		Foreground(lipgloss.Color(ColorNormal))

	var b strings.Builder
	b.WriteString(TypeHeaderStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := labelStyle.Render(field.DisplayName())
		if i == f.focusIndex {
			label = labelStyle.Foreground(lipgloss.Color(ColorActive)).Bold(true).Render(field.DisplayName())
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, f.inputs[i].View()))
	}

	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render("tab next field • enter/ctrl+s save • esc cancel"))

	boxWidth := width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}
	return ActiveBorderStyle.
		Padding(1, 2).
		Width(boxWidth).
		Render(b.String())
}
