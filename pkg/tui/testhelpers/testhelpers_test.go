package testhelpers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cardform/pkg/models"
)

func TestCheckoutForm(t *testing.T) {
	st := CheckoutForm().Build()
	l := st.Layout()

	require.Len(t, l, 3)
	assert.Equal(t, []string{"card-number-2", "card-expiry-4", "cvv-5", "submit-7"}, ComponentIDs(l))
	require.Len(t, st.Palette(), 1)
	assert.Equal(t, models.KindCardholderName, st.Palette()[0].Kind)
}

func TestBuildPanicsOnDuplicateKind(t *testing.T) {
	assert.Panics(t, func() {
		NewLayoutBuilder().Row(models.KindCVV).Row(models.KindCVV).Build()
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "enter", Key("enter").String())
	assert.Equal(t, "esc", Key("esc").String())
	assert.Equal(t, "a", Key("a").String())
	assert.Equal(t, "C", Key("C").String())
	assert.Equal(t, tea.KeyRunes, Key("x").Type)
}

type echoModel struct{ keys []string }

func (m echoModel) Init() tea.Cmd { return nil }
func (m echoModel) View() string  { return "" }
func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k := msg.(tea.KeyMsg).String()
	m.keys = append(m.keys, k)
	return m, func() tea.Msg { return k }
}

func TestPressAndType(t *testing.T) {
	m, last := Press(echoModel{}, "a", "enter")
	assert.Equal(t, []string{"a", "enter"}, m.(echoModel).keys)
	assert.Equal(t, "enter", last)

	m = Type(m, "hi")
	assert.Equal(t, []string{"a", "enter", "h", "i"}, m.(echoModel).keys)
}
