package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// recorder appends typed runes and answers Enter with a chained message.
type recorder struct {
	typed  string
	echoed []string
}

func (r recorder) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes:
			r.typed += string(msg.Runes)
		case tea.KeyEnter:
			typed := r.typed
			return r, tea.Batch(
				func() tea.Msg { return echoMsg(typed) },
				nil,
			)
		case tea.KeyCtrlC:
			return r, tea.Quit
		}
	case echoMsg:
		r.echoed = append(r.echoed, string(msg))
	}
	return r, nil
}

func (r recorder) View() string {
	return "\x1b[1m" + r.typed + "\x1b[0m"
}

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	d := New(t, recorder{})
	d.DrainInit()
	d.Fill("ab", "c")

	r := d.Model.(recorder)
	assert.Equal(t, []string{"init", "ab", "abc"}, r.echoed)
	assert.Equal(t, "abc", d.PlainView())
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, recorder{})
	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.Type("ignored")
	assert.Empty(t, d.Model.(recorder).typed)
}
