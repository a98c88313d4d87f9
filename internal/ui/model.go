package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DobroslavRadosavljevic/hsize"
)

type row struct {
	label string
	value string
}

type Model struct {
	input  textinput.Model
	styles Styles
	width  int

	rows     []row
	parseErr error
}

func NewModel(initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "1.5 GiB"
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(initial)
	ti.Focus()

	m := Model{
		input:  ti,
		styles: defaultStyles(),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}

// recompute reparses the entered size and rebuilds the conversion rows.
func (m *Model) recompute() {
	m.rows = nil
	m.parseErr = nil

	text := m.input.Value()
	if text == "" {
		return
	}
	bytes, err := hsize.Parse(text, hsize.ParseOptions{})
	if err != nil {
		m.parseErr = err
		return
	}

	m.rows = append(m.rows, row{
		label: "bytes",
		value: strconv.FormatFloat(bytes, 'f', -1, 64),
	})
	for _, sys := range []hsize.System{hsize.SI, hsize.IEC, hsize.JEDEC, hsize.French} {
		if s, err := hsize.Format(bytes, hsize.FormatOptions{System: sys}); err == nil {
			m.rows = append(m.rows, row{label: sys.String(), value: s})
		}
	}
	if s, err := hsize.Format(bytes, hsize.FormatOptions{Bits: true}); err == nil {
		m.rows = append(m.rows, row{label: "bits", value: s})
	}
	if s, err := hsize.Format(bytes, hsize.FormatOptions{LongForm: true}); err == nil {
		m.rows = append(m.rows, row{label: "long", value: s})
	}
}
