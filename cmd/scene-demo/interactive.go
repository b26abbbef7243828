package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	newEventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dropEventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxEventLines bounds the event log shown in the view; the scene's own
// buffer is only trimmed by an explicit clear.
const maxEventLines = 12

type demoModel struct {
	scn      *scene.Scene[string, scene.Event]
	handles  []*scene.Id[string]
	input    textinput.Model
	selected int
	pending  int
	typing   bool
}

func newDemoModel() *demoModel {
	ti := textinput.New()
	ti.Placeholder = "payload"
	ti.Prompt = "insert: "
	ti.Width = 40

	return &demoModel{
		scn:   scene.NewDefault[string](),
		input: ti,
	}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter":
			if v := m.input.Value(); v != "" {
				h := m.scn.Insert(v)
				m.handles = append(m.handles, h)
				m.selected = len(m.handles) - 1
			}
			m.input.Reset()
			m.typing = false
		case "esc":
			m.input.Reset()
			m.typing = false
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.handles)-1 {
			m.selected++
		}

	case "i":
		m.typing = true
		m.input.Focus()

	case "c":
		if m.selected < len(m.handles) {
			m.handles = append(m.handles, m.handles[m.selected].Clone())
			m.pending++
		}

	case "r":
		if m.selected < len(m.handles) {
			m.handles[m.selected].Release()
			m.handles = append(m.handles[:m.selected], m.handles[m.selected+1:]...)
			if m.selected >= len(m.handles) && m.selected > 0 {
				m.selected--
			}
			m.pending++
		}

	case "g":
		m.scn.GarbageCollect()
		m.pending = 0

	case "x":
		m.scn.ClearEvents()
	}

	return m, nil
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scene inspector"))
	b.WriteString(fmt.Sprintf("  %d objects stored", m.scn.Len()))
	if m.pending > 0 {
		b.WriteString(pendingStyle.Render(fmt.Sprintf("  %d deferred ops", m.pending)))
	}
	b.WriteString("\n\n")

	if len(m.handles) == 0 {
		b.WriteString(helpStyle.Render("no handles, press i to insert an object"))
		b.WriteString("\n")
	}
	for i, h := range m.handles {
		line := fmt.Sprintf("handle %d -> slot %d: %q", i, h.Index(), m.scn.Get(h).Value())
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(handleStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	events := m.scn.Events()
	if len(events) > 0 {
		b.WriteString("\nevents:\n")
		start := 0
		if len(events) > maxEventLines {
			start = len(events) - maxEventLines
		}
		for _, e := range events[start:] {
			style := newEventStyle
			if e.Kind == scene.EventDrop {
				style = dropEventStyle
			}
			b.WriteString("  " + style.Render(e.String()) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("i insert · c clone · r release · g collect · x clear events · q quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive() error {
	_, err := tea.NewProgram(newDemoModel(), tea.WithAltScreen()).Run()
	return err
}
