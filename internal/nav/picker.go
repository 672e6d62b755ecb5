package nav

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dx-tools/cli/internal/fuzzy"
)

const maxVisibleRows = 12

var (
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Picker runs the interactive fuzzy selection as a bubbletea program.
// It satisfies PickFunc. Aborting with esc or ctrl-c reports ok=false,
// which callers treat as a normal cancellation.
func Picker(query string, candidates []string) (string, bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", false, errors.New("interactive selection requires a terminal")
	}

	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(query)
	input.Focus()

	m := pickerModel{
		input:      input,
		candidates: candidates,
		matches:    fuzzy.Filter(query, candidates),
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	fm := final.(pickerModel)
	if fm.aborted || fm.choice == "" {
		return "", false, nil
	}
	return fm.choice, true, nil
}

type pickerModel struct {
	input      textinput.Model
	candidates []string
	matches    []fuzzy.Match
	cursor     int
	choice     string
	aborted    bool
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.matches) > 0 {
				m.choice = m.matches[m.cursor].Candidate
			}
			return m, tea.Quit

		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.matches = fuzzy.Filter(m.input.Value(), m.candidates)
		m.cursor = 0
	}

	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString(counterStyle.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.candidates))))
	b.WriteString("\n")

	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}

	for i := start; i < len(m.matches) && i < start+maxVisibleRows; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + m.matches[i].Candidate))
		} else {
			b.WriteString(dimStyle.Render("  " + m.matches[i].Candidate))
		}
		b.WriteString("\n")
	}

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	return b.String()
}
