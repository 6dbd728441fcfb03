// Package prompt is a one-line command input for editing the panel tree
// by name.
package prompt

import (
	"strings"

	"github.com/avitaltamir/tilegrid/internal/components"
	"github.com/avitaltamir/tilegrid/internal/panel"
	"github.com/avitaltamir/tilegrid/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"
)

// SubmitMsg carries a parsed command to the tiles view.
type SubmitMsg struct {
	Line string
	Cmd  panel.Command
}

// CancelMsg is sent when the prompt is dismissed without submitting.
type CancelMsg struct{}

// Model is the command prompt.
type Model struct {
	components.Base

	input   textinput.Model
	history []string
	histIdx int

	log *zap.Logger
}

// New creates a prompt.
func New(logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "col c | row c before | rm a 0 | resize a c 5"
	ti.Prompt = ": "
	ti.CharLimit = 128

	return Model{
		input: ti,
		log:   logger,
	}
}

// Init initializes the prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if !m.Focused() {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		return m.submit()

	case tea.KeyEsc:
		m.input.SetValue("")
		m.histIdx = len(m.history)
		return m, func() tea.Msg { return CancelMsg{} }

	case tea.KeyUp:
		if len(m.history) > 0 && m.histIdx > 0 {
			m.histIdx--
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.histIdx < len(m.history)-1 {
			m.histIdx++
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		} else if m.histIdx == len(m.history)-1 {
			m.histIdx = len(m.history)
			m.input.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histIdx = len(m.history)

	cmd, err := Parse(line)
	if err != nil {
		// keep the line so it can be fixed
		m.log.Debug("prompt parse failed", zap.String("line", line), zap.Error(err))
		return m, components.ReportError(err)
	}

	m.input.SetValue("")
	return m, func() tea.Msg { return SubmitMsg{Line: line, Cmd: cmd} }
}

// View renders the prompt on a single line.
func (m Model) View() string {
	w, _ := m.Size()
	if w == 0 {
		return ""
	}
	return theme.PromptStyle.Width(w).Render(truncate.String(m.input.View(), uint(w)))
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	m.input.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	m.input.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
	return m
}

// Value returns the text currently typed.
func (m Model) Value() string {
	return m.input.Value()
}

// History returns submitted lines, oldest first.
func (m Model) History() []string {
	return m.history
}

// SetHistory replaces the history, for restoring a previous session.
func (m Model) SetHistory(lines []string) Model {
	m.history = append([]string(nil), lines...)
	m.histIdx = len(m.history)
	return m
}
