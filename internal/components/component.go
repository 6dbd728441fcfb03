package components

import tea "github.com/charmbracelet/bubbletea"

// ErrorMsg reports an error that should be shown in the status bar.
type ErrorMsg struct {
	Err error
}

// StatusMsg updates the status bar with a message.
type StatusMsg struct {
	Text string
}

// ReportError returns a command that emits ErrorMsg for err, or nil when
// err is nil.
func ReportError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// ReportStatus returns a command that emits StatusMsg.
func ReportStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// Base provides common functionality for all components.
// Embed this in your component structs to get default implementations.
type Base struct {
	focused bool
	width   int
	height  int
}

// NewBase creates a new Base with the given dimensions.
func NewBase(width, height int) Base {
	return Base{
		width:  width,
		height: height,
	}
}

// Focus sets the focused state to true.
func (b *Base) Focus() {
	b.focused = true
}

// Blur sets the focused state to false.
func (b *Base) Blur() {
	b.focused = false
}

// Focused returns the current focus state.
func (b Base) Focused() bool {
	return b.focused
}

// SetSize updates the component's dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component's current dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}
