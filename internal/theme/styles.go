package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Border definitions
var (
	// NeonBorder uses heavy lines for a bold look
	NeonBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// GlowBorder uses rounded corners for a softer look
	GlowBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Divider glyphs for the gaps between columns and between rows.
const (
	DividerColumn = "┃"
	DividerRow    = "━"
)

// Pane styles
var (
	PaneInactive lipgloss.Style
	PaneFocused  lipgloss.Style
)

// Divider styles
var (
	DividerIdle   lipgloss.Style
	DividerActive lipgloss.Style
)

// Text styles - hierarchy from most to least prominent
var (
	TextH1         lipgloss.Style
	TextBody       lipgloss.Style
	TextMutedStyle lipgloss.Style
	TextDimStyle   lipgloss.Style
)

// Status bar styles
var (
	StatusBarStyle     lipgloss.Style
	StatusBarSection   lipgloss.Style
	StatusBarHighlight lipgloss.Style
	StatusBarError     lipgloss.Style
)

// Prompt and track grid styles
var (
	PromptStyle  lipgloss.Style
	OverlapStyle lipgloss.Style
)

// regenerateStyles rebuilds all style variables based on current color values.
// Called when theme changes.
func regenerateStyles() {
	PaneInactive = lipgloss.NewStyle().
		Border(GlowBorder).
		BorderForeground(TextDim)

	PaneFocused = lipgloss.NewStyle().
		Border(NeonBorder).
		BorderForeground(ColorPrimary)

	DividerIdle = lipgloss.NewStyle().
		Foreground(TextDim)

	DividerActive = lipgloss.NewStyle().
		Foreground(ColorFocus).
		Bold(true)

	TextH1 = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	TextBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	TextDimStyle = lipgloss.NewStyle().
		Foreground(TextDim).
		Faint(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	StatusBarSection = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	StatusBarHighlight = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	StatusBarError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	PromptStyle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgPrompt)

	OverlapStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}

// GetPaneStyle returns the appropriate pane style based on focus state.
func GetPaneStyle(focused bool) lipgloss.Style {
	if focused {
		return PaneFocused
	}
	return PaneInactive
}

// GetDividerStyle returns the divider style for the drag state.
func GetDividerStyle(dragging bool) lipgloss.Style {
	if dragging {
		return DividerActive
	}
	return DividerIdle
}

// AreaStyle returns the foreground style of the i-th track grid area.
func AreaStyle(i int) lipgloss.Style {
	colors := areaColors()
	if i < 0 {
		i = -i
	}
	return lipgloss.NewStyle().Foreground(colors[i%len(colors)])
}

// RenderTitle renders a pane title with decorations.
func RenderTitle(title string, focused bool) string {
	accent := TextDim
	if focused {
		accent = ColorSecondary
	}
	return "[ " + lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title) + " ]"
}

// PaneOptions configures what to show in pane borders.
type PaneOptions struct {
	Title string // Title text embedded in the top border
	Hints string // Text embedded in the bottom border, e.g. "2×3 min"
}

// RenderPane renders content in a bordered box of exactly width×height
// cells with the title and hints embedded in the border. Boxes too small
// for a border are filled with blanks.
func RenderPane(content string, opts PaneOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return Blank(width, height)
	}

	// edges are drawn by hand so the title and hints can sit in them
	pane := GetPaneStyle(focused)
	border := pane.GetBorderStyle()
	borderStyle := lipgloss.NewStyle().Foreground(pane.GetBorderTopForeground())

	innerWidth := width - 2
	innerHeight := height - 2

	top := embed(border.TopLeft, border.Top, border.TopRight, RenderTitle(opts.Title, focused), opts.Title, borderStyle, innerWidth)
	hint := ""
	if opts.Hints != "" {
		hint = "[ " + lipgloss.NewStyle().Foreground(TextMuted).Render(opts.Hints) + " ]"
	}
	bottom := embed(border.BottomLeft, border.Bottom, border.BottomRight, hint, opts.Hints, borderStyle, innerWidth)

	lines := strings.Split(content, "\n")
	rendered := make([]string, innerHeight)
	for i := range rendered {
		var line string
		if i < len(lines) {
			line = truncate.String(lines[i], uint(innerWidth))
		}
		if w := ansi.PrintableRuneWidth(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		rendered[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var b strings.Builder
	b.WriteString(top)
	for _, line := range rendered {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(bottom)
	return b.String()
}

// embed draws one horizontal border edge with segment set two cells in from
// the left corner. The segment is dropped when it does not fit.
func embed(left, fill, right, segment, raw string, style lipgloss.Style, innerWidth int) string {
	const lead = 2

	width := ansi.PrintableRuneWidth(segment)
	if raw == "" || lead+width > innerWidth {
		if raw != "" && innerWidth-lead > 4 {
			// "[ " and " ]" take four cells
			segment = "[ " + truncate.StringWithTail(raw, uint(innerWidth-lead-4), "…") + " ]"
			width = ansi.PrintableRuneWidth(segment)
		} else {
			segment, width = "", 0
		}
	}

	pad := max(innerWidth-lead-width, 0)
	if segment == "" {
		return style.Render(left + strings.Repeat(fill, innerWidth) + right)
	}
	return style.Render(left+strings.Repeat(fill, lead)) + segment + style.Render(strings.Repeat(fill, pad)+right)
}

// Blank returns a width×height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
