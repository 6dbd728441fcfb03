package theme

import "github.com/charmbracelet/lipgloss"

// Semantic colors used by components. ApplyTheme rewrites them.
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorFocus     lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorError     lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorAccent    lipgloss.Color

	BgPrimary     lipgloss.Color
	BgPanel       lipgloss.Color
	BgPanelActive lipgloss.Color
	BgPrompt      lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextDim       lipgloss.Color
)

// areaColors tint track grid areas in rotation.
func areaColors() []lipgloss.Color {
	return []lipgloss.Color{
		ColorPrimary,
		ColorSecondary,
		ColorSuccess,
		ColorWarning,
		ColorAccent,
		ColorFocus,
	}
}
