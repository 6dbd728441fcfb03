package app

import (
	"strings"

	"github.com/avitaltamir/tilegrid/internal/config"
)

// ViewMode selects which editor fills the workspace.
type ViewMode int

const (
	ViewTiles ViewMode = iota
	ViewTracks
)

// String returns the view name shown in the status bar.
func (v ViewMode) String() string {
	switch v {
	case ViewTiles:
		return "Tiles"
	case ViewTracks:
		return "Tracks"
	default:
		return "Unknown"
	}
}

// ParseViewMode returns the view named s, case-insensitively. Unknown
// names give ViewTiles.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(s, ViewTracks.String()) {
		return ViewTracks
	}
	return ViewTiles
}

// SwitchViewMsg requests a change of view.
type SwitchViewMsg struct {
	Mode ViewMode
}

// TogglePromptMsg shows or hides the command prompt.
type TogglePromptMsg struct{}

// ConfigReloadedMsg carries a config file that changed on disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// configErrorMsg is sent when the watched config could not be loaded.
type configErrorMsg struct {
	err error
}
