package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-wide key bindings. The active view adds
// its own on top.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	SwitchView key.Binding
	Prompt     key.Binding
	CycleTheme key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "tiles/tracks"),
		),
		Prompt: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "cycle theme"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.SwitchView}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchView, k.Prompt, k.CycleTheme},
		{k.Help, k.Quit},
	}
}
