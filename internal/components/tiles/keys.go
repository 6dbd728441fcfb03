package tiles

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the tiles view.
type KeyMap struct {
	SplitColumn       key.Binding
	SplitColumnBefore key.Binding
	SplitRow          key.Binding
	SplitRowBefore    key.Binding
	Remove            key.Binding
	NextPane          key.Binding
	PrevPane          key.Binding
	Grow              key.Binding
	Shrink            key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SplitColumn: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v/V", "split column after/before"),
		),
		SplitColumnBefore: key.NewBinding(
			key.WithKeys("V"),
		),
		SplitRow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "split row after/before"),
		),
		SplitRowBefore: key.NewBinding(
			key.WithKeys("S"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove pane"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Grow: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "grow pane"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "shrink pane"),
		),
	}
}

// ShortHelp returns the bindings shown in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitColumn, k.SplitRow, k.Remove, k.NextPane}
}

// FullHelp returns the bindings shown in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitColumn, k.SplitRow, k.Remove},
		{k.NextPane, k.PrevPane, k.Grow, k.Shrink},
	}
}
