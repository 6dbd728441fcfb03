package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avitaltamir/tilegrid/internal/components"
	"github.com/avitaltamir/tilegrid/internal/components/prompt"
	"github.com/avitaltamir/tilegrid/internal/components/tiles"
	"github.com/avitaltamir/tilegrid/internal/components/tracks"
	"github.com/avitaltamir/tilegrid/internal/config"
	"github.com/avitaltamir/tilegrid/internal/layout"
	"github.com/avitaltamir/tilegrid/internal/panel"
	"github.com/avitaltamir/tilegrid/internal/state"
	"github.com/avitaltamir/tilegrid/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// doubleTapQuit is how quickly a second quit press skips the dialog.
const doubleTapQuit = 400 * time.Millisecond

// Options wires the model to its surroundings. Every field is optional.
type Options struct {
	// Where theme changes are saved. Empty disables saving.
	ConfigPath string
	// Session state file. Empty disables restoring and saving it.
	StatePath string
	Watcher   *config.Watcher
	Logger    *zap.Logger
	// Starting tree, defaults to panel.Default()
	Tree *panel.Tree
	IDs  panel.IDGenerator
}

// Model is the root application model.
type Model struct {
	// Child components
	tiles  tiles.Model
	tracks tracks.Model
	prompt prompt.Model
	help   help.Model

	mode          ViewMode
	promptVisible bool
	showHelp      bool
	showQuit      bool
	lastQuitPress time.Time

	// Status line
	status  string
	lastErr error

	cfg        config.Config
	configPath string
	statePath  string
	watcher    *config.Watcher

	keys KeyMap
	log  *zap.Logger

	width  int
	height int
	ready  bool
}

// New creates a new application model from cfg.
func New(cfg config.Config, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tree := opts.Tree
	if tree == nil {
		tree = panel.Default()
	}

	m := Model{
		tiles: tiles.New(tree, tiles.Options{
			Layout:   layoutOptions(cfg),
			MinSize:  cfg.Layout.MinSize,
			LeafSize: cfg.Layout.LeafSize,
			IDs:      opts.IDs,
			Logger:   log.Named("tiles"),
		}).Focus(),
		tracks:     tracks.New(cfg.Grid.CellPixels, log.Named("tracks")),
		prompt:     prompt.New(log.Named("prompt")),
		help:       help.New(),
		cfg:        cfg,
		configPath: opts.ConfigPath,
		statePath:  opts.StatePath,
		watcher:    opts.Watcher,
		keys:       DefaultKeyMap(),
		log:        log,
	}
	m.applyTheme(cfg.UI.Theme)

	if m.statePath != "" {
		saved := state.Load(m.statePath)
		m.prompt = m.prompt.SetHistory(saved.PromptHistory)
		m = m.setMode(ParseViewMode(saved.View))
	}
	return m
}

func layoutOptions(cfg config.Config) layout.Options {
	return layout.Options{
		UnitWidth:  cfg.Layout.UnitWidth,
		UnitHeight: cfg.Layout.UnitHeight,
		Gap:        cfg.Layout.Gap,
		Scoped:     cfg.Layout.ScopedMinimums,
	}
}

// Init starts watching the config file when a watcher was given.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tiles.Init(), m.watchConfig())
}

func (m Model) watchConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		cfg, err := w.Next(context.Background())
		if err != nil {
			return configErrorMsg{err: err}
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m = m.updateSizes()
		return m, nil

	case ConfigReloadedMsg:
		m = m.applyConfig(msg.Config)
		m.log.Info("config reloaded", zap.String("path", m.configPath))
		return m, tea.Batch(components.ReportStatus("config reloaded"), m.watchConfig())

	case configErrorMsg:
		if errors.Is(msg.err, config.ErrWatcherClosed) {
			m.log.Debug("config watcher stopped")
			return m, nil
		}
		m.log.Warn("config reload failed", zap.Error(msg.err))
		m.lastErr = msg.err
		m.status = ""
		// keep watching so the file can be fixed
		return m, m.watchConfig()

	case components.ErrorMsg:
		m.lastErr = msg.Err
		m.status = ""
		return m, nil

	case components.StatusMsg:
		m.status = msg.Text
		m.lastErr = nil
		return m, nil

	case SwitchViewMsg:
		return m.setMode(msg.Mode), nil

	case TogglePromptMsg:
		return m.setPrompt(!m.promptVisible), nil

	case prompt.SubmitMsg:
		m = m.setPrompt(false)
		var cmd tea.Cmd
		m.tiles, cmd = m.tiles.Apply(msg.Cmd)
		if cmd != nil {
			return m, cmd
		}
		return m, components.ReportStatus(msg.Line)

	case prompt.CancelMsg:
		return m.setPrompt(false), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp || m.showQuit {
			return m, nil
		}
		return m.routeToView(msg)
	}

	// Everything else (cursor blink) belongs to the prompt
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit dialog first
	if m.showQuit {
		switch msg.String() {
		case "y", "Y", "enter", "ctrl+q":
			m.saveState()
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuit = false
		}
		return m, nil
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		now := time.Now()
		if now.Sub(m.lastQuitPress) < doubleTapQuit {
			m.saveState()
			return m, tea.Quit
		}
		m.lastQuitPress = now
		m.showQuit = true
		return m, nil
	}

	if m.promptVisible {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		next := ViewTracks
		if m.mode == ViewTracks {
			next = ViewTiles
		}
		return m.setMode(next), nil

	case key.Matches(msg, m.keys.Prompt):
		if m.mode != ViewTiles {
			return m, nil
		}
		return m.setPrompt(true), nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	}

	return m.routeToView(msg)
}

func (m Model) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case ViewTiles:
		m.tiles, cmd = m.tiles.Update(msg)
	case ViewTracks:
		m.tracks, cmd = m.tracks.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	t := theme.NextTheme()
	m.cfg.UI.Theme = t.Name
	if m.configPath == "" {
		return m, components.ReportStatus("theme: " + t.Name)
	}
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.log.Warn("failed to save theme", zap.Error(err))
		return m, components.ReportError(err)
	}
	return m, components.ReportStatus("theme: " + t.Name)
}

// saveState persists the session state.
func (m Model) saveState() {
	if m.statePath == "" {
		return
	}
	s := state.State{
		View:          strings.ToLower(m.mode.String()),
		PromptHistory: m.prompt.History(),
	}
	if err := state.Save(m.statePath, s); err != nil {
		m.log.Warn("failed to save state", zap.Error(err))
	}
}

// applyConfig pushes cfg into every component.
func (m Model) applyConfig(cfg config.Config) Model {
	m.cfg = cfg
	m.tiles = m.tiles.
		SetLayoutOptions(layoutOptions(cfg)).
		SetMinSize(cfg.Layout.MinSize).
		SetLeafSize(cfg.Layout.LeafSize)
	m.tracks = m.tracks.SetCellPixels(cfg.Grid.CellPixels)
	m.applyTheme(cfg.UI.Theme)
	return m
}

func (m Model) applyTheme(name string) {
	idx, ok := theme.ThemeByName(name)
	if !ok {
		m.log.Warn("unknown theme", zap.String("theme", name))
		return
	}
	theme.SetThemeIndex(idx)
}

// setMode moves focus to the view for mode.
func (m Model) setMode(mode ViewMode) Model {
	m = m.setPrompt(false)
	m.mode = mode
	switch mode {
	case ViewTiles:
		m.tracks = m.tracks.Blur()
		m.tiles = m.tiles.Focus()
	case ViewTracks:
		m.tiles = m.tiles.Blur()
		m.tracks = m.tracks.Focus()
	}
	return m.updateSizes()
}

// setPrompt shows or hides the prompt, taking focus from the tiles while
// it is open.
func (m Model) setPrompt(visible bool) Model {
	if visible == m.promptVisible {
		return m
	}
	m.promptVisible = visible
	if visible {
		m.tiles = m.tiles.Blur()
		m.prompt = m.prompt.Focus()
	} else {
		m.prompt = m.prompt.Blur()
		if m.mode == ViewTiles {
			m.tiles = m.tiles.Focus()
		}
	}
	return m.updateSizes()
}

func (m Model) promptHeight() int {
	if m.promptVisible {
		return 1
	}
	return 0
}

// updateSizes propagates the window size to child components. The tiles
// view reserves the status bar row itself.
func (m Model) updateSizes() Model {
	if !m.ready {
		return m
	}
	m.tiles = m.tiles.SetSize(m.width, max(m.height-m.promptHeight(), 0))
	m.tracks = m.tracks.SetSize(m.width, max(m.height-layout.StatusBarHeight, 0))
	m.prompt = m.prompt.SetSize(m.width, 1)
	m.help.Width = m.width
	return m
}

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.showQuit {
		return m.renderQuitDialog()
	}

	workspace := max(m.height-layout.StatusBarHeight-m.promptHeight(), 0)
	var main string
	switch m.mode {
	case ViewTiles:
		main = m.tiles.View()
	case ViewTracks:
		main = m.tracks.View()
	}
	main = lipgloss.NewStyle().Width(m.width).Height(workspace).MaxHeight(workspace).Render(main)

	parts := []string{main}
	if m.promptVisible {
		parts = append(parts, m.prompt.View())
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStatusBar() string {
	style := theme.StatusBarStyle.Width(m.width)

	view := theme.StatusBarHighlight.Render(" " + m.mode.String())

	var selection string
	switch m.mode {
	case ViewTiles:
		selection = m.tiles.FocusedPane()
	case ViewTracks:
		selection = m.tracks.Selected()
	}
	info := theme.StatusBarSection.Render(" │ " + selection)

	var message string
	switch {
	case m.lastErr != nil:
		message = theme.StatusBarError.Render(" │ " + m.lastErr.Error())
	case m.status != "":
		message = theme.StatusBarSection.Render(" │ " + m.status)
	default:
		message = theme.StatusBarSection.Render(" │ ? help │ ^Q quit")
	}

	right := theme.StatusBarSection.Render(theme.CurrentTheme().Name + " │ " + Version + " ")

	// the bar's own padding takes two cells
	inner := m.width - 2
	left := view + info + message
	room := inner - lipgloss.Width(right) - 1
	if lipgloss.Width(left) > room {
		left = truncate.StringWithTail(left, uint(max(room, 0)), "…")
	}

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

// fullHelp merges the global bindings with those of the active view.
func (m Model) fullHelp() [][]key.Binding {
	var groups [][]key.Binding
	switch m.mode {
	case ViewTiles:
		groups = m.tiles.Keys().FullHelp()
	case ViewTracks:
		groups = m.tracks.Keys().FullHelp()
	}
	return append(groups, m.keys.FullHelp()...)
}

// renderHelpOverlay renders the help overlay.
func (m Model) renderHelpOverlay() string {
	title := theme.TextH1.Render(m.mode.String() + " help")
	body := m.help.FullHelpView(m.fullHelp())
	footer := theme.TextDimStyle.Render("Press any key to close")

	box := lipgloss.NewStyle().
		Border(theme.NeonBorder).
		BorderForeground(theme.ColorPrimary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderQuitDialog renders the quit confirmation dialog.
func (m Model) renderQuitDialog() string {
	box := lipgloss.NewStyle().
		Border(theme.NeonBorder).
		BorderForeground(theme.ColorPrimary).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			theme.TextH1.Render("Quit?"),
			"",
			theme.TextBody.Render("[Y]es    [N]o    [^Q]uit"),
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Mode returns the active view.
func (m Model) Mode() ViewMode {
	return m.mode
}

// PromptVisible reports whether the command prompt is open.
func (m Model) PromptVisible() bool {
	return m.promptVisible
}

// Tiles returns the tiles view.
func (m Model) Tiles() tiles.Model {
	return m.tiles
}

// Tracks returns the track grid view.
func (m Model) Tracks() tracks.Model {
	return m.tracks
}

// Config returns the configuration in effect.
func (m Model) Config() config.Config {
	return m.cfg
}
