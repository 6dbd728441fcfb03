// Package state remembers session details between runs: the last view and
// the command prompt history. Layouts themselves are not saved.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avitaltamir/tilegrid/internal/config"
)

const stateFileName = "state.json"

// MaxHistory caps how many prompt lines are kept.
const MaxHistory = 100

// State represents the persisted session state.
type State struct {
	// View is the name of the last active view ("tiles" or "tracks")
	View string `json:"view,omitempty"`
	// PromptHistory holds submitted prompt lines, oldest first
	PromptHistory []string `json:"prompt_history,omitempty"`
}

// DefaultState returns the default state for first run.
func DefaultState() State {
	return State{View: "tiles"}
}

// Path returns the state file path next to the config file.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// Load reads the state at path.
// Returns default state if the file doesn't exist or can't be read.
func Load(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState()
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		// Invalid JSON - return defaults
		return DefaultState()
	}
	if s.View == "" {
		s.View = DefaultState().View
	}
	return s.trimmed()
}

// Save writes s to path, creating the directory if needed.
func Save(path string, s State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	data, err := json.MarshalIndent(s.trimmed(), "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// trimmed drops the oldest history lines beyond MaxHistory.
func (s State) trimmed() State {
	if n := len(s.PromptHistory); n > MaxHistory {
		s.PromptHistory = s.PromptHistory[n-MaxHistory:]
	}
	return s
}
