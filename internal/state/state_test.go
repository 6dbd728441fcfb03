package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, "tiles", s.View)
	assert.Empty(t, s.PromptHistory)
}

func TestPath(t *testing.T) {
	path, err := Path()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "tilegrid", "state.json"), path)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file gives defaults", func(t *testing.T) {
		assert.Equal(t, DefaultState(), Load(filepath.Join(dir, "missing.json")))
	})

	t.Run("invalid JSON gives defaults", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		assert.Equal(t, DefaultState(), Load(path))
	})

	t.Run("empty view falls back", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"prompt_history":["col c"]}`), 0o644))

		s := Load(path)
		assert.Equal(t, "tiles", s.View)
		assert.Equal(t, []string{"col c"}, s.PromptHistory)
	})
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	original := State{View: "tracks", PromptHistory: []string{"col c", "rm a 0"}}

	require.NoError(t, Save(path, original))
	assert.Equal(t, original, Load(path))
}

func TestSaveTrimsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	var history []string
	for i := 0; i < MaxHistory+5; i++ {
		history = append(history, fmt.Sprintf("row p%d", i))
	}
	require.NoError(t, Save(path, State{View: "tiles", PromptHistory: history}))

	loaded := Load(path)
	require.Len(t, loaded.PromptHistory, MaxHistory)
	assert.Equal(t, "row p5", loaded.PromptHistory[0], "oldest lines go first")
	assert.Equal(t, fmt.Sprintf("row p%d", MaxHistory+4), loaded.PromptHistory[MaxHistory-1])
}
