package tracks

import (
	"errors"
	"strings"
	"testing"

	"github.com/avitaltamir/tilegrid/internal/components"
	"github.com/avitaltamir/tilegrid/internal/trackgrid"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newModel() Model {
	return New(20, nil).SetSize(40, 20).Focus()
}

func TestNew(t *testing.T) {
	m := New(0, nil)

	assert.Equal(t, "a", m.Selected())
	assert.Equal(t, DefaultCellPixels, m.cellPixels)
	assert.Equal(t, trackgrid.New(), m.Grid())
}

func TestSplitKeys(t *testing.T) {
	m := newModel()

	m, cmd := m.Update(keyPress('r'))
	assert.Nil(t, cmd)
	assert.Equal(t, "b", m.Selected())
	assert.Len(t, m.Grid().Rows, 2)

	m, _ = m.Update(keyPress('c'))
	assert.Equal(t, "c", m.Selected())
	assert.Len(t, m.Grid().Cols, 2)
	assert.Equal(t, trackgrid.Area{ColStart: 2, ColEnd: 2, RowStart: 2, RowEnd: 2}, m.Grid().Areas["c"])
	assert.Empty(t, m.Grid().Overlaps())
}

func TestSplitIgnoredWhenBlurred(t *testing.T) {
	m := newModel().Blur()

	m, _ = m.Update(keyPress('r'))
	assert.Len(t, m.Grid().Areas, 1)
}

func TestCycleSelection(t *testing.T) {
	m := newModel()
	m, _ = m.Update(keyPress('r'))
	m, _ = m.Update(keyPress('r'))
	require.Equal(t, "c", m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "a", m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "c", m.Selected())
}

func TestOverlapWarning(t *testing.T) {
	m := newModel()

	m, _ = m.Update(keyPress('r')) // a over b
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "a", m.Selected())
	m, _ = m.Update(keyPress('r')) // c lands on b's row

	assert.Equal(t, [][2]string{{"b", "c"}}, m.Grid().Overlaps())
	assert.Contains(t, m.View(), "overlap: b/c")
}

func TestReset(t *testing.T) {
	m := newModel()
	m, _ = m.Update(keyPress('r'))
	m, _ = m.Update(keyPress('R'))

	assert.Equal(t, trackgrid.New(), m.Grid())
	assert.Equal(t, "a", m.Selected())
}

func TestSplitErrorIsReported(t *testing.T) {
	m := newModel()
	m.selected = "zz"

	m, cmd := m.Update(keyPress('r'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(components.ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, trackgrid.ErrUnknownArea)
	assert.Len(t, m.Grid().Areas, 1)
}

func TestNextNameSkipsUsed(t *testing.T) {
	m := newModel()
	m.grid.Areas["b"] = trackgrid.Area{ColStart: 1, ColEnd: 1, RowStart: 1, RowEnd: 1}
	assert.Equal(t, "c", m.nextName())

	for i := 0; i < 26; i++ {
		m.grid.Areas[string(rune('a'+i))] = trackgrid.Area{ColStart: 1, ColEnd: 1, RowStart: 1, RowEnd: 1}
	}
	assert.Equal(t, "a1", m.nextName())
}

func TestClickSelectsArea(t *testing.T) {
	m := newModel()
	m, _ = m.Update(keyPress('r'))

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "b", m.Selected())

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "a", m.Selected())

	m, _ = m.Update(tea.MouseMsg{X: 30, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "a", m.Selected(), "empty space keeps the selection")
}

func TestView(t *testing.T) {
	m := newModel().SetSize(60, 20)
	m, _ = m.Update(keyPress('c'))

	view := m.View()
	assert.Equal(t, 20, lipgloss.Height(view))

	lines := strings.Split(view, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌a"), "unselected area is drawn light: %q", lines[0])
	assert.Contains(t, lines[0], "┏b")
	assert.Contains(t, view, "rows: 100px │ cols: 100px 100px")
	assert.Contains(t, view, "b: 1 / 2 / 2 / 3")
	assert.NotContains(t, view, "overlap")
}

func TestViewBeforeSize(t *testing.T) {
	assert.Empty(t, New(20, nil).View())
}

func TestCopyCSS(t *testing.T) {
	m := newModel()
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := m.Update(keyPress('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, components.StatusMsg{Text: "copied grid CSS"}, cmd())
	assert.Equal(t, m.Grid().CSS("grid"), copied)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	_, cmd = m.Update(keyPress('y'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(components.ErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Err, "no clipboard")
}
