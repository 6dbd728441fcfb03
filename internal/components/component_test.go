package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	t.Run("NewBase creates with dimensions", func(t *testing.T) {
		b := NewBase(100, 50)

		w, h := b.Size()
		assert.Equal(t, 100, w)
		assert.Equal(t, 50, h)
		assert.False(t, b.Focused())
	})

	t.Run("Focus and Blur toggle state", func(t *testing.T) {
		b := NewBase(100, 50)

		assert.False(t, b.Focused())

		b.Focus()
		assert.True(t, b.Focused())

		b.Blur()
		assert.False(t, b.Focused())
	})

	t.Run("SetSize updates dimensions", func(t *testing.T) {
		b := NewBase(100, 50)

		b.SetSize(200, 100)

		w, h := b.Size()
		assert.Equal(t, 200, w)
		assert.Equal(t, 100, h)
	})

	t.Run("Zero dimensions are valid", func(t *testing.T) {
		b := NewBase(0, 0)

		w, h := b.Size()
		assert.Equal(t, 0, w)
		assert.Equal(t, 0, h)
	})
}

func TestReportError(t *testing.T) {
	assert.Nil(t, ReportError(nil))

	err := errors.New("boom")
	cmd := ReportError(err)
	require.NotNil(t, cmd)
	assert.Equal(t, ErrorMsg{Err: err}, cmd())
}

func TestReportStatus(t *testing.T) {
	cmd := ReportStatus("split c")
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Text: "split c"}, cmd())
}
