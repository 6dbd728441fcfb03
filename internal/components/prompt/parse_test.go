package prompt

import (
	"testing"

	"github.com/avitaltamir/tilegrid/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want panel.Command
	}{
		{"column", "col c", panel.AddColumnCmd{TargetID: "c"}},
		{"column before", "col c before", panel.AddColumnCmd{TargetID: "c", Before: true}},
		{"column after", "add-column c after", panel.AddColumnCmd{TargetID: "c"}},
		{"row", "ROW e", panel.AddRowCmd{TargetID: "e"}},
		{"row before", "row e before", panel.AddRowCmd{TargetID: "e", Before: true}},
		{"remove", "rm a 1", panel.RemoveCmd{ParentID: "a", Index: 1}},
		{"remove alias", "remove d 0", panel.RemoveCmd{ParentID: "d", Index: 0}},
		{"resize", "resize a c -4.5", panel.ResizeCmd{ParentID: "a", ResizeID: "c", Pan: -4.5}},
		{"extra spaces", "  col   c  ", panel.AddColumnCmd{TargetID: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", ErrUnknownCommand},
		{"unknown verb", "swap a b", ErrUnknownCommand},
		{"column without target", "col", ErrUsage},
		{"bad position", "col c sideways", ErrUsage},
		{"too many args", "row c before now", ErrUsage},
		{"remove without index", "rm a", ErrUsage},
		{"remove bad index", "rm a one", ErrUsage},
		{"resize bad pan", "resize a c far", ErrUsage},
		{"resize missing pan", "resize a c", ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestUsageMessage(t *testing.T) {
	_, err := Parse("rm a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rm <parent> <index>")
}
