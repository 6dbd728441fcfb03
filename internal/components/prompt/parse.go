package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avitaltamir/tilegrid/internal/panel"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// usage lists the accepted forms, keyed by verb.
var usage = map[string]string{
	"col":    "col <target> [before]",
	"row":    "row <target> [before]",
	"rm":     "rm <parent> <index>",
	"resize": "resize <parent> <divider> <pan>",
}

var aliases = map[string]string{
	"column":     "col",
	"add-column": "col",
	"add-row":    "row",
	"remove":     "rm",
	"del":        "rm",
}

// Parse turns a typed line into a panel command. Pans and indices are in
// terminal cells and child positions respectively. Resize commands are
// returned without a snapshot; the tiles view supplies one.
func Parse(line string) (panel.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	verb := strings.ToLower(fields[0])
	if v, ok := aliases[verb]; ok {
		verb = v
	}
	args := fields[1:]

	switch verb {
	case "col", "row":
		if len(args) < 1 || len(args) > 2 {
			return nil, usageErr(verb)
		}
		before := false
		if len(args) == 2 {
			if args[1] != "before" && args[1] != "after" {
				return nil, usageErr(verb)
			}
			before = args[1] == "before"
		}
		if verb == "col" {
			return panel.AddColumnCmd{TargetID: args[0], Before: before}, nil
		}
		return panel.AddRowCmd{TargetID: args[0], Before: before}, nil

	case "rm":
		if len(args) != 2 {
			return nil, usageErr(verb)
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: index %q: %v", ErrUsage, args[1], err)
		}
		return panel.RemoveCmd{ParentID: args[0], Index: index}, nil

	case "resize":
		if len(args) != 3 {
			return nil, usageErr(verb)
		}
		pan, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: pan %q: %v", ErrUsage, args[2], err)
		}
		return panel.ResizeCmd{ParentID: args[0], ResizeID: args[1], Pan: pan}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

func usageErr(verb string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage[verb])
}
