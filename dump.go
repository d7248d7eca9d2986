package dtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DumpConfig controls the console rendering of a directory tree.
type DumpConfig struct {
	// LineWidth is the target output width in fixed width positions.
	LineWidth int
	// Context is used to resolve ambiguous East Asian character widths of
	// path components. If nil, a context is derived from the environment.
	Context *uax11.Context
	// Colors maps nesting level (mod palette size) to an output color.
	// If nil, a default palette is used.
	Colors []*color.Color
}

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("dtree", "dump").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
	}
}

// Dump writes an indented rendering of the tree to w, one node per line,
// each line showing the last path component of a node. Nesting levels are
// colorized.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Dump(t *Tree, w io.Writer, config *DumpConfig) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	colors := config.Colors
	if colors == nil {
		colors = makeDefaultPalette()
	}
	if t == nil || t.root == nil {
		return nil
	}
	return dumpNode(t.root, 0, w, config, colors)
}

// DumpToTerminal renders the tree to stdout with a terminal-derived
// configuration.
func DumpToTerminal(t *Tree) error {
	return Dump(t, os.Stdout, nil)
}

func dumpNode(n *Node, level int, w io.Writer, config *DumpConfig, colors []*color.Color) error {
	indent := strings.Repeat("    ", level)
	budget := config.LineWidth - len(indent)
	if budget < 4 {
		budget = 4
	}
	label := fitLabel(n.path.Base(), budget, config.Context)
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	c := colors[level%len(colors)]
	if _, err := c.Fprint(w, label); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := dumpNode(child, level+1, w, config, colors); err != nil {
			return err
		}
	}
	return nil
}

// fitLabel truncates label to at most width fixed width positions,
// measured per UAX#11. Truncated labels end in an ellipsis.
func fitLabel(label string, width int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(label)
	if uax11.StringWidth(gstr, context) <= width {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		trimmed := string(runes) + "…"
		if uax11.StringWidth(grapheme.StringFromString(trimmed), context) <= width {
			return trimmed
		}
	}
	return "…"
}
