package render

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal, the same check
// ryanfowler-fetch's internal/core/vars.go uses to decide default coloring
// (term.IsTerminal(int(f.Fd()))).
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
