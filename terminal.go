package climg

import (
	"os"

	"golang.org/x/term"
)

// Defaults substituted when the terminal size cannot be determined, e.g.
// when stdout is not a tty.
const (
	DefaultColumns = 100
	DefaultRows    = 200
)

// TerminalSize reports the dimensions of the terminal attached to stdout in
// character cells. Callers are expected to fall back to DefaultColumns and
// DefaultRows on error.
func TerminalSize() (columns, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
