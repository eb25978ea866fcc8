package app

import (
	"golang.org/x/term"
)

// TerminalInfo reports whether fd refers to a terminal and, if so, its width.
// The width is 0 when it cannot be determined.
func TerminalInfo(fd int) (bool, int) {
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return true, 0
	}
	return true, width
}
