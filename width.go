package minparse

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultWidth = 80

	// safeArea keeps wrapped text clear of the final terminal columns, where
	// a trailing character can force the terminal to hard-wrap a line the
	// formatter already wrapped.
	safeArea = 2
)

// detectWidth returns the width of stdout in columns, or defaultWidth when
// stdout is not a terminal or the query fails.
func detectWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
