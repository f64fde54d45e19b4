// Package terminal resolves the display width used to bound the status line.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const DefaultWidth = 120

// Width resolves the terminal width in cells: override when positive, then
// the size of stdout, then $COLUMNS, then DefaultWidth.
func Width(override int) int {
	if override > 0 {
		return override
	}

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}

	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	return DefaultWidth
}

// Truncate cuts s so that it occupies at most width cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
