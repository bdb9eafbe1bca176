// Package terminal wraps the small amount of terminal control the text
// display needs: its size and a few ANSI sequences.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences
const (
	seqClear      = "\x1b[2J"
	seqHome       = "\x1b[H"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqClearLine  = "\x1b[K"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Clear wipes the screen and moves the cursor to the top-left corner
func Clear(w io.Writer) {
	io.WriteString(w, seqClear+seqHome)
}

// Home moves the cursor to the top-left corner without clearing, so a frame
// can be drawn over the previous one without flicker
func Home(w io.Writer) {
	io.WriteString(w, seqHome)
}

// EndLine clears the rest of the current line and breaks it. In raw mode a
// bare newline does not return the carriage.
func EndLine(w io.Writer) {
	io.WriteString(w, seqClearLine+"\r\n")
}

// HideCursor hides the cursor
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the cursor again
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
