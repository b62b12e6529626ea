package terminal

import (
	"bufio"

	"github.com/charmbracelet/x/ansi"
)

const helpLine = "'q' to quit"

const crlf = "\r\n"

// writeInit clears the screen, prints the help line and hides the cursor,
// leaving it at the start of the second line.
func writeInit(w *bufio.Writer) {
	w.WriteString(ansi.EraseEntireScreen)
	w.WriteString(ansi.CursorPosition(1, 1))
	w.WriteString(helpLine)
	w.WriteString(ansi.CursorPosition(1, 2))
	w.WriteString(ansi.HideCursor)
}

// writeCell emits a glyph at (row, col) of a rows-high grid whose cursor is
// parked on the line below it. The cursor position is saved and restored.
func writeCell(w *bufio.Writer, rows, row, col int, glyph rune) {
	w.WriteString(ansi.SaveCurrentCursorPosition)
	w.WriteString(ansi.CursorUp(rows - row))
	w.WriteByte('\r')
	if col > 0 {
		w.WriteString(ansi.CursorForward(col))
	}
	w.WriteRune(glyph)
	w.WriteString(ansi.RestoreCurrentCursorPosition)
}
