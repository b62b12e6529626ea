package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tiny-snake/internal/core"
	"github.com/vovakirdan/tiny-snake/internal/games/snake"
)

// Display is the game Renderer plus the end-of-game output.
type Display interface {
	snake.Renderer
	Status(msg string) error
	Quit() error
}

// Terminal draws the board with relative cursor addressing and keeps a
// projection of what is on screen, so only changed cells are written.
type Terminal struct {
	w      *bufio.Writer
	rows   int
	cols   int
	screen *core.Screen
	quit   bool
}

// NewTerminal returns a renderer for a rows x cols board over w. Nothing is
// written until Init.
func NewTerminal(w io.Writer, rows, cols int) *Terminal {
	return &Terminal{
		w:      bufio.NewWriter(w),
		rows:   rows,
		cols:   cols,
		screen: core.NewScreen(rows, cols, core.GlyphEmpty),
	}
}

// Init clears the screen, prints the help line, hides the cursor and paints
// every cell empty. The cursor is left on the line below the grid.
func (t *Terminal) Init() error {
	writeInit(t.w)

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			t.w.WriteRune(core.GlyphEmpty)
		}
		t.w.WriteString(crlf)
	}
	t.screen = core.NewScreen(t.rows, t.cols, core.GlyphEmpty)
	return t.flush()
}

// Write paints glyph at (row, col). Writing the glyph already shown is a no-op.
func (t *Terminal) Write(row, col int, glyph rune) error {
	changed, err := t.screen.Set(row, col, glyph)
	if err != nil {
		return fmt.Errorf("terminal: write (%d,%d): %w", row, col, err)
	}
	if !changed {
		return nil
	}
	writeCell(t.w, t.rows, row, col, glyph)
	return t.flush()
}

// Show paints the snake glyph on every body cell.
func (t *Terminal) Show(body []core.Cell) error {
	for _, c := range body {
		if err := t.Write(c.Row, c.Col, core.GlyphSnake); err != nil {
			return err
		}
	}
	return nil
}

// Status prints msg on its own line below the grid.
func (t *Terminal) Status(msg string) error {
	t.w.WriteString(msg)
	t.w.WriteString(crlf)
	return t.flush()
}

// Quit shows the cursor again. Calls after the first do nothing.
func (t *Terminal) Quit() error {
	if t.quit {
		return nil
	}
	t.quit = true
	t.w.WriteString(ansi.ShowCursor)
	return t.flush()
}

// Screen returns the projection of the visible grid.
func (t *Terminal) Screen() *core.Screen {
	return t.screen
}

func (t *Terminal) flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("terminal: flush: %w", err)
	}
	return nil
}
