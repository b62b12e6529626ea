package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the game is not attached to a terminal.
var ErrNotTerminal = errors.New("terminal: not a terminal")

// Session holds a terminal in raw mode. Close restores the previous state and
// is safe to call more than once.
type Session struct {
	fd  int
	old *term.State
}

// Open switches f to raw mode.
func Open(f *os.File) (*Session, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: raw mode: %w", err)
	}
	return &Session{fd: fd, old: old}, nil
}

// Close restores the terminal state saved by Open.
func (s *Session) Close() error {
	if s == nil || s.old == nil {
		return nil
	}
	old := s.old
	s.old = nil
	if err := term.Restore(s.fd, old); err != nil {
		return fmt.Errorf("terminal: restore: %w", err)
	}
	return nil
}

// Size returns the rows and columns of the terminal behind f.
func Size(f *os.File) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: size: %w", err)
	}
	return rows, cols, nil
}

// Fits reports whether a rows x cols board plus the help and status lines
// fits in a termRows x termCols terminal.
func Fits(rows, cols, termRows, termCols int) bool {
	return rows+2 <= termRows && cols <= termCols
}
