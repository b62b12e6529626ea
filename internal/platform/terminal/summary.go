package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiny-snake/internal/core"
	"github.com/vovakirdan/tiny-snake/internal/games/snake"
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

// Outcome returns the headline for a finished game.
func Outcome(s core.Status) string {
	switch s {
	case core.StatusWon:
		return MsgWon
	case core.StatusDead:
		return MsgDead
	case core.StatusQuit:
		return "Quit"
	default:
		return s.String()
	}
}

// Summary renders a boxed end-of-game report. It is printed after the
// terminal leaves raw mode.
func Summary(s snake.Snapshot) string {
	var b strings.Builder
	b.WriteString(Outcome(s.Status))
	fmt.Fprintf(&b, "\nlength %d", s.Length)
	fmt.Fprintf(&b, "\neaten  %d", s.Eaten)
	fmt.Fprintf(&b, "\nmoves  %d", s.Moves)
	fmt.Fprintf(&b, "\nlevel  %d", s.Level)
	return summaryStyle.Render(b.String())
}
