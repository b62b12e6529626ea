package terminal

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tiny-snake/internal/core"
	"github.com/vovakirdan/tiny-snake/internal/games/snake"
)

func TestSummary(t *testing.T) {
	out := Summary(snake.Snapshot{Status: core.StatusDead, Length: 7, Eaten: 5, Moves: 42, Level: 8})

	for _, want := range []string{"Dead!", "length 7", "eaten  5", "moves  42", "level  8"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 7 {
		t.Errorf("summary has %d lines, expected 5 plus the border", len(lines))
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		status   core.Status
		expected string
	}{
		{core.StatusWon, "You win!"},
		{core.StatusDead, "Dead!"},
		{core.StatusQuit, "Quit"},
		{core.StatusRunning, "running"},
	}

	for _, tc := range tests {
		if got := Outcome(tc.status); got != tc.expected {
			t.Errorf("Outcome(%s) = %q, expected %q", tc.status, got, tc.expected)
		}
	}
}
