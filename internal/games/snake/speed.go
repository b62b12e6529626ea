package snake

// DefaultThresholds are the growth ratios that trigger each speed increase.
var DefaultThresholds = []float64{4.0, 2.0, 1.6, 1.4, 1.2, 1.1, 1.1}

// InitialLevel is the starting number of loop iterations per move.
const InitialLevel = 10

// Speed ratchets the move interval down as the snake grows. The level is the
// number of loop iterations between moves; smaller is faster.
type Speed struct {
	lastLen    int // Length at the last level change
	level      int
	thresholds []float64
}

// NewSpeed starts at the slowest level with the default thresholds.
func NewSpeed(initialLen int) *Speed {
	return &Speed{
		lastLen:    max(initialLen, 1),
		level:      InitialLevel,
		thresholds: append([]float64(nil), DefaultThresholds...),
	}
}

// Level returns the current iterations-per-move.
func (sp *Speed) Level() int {
	return sp.level
}

// Remaining returns how many speed increases are left.
func (sp *Speed) Remaining() int {
	return len(sp.thresholds)
}

// Adjust compares currentLen against the length at the last level change and
// steps one level faster when the first remaining threshold is reached.
// Reports whether the level changed.
func (sp *Speed) Adjust(currentLen int) bool {
	if len(sp.thresholds) == 0 || sp.level <= 1 {
		return false
	}
	if float64(currentLen)/float64(sp.lastLen) < sp.thresholds[0] {
		return false
	}

	sp.level--
	sp.thresholds = sp.thresholds[1:]
	sp.lastLen = currentLen
	return true
}
