package terminal

import (
	"io"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

// maxInputBytes is the most input consumed per loop iteration
const maxInputBytes = 3

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// InputSource yields the bytes that arrived since the last call. It never blocks.
type InputSource interface {
	Poll() []byte
}

// Decode maps one iteration's input bytes to actions. 'q' or Ctrl-C as the
// first byte quits; ESC [ A/B/C/D are the arrow keys. Anything else, including
// a partial escape sequence, is no input.
func Decode(p []byte) core.InputFrame {
	frame := core.NewInputFrame()
	if len(p) == 0 {
		return frame
	}

	switch p[0] {
	case 'q', keyCtrlC:
		frame.Set(core.ActionQuit)
		return frame
	case keyEsc:
	default:
		return frame
	}

	if len(p) < 3 || p[1] != '[' {
		return frame
	}
	switch p[2] {
	case 'A':
		frame.Set(core.ActionUp)
	case 'B':
		frame.Set(core.ActionDown)
	case 'C':
		frame.Set(core.ActionRight)
	case 'D':
		frame.Set(core.ActionLeft)
	}
	return frame
}

// Reader drains an io.Reader on its own goroutine and hands bytes to the loop
// over a buffered channel. Bytes arriving while the buffer is full are dropped.
type Reader struct {
	ch  chan byte
	buf [maxInputBytes]byte
}

// NewReader starts reading src. The goroutine ends when src returns an error.
func NewReader(src io.Reader) *Reader {
	r := &Reader{ch: make(chan byte, 64)}
	go r.readLoop(src)
	return r
}

func (r *Reader) readLoop(src io.Reader) {
	defer close(r.ch)

	buf := make([]byte, 32)
	for {
		n, err := src.Read(buf)
		for _, b := range buf[:n] {
			select {
			case r.ch <- b:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll returns up to three pending bytes without blocking. The slice is
// reused by the next call.
func (r *Reader) Poll() []byte {
	out := r.buf[:0]
	for len(out) < maxInputBytes {
		select {
		case b, ok := <-r.ch:
			if !ok {
				return out
			}
			out = append(out, b)
		default:
			return out
		}
	}
	return out
}
