package input

import (
	"bufio"
	"time"
	"unicode"
	"unicode/utf8"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so held movement relies on key repeat.
const keyHoldDuration = 60 * time.Millisecond

// Event is a discrete key press delivered once.
type Event int

const (
	EventShoot Event = iota
	EventPause
	EventEscape
	EventRestart
	EventMenu
	EventEnter
	EventBackspace
	EventQuit
	EventUp
	EventDown
	EventLeft
	EventRight
)

// Input represents the current frame's input state.
type Input struct {
	// Held movement and action keys.
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Shoot bool

	// Events pressed since the previous frame, in arrival order.
	Events []Event
	// Text holds printable characters typed since the previous frame.
	Text []rune

	// Interrupt is set on Ctrl-C and Closed once the stream has ended.
	// Both also report EventQuit.
	Interrupt bool
	Closed    bool
}

// Has reports whether e was pressed this frame.
func (in Input) Has(e Event) bool {
	for _, got := range in.Events {
		if got == e {
			return true
		}
	}
	return false
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	shoot time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
	// pending holds an escape sequence cut off at the end of a drain.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports EventQuit so the caller can wind down.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if closed {
		in.Closed = true
		in.Events = append(in.Events, EventQuit)
	}
	return in
}

// Reset forgets held keys, so a key held across a screen change does not leak into the next one.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// parse turns raw terminal bytes into held keys and events.
// Handles escape sequences for arrow keys. An ESC or ESC [ at the end of buf
// is held back until the next call; if that call brings no more bytes it is
// the escape key.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var in Input

	if len(s.pending) > 0 {
		if len(buf) == 0 {
			in.Events = append(in.Events, EventEscape)
		} else {
			buf = append(s.pending, buf...)
		}
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i == len(buf)-1 || (i == len(buf)-2 && buf[i+1] == '[') {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if i+2 < len(buf) && buf[i+1] == '[' {
				// CSI sequence: ESC [ <code>
				switch buf[i+2] {
				case 'A':
					s.state.up = now
					in.Events = append(in.Events, EventUp)
				case 'B':
					s.state.down = now
					in.Events = append(in.Events, EventDown)
				case 'C':
					s.state.right = now
					in.Events = append(in.Events, EventRight)
				case 'D':
					s.state.left = now
					in.Events = append(in.Events, EventLeft)
				}
				i += 2
				continue
			}
			in.Events = append(in.Events, EventEscape)
			continue
		}

		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError && unicode.IsPrint(r) {
				in.Text = append(in.Text, r)
			}
			i += size - 1
			continue
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Shoot = now.Sub(s.state.shoot) < keyHoldDuration
	return in
}

// applyByte updates held key timestamps and records events for a single byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	if b >= ' ' && b < 0x7f {
		in.Text = append(in.Text, rune(b))
	}

	switch b {
	case 'a', 'A':
		state.left = now
		in.Events = append(in.Events, EventLeft)
	case 'd', 'D':
		state.right = now
		in.Events = append(in.Events, EventRight)
	case 'w', 'W':
		state.up = now
		in.Events = append(in.Events, EventUp)
	case 's', 'S':
		state.down = now
		in.Events = append(in.Events, EventDown)
	case ' ':
		state.shoot = now
		in.Events = append(in.Events, EventShoot)
	case 'p', 'P':
		in.Events = append(in.Events, EventPause)
	case 'r', 'R':
		in.Events = append(in.Events, EventRestart)
	case 'x', 'X':
		in.Events = append(in.Events, EventMenu)
	case 'q', 'Q':
		in.Events = append(in.Events, EventQuit)
	case '\x03':
		in.Interrupt = true
		in.Events = append(in.Events, EventQuit)
	case '\n', '\r':
		in.Events = append(in.Events, EventEnter)
	case '\b', '\x7f':
		in.Events = append(in.Events, EventBackspace)
	}
}
