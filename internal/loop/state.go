package loop

import (
	"strings"

	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
)

// Screen is the driver's top-level phase. Gameplay phases live in game.State.
type Screen int

const (
	ScreenMenu       Screen = iota // Title, ship select
	ScreenOptions                  // Brightness and volume
	ScreenHighScores               // Top ten
	ScreenPlaying                  // A run is in progress
)

// menuItem is an entry on the title screen.
type menuItem int

const (
	itemPlay menuItem = iota
	itemHighScores
	itemOptions
	itemQuit
	itemCount
)

var menuLabels = [itemCount]string{"Play", "High scores", "Options", "Quit"}

// menu is the title screen's selection state.
type menu struct {
	selected menuItem
	ship     object.ShipVariant
}

// update applies one frame of input and returns the item chosen, if any.
// Left and right cycle the ship variant.
func (m *menu) update(in input.Input) (item menuItem, chosen bool) {
	for _, e := range in.Events {
		switch e {
		case input.EventUp:
			m.selected = (m.selected + itemCount - 1) % itemCount
		case input.EventDown:
			m.selected = (m.selected + 1) % itemCount
		case input.EventLeft:
			m.ship = cycleShip(m.ship, -1)
		case input.EventRight:
			m.ship = cycleShip(m.ship, 1)
		case input.EventEnter, input.EventShoot:
			return m.selected, true
		}
	}
	return 0, false
}

func cycleShip(v object.ShipVariant, step int) object.ShipVariant {
	n := len(object.ShipVariants)
	for i, s := range object.ShipVariants {
		if s == v {
			return object.ShipVariants[(i+step+n)%n]
		}
	}
	return object.ShipVariants[0]
}

// optionItem is a row on the options screen.
type optionItem int

const (
	optBrightness optionItem = iota
	optVolume
	optBack
	optCount
)

// options holds the adjustable display and audio levels.
type options struct {
	selected   optionItem
	brightness float64
	volume     float64
}

// update applies one frame of input. changed reports a level change;
// back reports a request to leave the screen.
func (o *options) update(in input.Input, minBrightness, maxBrightness float64) (changed, back bool) {
	for _, e := range in.Events {
		switch e {
		case input.EventUp:
			o.selected = (o.selected + optCount - 1) % optCount
		case input.EventDown:
			o.selected = (o.selected + 1) % optCount
		case input.EventLeft, input.EventRight:
			step := OptionStep
			if e == input.EventLeft {
				step = -step
			}
			switch o.selected {
			case optBrightness:
				o.brightness = stepLevel(o.brightness, step, minBrightness, maxBrightness)
				changed = true
			case optVolume:
				o.volume = stepLevel(o.volume, step, 0, 1)
				changed = true
			}
		case input.EventEnter:
			if o.selected == optBack {
				back = true
			}
		case input.EventEscape:
			back = true
		}
	}
	return changed, back
}

// stepLevel moves v by step, snapped to tenths and clamped to [lo, hi].
func stepLevel(v, step, lo, hi float64) float64 {
	v = float64(int((v+step)*10+0.5)) / 10
	return min(max(v, lo), hi)
}

// nameEntry is the state of the high-score name prompt.
type nameEntry struct {
	name     []rune
	frames   int
	cursorOn bool
}

func newNameEntry(prefill string) *nameEntry {
	n := &nameEntry{cursorOn: true}
	for _, r := range prefill {
		if len(n.name) == MaxNameLength {
			break
		}
		n.name = append(n.name, r)
	}
	return n
}

// update applies one frame of input. done is set once the prompt closes;
// ok tells whether a name was accepted.
func (n *nameEntry) update(in input.Input) (name string, done, ok bool) {
	n.frames++
	if n.frames >= CursorBlinkFrames {
		n.cursorOn = !n.cursorOn
		n.frames = 0
	}

	for _, r := range in.Text {
		if len(n.name) < MaxNameLength {
			n.name = append(n.name, r)
		}
	}
	for _, e := range in.Events {
		switch e {
		case input.EventBackspace:
			if len(n.name) > 0 {
				n.name = n.name[:len(n.name)-1]
			}
		case input.EventEnter:
			if trimmed := strings.TrimSpace(string(n.name)); trimmed != "" {
				return trimmed, true, true
			}
		case input.EventEscape:
			return "", true, false
		}
	}
	return "", false, false
}

// field renders the name padded to the prompt width with the blinking cursor.
func (n *nameEntry) field() string {
	out := make([]rune, 0, MaxNameLength+1)
	out = append(out, n.name...)
	if n.cursorOn {
		out = append(out, '|')
	}
	for len(out) < MaxNameLength+1 {
		out = append(out, ' ')
	}
	return string(out)
}
