package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
)

func events(e ...input.Event) input.Input {
	return input.Input{Events: e}
}

func TestMenuNavigationWraps(t *testing.T) {
	m := menu{}
	_, chosen := m.update(events(input.EventUp))
	assert.False(t, chosen)
	assert.Equal(t, itemQuit, m.selected)

	m.update(events(input.EventDown, input.EventDown))
	assert.Equal(t, itemHighScores, m.selected)

	item, chosen := m.update(events(input.EventEnter))
	assert.True(t, chosen)
	assert.Equal(t, itemHighScores, item)
}

func TestMenuCyclesShips(t *testing.T) {
	m := menu{ship: object.ShipBalanced}
	m.update(events(input.EventRight))
	assert.Equal(t, object.ShipFast, m.ship)
	m.update(events(input.EventRight))
	assert.Equal(t, object.ShipBalanced, m.ship)
	m.update(events(input.EventLeft))
	assert.Equal(t, object.ShipFast, m.ship)
}

func TestMenuShootSelects(t *testing.T) {
	m := menu{}
	item, chosen := m.update(events(input.EventShoot))
	assert.True(t, chosen)
	assert.Equal(t, itemPlay, item)
}

func TestOptionsAdjustAndClamp(t *testing.T) {
	o := options{brightness: 1, volume: 0.4}

	changed, back := o.update(events(input.EventRight), 0.2, 1)
	assert.True(t, changed)
	assert.False(t, back)
	assert.InDelta(t, 1.0, o.brightness, 1e-9)

	for i := 0; i < 12; i++ {
		o.update(events(input.EventLeft), 0.2, 1)
	}
	assert.InDelta(t, 0.2, o.brightness, 1e-9)

	o.update(events(input.EventDown), 0.2, 1)
	o.update(events(input.EventRight, input.EventRight), 0.2, 1)
	assert.InDelta(t, 0.6, o.volume, 1e-9)

	o.update(events(input.EventDown), 0.2, 1)
	changed, back = o.update(events(input.EventLeft, input.EventEnter), 0.2, 1)
	assert.False(t, changed, "back row has no level")
	assert.True(t, back)

	_, back = (&options{}).update(events(input.EventEscape), 0.2, 1)
	assert.True(t, back)
}

func TestStepLevelSnapsToTenths(t *testing.T) {
	v := 0.4
	for i := 0; i < 3; i++ {
		v = stepLevel(v, OptionStep, 0, 1)
	}
	assert.Equal(t, 0.7, v)
	assert.Equal(t, 0.0, stepLevel(0.05, -OptionStep, 0, 1))
}

func TestNameEntryAcceptsTrimmedName(t *testing.T) {
	n := newNameEntry("")
	_, done, _ := n.update(input.Input{Text: []rune("  Ace ")})
	assert.False(t, done)

	name, done, ok := n.update(events(input.EventEnter))
	assert.True(t, done)
	assert.True(t, ok)
	assert.Equal(t, "Ace", name)
}

func TestNameEntryRejectsBlankName(t *testing.T) {
	n := newNameEntry("")
	n.update(input.Input{Text: []rune("   ")})
	_, done, _ := n.update(events(input.EventEnter))
	assert.False(t, done)
}

func TestNameEntryLimitAndBackspace(t *testing.T) {
	n := newNameEntry("")
	n.update(input.Input{Text: []rune("abcdefghijklmnopqrst")})
	assert.Len(t, n.name, MaxNameLength)

	n.update(events(input.EventBackspace, input.EventBackspace))
	assert.Equal(t, "abcdefghijklm", string(n.name))

	n = newNameEntry("")
	n.update(events(input.EventBackspace))
	assert.Empty(t, n.name)
}

func TestNameEntryTypesCommandKeys(t *testing.T) {
	n := newNameEntry("")
	in := input.Input{Text: []rune("qpx"), Events: []input.Event{input.EventQuit, input.EventPause, input.EventMenu}}
	_, done, _ := n.update(in)
	assert.False(t, done)
	assert.Equal(t, "qpx", string(n.name))
}

func TestNameEntryEscapeCancels(t *testing.T) {
	n := newNameEntry("pilot")
	name, done, ok := n.update(events(input.EventEscape))
	assert.True(t, done)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestNameEntryPrefillIsCapped(t *testing.T) {
	n := newNameEntry("a-very-long-ssh-username")
	assert.Len(t, n.name, MaxNameLength)
}

func TestNameEntryCursorBlinks(t *testing.T) {
	n := newNameEntry("Ace")
	assert.Equal(t, "Ace|            ", n.field())

	for i := 0; i < CursorBlinkFrames; i++ {
		n.update(input.Input{})
	}
	assert.Equal(t, "Ace             ", n.field())

	for i := 0; i < CursorBlinkFrames; i++ {
		n.update(input.Input{})
	}
	assert.Equal(t, "Ace|            ", n.field())
	assert.Len(t, []rune(n.field()), MaxNameLength+1)
}
