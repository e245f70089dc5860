package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterAndCount(t *testing.T) {
	h := NewHub()
	a := h.Register("alice")
	b := h.Register("bob")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, h.Count())

	h.Unregister(a.ID)
	h.Unregister(a.ID)
	h.Unregister(99)
	assert.Equal(t, 1, h.Count())
	assert.False(t, b.ShuttingDown())
}

func TestHubShutdownNotifiesAndWaits(t *testing.T) {
	h := NewHub()
	s := h.Register("alice")

	go func() {
		for !s.ShuttingDown() {
			time.Sleep(time.Millisecond)
		}
		h.Unregister(s.ID)
	}()

	start := time.Now()
	h.Shutdown(5 * time.Second)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Zero(t, h.Count())
	assert.True(t, s.ShuttingDown())
}

func TestHubShutdownTimesOut(t *testing.T) {
	h := NewHub()
	s := h.Register("stuck")

	start := time.Now()
	h.Shutdown(50 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, 1, h.Count())
	assert.True(t, s.ShuttingDown())

	h.Shutdown(0)
}

func TestLoopShowsShutdownNotice(t *testing.T) {
	s := newSession(t, "alice")
	hub := NewHub()
	s.loop.hub = hub
	s.start(context.Background())

	s.waitFor(t, "Select ship")
	require.Equal(t, 1, hub.Count())

	go hub.Shutdown(2 * time.Second)
	s.waitFor(t, "SERVER SHUTTING DOWN")
	s.press(t, "\r")
	s.wait(t)
	assert.Zero(t, hub.Count())
}
