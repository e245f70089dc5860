// Package object holds the gameplay entities and the spawner that feeds them.
//
// Positions are screen-space centers in pixels, velocities are pixels per second.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/input"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta  time.Duration // Elapsed game time since the previous tick
	Now    time.Duration // Game clock after this tick
	Input  Input
	Screen Screen
	Rand   *rand.Rand
}

// Screen represents the playfield dimensions.
type Screen struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the rectangle of size w x h centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle is a collision shape.
type Circle struct {
	X, Y float64
	R    float64
}

// Entity is a simulated game object.
type Entity interface {
	// Update advances the entity by ctx.Delta. A zero delta must leave it unchanged.
	Update(ctx UpdateContext)
	// Bounds is the drawing and containment rectangle.
	Bounds() Rect
	Destructible
}

// Collider is implemented by entities tested with circle collisions.
type Collider interface {
	Entity
	CollisionCircle() Circle
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Prune drops destroyed entities in place and returns the shortened slice.
func Prune[T Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// CountLive returns how many entities are not marked destroyed.
func CountLive[T Destructible](items []T) int {
	n := 0
	for _, it := range items {
		if !it.IsDestroyed() {
			n++
		}
	}
	return n
}

// ShouldRenderBlink returns true if an object with remaining protection
// time should be rendered this frame (for blinking effect).
// Returns true always if remaining <= 0 (no protection).
func ShouldRenderBlink(remaining time.Duration, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining.Seconds() * frequency)
	return phase%2 != 0
}
