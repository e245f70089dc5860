package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/effect"
)

// Power-up tuning.
const (
	PowerupSpeed     = 180.0 // Pixels per second, downward
	PowerupRadius    = 15.0
	floatAmplitude   = 6.0 // Pixels
	floatFrequency   = 1.5 // Hz
	defaultIconWidth = 30.0
)

// Powerup is a falling pickup.
type Powerup struct {
	X, Y  float64
	VY    float64
	Kind  effect.Kind
	Image asset.Image

	age       time.Duration
	destroyed bool
}

// NewPowerup creates a power-up of kind k at a random horizontal position just above the screen.
func NewPowerup(screen Screen, k effect.Kind, img asset.Image, rng *rand.Rand) *Powerup {
	if img.IsZero() {
		img = asset.Image{Name: k.String(), Width: defaultIconWidth, Height: defaultIconWidth}
	}
	left := 0.0
	if span := int(screen.Width - img.Width); span > 0 {
		left = float64(rng.Intn(span))
	}
	return &Powerup{
		X:     left + img.Width/2,
		Y:     -img.Height / 2,
		VY:    PowerupSpeed,
		Kind:  k,
		Image: img,
	}
}

// Update moves the power-up down; it dies once its top passes the bottom edge.
func (p *Powerup) Update(ctx UpdateContext) {
	if p.destroyed {
		return
	}
	p.age += ctx.Delta
	p.Y += p.VY * ctx.Delta.Seconds()
	if p.Bounds().Top() > ctx.Screen.Height {
		p.destroyed = true
	}
}

// FloatOffset is the cosmetic horizontal sway. It does not affect collisions.
func (p *Powerup) FloatOffset() float64 {
	return floatAmplitude * math.Sin(2*math.Pi*floatFrequency*p.age.Seconds())
}

// Bounds returns the icon rectangle, without the float offset.
func (p *Powerup) Bounds() Rect {
	return RectAround(p.X, p.Y, p.Image.Width, p.Image.Height)
}

// CollisionCircle returns the pickup circle.
func (p *Powerup) CollisionCircle() Circle {
	return Circle{X: p.X, Y: p.Y, R: PowerupRadius}
}

// MarkDestroyed marks the power-up for removal.
func (p *Powerup) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the power-up is marked for destruction.
func (p *Powerup) IsDestroyed() bool {
	return p.destroyed
}
