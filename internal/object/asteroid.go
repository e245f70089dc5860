package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
)

// Asteroid tuning. Speeds are pixels per second, tuned against a 60 Hz tick.
const (
	AsteroidRadiusScale  = 0.85 // Of half the image width
	AsteroidRotateEvery  = 50 * time.Millisecond
	asteroidTickRate     = 60.0
	asteroidSpawnTopMin  = -100
	asteroidSpawnTopMax  = -40
	asteroidRecycleBelow = 10 // Past the bottom edge
	asteroidRecycleLeft  = -25
	asteroidRecycleRight = 20 // Past the right edge
)

// Asteroid is a falling, rotating rock. Leaving the screen recycles it to the top.
type Asteroid struct {
	X, Y          float64 // Center
	VX, VY        float64
	Angle         float64 // Degrees
	RotationSpeed float64 // Degrees per rotation step
	Radius        float64
	Image         asset.Image

	rotTimer  time.Duration
	destroyed bool
}

// NewAsteroid creates an asteroid with image img in the spawn band above the screen.
func NewAsteroid(screen Screen, img asset.Image, rng *rand.Rand) *Asteroid {
	if img.IsZero() {
		img = asset.Placeholder
	}
	a := &Asteroid{
		Image:         img,
		Radius:        AsteroidRadiusScale * img.Width / 2,
		VX:            float64(rng.Intn(4)-2) * asteroidTickRate,
		RotationSpeed: float64(rng.Intn(11) - 5),
	}
	a.placeInSpawnBand(screen, rng)
	a.VY = float64(2+rng.Intn(4)) * asteroidTickRate
	return a
}

// placeInSpawnBand moves the asteroid to a random spot above the visible area.
func (a *Asteroid) placeInSpawnBand(screen Screen, rng *rand.Rand) {
	left := 0.0
	if span := int(screen.Width - a.Image.Width); span > 0 {
		left = float64(rng.Intn(span))
	}
	top := float64(asteroidSpawnTopMin + rng.Intn(asteroidSpawnTopMax-asteroidSpawnTopMin))
	a.X = left + a.Image.Width/2
	a.Y = top + a.Image.Height/2
}

// Update moves and rotates the asteroid. Rotation steps at most once per
// AsteroidRotateEvery and never catches up.
func (a *Asteroid) Update(ctx UpdateContext) {
	if a.destroyed || ctx.Delta <= 0 {
		return
	}
	dt := ctx.Delta.Seconds()

	a.rotTimer += ctx.Delta
	if a.rotTimer > AsteroidRotateEvery {
		a.rotTimer = 0
		a.Angle = math.Mod(a.Angle+a.RotationSpeed+360, 360)
	}

	a.X += a.VX * dt
	a.Y += a.VY * dt

	b := a.Bounds()
	if b.Top() > ctx.Screen.Height+asteroidRecycleBelow ||
		b.Left() < asteroidRecycleLeft ||
		b.Right() > ctx.Screen.Width+asteroidRecycleRight {
		a.placeInSpawnBand(ctx.Screen, ctx.Rand)
		a.VY = float64(1+ctx.Rand.Intn(7)) * asteroidTickRate
	}
}

// Bounds returns the unrotated image rectangle.
func (a *Asteroid) Bounds() Rect {
	return RectAround(a.X, a.Y, a.Image.Width, a.Image.Height)
}

// CollisionCircle returns the asteroid's collision circle.
func (a *Asteroid) CollisionCircle() Circle {
	return Circle{X: a.X, Y: a.Y, R: a.Radius}
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
