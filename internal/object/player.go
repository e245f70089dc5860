package object

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/effect"
)

// ShipVariant selects the player's ship.
type ShipVariant int

const (
	ShipBalanced ShipVariant = iota
	ShipFast
)

// ShipVariants lists the selectable ships in menu order.
var ShipVariants = []ShipVariant{ShipBalanced, ShipFast}

// shipClass holds the stats for a ship variant.
type shipClass struct {
	Name  string
	Speed float64 // Pixels per second on each axis
}

var shipClasses = [...]shipClass{
	ShipBalanced: {Name: "balanced", Speed: 300},
	ShipFast:     {Name: "fast", Speed: 480},
}

func (v ShipVariant) class() shipClass {
	if v < 0 || int(v) >= len(shipClasses) {
		return shipClasses[ShipBalanced]
	}
	return shipClasses[v]
}

func (v ShipVariant) String() string {
	return v.class().Name
}

// ParseShipVariant maps a ship name to its variant.
func ParseShipVariant(s string) (ShipVariant, error) {
	for i, c := range shipClasses {
		if strings.EqualFold(c.Name, s) {
			return ShipVariant(i), nil
		}
	}
	return ShipBalanced, fmt.Errorf("unknown ship %q", s)
}

// Player tuning.
const (
	PlayerWidth         = 50.0
	PlayerHeight        = 50.0
	PlayerRadius        = 20.0
	PlayerBottomMargin  = 10.0
	MaxHealth           = 3
	ShootCooldown       = 250 * time.Millisecond
	PlayerFrameDuration = 10 * (time.Second / 60) // 10 ticks at 60 Hz
)

// Player is the player-controlled ship.
type Player struct {
	X, Y    float64 // Center
	Variant ShipVariant
	Speed   float64
	Health  int

	// Effects holds the shield, ammo and rocket expiries plus the energy window.
	Effects effect.Timers

	LastShot time.Duration
	hasShot  bool

	Frames     []asset.Image
	Frame      int
	frameTimer time.Duration
	Moving     bool
	FacingLeft bool

	destroyed bool
}

// NewPlayer creates a ship centered horizontally, resting near the bottom edge.
func NewPlayer(screen Screen, variant ShipVariant, frames []asset.Image) *Player {
	if len(frames) == 0 {
		frames = []asset.Image{asset.Placeholder}
	}
	return &Player{
		X:       screen.Width / 2,
		Y:       screen.Height - PlayerBottomMargin - PlayerHeight/2,
		Variant: variant,
		Speed:   variant.class().Speed,
		Health:  MaxHealth,
		Frames:  frames,
	}
}

// Update applies held movement keys, clamps to the screen and advances the animation.
// Opposite keys cancel out.
func (p *Player) Update(ctx UpdateContext) {
	if p.destroyed {
		return
	}
	dt := ctx.Delta.Seconds()

	var dx, dy float64
	if ctx.Input.Left {
		dx -= p.Speed * dt
	}
	if ctx.Input.Right {
		dx += p.Speed * dt
	}
	if ctx.Input.Up {
		dy -= p.Speed * dt
	}
	if ctx.Input.Down {
		dy += p.Speed * dt
	}

	p.X = clampf(p.X+dx, PlayerWidth/2, ctx.Screen.Width-PlayerWidth/2)
	p.Y = clampf(p.Y+dy, PlayerHeight/2, ctx.Screen.Height-PlayerHeight/2)

	p.Moving = dx != 0 || dy != 0
	if dx < 0 {
		p.FacingLeft = true
	} else if dx > 0 {
		p.FacingLeft = false
	}

	if p.Moving {
		p.frameTimer += ctx.Delta
		for p.frameTimer >= PlayerFrameDuration {
			p.frameTimer -= PlayerFrameDuration
			p.Frame = (p.Frame + 1) % len(p.Frames)
		}
	}
}

// Image returns the current animation frame.
func (p *Player) Image() asset.Image {
	return p.Frames[p.Frame%len(p.Frames)]
}

// CanShoot reports whether the cooldown allows a shot at now.
// With ammo boost the cooldown is bypassed, limited to one shot per tick.
func (p *Player) CanShoot(now time.Duration) bool {
	if !p.hasShot {
		return true
	}
	if p.Effects.Active(effect.Ammo, now) {
		return now > p.LastShot
	}
	return now-p.LastShot >= ShootCooldown
}

// Shoot records a shot at now and returns the bullet leaving the ship's nose.
func (p *Player) Shoot(now time.Duration, img asset.Image) *Projectile {
	p.LastShot = now
	p.hasShot = true
	return NewProjectile(p.X, p.Y-PlayerHeight/2, img)
}

// IsShielded reports whether the shield covers now.
func (p *Player) IsShielded(now time.Duration) bool {
	return p.Effects.Active(effect.Shield, now)
}

// Heal restores one health point, capped at MaxHealth.
func (p *Player) Heal() {
	if p.Health < MaxHealth {
		p.Health++
	}
}

// Damage removes one health point unless shielded. Returns true if health reached zero.
func (p *Player) Damage(now time.Duration) bool {
	if p.IsShielded(now) {
		return false
	}
	if p.Health > 0 {
		p.Health--
	}
	return p.Health <= 0
}

// Bounds returns the ship's sprite rectangle.
func (p *Player) Bounds() Rect {
	return RectAround(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// CollisionCircle returns the ship's collision circle.
func (p *Player) CollisionCircle() Circle {
	return Circle{X: p.X, Y: p.Y, R: PlayerRadius}
}

// MarkDestroyed marks the player dead.
func (p *Player) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true once the player is dead.
func (p *Player) IsDestroyed() bool {
	return p.destroyed
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
