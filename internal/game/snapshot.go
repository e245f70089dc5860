package game

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/effect"
	"github.com/tomz197/spaceshooter/internal/object"
)

// SpriteKind tells the renderer what a sprite is.
type SpriteKind int

const (
	SpriteAsteroid SpriteKind = iota
	SpritePowerup
	SpriteProjectile
	SpriteFragment
	SpritePlayer
	SpriteExplosion
)

// Sprite is a read-only view of one entity.
type Sprite struct {
	Kind   SpriteKind
	Bounds object.Rect
	Image  asset.Image
	Angle  float64 // Degrees, asteroids only
	Frame  int
	FlipX  bool
	Faded  bool // Shielded player
	Effect effect.Kind
}

// ActiveEffect is a running timed effect.
type ActiveEffect struct {
	Kind      effect.Kind
	Remaining time.Duration
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	State     State
	Score     int
	Health    int
	MaxHealth int
	Screen    object.Screen
	Effects   []ActiveEffect
	Sprites   []Sprite // Back to front
}

// Snapshot copies the current frame into a view, reusing buf for the sprites.
func (g *Game) Snapshot(buf []Sprite) Snapshot {
	sprites := buf[:0]

	for _, a := range g.Asteroids {
		sprites = append(sprites, Sprite{Kind: SpriteAsteroid, Bounds: a.Bounds(), Image: a.Image, Angle: a.Angle})
	}
	for _, pu := range g.Powerups {
		b := pu.Bounds()
		b.X += pu.FloatOffset()
		sprites = append(sprites, Sprite{Kind: SpritePowerup, Bounds: b, Image: pu.Image, Effect: pu.Kind})
	}
	for _, p := range g.Projectiles {
		sprites = append(sprites, Sprite{Kind: SpriteProjectile, Bounds: p.Bounds(), Image: p.Image})
	}
	for _, f := range g.Fragments {
		sprites = append(sprites, Sprite{Kind: SpriteFragment, Bounds: f.Bounds(), Image: f.Image})
	}
	if p := g.Player; !p.IsDestroyed() {
		sprites = append(sprites, Sprite{
			Kind:   SpritePlayer,
			Bounds: p.Bounds(),
			Image:  p.Image(),
			Frame:  p.Frame,
			FlipX:  p.FacingLeft,
			Faded:  p.IsShielded(g.Now),
		})
	}
	for _, e := range g.Explosions {
		sprites = append(sprites, Sprite{Kind: SpriteExplosion, Bounds: e.Bounds(), Image: e.Image(), Frame: e.Frame})
	}

	var active []ActiveEffect
	for _, k := range effect.Kinds {
		if r := g.Player.Effects.Remaining(k, g.Now); r > 0 {
			active = append(active, ActiveEffect{Kind: k, Remaining: r})
		}
	}

	return Snapshot{
		State:     g.State,
		Score:     g.Score,
		Health:    g.Player.Health,
		MaxHealth: object.MaxHealth,
		Screen:    g.screen,
		Effects:   active,
		Sprites:   sprites,
	}
}
