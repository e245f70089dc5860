// Package asset describes the pre-decoded visuals and sounds the game core consumes.
//
// Images are opaque handles: the core only reads their size (for bounding boxes
// and collision radii) and passes them back to the renderer in snapshots.
package asset

import (
	"math/rand"
	"strconv"
)

// Image is an opaque, pre-decoded visual.
type Image struct {
	Name   string
	Width  float64
	Height float64
}

// IsZero reports whether the image is the empty placeholder.
func (i Image) IsZero() bool {
	return i.Name == "" && i.Width == 0 && i.Height == 0
}

// Set is everything the asset provider hands to a run.
type Set struct {
	Asteroids []Image            // Variants, one chosen at random per asteroid
	Bullet    Image              // Primary projectile
	Fragment  Image              // Rocket-boost small projectile
	Explosion []Image            // Ordered animation frames
	Powerups  map[string]Image   // Icon per power-up type name
	Ships     map[string][]Image // Animation frames per ship variant name
	Music     string             // Background music path, empty for none
	Boom      string             // Destruction sound path, empty for none
}

// Placeholder is used whenever a lookup misses.
var Placeholder = Image{Name: "placeholder", Width: 32, Height: 32}

// ExplosionFrameCount is the number of frames a full explosion animation has.
const ExplosionFrameCount = 9

// Powerup returns the icon for the named power-up type, or Placeholder.
func (s Set) Powerup(name string) Image {
	if img, ok := s.Powerups[name]; ok {
		return img
	}
	return Placeholder
}

// Ship returns the animation frames for a ship variant, falling back to a single placeholder frame.
func (s Set) Ship(variant string) []Image {
	if frames := s.Ships[variant]; len(frames) > 0 {
		return frames
	}
	return []Image{Placeholder}
}

// WithSounds returns a copy of s with the music and destruction sound paths set.
func (s Set) WithSounds(music, boom string) Set {
	s.Music = music
	s.Boom = boom
	return s
}

// RandomAsteroid picks one asteroid image. Falls back to Placeholder if none are loaded.
func (s Set) RandomAsteroid(rng *rand.Rand) Image {
	if len(s.Asteroids) == 0 {
		return Placeholder
	}
	return s.Asteroids[rng.Intn(len(s.Asteroids))]
}

// Default returns the built-in asset set used by the terminal renderer.
// Asteroid sizes are rolled once here, 40..70 px per side, like a loader
// scaling each decoded image.
func Default(rng *rand.Rand) Set {
	asteroids := make([]Image, 6)
	for i := range asteroids {
		asteroids[i] = Image{
			Name:   "asteroid-" + strconv.Itoa(i+1),
			Width:  float64(40 + rng.Intn(31)),
			Height: float64(40 + rng.Intn(31)),
		}
	}

	explosion := make([]Image, ExplosionFrameCount)
	for i := range explosion {
		explosion[i] = Image{Name: "explosion", Width: 80, Height: 80}
	}

	ship := func(name string) []Image {
		frames := make([]Image, 4)
		for i := range frames {
			frames[i] = Image{Name: name, Width: 50, Height: 50}
		}
		return frames
	}

	return Set{
		Asteroids: asteroids,
		Bullet:    Image{Name: "bullet", Width: 15, Height: 35},
		Fragment:  Image{Name: "fragment", Width: 8, Height: 8},
		Explosion: explosion,
		Powerups: map[string]Image{
			"ammo":   {Name: "ammo", Width: 30, Height: 30},
			"energy": {Name: "energy", Width: 30, Height: 30},
			"health": {Name: "health", Width: 30, Height: 30},
			"rocket": {Name: "rocket", Width: 30, Height: 30},
			"shield": {Name: "shield", Width: 30, Height: 30},
		},
		Ships: map[string][]Image{
			"balanced": ship("ship-balanced"),
			"fast":     ship("ship-fast"),
		},
	}
}
