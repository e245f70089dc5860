package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/effect"
)

// Spawner defaults.
const (
	DefaultMinAsteroids     = 6
	DefaultAsteroidInterval = 2000 * time.Millisecond
	DefaultPowerupInterval  = 3000 * time.Millisecond
	DefaultPowerupChance    = 0.15
)

// Spawner keeps the asteroid population at a floor and drops power-ups.
// Both interval timers read the game clock; there is no catch-up, so one
// check fires at most one spawn.
type Spawner struct {
	MinAsteroids     int
	AsteroidInterval time.Duration
	PowerupInterval  time.Duration
	PowerupChance    float64

	screen Screen
	assets asset.Set
	rng    *rand.Rand

	lastAsteroid time.Duration
	lastPowerup  time.Duration
}

// NewSpawner creates a spawner with the default floor, intervals and chance.
func NewSpawner(screen Screen, assets asset.Set, rng *rand.Rand) *Spawner {
	return &Spawner{
		MinAsteroids:     DefaultMinAsteroids,
		AsteroidInterval: DefaultAsteroidInterval,
		PowerupInterval:  DefaultPowerupInterval,
		PowerupChance:    DefaultPowerupChance,
		screen:           screen,
		assets:           assets,
		rng:              rng,
	}
}

// Asteroid creates one asteroid in the spawn band. Used for the initial
// population and for the replacement that follows every destruction.
func (s *Spawner) Asteroid() *Asteroid {
	return NewAsteroid(s.screen, s.assets.RandomAsteroid(s.rng), s.rng)
}

// Asteroids creates n asteroids.
func (s *Spawner) Asteroids(n int) []*Asteroid {
	out := make([]*Asteroid, 0, n)
	for range n {
		out = append(out, s.Asteroid())
	}
	return out
}

// Powerup creates a power-up of kind k at the top of the screen.
func (s *Spawner) Powerup(k effect.Kind) *Powerup {
	return NewPowerup(s.screen, k, s.assets.Powerup(k.String()), s.rng)
}

// Tick runs both interval checks at now. live is the current live asteroid count.
// Either return value may be nil.
func (s *Spawner) Tick(now time.Duration, live int) (*Asteroid, *Powerup) {
	var a *Asteroid
	if now-s.lastAsteroid >= s.AsteroidInterval && live < s.MinAsteroids {
		s.lastAsteroid = now
		a = s.Asteroid()
	}

	var p *Powerup
	if now-s.lastPowerup >= s.PowerupInterval {
		s.lastPowerup = now
		if s.rng.Float64() < s.PowerupChance {
			p = s.Powerup(effect.Kinds[s.rng.Intn(len(effect.Kinds))])
		}
	}
	return a, p
}
