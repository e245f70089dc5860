package game

import (
	"github.com/tomz197/spaceshooter/internal/effect"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
)

// resolveCollisions runs every collision category once, in a fixed order.
// Entities destroyed earlier in the pass are skipped by later checks.
func (g *Game) resolveCollisions() {
	if g.Player.Effects.ConsumeSweep(g.Now) {
		g.sweepEnergy()
	}
	g.checkAsteroidProjectileCollisions()
	g.checkAsteroidFragmentCollisions()
	if g.checkPlayerAsteroidCollisions() {
		return
	}
	g.checkPlayerPowerupCollisions()
}

// populateAsteroidGrid clears and re-inserts the live asteroids. Indices refer to
// g.Asteroids as it is now; asteroids appended afterwards are not in the grid.
func (g *Game) populateAsteroidGrid() {
	g.grid.Clear()
	for i, a := range g.Asteroids {
		if !a.IsDestroyed() {
			g.grid.Insert(a.X, a.Y, i)
		}
	}
}

// removeAsteroid marks a destroyed and spawns its replacement.
func (g *Game) removeAsteroid(a *object.Asteroid) {
	a.MarkDestroyed()
	g.Asteroids = append(g.Asteroids, g.Spawner.Asteroid())
}

// destroyAsteroid removes a, credits points and leaves an explosion.
func (g *Game) destroyAsteroid(a *object.Asteroid, points int) {
	g.removeAsteroid(a)
	g.Score += points
	g.explode(a.X, a.Y)
}

// sweepEnergy destroys every live asteroid. Replacements spawned here are not swept.
func (g *Game) sweepEnergy() {
	live := g.Asteroids
	for _, a := range live {
		if !a.IsDestroyed() {
			g.destroyAsteroid(a, ScoreEnergyKill)
		}
	}
}

// hitAsteroid returns the first live asteroid whose circle overlaps rect r, or nil.
func (g *Game) hitAsteroid(r object.Rect) *object.Asteroid {
	cx, cy := r.Center()
	var hit *object.Asteroid
	g.grid.QueryAround(cx, cy, func(i int) bool {
		a := g.Asteroids[i]
		if a.IsDestroyed() {
			return false
		}
		c := a.CollisionCircle()
		if physics.CircleRectOverlap(c.X, c.Y, c.R, r.X, r.Y, r.W, r.H) {
			hit = a
			return true
		}
		return false
	})
	return hit
}

// checkAsteroidProjectileCollisions handles bullet kills. With rocket boost each
// kill bursts into fragments at the impact point.
func (g *Game) checkAsteroidProjectileCollisions() {
	g.populateAsteroidGrid()
	rocket := g.Player.Effects.Active(effect.Rocket, g.Now)

	for _, p := range g.Projectiles {
		if p.IsDestroyed() {
			continue
		}
		a := g.hitAsteroid(p.Bounds())
		if a == nil {
			continue
		}
		p.MarkDestroyed()
		g.destroyAsteroid(a, ScoreProjectileKill)
		if rocket {
			g.Fragments = append(g.Fragments, object.Burst(a.X, a.Y, g.assets.Fragment)...)
		}
	}
}

// checkAsteroidFragmentCollisions handles fragment kills. Fragments never chain.
func (g *Game) checkAsteroidFragmentCollisions() {
	g.populateAsteroidGrid()

	for _, f := range g.Fragments {
		if f.IsDestroyed() {
			continue
		}
		a := g.hitAsteroid(f.Bounds())
		if a == nil {
			continue
		}
		f.MarkDestroyed()
		g.destroyAsteroid(a, ScoreFragmentKill)
	}
}

// checkPlayerAsteroidCollisions removes every asteroid touching the player, without
// score or explosion, then applies one damage per hit. Returns true if the player died.
func (g *Game) checkPlayerAsteroidCollisions() bool {
	p := g.Player
	if p.IsDestroyed() {
		return false
	}
	g.populateAsteroidGrid()
	pc := p.CollisionCircle()

	var hits []*object.Asteroid
	g.grid.QueryAround(pc.X, pc.Y, func(i int) bool {
		a := g.Asteroids[i]
		c := a.CollisionCircle()
		if !a.IsDestroyed() && physics.CirclesOverlap(pc.X, pc.Y, pc.R, c.X, c.Y, c.R) {
			hits = append(hits, a)
		}
		return false
	})

	for _, a := range hits {
		g.removeAsteroid(a)
	}
	for range hits {
		if p.Damage(g.Now) {
			g.killPlayer()
			return true
		}
	}
	return false
}

// killPlayer ends the run and picks the next state through the high-score gate.
func (g *Game) killPlayer() {
	p := g.Player
	p.MarkDestroyed()
	g.explode(p.X, p.Y)
	g.audio.StopMusic()
	g.audio.PlayExplosion()

	qualifies := g.scores.IsHighScore(g.Score)
	if qualifies {
		g.State = StateHighScoreInput
	} else {
		g.State = StateGameOver
	}
	g.logger.Info("player destroyed", "score", g.Score, "highscore", qualifies)
}

// checkPlayerPowerupCollisions collects every power-up touching the player.
func (g *Game) checkPlayerPowerupCollisions() {
	p := g.Player
	if p.IsDestroyed() {
		return
	}
	pc := p.CollisionCircle()

	for _, pu := range g.Powerups {
		if pu.IsDestroyed() {
			continue
		}
		c := pu.CollisionCircle()
		if !physics.CirclesOverlap(pc.X, pc.Y, pc.R, c.X, c.Y, c.R) {
			continue
		}
		pu.MarkDestroyed()
		g.Score += ScorePickup
		g.explode(pu.X, pu.Y)
		g.applyPowerup(pu.Kind)
	}
}

// applyPowerup starts the effect of a pickup. Energy clears the screen right away.
func (g *Game) applyPowerup(k effect.Kind) {
	p := g.Player
	if k == effect.Health {
		p.Heal()
		return
	}
	p.Effects.Apply(k, g.Now)
	if p.Effects.ConsumeSweep(g.Now) {
		g.sweepEnergy()
	}
}
