// Package game runs one play-through: entity updates, collision resolution,
// power-up effects, scoring and the playing/paused/game-over state machine.
//
// A Game is driven by Step once per frame and never touches the terminal,
// the audio device or the disk directly; those are reached through the
// Audio, HighScores and NamePrompter collaborators.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/score"
)

// Audio is the background music and sound effect sink.
type Audio interface {
	PlayMusic()
	PauseMusic()
	ResumeMusic()
	StopMusic()
	PlayExplosion()
}

// HighScores is the high-score gate.
type HighScores interface {
	IsHighScore(score int) bool
	Add(name string, score int) error
}

// NamePrompter captures the player's name for a qualifying score.
// It blocks until the name is entered or cancelled (ok == false).
type NamePrompter interface {
	PromptName(score int) (name string, ok bool)
}

// Options configures a new run.
type Options struct {
	Screen           object.Screen // Zero means ScreenWidth x ScreenHeight
	Ship             object.ShipVariant
	Assets           asset.Set
	Rand             *rand.Rand
	InitialAsteroids int // Zero means InitialAsteroids

	Scores   HighScores   // Nil keeps scores in memory for this run only
	Prompter NamePrompter // Nil cancels every prompt
	Audio    Audio        // Nil is silent
	Logger   *log.Logger
}

// Game is a single run. The zero value is not usable; use New.
type Game struct {
	State State
	Score int
	Now   time.Duration // Game clock; frozen while paused

	Player      *object.Player
	Asteroids   []*object.Asteroid
	Projectiles []*object.Projectile
	Fragments   []*object.SmallProjectile
	Explosions  []*object.Explosion
	Powerups    []*object.Powerup

	Spawner *object.Spawner

	screen   object.Screen
	assets   asset.Set
	rng      *rand.Rand
	scores   HighScores
	prompter NamePrompter
	audio    Audio
	logger   *log.Logger

	grid     *physics.SpatialGrid
	prompted bool
}

// New starts a run: places the player, seeds the initial asteroids and starts the music.
func New(opts Options) *Game {
	if opts.Screen == (object.Screen{}) {
		opts.Screen = object.Screen{Width: ScreenWidth, Height: ScreenHeight}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.InitialAsteroids <= 0 {
		opts.InitialAsteroids = InitialAsteroids
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scores == nil {
		opts.Scores = score.NewTable(nil, opts.Logger)
	}
	if opts.Audio == nil {
		opts.Audio = silent{}
	}

	g := &Game{
		State:    StatePlaying,
		Player:   object.NewPlayer(opts.Screen, opts.Ship, opts.Assets.Ship(opts.Ship.String())),
		Spawner:  object.NewSpawner(opts.Screen, opts.Assets, opts.Rand),
		screen:   opts.Screen,
		assets:   opts.Assets,
		rng:      opts.Rand,
		scores:   opts.Scores,
		prompter: opts.Prompter,
		audio:    opts.Audio,
		logger:   opts.Logger,
		grid:     physics.NewSpatialGrid(opts.Screen.Width, opts.Screen.Height, gridCellSize),
	}
	g.Asteroids = g.Spawner.Asteroids(opts.InitialAsteroids)

	g.audio.PlayMusic()
	g.logger.Info("run started", "ship", opts.Ship, "asteroids", len(g.Asteroids))
	return g
}

// Step advances the run by dt with this frame's input and reports what the caller should do next.
// Quit is honored in every state.
func (g *Game) Step(dt time.Duration, in input.Input) Signal {
	if in.Has(input.EventQuit) || in.Has(input.EventEscape) {
		return SignalQuit
	}

	switch g.State {
	case StatePlaying:
		if in.Has(input.EventPause) {
			g.State = StatePaused
			g.audio.PauseMusic()
			return SignalNone
		}
		g.Now += dt
		ctx := g.updateContext(dt, in)
		g.updatePlayer(ctx)
		g.updateEntities(ctx)
		g.spawn()
		g.resolveCollisions()
		g.prune()

	case StatePaused:
		if in.Has(input.EventPause) {
			g.State = StatePlaying
			g.audio.ResumeMusic()
		}

	case StateHighScoreInput:
		g.promptForName()
		g.State = StateGameOver

	case StateGameOver:
		g.Now += dt
		g.updateEntities(g.updateContext(dt, in))
		g.prune()
		if in.Has(input.EventRestart) {
			return SignalRestart
		}
		if in.Has(input.EventMenu) {
			return SignalMenu
		}
	}
	return SignalNone
}

func (g *Game) updateContext(dt time.Duration, in input.Input) object.UpdateContext {
	return object.UpdateContext{
		Delta:  dt,
		Now:    g.Now,
		Input:  in,
		Screen: g.screen,
		Rand:   g.rng,
	}
}

// updatePlayer moves the ship and fires while the shoot key is held.
func (g *Game) updatePlayer(ctx object.UpdateContext) {
	p := g.Player
	if p.IsDestroyed() {
		return
	}
	p.Update(ctx)
	if ctx.Input.Shoot && p.CanShoot(g.Now) {
		g.Projectiles = append(g.Projectiles, p.Shoot(g.Now, g.assets.Bullet))
	}
}

// updateEntities advances everything except the player.
func (g *Game) updateEntities(ctx object.UpdateContext) {
	for _, a := range g.Asteroids {
		a.Update(ctx)
	}
	for _, p := range g.Projectiles {
		p.Update(ctx)
	}
	for _, f := range g.Fragments {
		f.Update(ctx)
	}
	for _, pu := range g.Powerups {
		pu.Update(ctx)
	}
	for _, e := range g.Explosions {
		e.Update(ctx)
	}
}

// spawn runs the spawner's interval checks.
func (g *Game) spawn() {
	a, p := g.Spawner.Tick(g.Now, object.CountLive(g.Asteroids))
	if a != nil {
		g.Asteroids = append(g.Asteroids, a)
	}
	if p != nil {
		g.Powerups = append(g.Powerups, p)
	}
}

func (g *Game) prune() {
	g.Asteroids = object.Prune(g.Asteroids)
	g.Projectiles = object.Prune(g.Projectiles)
	g.Fragments = object.Prune(g.Fragments)
	g.Powerups = object.Prune(g.Powerups)
	g.Explosions = object.Prune(g.Explosions)
}

// promptForName asks for a name once per run and records the score unless cancelled.
func (g *Game) promptForName() {
	if g.prompted {
		return
	}
	g.prompted = true

	if g.prompter == nil {
		return
	}
	name, ok := g.prompter.PromptName(g.Score)
	if !ok {
		g.logger.Debug("name entry cancelled", "score", g.Score)
		return
	}
	if err := g.scores.Add(name, g.Score); err != nil {
		g.logger.Warn("high score not saved", "err", err)
		return
	}
	g.logger.Info("high score saved", "name", name, "score", g.Score)
}

// explode starts an explosion centered on (x, y).
func (g *Game) explode(x, y float64) {
	g.Explosions = append(g.Explosions, object.NewExplosion(x, y, g.assets.Explosion))
}

// silent is the Audio used when none is configured.
type silent struct{}

func (silent) PlayMusic()     {}
func (silent) PauseMusic()    {}
func (silent) ResumeMusic()   {}
func (silent) StopMusic()     {}
func (silent) PlayExplosion() {}
