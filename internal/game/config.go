package game

// Gameplay configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Playfield, in logical pixels
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0
)

// Scoring
const (
	ScoreProjectileKill = 50
	ScoreFragmentKill   = 25
	ScoreEnergyKill     = 25
	ScorePickup         = 25
)

// Spawning
const (
	InitialAsteroids = 8
)

// Collision
const (
	gridCellSize = 100.0 // >= largest asteroid radius plus largest partner reach
)
