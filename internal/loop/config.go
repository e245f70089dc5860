package loop

import "time"

// Frame pacing.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 134
	MaxTermHeight = 50
)

// Name entry
const (
	MaxNameLength     = 15
	CursorBlinkFrames = 30
)

// High-score view
const (
	DisplayNameLength = 12
)

// Options
const (
	OptionStep = 0.1
)

// Server shutdown notice
const (
	ShutdownDisplay = 10 * time.Second
)

// HUD
const (
	MeterWidth           = 5
	ShieldBlinkWindow    = 2 * time.Second
	ShieldBlinkFrequency = 10.0 // Hz
)
