package game

import "fmt"

// State represents the current sub-state of a run.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateHighScoreInput
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	case StateHighScoreInput:
		return "high score input"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Signal is what a run asks of its caller after a step.
type Signal int

const (
	SignalNone    Signal = iota
	SignalRestart        // New run, same ship
	SignalMenu           // Back to the menu
	SignalQuit           // Leave the program
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalRestart:
		return "restart"
	case SignalMenu:
		return "menu"
	case SignalQuit:
		return "quit"
	}
	return fmt.Sprintf("signal(%d)", int(s))
}
