// Package effect tracks time-boxed power-up effects on the player.
//
// Every timed effect is an absolute expiry on the game clock. Nothing is
// scheduled: callers compare against "now" each frame.
package effect

import (
	"fmt"
	"time"
)

// Kind identifies a power-up type.
type Kind int

const (
	Ammo   Kind = iota // Shooting cooldown bypassed
	Energy             // Screen clear
	Health             // +1 health, instantaneous
	Rocket             // Primary kills burst into fragments
	Shield             // No asteroid damage
)

// Kinds lists every power-up type in declaration order.
var Kinds = []Kind{Ammo, Energy, Health, Rocket, Shield}

// Durations.
const (
	BoostDuration = 10 * time.Second // Ammo, Rocket, Shield
	EnergyWindow  = 2 * time.Second
)

var kindNames = [...]string{
	Ammo:   "ammo",
	Energy: "energy",
	Health: "health",
	Rocket: "rocket",
	Shield: "shield",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Timers holds the expiry of every timed effect. The zero value has nothing active.
type Timers struct {
	AmmoUntil   time.Duration
	RocketUntil time.Duration
	ShieldUntil time.Duration
	EnergyUntil time.Duration

	sweepPending bool
}

// Apply starts or refreshes the effect of a pickup at now.
// Health has no timer and is ignored here; the caller heals the player.
func (t *Timers) Apply(k Kind, now time.Duration) {
	switch k {
	case Ammo:
		t.AmmoUntil = now + BoostDuration
	case Rocket:
		t.RocketUntil = now + BoostDuration
	case Shield:
		t.ShieldUntil = now + BoostDuration
	case Energy:
		t.EnergyUntil = now + EnergyWindow
		t.sweepPending = true
	}
}

// Active reports whether the effect covers now. Windows are half-open: [pickup, expiry).
func (t *Timers) Active(k Kind, now time.Duration) bool {
	switch k {
	case Ammo:
		return now < t.AmmoUntil
	case Rocket:
		return now < t.RocketUntil
	case Shield:
		return now < t.ShieldUntil
	case Energy:
		return now < t.EnergyUntil
	}
	return false
}

// Remaining returns how long the effect still lasts, zero if inactive.
func (t *Timers) Remaining(k Kind, now time.Duration) time.Duration {
	var until time.Duration
	switch k {
	case Ammo:
		until = t.AmmoUntil
	case Rocket:
		until = t.RocketUntil
	case Shield:
		until = t.ShieldUntil
	case Energy:
		until = t.EnergyUntil
	default:
		return 0
	}
	if now >= until {
		return 0
	}
	return until - now
}

// ConsumeSweep reports whether an energy screen clear is owed at now and marks it done.
// A pickup owes exactly one sweep; once the window closes an unclaimed sweep is dropped.
func (t *Timers) ConsumeSweep(now time.Duration) bool {
	if !t.sweepPending {
		return false
	}
	t.sweepPending = false
	return now < t.EnergyUntil
}
