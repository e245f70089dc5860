package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShieldWindowIsHalfOpen(t *testing.T) {
	var timers Timers
	pickup := 3 * time.Second
	timers.Apply(Shield, pickup)

	assert.False(t, timers.Active(Shield, pickup-time.Millisecond), "before pickup")
	assert.True(t, timers.Active(Shield, pickup))
	assert.True(t, timers.Active(Shield, pickup+BoostDuration-time.Millisecond))
	assert.False(t, timers.Active(Shield, pickup+BoostDuration), "at expiry")
	assert.False(t, timers.Active(Shield, pickup+BoostDuration+time.Second))
}

func TestEffectsStackIndependently(t *testing.T) {
	var timers Timers
	timers.Apply(Shield, 0)
	timers.Apply(Rocket, 4*time.Second)

	now := 6 * time.Second
	assert.True(t, timers.Active(Shield, now))
	assert.True(t, timers.Active(Rocket, now))
	assert.False(t, timers.Active(Ammo, now))

	now = 11 * time.Second
	assert.False(t, timers.Active(Shield, now))
	assert.True(t, timers.Active(Rocket, now))
	assert.Equal(t, 3*time.Second, timers.Remaining(Rocket, now))
	assert.Zero(t, timers.Remaining(Shield, now))
}

func TestRepickupRefreshesExpiry(t *testing.T) {
	var timers Timers
	timers.Apply(Ammo, 0)
	timers.Apply(Ammo, 8*time.Second)
	assert.True(t, timers.Active(Ammo, 15*time.Second))
	assert.Equal(t, 18*time.Second, timers.AmmoUntil)
}

func TestHealthHasNoTimer(t *testing.T) {
	var timers Timers
	timers.Apply(Health, time.Second)
	assert.False(t, timers.Active(Health, time.Second))
	assert.Equal(t, Timers{}, timers)
}

func TestEnergySweepIsOwedOnce(t *testing.T) {
	var timers Timers
	timers.Apply(Energy, time.Second)

	assert.True(t, timers.Active(Energy, time.Second+500*time.Millisecond))
	assert.True(t, timers.ConsumeSweep(time.Second))
	assert.False(t, timers.ConsumeSweep(time.Second+time.Millisecond), "second sweep in the same window")
	assert.True(t, timers.Active(Energy, time.Second+time.Millisecond), "window stays observable")
}

func TestEnergySweepDroppedAfterWindow(t *testing.T) {
	var timers Timers
	timers.Apply(Energy, 0)
	assert.False(t, timers.ConsumeSweep(EnergyWindow))
	assert.False(t, timers.ConsumeSweep(0))
}

func TestKindNames(t *testing.T) {
	names := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		names = append(names, k.String())
	}
	assert.Equal(t, []string{"ammo", "energy", "health", "rocket", "shield"}, names)
	assert.Equal(t, "kind(9)", Kind(9).String())
}
