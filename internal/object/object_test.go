package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/effect"
)

const tick = time.Second / 60

var testScreen = Screen{Width: 800, Height: 600}

func testCtx(delta time.Duration) UpdateContext {
	return UpdateContext{
		Delta:  delta,
		Screen: testScreen,
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func testPlayer() *Player {
	frames := asset.Default(rand.New(rand.NewSource(1))).Ship("balanced")
	return NewPlayer(testScreen, ShipBalanced, frames)
}

func TestPlayerOppositeKeysCancel(t *testing.T) {
	p := testPlayer()
	x, y := p.X, p.Y

	ctx := testCtx(tick)
	ctx.Input = Input{Left: true, Right: true, Up: true, Down: true}
	p.Update(ctx)

	assert.Equal(t, x, p.X)
	assert.Equal(t, y, p.Y)
	assert.False(t, p.Moving)
}

func TestPlayerClampedToScreen(t *testing.T) {
	p := testPlayer()
	ctx := testCtx(10 * time.Second)
	ctx.Input = Input{Left: true, Down: true}
	p.Update(ctx)

	b := p.Bounds()
	assert.InDelta(t, 0, b.Left(), 1e-9)
	assert.InDelta(t, testScreen.Height, b.Bottom(), 1e-9)
	assert.True(t, p.FacingLeft)

	ctx.Input = Input{Right: true}
	p.Update(ctx)
	assert.InDelta(t, testScreen.Width, p.Bounds().Right(), 1e-9)
	assert.False(t, p.FacingLeft)
}

func TestPlayerAnimationAdvancesEveryTenTicks(t *testing.T) {
	p := testPlayer()
	require.Len(t, p.Frames, 4)

	ctx := testCtx(tick)
	ctx.Input = Input{Right: true}
	for range 9 {
		p.Update(ctx)
	}
	assert.Equal(t, 0, p.Frame)
	p.Update(ctx)
	assert.Equal(t, 1, p.Frame)

	ctx.Input = Input{}
	for range 30 {
		p.Update(ctx)
	}
	assert.Equal(t, 1, p.Frame, "standing still does not animate")
}

func TestPlayerVariantSpeed(t *testing.T) {
	fast := NewPlayer(testScreen, ShipFast, nil)
	ctx := testCtx(time.Second / 10)
	ctx.Input = Input{Left: true}
	x := fast.X
	fast.Update(ctx)
	assert.InDelta(t, x-48, fast.X, 1e-9)
	assert.Equal(t, asset.Placeholder, fast.Image())

	v, err := ParseShipVariant("FAST")
	require.NoError(t, err)
	assert.Equal(t, ShipFast, v)
	_, err = ParseShipVariant("tank")
	assert.Error(t, err)
}

func TestPlayerHealthStaysInRange(t *testing.T) {
	p := testPlayer()
	p.Heal()
	assert.Equal(t, MaxHealth, p.Health)

	assert.False(t, p.Damage(0))
	assert.False(t, p.Damage(0))
	assert.True(t, p.Damage(0))
	assert.Equal(t, 0, p.Health)
	assert.True(t, p.Damage(0))
	assert.Equal(t, 0, p.Health)
}

func TestPlayerShieldBlocksDamage(t *testing.T) {
	p := testPlayer()
	p.Effects.Apply(effect.Shield, time.Second)

	assert.False(t, p.Damage(time.Second))
	assert.Equal(t, MaxHealth, p.Health)

	assert.False(t, p.Damage(time.Second+effect.BoostDuration))
	assert.Equal(t, MaxHealth-1, p.Health)
}

func TestPlayerShootCooldown(t *testing.T) {
	p := testPlayer()
	require.True(t, p.CanShoot(0))

	bullet := p.Shoot(0, asset.Image{})
	assert.InDelta(t, p.Bounds().Top(), bullet.Bounds().Bottom(), 1e-9)
	assert.Equal(t, p.X, bullet.X)

	assert.False(t, p.CanShoot(ShootCooldown-time.Millisecond))
	assert.True(t, p.CanShoot(ShootCooldown))
}

func TestPlayerAmmoBypassesCooldownOncePerTick(t *testing.T) {
	p := testPlayer()
	p.Effects.Apply(effect.Ammo, 0)

	p.Shoot(tick, asset.Image{})
	assert.False(t, p.CanShoot(tick), "same tick")
	assert.True(t, p.CanShoot(2*tick))
}

func TestAsteroidSpawnBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	img := asset.Image{Name: "rock", Width: 60, Height: 50}
	for range 50 {
		a := NewAsteroid(testScreen, img, rng)
		b := a.Bounds()
		assert.GreaterOrEqual(t, b.Top(), -100.0)
		assert.Less(t, b.Top(), -40.0)
		assert.GreaterOrEqual(t, b.Left(), 0.0)
		assert.Less(t, b.Left(), testScreen.Width-img.Width)
		assert.InDelta(t, 0.85*30, a.Radius, 1e-9)
		assert.GreaterOrEqual(t, a.VY, 120.0)
		assert.LessOrEqual(t, a.VY, 300.0)
	}
}

func TestAsteroidRecycledBelowScreen(t *testing.T) {
	a := NewAsteroid(testScreen, asset.Image{Width: 50, Height: 50}, rand.New(rand.NewSource(3)))
	a.VX = 0
	a.Y = testScreen.Height + 10 + 25 + 1

	a.Update(testCtx(tick))

	assert.False(t, a.IsDestroyed(), "recycled, not destroyed")
	assert.Less(t, a.Bounds().Top(), -40.0)
	assert.GreaterOrEqual(t, a.VY, 60.0)
	assert.LessOrEqual(t, a.VY, 420.0)
}

func TestAsteroidRotationDoesNotCatchUp(t *testing.T) {
	a := NewAsteroid(testScreen, asset.Image{Width: 50, Height: 50}, rand.New(rand.NewSource(3)))
	a.VX, a.VY = 0, 0
	a.Angle = 0
	a.RotationSpeed = -5

	a.Update(testCtx(200 * time.Millisecond))
	assert.Equal(t, 355.0, a.Angle)

	a.Update(testCtx(10 * time.Millisecond))
	assert.Equal(t, 355.0, a.Angle)
}

func TestZeroDeltaLeavesEntitiesUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	set := asset.Default(rng)

	p := NewPlayer(testScreen, ShipBalanced, set.Ship("balanced"))
	a := NewAsteroid(testScreen, set.RandomAsteroid(rng), rng)
	b := NewProjectile(400, 300, set.Bullet)
	f := NewSmallProjectile(400, 300, 270, set.Fragment)
	e := NewExplosion(10, 10, set.Explosion)
	pu := NewPowerup(testScreen, effect.Shield, set.Powerup("shield"), rng)

	before := []any{*p, *a, *b, *f, *e, *pu}

	ctx := testCtx(0)
	ctx.Input = Input{Left: true, Up: true, Shoot: true}
	p.Update(ctx)
	a.Update(ctx)
	b.Update(ctx)
	f.Update(ctx)
	e.Update(ctx)
	pu.Update(ctx)

	assert.Equal(t, before, []any{*p, *a, *b, *f, *e, *pu})
}

func TestProjectileLeavesTop(t *testing.T) {
	b := NewProjectile(100, 30, asset.Image{})
	b.Update(testCtx(tick))
	assert.False(t, b.IsDestroyed())
	b.Update(testCtx(100 * time.Millisecond))
	assert.True(t, b.IsDestroyed())
}

func TestBurstFliesUpward(t *testing.T) {
	frags := Burst(400, 300, asset.Image{})
	require.Len(t, frags, 3)

	assert.Less(t, frags[0].VX, 0.0)
	assert.InDelta(t, 0, frags[1].VX, 1e-9)
	assert.Greater(t, frags[2].VX, 0.0)
	for _, f := range frags {
		assert.Less(t, f.VY, 0.0)
	}
	assert.InDelta(t, -FragmentSpeed-FragmentUpwardBias, frags[1].VY, 1e-9)
}

func TestSmallProjectileLeavesSide(t *testing.T) {
	f := NewSmallProjectile(5, 300, 225, asset.Image{})
	f.Update(testCtx(100 * time.Millisecond))
	assert.True(t, f.IsDestroyed())
}

func TestExplosionPlaysOnce(t *testing.T) {
	frames := asset.Default(rand.New(rand.NewSource(1))).Explosion
	e := NewExplosion(0, 0, frames)

	e.Update(testCtx(ExplosionFrameDuration*asset.ExplosionFrameCount - time.Millisecond))
	assert.False(t, e.IsDestroyed())
	assert.Equal(t, asset.ExplosionFrameCount-1, e.Frame)

	e.Update(testCtx(time.Millisecond))
	assert.True(t, e.IsDestroyed())
}

func TestExplosionRepeatsLastFrame(t *testing.T) {
	last := asset.Image{Name: "last", Width: 10, Height: 10}
	e := NewExplosion(0, 0, []asset.Image{{Name: "first", Width: 10, Height: 10}, last})

	e.Update(testCtx(5 * ExplosionFrameDuration))
	assert.False(t, e.IsDestroyed(), "runs the full length")
	assert.Equal(t, last, e.Image())

	empty := NewExplosion(0, 0, nil)
	assert.Equal(t, asset.Placeholder, empty.Image())
	empty.Update(testCtx(time.Second))
	assert.True(t, empty.IsDestroyed())
}

func TestPowerupFallsOffBottom(t *testing.T) {
	pu := NewPowerup(testScreen, effect.Health, asset.Image{}, rand.New(rand.NewSource(1)))
	x := pu.X
	pu.Update(testCtx(200 * time.Millisecond))
	assert.Equal(t, x, pu.CollisionCircle().X, "float offset is cosmetic")
	assert.NotZero(t, pu.FloatOffset())

	pu.Update(testCtx(4 * time.Second))
	assert.True(t, pu.IsDestroyed())
}

func TestSpawnerAsteroidFloor(t *testing.T) {
	s := NewSpawner(testScreen, asset.Default(rand.New(rand.NewSource(1))), rand.New(rand.NewSource(2)))

	a, _ := s.Tick(time.Second, 0)
	assert.Nil(t, a, "interval not elapsed")

	a, _ = s.Tick(2*time.Second, 5)
	assert.NotNil(t, a)

	a, _ = s.Tick(3*time.Second, 5)
	assert.Nil(t, a, "timer was reset")

	a, _ = s.Tick(4*time.Second, 6)
	assert.Nil(t, a, "floor met")

	a, _ = s.Tick(4*time.Second, 5)
	assert.NotNil(t, a)
}

func TestSpawnerPowerupRoll(t *testing.T) {
	s := NewSpawner(testScreen, asset.Default(rand.New(rand.NewSource(1))), rand.New(rand.NewSource(2)))
	s.PowerupChance = 1

	_, p := s.Tick(3*time.Second, 10)
	require.NotNil(t, p)
	assert.Contains(t, effect.Kinds, p.Kind)
	assert.Less(t, p.Bounds().Top(), 0.0)

	_, p = s.Tick(5*time.Second, 10)
	assert.Nil(t, p)

	s.PowerupChance = 0
	_, p = s.Tick(6*time.Second, 10)
	assert.Nil(t, p)
	s.PowerupChance = 1
	_, p = s.Tick(8*time.Second, 10)
	assert.Nil(t, p, "failed roll still resets the timer")
}

func TestPruneDropsDestroyed(t *testing.T) {
	items := Burst(0, 0, asset.Image{})
	items[1].MarkDestroyed()

	kept := Prune(items)
	assert.Len(t, kept, 2)
	assert.Equal(t, 2, CountLive(kept))
	assert.Nil(t, items[2], "tail cleared")
}
