package asset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSizes(t *testing.T) {
	s := Default(rand.New(rand.NewSource(3)))

	names := map[string]bool{}
	for _, a := range s.Asteroids {
		assert.GreaterOrEqual(t, a.Width, 40.0)
		assert.LessOrEqual(t, a.Width, 70.0)
		assert.GreaterOrEqual(t, a.Height, 40.0)
		assert.LessOrEqual(t, a.Height, 70.0)
		names[a.Name] = true
	}
	assert.Len(t, names, len(s.Asteroids), "each variant has its own name")

	assert.Len(t, s.Explosion, ExplosionFrameCount)
	assert.Equal(t, Image{Name: "bullet", Width: 15, Height: 35}, s.Bullet)
	assert.Len(t, s.Ship("fast"), 4)
	assert.Equal(t, 30.0, s.Powerup("shield").Width)
}

func TestLookupsFallBack(t *testing.T) {
	var s Set
	assert.Equal(t, Placeholder, s.Powerup("shield"))
	assert.Equal(t, []Image{Placeholder}, s.Ship("balanced"))
	assert.Equal(t, Placeholder, s.RandomAsteroid(rand.New(rand.NewSource(1))))
	assert.True(t, Image{}.IsZero())
	assert.False(t, Placeholder.IsZero())
}

func TestWithSoundsCopies(t *testing.T) {
	base := Default(rand.New(rand.NewSource(1)))
	withSounds := base.WithSounds("theme.mp3", "")
	assert.Equal(t, "theme.mp3", withSounds.Music)
	assert.Empty(t, withSounds.Boom)
	assert.Empty(t, base.Music, "original set is unchanged")
	assert.Equal(t, base.Asteroids, withSounds.Asteroids)
}
