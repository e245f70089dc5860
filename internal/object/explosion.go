package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/asset"
)

// ExplosionFrameDuration is how long each explosion frame is shown.
const ExplosionFrameDuration = 50 * time.Millisecond

// Explosion is a one-shot animation fixed at the spot where something was destroyed.
type Explosion struct {
	X, Y   float64
	Frames []asset.Image
	Frame  int

	frameCount int
	timer      time.Duration
	destroyed  bool
}

// NewExplosion starts an explosion centered on (x, y).
// It always plays the full animation length; missing frames repeat the last available one.
func NewExplosion(x, y float64, frames []asset.Image) *Explosion {
	return &Explosion{
		X:          x,
		Y:          y,
		Frames:     frames,
		frameCount: max(len(frames), asset.ExplosionFrameCount),
	}
}

// Update advances the animation, catching up on long frames, and dies after the last frame.
func (e *Explosion) Update(ctx UpdateContext) {
	if e.destroyed {
		return
	}
	e.timer += ctx.Delta
	for e.timer >= ExplosionFrameDuration {
		e.timer -= ExplosionFrameDuration
		e.Frame++
		if e.Frame >= e.frameCount {
			e.Frame = e.frameCount - 1
			e.destroyed = true
			return
		}
	}
}

// Image returns the frame to draw now.
func (e *Explosion) Image() asset.Image {
	if len(e.Frames) == 0 {
		return asset.Placeholder
	}
	return e.Frames[min(e.Frame, len(e.Frames)-1)]
}

// Bounds returns the current frame's rectangle.
func (e *Explosion) Bounds() Rect {
	img := e.Image()
	return RectAround(e.X, e.Y, img.Width, img.Height)
}

// MarkDestroyed ends the animation early.
func (e *Explosion) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true once the animation has finished.
func (e *Explosion) IsDestroyed() bool {
	return e.destroyed
}
