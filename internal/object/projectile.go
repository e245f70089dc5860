package object

import (
	"math"

	"github.com/tomz197/spaceshooter/internal/asset"
)

// Projectile speeds in pixels per second.
const (
	ProjectileSpeed     = 600.0 // Straight up
	FragmentSpeed       = 480.0
	FragmentUpwardBias  = 120.0
	defaultBulletWidth  = 15.0
	defaultBulletHeight = 35.0
	defaultFragmentSize = 8.0
)

// FragmentAngles are the launch angles in degrees of a rocket burst: up-left, up, up-right.
var FragmentAngles = [3]float64{225, 270, 315}

// Projectile is a bullet fired by the player.
type Projectile struct {
	X, Y      float64 // Center
	VY        float64
	Image     asset.Image
	destroyed bool
}

// NewProjectile creates a bullet centered on x whose bottom edge sits at bottom.
func NewProjectile(x, bottom float64, img asset.Image) *Projectile {
	if img.IsZero() {
		img = asset.Image{Name: "bullet", Width: defaultBulletWidth, Height: defaultBulletHeight}
	}
	return &Projectile{
		X:     x,
		Y:     bottom - img.Height/2,
		VY:    -ProjectileSpeed,
		Image: img,
	}
}

// Update moves the bullet up; it dies once fully above the screen.
func (p *Projectile) Update(ctx UpdateContext) {
	if p.destroyed {
		return
	}
	p.Y += p.VY * ctx.Delta.Seconds()
	if p.Bounds().Bottom() < 0 {
		p.destroyed = true
	}
}

// Bounds returns the bullet's rectangle, used for asteroid collisions.
func (p *Projectile) Bounds() Rect {
	return RectAround(p.X, p.Y, p.Image.Width, p.Image.Height)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// SmallProjectile is a rocket-boost fragment.
type SmallProjectile struct {
	X, Y      float64
	VX, VY    float64
	Image     asset.Image
	destroyed bool
}

// NewSmallProjectile launches a fragment from (x, y) at angleDeg, measured clockwise
// from +x in screen space, so 270 points straight up.
func NewSmallProjectile(x, y, angleDeg float64, img asset.Image) *SmallProjectile {
	if img.IsZero() {
		img = asset.Image{Name: "fragment", Width: defaultFragmentSize, Height: defaultFragmentSize}
	}
	rad := angleDeg * math.Pi / 180
	return &SmallProjectile{
		X:     x,
		Y:     y,
		VX:    math.Cos(rad) * FragmentSpeed,
		VY:    math.Sin(rad)*FragmentSpeed - FragmentUpwardBias,
		Image: img,
	}
}

// Burst returns the three fragments a rocket kill emits at (x, y).
func Burst(x, y float64, img asset.Image) []*SmallProjectile {
	out := make([]*SmallProjectile, 0, len(FragmentAngles))
	for _, a := range FragmentAngles {
		out = append(out, NewSmallProjectile(x, y, a, img))
	}
	return out
}

// Update moves the fragment; it dies once it leaves any edge.
func (s *SmallProjectile) Update(ctx UpdateContext) {
	if s.destroyed {
		return
	}
	dt := ctx.Delta.Seconds()
	s.X += s.VX * dt
	s.Y += s.VY * dt

	b := s.Bounds()
	if b.Bottom() < 0 || b.Top() > ctx.Screen.Height || b.Right() < 0 || b.Left() > ctx.Screen.Width {
		s.destroyed = true
	}
}

// Bounds returns the fragment's rectangle.
func (s *SmallProjectile) Bounds() Rect {
	return RectAround(s.X, s.Y, s.Image.Width, s.Image.Height)
}

// MarkDestroyed marks the fragment for removal.
func (s *SmallProjectile) MarkDestroyed() {
	s.destroyed = true
}

// IsDestroyed returns true if the fragment is marked for destruction.
func (s *SmallProjectile) IsDestroyed() bool {
	return s.destroyed
}
