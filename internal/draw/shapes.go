package draw

import (
	"hash/fnv"
	"math"
)

const rockVertices = 11

// DrawCircle draws a circle approximated by a polygon.
func (c *Canvas) DrawCircle(cx, cy, r float64, filled bool) {
	const segments = 16
	pts := c.BorrowPoints(segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawPolygon(pts, filled)
}

// Ship draws the player ship inside the given box, nose up.
// frame animates the exhaust; flip leans the ship to the left.
func (c *Canvas) Ship(x, y, w, h float64, flip bool, frame int) {
	lean := w * 0.12
	if flip {
		lean = -lean
	}
	body := h * 0.8

	pts := c.BorrowPoints(4)
	pts[0] = Point{X: x + w/2 + lean, Y: y}
	pts[1] = Point{X: x + w, Y: y + body}
	pts[2] = Point{X: x + w/2, Y: y + body*0.75}
	pts[3] = Point{X: x, Y: y + body}
	c.DrawPolygon(pts, true)

	flame := (h - body) * float64(frame%4+1) / 4
	c.DrawLine(Point{X: x + w/2, Y: y + body*0.75}, Point{X: x + w/2, Y: y + body + flame})
}

// Rock draws a jagged asteroid outline centered on (cx, cy).
// The outline is stable for a given seed and turns with angle (degrees).
func (c *Canvas) Rock(cx, cy, r, angle float64, seed string) {
	h := fnv.New32a()
	h.Write([]byte(seed))
	bits := h.Sum32()

	base := angle * math.Pi / 180
	pts := c.BorrowPoints(rockVertices)
	for i := range pts {
		jitter := 0.75 + 0.25*float64((bits>>(i*2))&3)/3
		a := base + 2*math.Pi*float64(i)/rockVertices
		pts[i] = Point{X: cx + r*jitter*math.Cos(a), Y: cy + r*jitter*math.Sin(a)}
	}
	c.DrawPolygon(pts, false)
}

// Diamond draws a filled diamond inside the given box.
func (c *Canvas) Diamond(x, y, w, h float64) {
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: x + w/2, Y: y}
	pts[1] = Point{X: x + w, Y: y + h/2}
	pts[2] = Point{X: x + w/2, Y: y + h}
	pts[3] = Point{X: x, Y: y + h/2}
	c.DrawPolygon(pts, true)
}

// Explosion draws rays around (cx, cy) that spread as frame approaches frames.
func (c *Canvas) Explosion(cx, cy, r float64, frame, frames int) {
	if frames <= 0 {
		return
	}
	const rays = 8
	p := float64(frame+1) / float64(frames)
	inner, outer := r*p*0.4, r*p
	for i := 0; i < rays; i++ {
		a := 2*math.Pi*float64(i)/rays + p
		dx, dy := math.Cos(a), math.Sin(a)
		c.DrawLine(Point{X: cx + dx*inner, Y: cy + dy*inner}, Point{X: cx + dx*outer, Y: cy + dy*outer})
	}
}
