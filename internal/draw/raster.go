package draw

import (
	"math"
	"slices"
)

// DrawLine rasterizes a logical line segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x, y := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx, dy := abs(x2-x), -abs(y2-y)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}

	e := dx + dy
	for {
		c.plot(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawPolygon outlines a closed polygon given in logical coordinates and
// optionally fills it.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills the interior with the even-odd rule, sampling each pixel
// row at its center.
func (c *Canvas) fillPolygon(points []Point) {
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		top = min(top, p.Y*c.sy)
		bottom = max(bottom, p.Y*c.sy)
	}

	first := max(int(math.Floor(top)), 0)
	last := min(int(math.Ceil(bottom)), c.rows*2-1)
	for py := first; py <= last; py++ {
		scan := float64(py) + 0.5
		c.xs = c.xs[:0]
		prev := points[len(points)-1]
		for _, p := range points {
			y0, y1 := prev.Y*c.sy, p.Y*c.sy
			if (y0 <= scan) != (y1 <= scan) {
				t := (scan - y0) / (y1 - y0)
				c.xs = append(c.xs, (prev.X+t*(p.X-prev.X))*c.sx)
			}
			prev = p
		}
		slices.Sort(c.xs)

		for i := 0; i+1 < len(c.xs); i += 2 {
			for px := int(math.Ceil(c.xs[i])); px <= int(math.Floor(c.xs[i+1])); px++ {
				c.plot(px, py)
			}
		}
	}
}
