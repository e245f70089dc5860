// Package physics provides collision detection and distance utilities.
package physics

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles count as a hit.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) <= minDist*minDist
}

// CircleRectOverlap checks if a circle intersects an axis-aligned rectangle
// given by its top-left corner and size.
func CircleRectOverlap(cx, cy, r, left, top, width, height float64) bool {
	nearestX := clamp(cx, left, left+width)
	nearestY := clamp(cy, top, top+height)
	return DistanceSquared(cx, cy, nearestX, nearestY) <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
