package physics

import (
	"math"

	"github.com/vovakirdan/bounce/internal/core"
)

const (
	// degenerateDist2 is the squared distance below which a contact point is
	// treated as coinciding with the circle center.
	degenerateDist2 = 1e-12

	// contactSlop widens the radius for the overlap test so that exact edge
	// contacts still register after rounding (0.1-0.03 lands on 0.07 but
	// 0.07-0.05 is slightly more than 0.02).
	contactSlop = 1e-9
)

// Circle is a moving circle restricted to the eight discretized directions.
type Circle struct {
	X, Y   float64 // Center
	Radius float64
	Dir    Direction
	Speed  float64 // Distance per step along each active axis
}

// Step advances the center by one step along Dir.
func (c *Circle) Step() {
	dx, dy := c.Dir.Delta()
	c.X += dx * c.Speed
	c.Y += dy * c.Speed
}

// Center returns the circle center as a point.
func (c *Circle) Center() core.Point {
	return core.Point{X: c.X, Y: c.Y}
}

// CollidePoint resolves overlap between the circle and the point (px, py).
//
// If the point lies within the radius (touching included), the center is
// pushed out to exactly one radius from the point along the point-to-center
// normal, and the dominant axis of that normal is flipped in Dir. A point
// at the center uses the +X normal. Returns false and leaves the circle
// untouched when there is no overlap.
func (c *Circle) CollidePoint(px, py float64) bool {
	dx := c.X - px
	dy := c.Y - py
	d2 := dx*dx + dy*dy
	r := c.Radius

	if reach := r + contactSlop; d2 > reach*reach {
		return false
	}

	if d2 < degenerateDist2 {
		dx, dy, d2 = 1, 0, 1
	}

	d := math.Sqrt(d2)
	nx := dx / d
	ny := dy / d

	c.X = px + nx*r
	c.Y = py + ny*r

	if math.Abs(nx) > math.Abs(ny) {
		c.Dir = c.Dir.FlipX()
	} else {
		c.Dir = c.Dir.FlipY()
	}
	return true
}

// CollideRect resolves overlap against an axis-aligned rectangle by
// reducing it to the rectangle's closest point.
func (c *Circle) CollideRect(r core.Rect) bool {
	p := r.ClosestPoint(c.X, c.Y)
	return c.CollidePoint(p.X, p.Y)
}

// CollideBounds keeps the circle inside the arena. Each edge is checked
// independently: an edge the circle reaches clamps the center to the edge
// offset by the radius, and if the circle was travelling toward that edge
// the matching axis is flipped. Several edges may fire in one call near
// corners. Returns whether any edge reversed the motion.
func (c *Circle) CollideBounds(b core.Bounds) bool {
	hit := false
	dx, dy := c.Dir.Delta()

	if c.X-c.Radius <= b.Left {
		c.X = b.Left + c.Radius
		if dx < 0 {
			c.Dir = c.Dir.FlipX()
			hit = true
		}
	}
	if c.X+c.Radius >= b.Right {
		c.X = b.Right - c.Radius
		if dx > 0 {
			c.Dir = c.Dir.FlipX()
			hit = true
		}
	}
	if c.Y-c.Radius <= b.Bottom {
		c.Y = b.Bottom + c.Radius
		if dy < 0 {
			c.Dir = c.Dir.FlipY()
			hit = true
		}
	}
	if c.Y+c.Radius >= b.Top {
		c.Y = b.Top - c.Radius
		if dy > 0 {
			c.Dir = c.Dir.FlipY()
			hit = true
		}
	}

	return hit
}
