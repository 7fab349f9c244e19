// Package core provides fundamental types and utilities for the bounce arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle described by its center and half extents.
// Rects are derived on demand from bricks and paddles and never stored.
type Rect struct {
	CX, CY float64 // Center
	HW, HH float64 // Half width, half height
}

// NewRect creates a rectangle centered at (cx, cy) with full width w and height h.
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.CX - r.HW }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.CX + r.HW }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.CY - r.HH }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.CY + r.HH }

// ClosestPoint returns the point on or inside the rectangle nearest to (x, y).
// Each axis is clamped independently, so a point inside the rectangle maps to itself.
func (r Rect) ClosestPoint(x, y float64) Point {
	return Point{
		X: ClampF(x, r.Left(), r.Right()),
		Y: ClampF(y, r.Bottom(), r.Top()),
	}
}

// Bounds is the playable arena. Y grows upward, so Bottom < Top.
type Bounds struct {
	Left   float64 `yaml:"left" toml:"left"`
	Right  float64 `yaml:"right" toml:"right"`
	Top    float64 `yaml:"top" toml:"top"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
}

// DefaultBounds returns the normalized [-1, 1] x [-1, 1] arena.
func DefaultBounds() Bounds {
	return Bounds{Left: -1, Right: 1, Top: 1, Bottom: -1}
}

// Valid reports whether the bounds describe a non-empty rectangle.
func (b Bounds) Valid() bool {
	return b.Left < b.Right && b.Bottom < b.Top
}

// Width returns the horizontal extent of the arena.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the arena.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// ClosestPoint returns the point inside the arena nearest to (x, y).
func (b Bounds) ClosestPoint(x, y float64) Point {
	return Point{
		X: ClampF(x, b.Left, b.Right),
		Y: ClampF(y, b.Bottom, b.Top),
	}
}

// CellRect is an integer rectangle in screen cells, top-left anchored.
type CellRect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewCellRect creates a new cell rectangle with the given position and dimensions.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
