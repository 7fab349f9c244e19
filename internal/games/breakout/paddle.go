package breakout

import "github.com/vovakirdan/bounce/internal/core"

// Paddle is a player-controlled rectangle centered at (X, Y).
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Distance per tick while a move key is held
	Color core.RGB
}

// Rect returns the collision rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Top returns the y-coordinate of the paddle's upper edge.
func (p *Paddle) Top() float64 {
	return p.Y + p.H/2
}

// Move translates the paddle horizontally by dx, keeping it inside the arena.
// A paddle wider than the arena is centered.
func (p *Paddle) Move(dx float64, b core.Bounds) {
	hw := p.W / 2
	minX := b.Left + hw
	maxX := b.Right - hw
	if minX > maxX {
		p.X = (b.Left + b.Right) / 2
		return
	}
	p.X = core.ClampF(p.X+dx, minX, maxX)
}

// Resize changes the width around the current center and re-clamps.
func (p *Paddle) Resize(w float64, b core.Bounds) {
	p.W = w
	p.Move(0, b)
}
