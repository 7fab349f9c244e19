package breakout

import "github.com/vovakirdan/bounce/internal/core"

// Category decides how a brick responds to a projectile.
type Category int

const (
	Destructible Category = iota // Absorbs the projectile and loses health
	Reflective                   // Bounces the projectile, never damaged
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Destructible:
		return "destructible"
	case Reflective:
		return "reflective"
	default:
		return "unknown"
	}
}

// MaxHealth is the health of a freshly placed brick.
const MaxHealth = 3

// Health tier colors.
var (
	ColorHealthy = core.RGB{R: 0.2, G: 1.0, B: 0.6}  // 3+
	ColorCracked = core.RGB{R: 1.0, G: 0.6, B: 0.0}  // 2
	ColorBroken  = core.RGB{R: 0.5, G: 0.25, B: 0.0} // 1
)

// Brick is a square obstacle centered at (X, Y).
type Brick struct {
	X, Y     float64
	Size     float64 // Side length
	Health   int
	Category Category
	Active   bool
	Color    core.RGB
}

// NewBrick creates an active brick at full health.
func NewBrick(cat Category, x, y, size float64) Brick {
	return NewBrickWithHealth(cat, x, y, size, MaxHealth)
}

// NewBrickWithHealth creates an active brick with the given starting health.
func NewBrickWithHealth(cat Category, x, y, size float64, health int) Brick {
	return Brick{
		X:        x,
		Y:        y,
		Size:     size,
		Health:   health,
		Category: cat,
		Active:   health > 0,
		Color:    BrickColor(cat, health),
	}
}

// Rect returns the collision rectangle.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// TakeHit applies one hit. Only active destructible bricks are affected.
// Returns true when the hit deactivated the brick.
func (b *Brick) TakeHit() bool {
	if !b.Active || b.Category != Destructible {
		return false
	}
	b.Health--
	if b.Health <= 0 {
		b.Health = 0
		b.Active = false
	}
	b.Color = BrickColor(b.Category, b.Health)
	return !b.Active
}

// BrickColor maps a brick's category and health to its display color.
func BrickColor(cat Category, health int) core.RGB {
	if cat == Reflective {
		return core.ColorGray
	}
	switch {
	case health >= 3:
		return ColorHealthy
	case health == 2:
		return ColorCracked
	case health == 1:
		return ColorBroken
	default:
		return core.ColorBlack
	}
}
