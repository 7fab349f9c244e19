package breakout

import (
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/physics"
)

// Projectile is a colored moving circle.
type Projectile struct {
	physics.Circle
	Color core.RGB
}

// NewProjectile creates a projectile at (x, y).
func NewProjectile(x, y, radius float64, dir physics.Direction, speed float64, color core.RGB) Projectile {
	return Projectile{
		Circle: physics.Circle{X: x, Y: y, Radius: radius, Dir: dir, Speed: speed},
		Color:  color,
	}
}
