package breakout

import (
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/physics"
)

// World owns every entity in the arena. Only the projectile slice changes
// length during Update; bricks and paddles are fixed after setup.
type World struct {
	Bounds      core.Bounds
	Projectiles []Projectile
	Bricks      []Brick
	Paddles     []Paddle

	// PaddleFirstHitOnly stops paddle testing after the first paddle a
	// projectile bounces off in a frame.
	PaddleFirstHitOnly bool
}

// NewWorld creates an empty world inside the given bounds.
func NewWorld(bounds core.Bounds) *World {
	return &World{Bounds: bounds}
}

// Spawn adds a projectile to the world.
func (w *World) Spawn(p Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// Update advances every projectile by one step and resolves collisions.
//
// Each projectile moves, then is tested against active bricks in order. The
// first destructible brick it overlaps takes a hit and the projectile is
// removed by swapping in the last projectile, which is then processed at the
// same index. Reflective bricks bounce the projectile and the scan goes on,
// but each axis flips at most once per frame so a seam between two
// reflective bricks still reflects.
// A projectile that survives the bricks is tested against paddles and then
// the arena walls.
//
// The returned events are appended to events in the order they happened.
func (w *World) Update(events []core.Event) []core.Event {
	for i := 0; i < len(w.Projectiles); {
		p := &w.Projectiles[i]
		p.Step()

		var consumed bool
		if consumed, events = w.collideBricks(p, events); consumed {
			last := len(w.Projectiles) - 1
			w.Projectiles[i] = w.Projectiles[last]
			w.Projectiles = w.Projectiles[:last]
			continue
		}

		events = w.collidePaddles(p, events)

		if p.CollideBounds(w.Bounds) {
			events = append(events, core.Event{Kind: core.EventWallBounce, X: p.X, Y: p.Y})
		}
		i++
	}
	return events
}

// collideBricks tests p against every active brick. Returns true if a
// destructible brick absorbed the projectile.
func (w *World) collideBricks(p *Projectile, events []core.Event) (bool, []core.Event) {
	var flippedX, flippedY bool
	for j := range w.Bricks {
		b := &w.Bricks[j]
		if !b.Active {
			continue
		}
		before := p.Dir
		if !p.CollideRect(b.Rect()) {
			continue
		}
		if b.Category != Destructible {
			p.Dir = limitFlips(before, p.Dir, &flippedX, &flippedY)
			events = append(events, core.Event{Kind: core.EventBrickBounce, X: b.X, Y: b.Y})
			continue
		}
		events = append(events, core.Event{Kind: core.EventBrickHit, X: b.X, Y: b.Y})
		if b.TakeHit() {
			events = append(events, core.Event{Kind: core.EventBrickDestroyed, X: b.X, Y: b.Y})
		}
		return true, events
	}
	return false, events
}

// limitFlips undoes a flip on an axis that already flipped this frame.
func limitFlips(before, after physics.Direction, flippedX, flippedY *bool) physics.Direction {
	bx, by := before.Delta()
	ax, ay := after.Delta()
	if bx != ax {
		if *flippedX {
			after = after.FlipX()
		}
		*flippedX = true
	}
	if by != ay {
		if *flippedY {
			after = after.FlipY()
		}
		*flippedY = true
	}
	return after
}

func (w *World) collidePaddles(p *Projectile, events []core.Event) []core.Event {
	for j := range w.Paddles {
		pad := &w.Paddles[j]
		if !p.CollideRect(pad.Rect()) {
			continue
		}
		events = append(events, core.Event{Kind: core.EventPaddleBounce, X: p.X, Y: p.Y})
		if w.PaddleFirstHitOnly {
			break
		}
	}
	return events
}

// ActiveBricks returns the number of bricks still in play.
func (w *World) ActiveBricks() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Active {
			n++
		}
	}
	return n
}

// DestructibleRemaining returns the number of active destructible bricks.
// The level is cleared when it reaches zero.
func (w *World) DestructibleRemaining() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Active && w.Bricks[i].Category == Destructible {
			n++
		}
	}
	return n
}
