package breakout

import (
	"math"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/physics"
)

// BrickView is a read-only copy of a brick for renderers.
type BrickView struct {
	X, Y     float64
	Size     float64
	Health   int
	Category Category
	Active   bool
	Color    core.RGB
}

// Rect returns the brick rectangle.
func (b BrickView) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// ProjectileView is a read-only copy of a projectile for renderers.
type ProjectileView struct {
	X, Y   float64
	Radius float64
	Dir    physics.Direction
	Color  core.RGB
}

// PaddleView is a read-only copy of a paddle for renderers.
type PaddleView struct {
	X, Y  float64
	W, H  float64
	Color core.RGB
}

// Rect returns the paddle rectangle.
func (p PaddleView) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// WorldSnapshot is a copy of every entity, safe to hold across updates.
type WorldSnapshot struct {
	Bounds      core.Bounds
	Bricks      []BrickView
	Projectiles []ProjectileView
	Paddles     []PaddleView
}

// Snapshot copies the world's entities.
func (w *World) Snapshot() WorldSnapshot {
	snap := WorldSnapshot{
		Bounds:      w.Bounds,
		Bricks:      make([]BrickView, len(w.Bricks)),
		Projectiles: make([]ProjectileView, len(w.Projectiles)),
		Paddles:     make([]PaddleView, len(w.Paddles)),
	}
	for i, b := range w.Bricks {
		snap.Bricks[i] = BrickView{
			X: b.X, Y: b.Y, Size: b.Size,
			Health: b.Health, Category: b.Category, Active: b.Active, Color: b.Color,
		}
	}
	for i, p := range w.Projectiles {
		snap.Projectiles[i] = ProjectileView{X: p.X, Y: p.Y, Radius: p.Radius, Dir: p.Dir, Color: p.Color}
	}
	for i, p := range w.Paddles {
		snap.Paddles[i] = PaddleView{X: p.X, Y: p.Y, W: p.W, H: p.H, Color: p.Color}
	}
	return snap
}

// Snapshot contains the complete game state for determinism checks and export.
type Snapshot struct {
	Tick     uint64
	Score    int
	State    string
	Level    string
	World    WorldSnapshot
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:    g.score,
		State:    g.state,
		Level:    g.level.ID,
		World:    g.world.Snapshot(),
		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = hashString(h, snap.State)
	h = hashString(h, snap.Level)

	w := &snap.World
	h = h*31 + uint64(len(w.Bricks))
	for _, b := range w.Bricks {
		h = hashFloat(h, b.X)
		h = hashFloat(h, b.Y)
		h = h*31 + uint64(b.Health) //#nosec G115 -- hash computation
		if b.Active {
			h = h*31 + 1
		}
	}

	h = h*31 + uint64(len(w.Projectiles))
	for _, p := range w.Projectiles {
		h = hashFloat(h, p.X)
		h = hashFloat(h, p.Y)
		h = h*31 + uint64(p.Dir) //#nosec G115 -- hash computation
		h = hashFloat(h, p.Color.R)
	}

	for _, p := range w.Paddles {
		h = hashFloat(h, p.X)
		h = hashFloat(h, p.W)
	}

	h = h*31 + snap.RNGState

	return h
}

func hashFloat(h uint64, v float64) uint64 {
	return h*31 + math.Float64bits(v)
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
