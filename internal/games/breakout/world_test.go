package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/physics"
)

const eps = 1e-9

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestWorldEndToEnd(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{NewBrick(Destructible, 0, 0, 0.1)}
	w.Spawn(NewProjectile(0, 0.1, 0.02, physics.South, 0.03, core.ColorWhite))

	// The step alone lands exactly on the brick's top edge.
	next := w.Projectiles[0]
	next.Step()
	assert.InDelta(t, 0.0, next.X, eps)
	assert.InDelta(t, 0.07, next.Y, eps)

	events := w.Update(nil)

	assert.Empty(t, w.Projectiles, "projectile should be absorbed")
	require.Len(t, w.Bricks, 1)
	assert.Equal(t, 2, w.Bricks[0].Health)
	assert.True(t, w.Bricks[0].Active)
	assert.Equal(t, ColorCracked, w.Bricks[0].Color)
	assert.Equal(t, []core.EventKind{core.EventBrickHit}, eventKinds(events))
}

func TestDestructibleBrickWearsOut(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{NewBrick(Destructible, 0, 0, 0.1)}

	for _, want := range []int{2, 1, 0} {
		w.Spawn(NewProjectile(0, 0.1, 0.02, physics.South, 0.03, core.ColorWhite))
		w.Update(nil)
		require.Empty(t, w.Projectiles)
		assert.Equal(t, want, w.Bricks[0].Health)
	}
	assert.False(t, w.Bricks[0].Active)
	assert.Equal(t, 0, w.DestructibleRemaining())

	// Inactive bricks no longer collide.
	w.Spawn(NewProjectile(0, 0.1, 0.02, physics.South, 0.03, core.ColorWhite))
	events := w.Update(nil)
	require.Len(t, w.Projectiles, 1)
	assert.Equal(t, physics.South, w.Projectiles[0].Dir)
	assert.Empty(t, events)
	assert.Equal(t, 0, w.Bricks[0].Health)
}

func TestReflectiveBrickNeverChanges(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{NewBrick(Reflective, 0, 0, 0.1)}

	for range 10 {
		w.Projectiles = w.Projectiles[:0]
		w.Spawn(NewProjectile(0, 0.1, 0.02, physics.South, 0.03, core.ColorWhite))
		events := w.Update(nil)

		require.Len(t, w.Projectiles, 1, "reflective bricks never absorb")
		assert.Equal(t, physics.North, w.Projectiles[0].Dir)
		assert.Equal(t, []core.EventKind{core.EventBrickBounce}, eventKinds(events))
	}
	assert.Equal(t, MaxHealth, w.Bricks[0].Health)
	assert.True(t, w.Bricks[0].Active)
	assert.Equal(t, core.ColorGray, w.Bricks[0].Color)
	assert.Equal(t, 0, w.DestructibleRemaining())
	assert.Equal(t, 1, w.ActiveBricks())
}

// freeProjectiles builds n projectiles moving east in open space, each tagged
// by its red channel.
func freeProjectiles(n int) []Projectile {
	ps := make([]Projectile, n)
	for i := range ps {
		ps[i] = NewProjectile(-0.5, -0.5+float64(i)*0.1, 0.02, physics.East, 0.01,
			core.RGB{R: float64(i) / 10})
	}
	return ps
}

func TestSwapAndPopRemovesExactlyOne(t *testing.T) {
	const n = 5

	for k := range n {
		w := NewWorld(core.DefaultBounds())
		w.Bricks = []Brick{NewBrick(Destructible, 0.5, 0.5, 0.1)}
		w.Projectiles = freeProjectiles(n)
		// Projectile k sits right above the brick.
		w.Projectiles[k].X, w.Projectiles[k].Y = 0.5, 0.6
		w.Projectiles[k].Dir = physics.South
		w.Projectiles[k].Speed = 0.03
		consumed := w.Projectiles[k].Color

		start := make(map[core.RGB]float64, n)
		for _, p := range w.Projectiles {
			start[p.Color] = p.X
		}

		w.Update(nil)

		require.Len(t, w.Projectiles, n-1, "k=%d", k)
		seen := make(map[core.RGB]bool)
		for _, p := range w.Projectiles {
			assert.NotEqual(t, consumed, p.Color, "consumed projectile still present (k=%d)", k)
			assert.False(t, seen[p.Color], "projectile duplicated (k=%d)", k)
			seen[p.Color] = true
			assert.InDelta(t, start[p.Color]+0.01, p.X, eps, "each survivor steps exactly once (k=%d)", k)
		}
		assert.Equal(t, 2, w.Bricks[0].Health)
	}
}

func TestSwapAndPopReprocessesSwappedProjectile(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{
		NewBrick(Destructible, -0.5, 0.5, 0.1),
		NewBrick(Destructible, 0.5, 0.5, 0.1),
	}
	w.Projectiles = freeProjectiles(4)

	// First and last both hit a brick in the same frame; the last one is
	// swapped into slot 0 and must still be processed.
	w.Projectiles[0].X, w.Projectiles[0].Y, w.Projectiles[0].Dir, w.Projectiles[0].Speed = -0.5, 0.6, physics.South, 0.03
	w.Projectiles[3].X, w.Projectiles[3].Y, w.Projectiles[3].Dir, w.Projectiles[3].Speed = 0.5, 0.6, physics.South, 0.03

	events := w.Update(nil)

	require.Len(t, w.Projectiles, 2)
	for _, p := range w.Projectiles {
		assert.InDelta(t, -0.49, p.X, eps)
	}
	assert.Equal(t, 2, w.Bricks[0].Health)
	assert.Equal(t, 2, w.Bricks[1].Health)
	assert.Equal(t, []core.EventKind{core.EventBrickHit, core.EventBrickHit}, eventKinds(events))
}

func TestFirstOverlappingBrickWins(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{
		NewBrick(Destructible, -0.03, 0, 0.05),
		NewBrick(Destructible, 0.03, 0, 0.05),
	}
	w.Spawn(NewProjectile(0, 0.06, 0.02, physics.South, 0.03, core.ColorWhite))

	w.Update(nil)

	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 2, w.Bricks[0].Health)
	assert.Equal(t, 3, w.Bricks[1].Health, "only the first match in order is damaged")
}

func TestReflectiveBounceContinuesScan(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{
		NewBrick(Reflective, -0.03, 0, 0.05),
		NewBrick(Destructible, 0.03, 0, 0.05),
	}
	w.Spawn(NewProjectile(0, 0.06, 0.02, physics.South, 0.03, core.ColorWhite))

	events := w.Update(nil)

	assert.Empty(t, w.Projectiles, "destructible brick later in order still absorbs")
	assert.Equal(t, MaxHealth, w.Bricks[0].Health)
	assert.Equal(t, 2, w.Bricks[1].Health)
	assert.Equal(t, []core.EventKind{core.EventBrickBounce, core.EventBrickHit}, eventKinds(events))
}

func TestReflectiveSeamReflects(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{
		NewBrick(Reflective, -0.03, 0.3, 0.05),
		NewBrick(Reflective, 0.03, 0.3, 0.05),
	}
	w.Spawn(NewProjectile(0, 0.11, 0.02, physics.North, 0.05, core.ColorWhite))
	shieldBottom := 0.3 - 0.025

	var bounces int
	for range 10 {
		for _, e := range w.Update(nil) {
			if e.Kind == core.EventBrickBounce {
				bounces++
			}
		}
		require.Len(t, w.Projectiles, 1)
		assert.Less(t, w.Projectiles[0].Y, shieldBottom, "projectile passed the shield")
	}
	assert.Equal(t, physics.South, w.Projectiles[0].Dir)
	assert.Equal(t, 2, bounces, "both bricks report the contact")
}

func TestPaddleBounce(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Paddles = []Paddle{{X: 0, Y: -0.5, W: 0.3, H: 0.05}}
	w.Spawn(NewProjectile(0.1, -0.44, 0.02, physics.SouthWest, 0.03, core.ColorWhite))

	events := w.Update(nil)

	require.Len(t, w.Projectiles, 1)
	p := w.Projectiles[0]
	assert.Equal(t, physics.NorthWest, p.Dir)
	assert.InDelta(t, -0.475+0.02, p.Y, eps)
	assert.Equal(t, []core.EventKind{core.EventPaddleBounce}, eventKinds(events))
}

func TestPaddleFirstHitOnly(t *testing.T) {
	stacked := func(firstOnly bool) (*World, []core.Event) {
		w := NewWorld(core.DefaultBounds())
		w.PaddleFirstHitOnly = firstOnly
		w.Paddles = []Paddle{
			{X: 0, Y: -0.5, W: 0.3, H: 0.05},
			{X: 0, Y: -0.5, W: 0.3, H: 0.05},
		}
		w.Spawn(NewProjectile(0, -0.44, 0.02, physics.South, 0.03, core.ColorWhite))
		return w, w.Update(nil)
	}

	w, events := stacked(false)
	assert.Len(t, events, 2, "every overlapping paddle is tested")
	assert.Equal(t, physics.South, w.Projectiles[0].Dir, "two bounces cancel out")

	w, events = stacked(true)
	assert.Len(t, events, 1)
	assert.Equal(t, physics.North, w.Projectiles[0].Dir)
}

func TestWallBounceInWorld(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Spawn(NewProjectile(0.97, 0, 0.02, physics.NorthEast, 0.05, core.ColorWhite))

	events := w.Update(nil)

	require.Len(t, w.Projectiles, 1)
	p := w.Projectiles[0]
	assert.InDelta(t, 0.98, p.X, eps)
	assert.InDelta(t, 0.05, p.Y, eps)
	assert.Equal(t, physics.NorthWest, p.Dir)
	assert.Equal(t, []core.EventKind{core.EventWallBounce}, eventKinds(events))
}

func TestUpdateAppendsToEvents(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{NewBrick(Destructible, 0, 0, 0.1)}
	w.Spawn(NewProjectile(0, 0.1, 0.02, physics.South, 0.03, core.ColorWhite))

	prior := []core.Event{{Kind: core.EventSpawn}}
	events := w.Update(prior)
	assert.Equal(t, []core.EventKind{core.EventSpawn, core.EventBrickHit}, eventKinds(events))
}

func TestWorldSnapshotIsACopy(t *testing.T) {
	w := NewWorld(core.DefaultBounds())
	w.Bricks = []Brick{NewBrick(Destructible, 0, 0, 0.1)}
	w.Paddles = []Paddle{{X: 0, Y: -0.9, W: 0.3, H: 0.05}}
	w.Spawn(NewProjectile(0, 0.5, 0.02, physics.North, 0.03, core.ColorWhite))

	snap := w.Snapshot()
	w.Bricks[0].TakeHit()
	w.Projectiles[0].X = 0.7
	w.Paddles[0].X = 0.4

	assert.Equal(t, MaxHealth, snap.Bricks[0].Health)
	assert.Equal(t, 0.0, snap.Projectiles[0].X)
	assert.Equal(t, 0.0, snap.Paddles[0].X)
	assert.Equal(t, w.Bricks[0].Rect().HW, snap.Bricks[0].Rect().HW)
}
