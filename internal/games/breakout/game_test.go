package breakout

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultBounceConfig(), Options{Logger: log.New(io.Discard)})
	g.Reset(testRuntime(seed))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Define a sequence of inputs
	// Launch every 20 ticks, alternate left/right in between
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputSequence[i].Set(core.ActionSpawn)
		}
		if i%50 < 25 {
			inputSequence[i].Set(core.ActionRight)
		} else {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func(seed int64) Snapshot {
		g := newTestGame(seed)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score == 0 {
		t.Error("expected some bricks to be hit during the run")
	}

	snap3 := run(999)
	if snap3.RNGState == snap1.RNGState {
		t.Error("different seeds should produce different projectile colors")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	g.Step(frame(core.ActionSpawn))
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			g.Step(frame(core.ActionRight))
		} else {
			g.Step(frame())
		}
	}
	if g.tickCount == 0 || g.score == 0 {
		t.Fatal("setup: game should have advanced and scored")
	}

	// Reset should clear state
	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.world.Projectiles) != 0 {
		t.Errorf("Reset should clear projectiles, got %d", len(g.world.Projectiles))
	}
	if g.world.Paddles[0].X != 0 {
		t.Errorf("Reset should re-center the paddle, got %v", g.world.Paddles[0].X)
	}
}

func TestSpawnIsEdgeTriggered(t *testing.T) {
	g := newTestGame(1)

	held := frame(core.ActionSpawn)
	for range 10 {
		g.Step(held)
	}
	if n := len(g.world.Projectiles); n != 1 {
		t.Fatalf("holding spawn for 10 ticks launched %d projectiles, expected 1", n)
	}

	g.Step(frame())
	res := g.Step(held)
	if n := len(g.world.Projectiles); n != 2 {
		t.Errorf("second press launched a total of %d projectiles, expected 2", n)
	}

	found := false
	for _, e := range res.Events {
		if e.Kind == core.EventSpawn {
			found = true
		}
	}
	if !found {
		t.Error("spawn should be reported as an event")
	}
}

func TestSpawnPosition(t *testing.T) {
	g := newTestGame(7)
	g.Step(frame(core.ActionSpawn))

	if len(g.world.Projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(g.world.Projectiles))
	}
	p := g.world.Projectiles[0]
	pad := g.world.Paddles[0]

	// Spawned above the paddle, then stepped once upward.
	wantY := pad.Top() + 0.02 + 0.01 + 0.05
	if math.Abs(p.X-pad.X) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("projectile at (%v, %v), expected (%v, %v)", p.X, p.Y, pad.X, wantY)
	}
	if p.Radius != 0.02 {
		t.Errorf("radius = %v, expected 0.02", p.Radius)
	}
	if p.Color.IsZero() {
		t.Error("projectile should get a random color")
	}
}

func TestMaxActiveProjectiles(t *testing.T) {
	cfg := config.DefaultBounceConfig()
	cfg.Projectile.MaxActive = 2
	g := NewWithConfig(cfg, Options{Logger: log.New(io.Discard)})
	g.Reset(testRuntime(3))

	for range 5 {
		g.Step(frame(core.ActionSpawn))
		g.Step(frame())
	}
	if n := len(g.world.Projectiles); n != 2 {
		t.Errorf("max_active=2 allowed %d projectiles", n)
	}
}

func TestPaddleMovement(t *testing.T) {
	cfg := config.DefaultBounceConfig()
	cfg.Paddles = append(cfg.Paddles, config.PaddleConfig{X: 0, Y: -0.7, Width: 0.3, Height: 0.05, Speed: 0.05})
	g := NewWithConfig(cfg, Options{Logger: log.New(io.Discard)})
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionLeft, core.ActionAltRight))
	if math.Abs(g.world.Paddles[0].X-(-0.03)) > 1e-9 {
		t.Errorf("paddle 1 X = %v, expected -0.03", g.world.Paddles[0].X)
	}
	if math.Abs(g.world.Paddles[1].X-0.05) > 1e-9 {
		t.Errorf("paddle 2 X = %v, expected 0.05", g.world.Paddles[1].X)
	}
	if g.world.Paddles[1].Color != core.ColorWhite {
		t.Errorf("paddle without color should default to white, got %v", g.world.Paddles[1].Color)
	}

	// Move far right; paddle must stay inside the arena
	for range 200 {
		g.Step(frame(core.ActionRight))
	}
	p := g.world.Paddles[0]
	if p.X+p.W/2 > g.world.Bounds.Right+1e-9 {
		t.Errorf("paddle right edge %v past arena edge", p.X+p.W/2)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionSpawn))

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused || g.state != StatePaused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot().Hash()
	for range 10 {
		g.Step(frame(core.ActionRight, core.ActionSpawn))
	}
	if g.Snapshot().Hash() != before {
		t.Error("paused game should not change")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestLevelClearedAndRestart(t *testing.T) {
	g := newTestGame(5)
	g.world.Bricks = []Brick{NewBrickWithHealth(Destructible, 0, 0.5, 0.05, 1)}

	g.Step(frame(core.ActionSpawn))
	for range 100 {
		if g.Step(frame()).State.GameOver {
			break
		}
	}
	if g.state != StateCleared {
		t.Fatalf("state = %s, expected cleared", g.state)
	}
	if g.score != 60 {
		t.Errorf("score = %d, expected 60 (hit + destroy)", g.score)
	}

	// Cleared game ignores everything but restart
	g.Step(frame(core.ActionPause))
	if g.state != StateCleared {
		t.Error("pause should not leave the cleared state")
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver || g.state != StatePlaying || g.score != 0 {
		t.Errorf("restart failed: state=%s score=%d", g.state, g.score)
	}
	if g.world.DestructibleRemaining() == 0 {
		t.Error("restart should reload the level")
	}
}

func TestLevelOption(t *testing.T) {
	g := NewWithConfig(config.DefaultBounceConfig(), Options{Level: "bunker", Logger: log.New(io.Discard)})
	g.Reset(testRuntime(1))
	if g.Level().ID != "bunker" {
		t.Errorf("level = %s, expected bunker", g.Level().ID)
	}

	g = NewWithConfig(config.DefaultBounceConfig(), Options{Level: "missing", Logger: log.New(io.Discard)})
	g.Reset(testRuntime(1))
	if g.Level().ID != GetLevel(0).ID {
		t.Errorf("unknown level should fall back to %s, got %s", GetLevel(0).ID, g.Level().ID)
	}
}

func TestPresetOption(t *testing.T) {
	g := NewWithConfig(config.DefaultBounceConfig(), Options{Preset: config.DifficultyHard, Logger: log.New(io.Discard)})
	g.Reset(testRuntime(1))
	if g.Config().Projectile.Speed != 0.07 {
		t.Errorf("hard preset speed = %v, expected 0.07", g.Config().Projectile.Speed)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := newTestGame(1)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	g.Step(frame(core.ActionSpawn))
	if len(g.world.Projectiles) != 0 {
		t.Error("game should not advance on a too small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionSpawn))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Level: Invader") {
		t.Error("HUD should show the level name")
	}
	for _, r := range []rune{BallChar, PaddleChar, BrickChar, '┌'} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render should contain %q", r)
		}
	}

	// Bricks carry their health color
	tinted := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == BrickChar && c.Tint && c.Color == ColorHealthy {
				tinted = true
			}
		}
	}
	if !tinted {
		t.Error("bricks should be drawn in their health color")
	}
}

func TestViewportSquare(t *testing.T) {
	vp := NewViewport(core.DefaultBounds(), 1, 2, 78, 20)
	if vp.H != 20 || vp.W != 40 {
		t.Fatalf("viewport %dx%d, expected 40x20", vp.W, vp.H)
	}
	if vp.X != 20 || vp.Y != 2 {
		t.Errorf("viewport origin (%d, %d), expected (20, 2)", vp.X, vp.Y)
	}

	x, y := vp.Cell(-1, 1)
	if x != vp.X || y != vp.Y {
		t.Errorf("top-left corner maps to (%d, %d)", x, y)
	}
	x, y = vp.Cell(1, -1)
	if x != vp.X+vp.W-1 || y != vp.Y+vp.H-1 {
		t.Errorf("bottom-right corner maps to (%d, %d)", x, y)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("bounce") {
		t.Fatal("bounce should register itself")
	}
	g, err := registry.Create("bounce")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Bounce" {
		t.Errorf("Title() = %q", g.Title())
	}
}
