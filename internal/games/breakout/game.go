package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/physics"
	"github.com/vovakirdan/bounce/internal/registry"
)

// GameState constants
const (
	StatePlaying = "playing" // Projectiles in flight, bricks remaining
	StatePaused  = "paused"  // Game paused
	StateCleared = "cleared" // No destructible brick left
)

// Options configures how a game loads its settings on Reset.
type Options struct {
	ConfigPath string                  // Explicit config file (.yaml or .toml)
	Preset     config.DifficultyPreset // Overrides difficulty when set
	Level      string                  // Overrides gameplay.level when set
	Logger     *log.Logger             // Defaults to log.Default()
}

// defaultOptions is used by games created through the registry.
var defaultOptions Options

// SetOptions sets the options for games created through the registry.
func SetOptions(o Options) {
	defaultOptions = o
}

// Game implements the bounce game logic.
type Game struct {
	opts  Options
	fixed *config.BounceConfig // Used instead of loading when set

	// Game objects
	world *World
	level *Level

	// Game state
	state      string
	score      int
	tickCount  int
	input      core.InputState
	rng        *SimpleRNG
	baseWidths []float64 // Paddle widths before difficulty scaling

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BounceConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that loads its configuration with the registry options.
func New() *Game {
	return NewWithOptions(defaultOptions)
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

// NewWithConfig creates a game that uses cfg as is, without searching for
// config files. The level and preset options still apply.
func NewWithConfig(cfg config.BounceConfig, opts Options) *Game {
	g := NewWithOptions(opts)
	g.fixed = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bounce"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = log.Default()
	}

	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Check screen size
	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize game state
	g.score = 0
	g.tickCount = 0
	g.state = StatePlaying
	g.input.Reset()
	g.rng = NewSimpleRNG(runtime.Seed)

	g.loadLevel()

	g.logger.Info("game reset",
		"level", g.level.ID,
		"bricks", len(g.world.Bricks),
		"paddles", len(g.world.Paddles),
		"seed", runtime.Seed)
}

// loadConfig resolves the configuration for the next session.
func (g *Game) loadConfig() config.BounceConfig {
	var cfg config.BounceConfig
	if g.fixed != nil {
		cfg = *g.fixed
		cfg.Paddles = append([]config.PaddleConfig(nil), g.fixed.Paddles...)
	} else {
		loaded, src, err := config.LoadBounceFrom(g.opts.ConfigPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "path", g.opts.ConfigPath, "err", err)
			loaded = config.DefaultBounceConfig()
			src = config.SourceBuiltin
		}
		g.logger.Debug("config loaded", "source", src)
		cfg = loaded
	}

	// Apply difficulty preset if set
	if g.opts.Preset != "" {
		config.ApplyBouncePreset(&cfg, g.opts.Preset)
	}
	if len(cfg.Paddles) == 0 {
		cfg.Paddles = config.DefaultBounceConfig().Paddles
	}
	return cfg
}

// loadLevel builds the world for the configured level.
func (g *Game) loadLevel() {
	id := g.cfg.Gameplay.Level
	if g.opts.Level != "" {
		id = g.opts.Level
	}
	level, ok := GetLevelByID(id)
	if !ok {
		level = GetLevel(0)
		g.logger.Warn("unknown level, using default", "level", id, "default", level.ID)
	}
	g.level = level

	g.world = NewWorld(g.cfg.Arena)
	g.world.PaddleFirstHitOnly = g.cfg.Gameplay.PaddleFirstHitOnly
	g.world.Bricks = level.Bricks(Layout{
		Size:       g.cfg.Bricks.Size,
		Padding:    g.cfg.Bricks.Padding,
		TopCenterY: g.cfg.Bricks.TopCenterY,
		CenterX:    g.cfg.Bricks.CenterX,
		MaxHealth:  g.cfg.Bricks.MaxHealth,
	})

	g.world.Paddles = make([]Paddle, 0, len(g.cfg.Paddles))
	g.baseWidths = make([]float64, 0, len(g.cfg.Paddles))
	for _, pc := range g.cfg.Paddles {
		color := pc.Color
		if color.IsZero() {
			color = core.ColorWhite
		}
		p := Paddle{X: pc.X, Y: pc.Y, W: pc.Width, H: pc.Height, Speed: pc.Speed, Color: color}
		p.Move(0, g.world.Bounds)
		g.world.Paddles = append(g.world.Paddles, p)
		g.baseWidths = append(g.baseWidths, pc.Width)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateCleared {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or cleared
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Handle paddle movement
	g.updatePaddles(in)

	var events []core.Event
	if g.input.Pressed(in, core.ActionSpawn) {
		if p, ok := g.spawn(); ok {
			events = append(events, core.Event{Kind: core.EventSpawn, X: p.X, Y: p.Y})
		}
	}

	mark := len(events)
	events = g.world.Update(events)
	g.applyScore(events[mark:])

	if g.world.DestructibleRemaining() == 0 {
		g.state = StateCleared
		g.logger.Info("level cleared", "level", g.level.ID, "score", g.score, "ticks", g.tickCount)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddles handles paddle movement and difficulty scaling.
func (g *Game) updatePaddles(in core.InputFrame) {
	controls := [][2]core.Action{
		{core.ActionLeft, core.ActionRight},
		{core.ActionAltLeft, core.ActionAltRight},
	}

	bounds := g.world.Bounds
	for i := range g.world.Paddles {
		p := &g.world.Paddles[i]

		if g.difficulty.IsEnabled() {
			p.Resize(g.difficulty.PaddleWidth(g.baseWidths[i], g.score, g.tickCount), bounds)
		}

		if i >= len(controls) {
			continue
		}
		// A/Left = move left, D/Right = move right
		if in.Has(controls[i][0]) {
			p.Move(-p.Speed, bounds)
		}
		if in.Has(controls[i][1]) {
			p.Move(p.Speed, bounds)
		}
	}
}

// spawn launches a projectile upward from the first paddle.
func (g *Game) spawn() (Projectile, bool) {
	if limit := g.cfg.Projectile.MaxActive; limit > 0 && len(g.world.Projectiles) >= limit {
		return Projectile{}, false
	}

	pad := &g.world.Paddles[0]
	r := g.cfg.Projectile.Radius
	speed := g.difficulty.Speed(g.cfg.Projectile.Speed, g.score, g.tickCount)
	p := NewProjectile(pad.X, pad.Top()+r+g.cfg.Projectile.SpawnGap, r, physics.North, speed, g.rng.Color())
	g.world.Spawn(p)
	return p, true
}

// applyScore awards points for brick events.
func (g *Game) applyScore(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventBrickHit:
			g.score += g.cfg.Gameplay.PointsPerHit
		case core.EventBrickDestroyed:
			g.score += g.cfg.Gameplay.PointsPerBrick
		}
	}
}

// World returns the live world. Callers must not mutate it.
func (g *Game) World() *World {
	return g.world
}

// Level returns the level being played.
func (g *Game) Level() *Level {
	return g.level
}

// Config returns the resolved configuration of the current session.
func (g *Game) Config() config.BounceConfig {
	return g.cfg
}

// Phase returns the current state constant.
func (g *Game) Phase() string {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "bounce",
		Title:       "Bounce",
		Description: "Launch balls from your paddle and wear down the bricks",
	}, func() registry.Game {
		return New()
	})
}
