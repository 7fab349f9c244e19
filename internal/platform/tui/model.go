package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/audio"
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/export"
	"github.com/vovakirdan/bounce/internal/games/breakout"
	"github.com/vovakirdan/bounce/internal/registry"
)

// Terminals only report key presses, so a held key is seen as a stream of
// repeats. An action stays held until no repeat arrives for its window.
const (
	holdWindow = 120 * time.Millisecond

	// spawnHoldWindow outlasts the initial key repeat delay, so one held
	// spawn key is one press.
	spawnHoldWindow = 600 * time.Millisecond
)

// holdWindowFor returns how long a held action lasts after its last key event.
func holdWindowFor(a core.Action) time.Duration {
	if a == core.ActionSpawn {
		return spawnHoldWindow
	}
	return holdWindow
}

// shotSize is the edge length of PNG screenshots in pixels.
const shotSize = 640

// Options configures the platform around a game.
type Options struct {
	Player  audio.Player // Defaults to audio.Nop
	Logger  *log.Logger  // Defaults to log.Default()
	ShotDir string       // Screenshot directory, defaults to ~/.bounce/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	player   audio.Player
	logger   *log.Logger
	shotDir  string
	now      func() time.Time
	holds    map[core.Action]time.Time // Held actions and when they expire
	pending  core.InputFrame           // One-shot actions for the next tick
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ShotDir == "" {
		opts.ShotDir = defaultShotDir()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    help.New(),
		player:  opts.Player,
		logger:  opts.Logger,
		shotDir: opts.ShotDir,
		now:     time.Now,
		holds:   make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

func defaultShotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bounce", "screenshots")
	}
	return filepath.Join(home, ".bounce", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.player.Close()
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.holds[action] = m.now().Add(holdWindowFor(action))
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// gameConfig is the runtime config seen by the game. The last row
// belongs to the help line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH--
	return cfg
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	changed := msg.Width != m.config.ScreenW || msg.Height != m.config.ScreenH
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	// The minimum size check happens on reset, so a new size restarts the level.
	if changed {
		m.game.Reset(m.gameConfig())
		m.state = m.game.State()
	}
	return m, nil
}

// Frame returns the input for the next tick: every unexpired held action
// plus the pending one-shot actions. Expired holds are dropped.
func (m Model) Frame() core.InputFrame {
	frame := m.pending.Clone()
	now := m.now()
	for a, until := range m.holds {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(m.holds, a)
		}
	}
	return frame
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.Frame())
	m.state = result.State
	m.player.Play(result.Events)

	// One-shot actions apply to a single tick
	m.pending.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as text and, when the game
// exposes its world, as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "dir", m.shotDir, "err", err)
		return
	}

	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), m.now().Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", base+".txt", "err", err)
		return
	}

	if s, ok := m.game.(interface{ Snapshot() breakout.Snapshot }); ok {
		if err := export.SavePNG(base+".png", s.Snapshot().World, shotSize); err != nil {
			m.logger.Warn("png screenshot failed", "path", base+".png", "err", err)
			return
		}
	}
	m.logger.Info("screenshot saved", "path", base)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys.Keys)
	helpLines := strings.Count(helpView, "\n") + 1

	// Game gets what the help line leaves
	m.screen.Resize(m.config.ScreenW, core.Max(m.config.ScreenH-helpLines, 0))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
