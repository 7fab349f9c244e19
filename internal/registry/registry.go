// Package registry maps game IDs to factories. Games register themselves
// from init() so the CLI can start them by name without importing each one.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bounce/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations hold pure simulation state; input mapping, timing and
// drawing to the terminal belong to the platform.
type Game interface {
	// ID is the name used on the command line and in file names.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new session. It is called once before the first Step
	// and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick and reports what happened.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which it must clear first.
	Render(dst *core.Screen)

	// State reports score, cleared and paused flags.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info    GameInfo
	factory Factory
}

// Registry is a concurrency-safe set of game factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Add registers a factory under info.ID. The title is taken from a sample
// instance when info.Title is empty. Adding an ID twice panics.
func (r *Registry) Add(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty game ID")
	}
	if info.Title == "" {
		info.Title = f().Title()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q registered twice", info.ID))
	}
	r.entries[info.ID] = entry{info: info, factory: f}
}

// Create builds a new instance of the game with the given ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// List returns every registered game sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	infos := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, e.info)
	}
	r.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Default is the process-wide registry used by the package functions.
var Default = New()

// Register adds a game to Default.
func Register(info GameInfo, f Factory) { Default.Add(info, f) }

// Create builds a game from Default.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether Default knows id.
func Exists(id string) bool { return Default.Exists(id) }

// List returns the games in Default sorted by ID.
func List() []GameInfo { return Default.List() }
