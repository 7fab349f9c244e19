package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventBrickHit EventKind = iota
	EventBrickDestroyed
	EventBrickBounce // Projectile bounced off a reflective brick
	EventPaddleBounce
	EventWallBounce
	EventSpawn
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "BrickHit"
	case EventBrickDestroyed:
		return "BrickDestroyed"
	case EventBrickBounce:
		return "BrickBounce"
	case EventPaddleBounce:
		return "PaddleBounce"
	case EventWallBounce:
		return "WallBounce"
	case EventSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by a simulation tick.
type Event struct {
	Kind EventKind
	X, Y float64 // World position where it happened
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
