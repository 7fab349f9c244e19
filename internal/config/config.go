// Package config provides YAML/TOML game configuration loading and
// difficulty management for the bounce arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bounce/internal/core"
)

// BounceConfig contains all configuration for the bounce game.
type BounceConfig struct {
	Arena      core.Bounds      `yaml:"arena" toml:"arena"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Paddles    []PaddleConfig   `yaml:"paddles" toml:"paddles"`
	Bricks     BrickConfig      `yaml:"bricks" toml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ProjectileConfig defines spawned projectiles.
type ProjectileConfig struct {
	Radius    float64 `yaml:"radius" toml:"radius"`
	Speed     float64 `yaml:"speed" toml:"speed"`           // Distance per tick along each active axis
	SpawnGap  float64 `yaml:"spawn_gap" toml:"spawn_gap"`   // Clearance between paddle top and projectile edge
	MaxActive int     `yaml:"max_active" toml:"max_active"` // 0 = unlimited
}

// PaddleConfig defines one player paddle. The first paddle is driven by
// A/D, the second by the arrow keys.
type PaddleConfig struct {
	X      float64  `yaml:"x" toml:"x"`
	Y      float64  `yaml:"y" toml:"y"`
	Width  float64  `yaml:"width" toml:"width"`
	Height float64  `yaml:"height" toml:"height"`
	Speed  float64  `yaml:"speed" toml:"speed"` // Distance per tick while a move key is held
	Color  core.RGB `yaml:"color" toml:"color"`
}

// BrickConfig defines the layout of level bricks.
type BrickConfig struct {
	Size       float64 `yaml:"size" toml:"size"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	TopCenterY float64 `yaml:"top_center_y" toml:"top_center_y"` // Center y of the first row
	CenterX    float64 `yaml:"center_x" toml:"center_x"`
	MaxHealth  int     `yaml:"max_health" toml:"max_health"`
}

// GameplayConfig defines scoring and rule tunables.
type GameplayConfig struct {
	Level              string `yaml:"level" toml:"level"`
	PointsPerHit       int    `yaml:"points_per_hit" toml:"points_per_hit"`
	PointsPerBrick     int    `yaml:"points_per_brick" toml:"points_per_brick"` // Bonus when a brick is destroyed
	PaddleFirstHitOnly bool   `yaml:"paddle_first_hit_only" toml:"paddle_first_hit_only"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  ProgressionType `yaml:"type" toml:"type"`     // score, time or none
	MaxAt int             `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	WidthReduction  float64 `yaml:"width_reduction" toml:"width_reduction"`   // Fraction of paddle width lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate reports the first setting that would break the simulation.
func (c BounceConfig) Validate() error {
	if !c.Arena.Valid() {
		return fmt.Errorf("%w: arena needs left < right and bottom < top, got %+v", ErrInvalidConfig, c.Arena)
	}
	if c.Projectile.Radius <= 0 {
		return fmt.Errorf("%w: projectile radius must be positive, got %v", ErrInvalidConfig, c.Projectile.Radius)
	}
	if c.Projectile.Speed < 0 {
		return fmt.Errorf("%w: projectile speed must not be negative, got %v", ErrInvalidConfig, c.Projectile.Speed)
	}
	if len(c.Paddles) == 0 {
		return fmt.Errorf("%w: at least one paddle is required", ErrInvalidConfig)
	}
	for i, p := range c.Paddles {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: paddle %d has non-positive size %vx%v", ErrInvalidConfig, i, p.Width, p.Height)
		}
		if p.Width > c.Arena.Width() {
			return fmt.Errorf("%w: paddle %d is wider than the arena", ErrInvalidConfig, i)
		}
	}
	if c.Bricks.Size <= 0 {
		return fmt.Errorf("%w: brick size must be positive, got %v", ErrInvalidConfig, c.Bricks.Size)
	}
	if c.Bricks.MaxHealth <= 0 {
		return fmt.Errorf("%w: brick max_health must be positive, got %d", ErrInvalidConfig, c.Bricks.MaxHealth)
	}
	return nil
}
