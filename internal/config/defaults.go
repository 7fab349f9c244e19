package config

import (
	_ "embed"

	"github.com/vovakirdan/bounce/internal/core"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default bounce configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Arena: core.DefaultBounds(),
		Projectile: ProjectileConfig{
			Radius:    0.02,
			Speed:     0.05,
			SpawnGap:  0.01,
			MaxActive: 0,
		},
		Paddles: []PaddleConfig{
			{
				X:      0,
				Y:      -0.9,
				Width:  0.3,
				Height: 0.05,
				Speed:  0.03,
				Color:  core.RGB{R: 0.8, G: 0.8, B: 1.0},
			},
		},
		Bricks: BrickConfig{
			Size:       0.05,
			Padding:    0.01,
			TopCenterY: 0.65,
			CenterX:    0,
			MaxHealth:  3,
		},
		Gameplay: GameplayConfig{
			Level:              "invader",
			PointsPerHit:       10,
			PointsPerBrick:     50,
			PaddleFirstHitOnly: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				WidthReduction:  0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBounceYAML
}
