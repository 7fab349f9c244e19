package config

import "math"

// ProgressionType selects what drives difficulty up.
type ProgressionType string

const (
	ProgressionScore ProgressionType = "score"
	ProgressionTime  ProgressionType = "time"
	ProgressionNone  ProgressionType = "none"
)

// minWidthFraction is the smallest paddle width as a fraction of its base.
const minWidthFraction = 0.25

// DifficultyManager turns score and elapsed ticks into a difficulty level
// in [InitialLevel, 1]. New projectiles get faster and paddles narrower as
// the level rises; projectiles already in flight keep their speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager. InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether the level can move away from InitialLevel.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressionScore, ProgressionTime:
		return d.cfg.Enabled
	}
	return false
}

// progress is how far along the configured axis the session is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	var at int
	if d.cfg.Progression.Type == ProgressionTime {
		at = ticks
	} else {
		at = score
	}
	return clampF(float64(at)/maxAt, 0, 1)
}

// Level returns the difficulty level for the given score and tick count.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	base := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return base
	}
	return base + d.progress(score, ticks)*(1-base)
}

// Speed scales base by up to 1+SpeedMultiplier.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// PaddleWidth shrinks base by up to WidthReduction of itself, never below
// a quarter of base.
func (d *DifficultyManager) PaddleWidth(base float64, score, ticks int) float64 {
	w := base * (1 - d.Level(score, ticks)*d.cfg.Scaling.WidthReduction)
	return math.Max(w, base*minWidthFraction)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
