package core

import "fmt"

// RGB is a display color with channels in [0, 1].
type RGB struct {
	R float64 `yaml:"r" toml:"r"`
	G float64 `yaml:"g" toml:"g"`
	B float64 `yaml:"b" toml:"b"`
}

// Common colors used by the renderers.
var (
	ColorWhite = RGB{1, 1, 1}
	ColorGray  = RGB{0.6, 0.6, 0.6}
	ColorBlack = RGB{0, 0, 0}
)

// Hex returns the color as a "#rrggbb" string, suitable for lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// IsZero reports whether the color is unset (pure black).
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}
