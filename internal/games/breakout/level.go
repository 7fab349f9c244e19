// Package breakout implements the bounce game: projectiles launched from
// paddles that bounce around the arena and wear down bricks.
package breakout

import "strings"

// Level is a built-in brick pattern.
type Level struct {
	ID   string
	Name string
	Rows []string
}

// Layout places a level's grid in world coordinates.
type Layout struct {
	Size       float64 // Brick side length
	Padding    float64 // Gap between neighbouring bricks
	TopCenterY float64 // Center y of the first row
	CenterX    float64 // Center x of the grid
	MaxHealth  int
}

// DefaultLayout returns the standard brick layout.
func DefaultLayout() Layout {
	return Layout{
		Size:       0.05,
		Padding:    0.01,
		TopCenterY: 0.65,
		CenterX:    0,
		MaxHealth:  MaxHealth,
	}
}

// Width returns the number of columns (the longest row).
func (l *Level) Width() int {
	w := 0
	for _, row := range l.Rows {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.Rows)
}

// Bricks builds the level's bricks with the given layout.
func (l *Level) Bricks(layout Layout) []Brick {
	return ParseLevel(l.Rows, layout)
}

// ParseLevel creates bricks from an ASCII grid.
// Characters:
//
//	'1' = destructible brick
//	'R' = reflective brick
//	anything else = empty
//
// Columns are centered on layout.CenterX, rows go down from layout.TopCenterY.
// Bricks are returned in row-major order.
func ParseLevel(rows []string, layout Layout) []Brick {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	cell := layout.Size + layout.Padding
	halfCols := float64(cols-1) * 0.5
	health := layout.MaxHealth
	if health <= 0 {
		health = MaxHealth
	}

	var bricks []Brick
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			var cat Category
			switch row[c] {
			case '1':
				cat = Destructible
			case 'R', 'r':
				cat = Reflective
			default:
				continue
			}
			x := layout.CenterX + (float64(c)-halfCols)*cell
			y := layout.TopCenterY - float64(r)*cell
			bricks = append(bricks, NewBrickWithHealth(cat, x, y, layout.Size, health))
		}
	}
	return bricks
}

// Preview renders the level as text for listings.
func (l *Level) Preview() string {
	var sb strings.Builder
	for _, row := range l.Rows {
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '1':
				sb.WriteRune('█')
			case 'R', 'r':
				sb.WriteRune('▒')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var invaderRows = []string{
	"00111111100",
	"01111111110",
	"11101110111",
	"11111111111",
	"10111111101",
	"10100100101",
	"00111001100",
	"00010000100",
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	bunker := append([]string{}, invaderRows...)
	bunker = append(bunker,
		"00000000000",
		"0RRR000RRR0",
	)

	return []*Level{
		// 11x8 invader sprite
		{ID: "invader", Name: "Invader", Rows: append([]string{}, invaderRows...)},

		// Invader guarded by reflective shields
		{ID: "bunker", Name: "Bunker", Rows: bunker},

		// Solid wall with a reflective cap
		{ID: "wall", Name: "Wall", Rows: []string{
			"RRRRRRRRRRRRRRR",
			"111111111111111",
			"111111111111111",
			"111111111111111",
			"111111111111111",
			"111111111111111",
		}},
	}
}

// GetLevelByID returns a level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level, true
		}
	}
	return nil, false
}

// GetLevel returns a level by index (wraps around if index >= len).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	if index < 0 {
		index = -index
	}
	return levels[index%len(levels)]
}

// LevelCount returns the total number of available levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
