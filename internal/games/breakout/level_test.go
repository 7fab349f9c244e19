package breakout

import (
	"math"
	"strings"
	"testing"
)

func TestLevelParsing(t *testing.T) {
	rows := []string{
		"101",
		"0R1",
		"..1x",
	}
	layout := Layout{Size: 0.1, Padding: 0.1, TopCenterY: 0.5, CenterX: 0, MaxHealth: 2}
	bricks := ParseLevel(rows, layout)

	if len(bricks) != 5 {
		t.Fatalf("ParseLevel produced %d bricks, expected 5", len(bricks))
	}

	// 4 columns wide (longest row), so column 0 sits 1.5 cells left of center.
	first := bricks[0]
	if math.Abs(first.X-(-0.3)) > 1e-9 || first.Y != 0.5 {
		t.Errorf("first brick at (%v, %v), expected (-0.3, 0.5)", first.X, first.Y)
	}
	if first.Health != 2 || first.Category != Destructible || !first.Active {
		t.Errorf("first brick = %+v", first)
	}

	reflective := bricks[2]
	if reflective.Category != Reflective {
		t.Errorf("bricks[2] category = %v, expected reflective", reflective.Category)
	}
	if math.Abs(reflective.Y-0.3) > 1e-9 {
		t.Errorf("second row y = %v, expected 0.3", reflective.Y)
	}
	if reflective.Size != 0.1 {
		t.Errorf("brick size = %v, expected 0.1", reflective.Size)
	}
}

func TestParseLevelDefaultsHealth(t *testing.T) {
	bricks := ParseLevel([]string{"1"}, Layout{Size: 0.05})
	if len(bricks) != 1 || bricks[0].Health != MaxHealth {
		t.Errorf("zero MaxHealth should fall back to %d, got %+v", MaxHealth, bricks)
	}
}

func TestInvaderLevel(t *testing.T) {
	level, ok := GetLevelByID("invader")
	if !ok {
		t.Fatal("invader level missing")
	}
	if level.Width() != 11 || level.Height() != 8 {
		t.Errorf("invader is %dx%d, expected 11x8", level.Width(), level.Height())
	}

	expected := 0
	for _, row := range level.Rows {
		expected += strings.Count(row, "1")
	}
	bricks := level.Bricks(DefaultLayout())
	if len(bricks) != expected {
		t.Errorf("invader has %d bricks, expected %d", len(bricks), expected)
	}

	// Row 0 starts at column 2: x = (2 - 5) * 0.06
	if math.Abs(bricks[0].X-(-0.18)) > 1e-9 || math.Abs(bricks[0].Y-0.65) > 1e-9 {
		t.Errorf("first invader brick at (%v, %v), expected (-0.18, 0.65)", bricks[0].X, bricks[0].Y)
	}
	for _, b := range bricks {
		if b.Category != Destructible {
			t.Fatal("invader should only contain destructible bricks")
		}
	}
}

func TestBunkerHasShields(t *testing.T) {
	level, ok := GetLevelByID("bunker")
	if !ok {
		t.Fatal("bunker level missing")
	}
	reflective := 0
	for _, b := range level.Bricks(DefaultLayout()) {
		if b.Category == Reflective {
			reflective++
		}
	}
	if reflective != 6 {
		t.Errorf("bunker has %d reflective bricks, expected 6", reflective)
	}
}

func TestBuiltinLevelsAreMutationSafe(t *testing.T) {
	a := GetLevel(0)
	a.Rows[0] = "1"
	b := GetLevel(0)
	if b.Rows[0] == "1" {
		t.Error("modifying a returned level leaked into the built-ins")
	}
}

func TestGetLevel(t *testing.T) {
	if LevelCount() != 3 {
		t.Errorf("LevelCount() = %d, expected 3", LevelCount())
	}
	if GetLevel(LevelCount()).ID != GetLevel(0).ID {
		t.Error("GetLevel should wrap around")
	}
	if _, ok := GetLevelByID("nope"); ok {
		t.Error("unknown level should not be found")
	}
	for _, l := range BuiltinLevels() {
		if got, ok := GetLevelByID(l.ID); !ok || got.Name != l.Name {
			t.Errorf("GetLevelByID(%q) failed", l.ID)
		}
	}
}

func TestLevelPreview(t *testing.T) {
	level, _ := GetLevelByID("bunker")
	preview := level.Preview()
	lines := strings.Split(strings.TrimSuffix(preview, "\n"), "\n")
	if len(lines) != level.Height() {
		t.Fatalf("preview has %d lines, expected %d", len(lines), level.Height())
	}
	if !strings.ContainsRune(preview, '█') || !strings.ContainsRune(preview, '▒') {
		t.Error("preview should show both brick kinds")
	}
}
