package breakout

import (
	"fmt"

	"github.com/vovakirdan/bounce/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar     = '='
	BallChar       = '●'
	BrickChar      = '█'
	ReflectiveChar = '▒'
)

// Viewport maps arena coordinates onto a block of terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so the
// viewport uses two columns per row to keep the arena square.
type Viewport struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
	b    core.Bounds
}

// NewViewport fits the arena into the cell area (x, y, w, h), centered.
func NewViewport(b core.Bounds, x, y, w, h int) Viewport {
	aspect := b.Width() / b.Height() * 2
	vw, vh := w, int(float64(w)/aspect)
	if vh > h {
		vh = h
		vw = int(float64(h) * aspect)
	}
	vw = core.Max(vw, 1)
	vh = core.Max(vh, 1)
	return Viewport{
		X: x + (w-vw)/2,
		Y: y + (h-vh)/2,
		W: vw,
		H: vh,
		b: b,
	}
}

// Cell returns the cell containing the arena point (wx, wy).
func (v Viewport) Cell(wx, wy float64) (int, int) {
	cx := int((wx - v.b.Left) / v.b.Width() * float64(v.W))
	cy := int((v.b.Top - wy) / v.b.Height() * float64(v.H))
	return v.X + core.Clamp(cx, 0, v.W-1), v.Y + core.Clamp(cy, 0, v.H-1)
}

// CellRect returns the cells covered by r, at least one cell.
func (v Viewport) CellRect(r core.Rect) core.CellRect {
	x0, y0 := v.Cell(r.Left(), r.Top())
	x1, y1 := v.Cell(r.Right(), r.Bottom())
	return core.NewCellRect(x0, y0, x1-x0+1, y1-y0+1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	// HUD on top, hint line at the bottom, arena box in between
	g.renderHUD(dst)

	box := core.NewCellRect(0, 1, dst.Width(), dst.Height()-2)
	vp := NewViewport(g.world.Bounds, box.X+1, box.Y+1, box.W-2, box.H-2)
	dst.DrawBox(core.NewCellRect(vp.X-1, vp.Y-1, vp.W+2, vp.H+2))

	RenderWorld(dst, vp, g.world.Snapshot())

	g.renderOverlay(dst)
}

// RenderWorld draws bricks, paddles and projectiles into the viewport.
func RenderWorld(dst *core.Screen, vp Viewport, snap WorldSnapshot) {
	for _, b := range snap.Bricks {
		if !b.Active {
			continue
		}
		glyph := BrickChar
		if b.Category == Reflective {
			glyph = ReflectiveChar
		}
		fillColored(dst, vp.CellRect(b.Rect()), glyph, b.Color)
	}

	for _, p := range snap.Paddles {
		fillColored(dst, vp.CellRect(p.Rect()), PaddleChar, p.Color)
	}

	for _, p := range snap.Projectiles {
		x, y := vp.Cell(p.X, p.Y)
		dst.SetColored(x, y, BallChar, p.Color)
	}
}

func fillColored(dst *core.Screen, r core.CellRect, ch rune, c core.RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// renderHUD draws the score, level and projectile count.
func (g *Game) renderHUD(dst *core.Screen) {
	// Score on left
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	// Level in center
	dst.DrawTextCentered(0, "Level: "+g.level.Name)

	// Bricks and projectiles on right
	rightText := fmt.Sprintf("Bricks: %d  Balls: %d", g.world.DestructibleRemaining(), len(g.world.Projectiles))
	dst.DrawText(dst.Width()-len(rightText)-1, 0, rightText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		hint := "SPACE launch  A/D move  P pause  Q quit"
		if len(g.world.Paddles) > 1 {
			hint = "SPACE launch  A/D  ←/→ move  P pause  Q quit"
		}
		dst.DrawTextCentered(dst.Height()-1, hint)

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateCleared:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "LEVEL CLEARED", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewCellRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewCellRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
