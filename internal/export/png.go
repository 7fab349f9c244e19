// Package export renders world snapshots to PNG images.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/games/breakout"
)

// Background is the arena fill color.
var Background = core.RGB{R: 0.05, G: 0.05, B: 0.08}

// Frame draws a snapshot into a new size x size context. The arena is
// stretched to fill the image with y pointing up. The first drawing error
// is returned and the context is released.
func Frame(snap breakout.WorldSnapshot, size int) (*gg.Context, error) {
	if size <= 0 {
		return nil, fmt.Errorf("export: invalid image size %d", size)
	}
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.RGB(Background.R, Background.G, Background.B))

	b := snap.Bounds
	sx := float64(size) / b.Width()
	sy := float64(size) / b.Height()
	px := func(x float64) float64 { return (x - b.Left) * sx }
	py := func(y float64) float64 { return (b.Top - y) * sy }

	var err error
	fill := func() {
		if ferr := dc.Fill(); ferr != nil && err == nil {
			err = fmt.Errorf("export: fill: %w", ferr)
		}
	}
	fillRect := func(r core.Rect, c core.RGB) {
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawRectangle(px(r.Left()), py(r.Top()), r.HW*2*sx, r.HH*2*sy)
		fill()
	}

	for _, br := range snap.Bricks {
		if br.Active {
			fillRect(br.Rect(), br.Color)
		}
	}
	for _, p := range snap.Paddles {
		fillRect(p.Rect(), p.Color)
	}
	for _, p := range snap.Projectiles {
		dc.SetRGB(p.Color.R, p.Color.G, p.Color.B)
		dc.DrawCircle(px(p.X), py(p.Y), p.Radius*sx)
		fill()
	}
	if ferr := dc.FlushGPU(); ferr != nil && err == nil {
		err = fmt.Errorf("export: flush: %w", ferr)
	}
	if err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// WritePNG encodes the snapshot as a PNG to w.
func WritePNG(w io.Writer, snap breakout.WorldSnapshot, size int) error {
	dc, err := Frame(snap, size)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the snapshot to path, creating parent directories.
func SavePNG(path string, snap breakout.WorldSnapshot, size int) error {
	if size <= 0 {
		return fmt.Errorf("export: invalid image size %d", size)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create %s: %w", dir, err)
		}
	}
	dc, err := Frame(snap, size)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// FrameName returns the file name of the n-th frame of a sequence.
func FrameName(prefix string, n int) string {
	return fmt.Sprintf("%s_%05d.png", prefix, n)
}
