package export

import (
	"fmt"
	"path/filepath"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/games/breakout"
)

// Script drives a headless run of a game.
type Script struct {
	Ticks      int    // Ticks to simulate
	SpawnEvery int    // Press spawn on every n-th tick, 0 disables
	FrameEvery int    // Write a frame on every n-th tick
	Size       int    // Image edge in pixels
	Dir        string // Output directory
	Prefix     string // File name prefix
}

// DefaultScript returns a ten second run at 60 ticks per second.
func DefaultScript() Script {
	return Script{
		Ticks:      600,
		SpawnEvery: 20,
		FrameEvery: 10,
		Size:       512,
		Dir:        "frames",
		Prefix:     "bounce",
	}
}

// Result summarizes a headless run.
type Result struct {
	Ticks   int
	Frames  int
	Cleared bool
	Score   int
}

// RenderSequence steps g through the script and writes PNG frames. The
// game must already be reset. The run stops early once the level is cleared,
// writing the final frame.
func RenderSequence(g *breakout.Game, s Script) (Result, error) {
	if s.FrameEvery <= 0 {
		return Result{}, fmt.Errorf("export: frame interval must be positive, got %d", s.FrameEvery)
	}

	var res Result
	write := func() error {
		path := filepath.Join(s.Dir, FrameName(s.Prefix, res.Frames))
		if err := SavePNG(path, g.World().Snapshot(), s.Size); err != nil {
			return err
		}
		res.Frames++
		return nil
	}

	in := core.NewInputFrame()
	for tick := 0; tick < s.Ticks; tick++ {
		in.Clear()
		// Held for a single tick, so every press is a new edge
		if s.SpawnEvery > 0 && tick%s.SpawnEvery == 0 {
			in.Set(core.ActionSpawn)
		}
		result := g.Step(in)
		res.Ticks++
		res.Score = result.State.Score

		if result.State.GameOver {
			res.Cleared = true
			return res, write()
		}
		if tick%s.FrameEvery == 0 {
			if err := write(); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}
