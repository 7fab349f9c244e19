package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce/internal/audio"
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/games/breakout"
	"github.com/vovakirdan/bounce/internal/platform/tui"
	"github.com/vovakirdan/bounce/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without --level a level picker is shown first.

Controls:
  Space      - Launch a ball
  A/D        - Move the paddle
  ←/→        - Move the second paddle (when configured)
  P          - Pause
  R          - Restart (after the level is cleared)
  Ctrl+S     - Save a screenshot
  ?          - Toggle help
  Q/Esc      - Quit

Difficulty options:
  easy   - Slower balls, wider paddle
  normal - Config defaults
  hard   - Faster balls, narrower paddle
  fixed  - No progression with score

Examples:
  bounce play
  bounce play --level invader --difficulty easy
  bounce play --config ./my-bounce.toml --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (.yaml or .toml)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play (see 'bounce levels')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play tones for hits and bounces")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "bounce"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bounce list' to see available games", gameID)
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset = config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}

	// Get terminal size early for the level selector
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	level := flagLevel
	if level == "" {
		selected, err := tui.RunLevelSelector(cfg)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		level = selected.ID
	} else if _, ok := breakout.GetLevelByID(level); !ok {
		return fmt.Errorf("unknown level %q, run 'bounce levels' to list them", level)
	}

	breakout.SetOptions(breakout.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Level:      level,
		Logger:     logger,
	})

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var player audio.Player = audio.Nop{}
	if flagSound {
		// NewBeeper logs and falls back to silence on failure
		player, _ = audio.NewBeeper(logger)
	}
	defer player.Close()

	logger.Info("starting game", "game", gameID, "level", level, "difficulty", preset, "fps", flagFPS)
	return tui.Run(game, cfg, tui.Options{Player: player, Logger: logger})
}
