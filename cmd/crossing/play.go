package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/platform/sound"
	"github.com/vovakirdan/gem-crossing/internal/platform/tui"
	"github.com/vovakirdan/gem-crossing/internal/registry"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right     - Choose a hero
  Enter          - Confirm hero
  Arrows/WASD    - Move
  P/Esc          - Pause
  Space/R        - Restart (after victory or defeat)
  B              - Leave (while paused or after the game ends)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, fewer and slower bugs
  normal - The classic game
  hard   - Fewer lives, faster bugs, more bugs from the start
  fixed  - Bug speed does not grow with the level

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --config ./my-crossing.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sounds := openSounds(logger)
	if sounds != nil {
		defer sounds.Close()
	}

	_, err = playTerminal(store, sounds, flagDifficulty, runtimeConfig(), logger)
	return err
}

// playTerminal runs one terminal game and reports whether the player left
// with Back.
func playTerminal(store *storage.Store, sounds *sound.Player, difficulty string, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	game, err := registry.Create(crossing.GameID)
	if err != nil {
		return false, err
	}

	opts := tui.Options{
		Store:      store,
		Player:     flagPlayer,
		Difficulty: difficulty,
		Logger:     logger,
	}
	if sounds != nil {
		opts.Sounds = sounds
	}

	logger.Info("game started", "difficulty", difficulty, "seed", cfg.Seed)
	return tui.Run(game, cfg, opts)
}
