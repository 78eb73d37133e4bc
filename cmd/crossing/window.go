package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/platform/sound"
	"github.com/vovakirdan/gem-crossing/internal/platform/window"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Gem Crossing in a 707x760 desktop window.

Controls are the same as in the terminal. B leaves while paused or after
the game ends; Q quits.

Examples:
  crossing window
  crossing window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) error {
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

	return playWindow(store, sounds, flagDifficulty, logger)
}

// playWindow opens the window and blocks until it closes.
func playWindow(store *storage.Store, sounds *sound.Player, difficulty string, logger *log.Logger) error {
	opts := window.Options{
		Store:      store,
		Player:     flagPlayer,
		Difficulty: difficulty,
		Logger:     logger,
		Scale:      flagScale,
	}
	if sounds != nil {
		opts.Sounds = sounds
	}

	game := crossing.New(crossing.WithLogger(logger))
	return window.Run(game, runtimeConfig(), opts)
}
