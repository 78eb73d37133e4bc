package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Gem Crossing in interactive menu mode.

Pick a difficulty, play in the terminal or in a window, or browse the high
scores. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  crossing menu
  crossing menu --fps 30
  crossing menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	difficulty := flagDifficulty
	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(store, cfg, tui.MenuOptions{
			Difficulty:  difficulty,
			AllowWindow: true,
		})
		if err != nil {
			return err
		}
		cfg = res.Config
		difficulty = res.Difficulty

		switch res.Choice {
		case tui.ChoicePlay:
			back, err := playTerminal(store, sounds, difficulty, cfg, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			if !back {
				return nil
			}

		case tui.ChoiceWindow:
			// Ebitengine runs once per process, so the window ends the menu
			return playWindow(store, sounds, difficulty, logger)

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
