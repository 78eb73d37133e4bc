// crossing is Gem Crossing: guide a hero across bug-infested lanes,
// collect gems and keys, and reach level 10.
//
// Usage:
//
//	crossing play            - Play in the terminal
//	crossing window          - Play in a desktop window
//	crossing menu            - Title menu with difficulty and high scores
//	crossing serve           - Start SSH server for remote play
//	crossing scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <dsn>           - SQLite path or postgres:// URL (default: ~/.crossing/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--sound              - Play sound cues
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/platform/sound"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagLogLevel   string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Gem Crossing - dodge the bugs, grab the gems",
	Long: `Gem Crossing is a tile-based arcade game. Pick a hero, cross the
stone lanes without touching a bug or falling in the water, collect the
gem and the key on each level and clear all ten levels.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Title menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  crossing play
  crossing play --difficulty hard
  crossing window --sound
  crossing serve --ssh :2222 --db postgres://localhost/crossing
  crossing scores --difficulty easy`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		crossing.SetConfigPath(flagConfig)
		crossing.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback, which is io.Discard for terminal commands.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           level,
	})
	crossing.SetLogger(logger)
	return logger, closer, nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// openSounds starts the audio device when --sound is set. A missing device
// leaves the game silent.
func openSounds(logger *log.Logger) *sound.Player {
	if !flagSound {
		return nil
	}
	p := sound.NewPlayer()
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return p
}
