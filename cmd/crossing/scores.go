package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

var (
	flagLimit int
	flagStats bool
	flagRun   string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs, highest score first.

--difficulty filters by preset; without it every preset is listed.

Examples:
  crossing scores
  crossing scores --difficulty hard --limit 20
  crossing scores --stats
  crossing scores --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  crossing scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals per difficulty instead")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single run by its id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Debug("scores opened", "dialect", store.Dialect())

	switch {
	case flagClear:
		if err := store.ClearScores(crossing.GameID); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	case flagRun != "":
		return printRun(store, flagRun)
	case flagStats:
		return printStats(store)
	}

	scores, err := store.TopScores(crossing.GameID, flagDifficulty, flagLimit)
	if err != nil {
		return err
	}

	title := "High Scores - Gem Crossing"
	if flagDifficulty != "" {
		title += " (" + flagDifficulty + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-8s  %-10s  %s\n", "Rank", "Player", "Score", "Level", "Outcome", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-8s  %-10s  %s\n", "----", "------", "-----", "-----", "-------", "----------", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-8s  %-10s  %s\n",
			i+1, truncate(r.Player, 12), r.Score, r.Level, r.Outcome, r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	r, err := store.ResultByRunID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return errors.New("no run with id " + runID)
	}

	fmt.Printf("Run        %s\n", r.RunID)
	fmt.Printf("Player     %s\n", r.Player)
	fmt.Printf("Score      %d\n", r.Score)
	fmt.Printf("Level      %d\n", r.Level)
	fmt.Printf("Outcome    %s\n", r.Outcome)
	fmt.Printf("Difficulty %s\n", r.Difficulty)
	fmt.Printf("Date       %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.StatsByDifficulty(crossing.GameID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-5s  %-9s  %-5s  %-7s  %-10s  %s\n", "Difficulty", "Runs", "Victories", "Best", "Average", "Best level", "Last played")
	fmt.Printf("  %-10s  %-5s  %-9s  %-5s  %-7s  %-10s  %s\n", "----------", "----", "---------", "----", "-------", "----------", "-----------")
	for _, p := range config.Presets() {
		st, ok := stats[string(p)]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-9d  %-5d  %-7.1f  %-10d  %s\n",
			st.Difficulty, st.Runs, st.Victories, st.HighScore, st.AvgScore, st.BestLevel,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
