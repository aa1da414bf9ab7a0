package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresTUI        bool
	flagScoresClear      bool
	flagScoresAll        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished games, optionally for one difficulty.
Without --difficulty a per-difficulty summary follows the table.

Examples:
  invaders scores
  invaders scores --all
  invaders scores --difficulty hard --limit 5
  invaders scores --tui
  invaders scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded game instead of --limit")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history (and the high score when no difficulty is given)")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := ""
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(d)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = clearScores(store, difficulty)
	case flagScoresTUI:
		err = browseScores(store)
	default:
		err = printScores(os.Stdout, store, difficulty, flagScoresAll)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, difficulty string) error {
	if err := store.ClearScores(difficulty); err != nil {
		return err
	}
	if difficulty == "" {
		fmt.Println("Cleared all scores and the high score.")
	} else {
		fmt.Printf("Cleared %s scores.\n", difficulty)
	}
	return nil
}

func browseScores(store *storage.Store) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	_, err := tui.RunScoreboard(store, width, height)
	return err
}

func printScores(w io.Writer, store *storage.Store, difficulty string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(difficulty)
	} else {
		scores, err = store.TopScores(difficulty, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "All difficulties"
	if difficulty != "" {
		title = config.Difficulty(difficulty).Title()
	}
	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'invaders' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Mode", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6s  %s\n", i+1, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	// Show aggregate stats
	fmt.Fprintln(w)
	if difficulty != "" {
		if stats, err := store.GetGameStats(difficulty); err == nil {
			fmt.Fprintf(w, "Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
				stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
		}
		return nil
	}

	stats, err := store.GetAllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintf(w, "  %-6s  %-5s  %-8s  %-5s  %s\n", "Mode", "Games", "Best", "Level", "Average")
	for _, d := range config.Difficulties() {
		gs, ok := stats[string(d)]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-6s  %-5d  %-8d  %-5d  %.0f\n", d, gs.GamesCount, gs.HighScore, gs.BestLevel, gs.AvgScore)
	}
	if high, err := store.ReadHighScore(); err == nil {
		fmt.Fprintf(w, "Best: %d\n", high)
	}
	return nil
}
