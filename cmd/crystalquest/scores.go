package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/storage"
)

var (
	flagClearScores bool
	flagAllStats    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores for a layout",
	Long: `Display the top 10 high scores for a layout (default: classic).

Examples:
  crystalquest scores
  crystalquest scores towers
  crystalquest scores --stats
  crystalquest scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score recorded for the layout")
	scoresCmd.Flags().BoolVar(&flagAllStats, "stats", false, "Show per-layout statistics instead of the top 10")
}

func runScores(cmd *cobra.Command, args []string) {
	layoutID := layout.ClassicID
	if len(args) == 1 {
		layoutID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening scores database: %v", err)
	}
	defer store.Close()

	if flagAllStats {
		printStats(store)
		return
	}

	if flagClearScores {
		if err := store.ClearScores(layoutID); err != nil {
			exitErr("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", layoutID)
		return
	}

	title := layoutID
	if l, err := layout.Get(layoutID); err == nil {
		title = l.Title
	}

	scores, err := store.TopScores(layoutID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crystalquest play %s' to set the first high score!\n", layoutID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(layoutID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-8s  %-5s  %-8s  %s\n", "Layout", "Sessions", "Best", "Level", "Average", "Last played")
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %-8d  %-8d  %-5d  %-8.0f  %s\n",
			s.LayoutID, s.Sessions, s.HighScore, s.BestLevel, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
