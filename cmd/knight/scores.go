package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent battles",
	Long: `Display the top 10 scores and the last 10 battles for a mode.

Examples:
  knight scores
  knight scores knight_classic
  knight scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and battles")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "knight"
	if len(args) > 0 {
		gameID = args[0]
	}

	var title string
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}
	if title == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'knight list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			exitf("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'knight play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, shortID(entry.RunID), dateStr)
	}

	battles, err := store.RecentBattles(gameID, 10)
	if err == nil && len(battles) > 0 {
		fmt.Println()
		fmt.Println("Recent Battles")
		fmt.Println()
		fmt.Printf("  %-24s  %-7s  %-5s  %s\n", "Enemy", "Outcome", "Turns", "Date")
		fmt.Printf("  %-24s  %-7s  %-5s  %s\n", "-----", "-------", "-----", "----")
		for _, b := range battles {
			fmt.Printf("  %-24s  %-7s  %-5d  %s\n", b.Enemy, b.Outcome, b.Turns, b.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Battles: %d  |  Victories: %d\n",
			stats.HighScore, stats.GamesCount, stats.Battles, stats.Victories)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
