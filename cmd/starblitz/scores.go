package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starblitz/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local scoreboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.TopScores("starblitz", 10)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet. Play a round first!")
			return nil
		}

		fmt.Println("Star Blitz top scores")
		fmt.Println()
		fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "#", "SCORE", "WAVE", "DATE")
		for i, e := range entries {
			fmt.Printf("  %-4s  %-10d  %-6d  %s\n",
				fmt.Sprintf("%d.", i+1), e.Score, e.Wave,
				e.CreatedAt.Format("2006-01-02 15:04"))
		}

		best, err := store.HighScore("starblitz")
		if err != nil {
			return err
		}
		bestWave, err := store.BestWave("starblitz")
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Best: %d (wave %d)\n", best, bestWave)
		return nil
	},
}
