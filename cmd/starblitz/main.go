// Star Blitz is a terminal arcade shooter.
//
// Usage:
//
//	starblitz play                start a run in the current terminal
//	starblitz scores              show the local scoreboard
//	starblitz serve               host the game over SSH
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "starblitz",
	Short: "A wave-based arcade shooter for your terminal",
	Long: `Star Blitz is a top-down arcade shooter rendered entirely in the
terminal. Fight escalating waves of enemies, collect power-ups and
chase the local high score, or host a session over SSH for friends.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "simulation and render rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starblitz/scores.db", "path to the scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
