package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/game"
	"github.com/vovakirdan/tui-starblitz/internal/platform/tui"
	"github.com/vovakirdan/tui-starblitz/internal/registry"
	"github.com/vovakirdan/tui-starblitz/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run in the current terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			game.SetConfigPath(flagConfig)
		}
		if flagDifficulty != "" {
			game.SetDifficulty(config.DifficultyPreset(flagDifficulty))
		}

		g, err := registry.Create("starblitz")
		if err != nil {
			return err
		}

		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}

		cfg := core.DefaultConfig()
		cfg.ScreenW = w
		cfg.ScreenH = h
		cfg.TickRate = flagFPS
		cfg.Seed = flagSeed

		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Scores just won't be saved; the run itself is unaffected.
			fmt.Fprintf(os.Stderr, "warning: scores unavailable: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		return tui.Run(g, store, cfg)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML gameplay config")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "difficulty preset: easy, normal or hard")
}
