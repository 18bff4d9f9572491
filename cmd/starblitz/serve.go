package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starblitz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Start an SSH server that serves Star Blitz to anyone who connects.
Each connection gets its own session sized to the client terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			GameID:      "starblitz",
			HostKeyPath: flagHostKey,
			DBPath:      flagSSHDBPath,
			IdleTimeout: flagIdleTimeout,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Serving Star Blitz on %s\n", srv.Addr())
		fmt.Println("Press Ctrl+C to stop")
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "address to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "path to the SSH host key (generated if missing)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.starblitz/scores.db", "path to the scores database")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "disconnect idle sessions after this long")
}
