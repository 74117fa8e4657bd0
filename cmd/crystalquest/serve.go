package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Crystal Quest SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game with a layout menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crystalquest/host_key

Examples:
  crystalquest serve                           # Listen on :23234
  crystalquest serve --ssh :2222               # Listen on port 2222
  crystalquest serve --host-key ./my_host_key  # Use specific host key
  crystalquest serve --difficulty hard         # Tuning for every player

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("crystalquest-ssh")

	questCfg, _, err := loadQuest()
	if err != nil {
		exitErr("%v", err)
	}
	if _, err := loadLayouts(logger, questCfg.Rules.CrystalsNeeded); err != nil {
		exitErr("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Quest:       questCfg,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		exitErr("creating server: %v", err)
	}

	fmt.Printf("Starting Crystal Quest SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitErr("server: %v", err)
	}
}
