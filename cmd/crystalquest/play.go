package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/platform/tui"
	"github.com/vovakirdan/crystal-quest/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Start playing the given layout (default: classic, or the --layout file).

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  Enter            - Start (on the story screen)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - 5 lives, enemies speed up 1.1x per level
  normal - 3 lives, enemies speed up 1.2x per level
  hard   - 2 lives, enemies speed up 1.35x per level

With --watch, edits to the tuning file are picked up while playing and
apply from the next restart.

Examples:
  crystalquest play
  crystalquest play --difficulty hard
  crystalquest play --layout ./towers.yaml
  crystalquest play --config ./quest.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newFileLogger("crystalquest")
	defer closeLog()

	questCfg, preset, err := loadQuest()
	if err != nil {
		exitErr("%v", err)
	}

	fileID, err := loadLayouts(newLogger("crystalquest"), questCfg.Rules.CrystalsNeeded)
	if err != nil {
		exitErr("%v", err)
	}

	layoutID := layout.ClassicID
	switch {
	case len(args) == 1:
		layoutID = args[0]
	case fileID != "":
		layoutID = fileID
	}

	lay, err := layout.Get(layoutID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'crystalquest list' to see available layouts.")
		os.Exit(1)
	}

	var watcher *config.Watcher
	if flagWatch {
		path := config.WatchPath(flagConfig)
		//nolint:errcheck // NewWatcher reports a missing directory below
		os.MkdirAll(filepath.Dir(path), 0o755)
		watcher, err = config.NewWatcher(path)
		if err != nil {
			exitErr("cannot watch %s: %v", path, err)
		}
		defer watcher.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(tui.GameOptions{
		Quest:   questCfg,
		Preset:  preset,
		Layout:  lay,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS},
		Store:   store,
		Logger:  logger,
		Watcher: watcher,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running game: %v", runErr)
	}
}
