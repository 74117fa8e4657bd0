package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/platform/tui"
	"github.com/vovakirdan/crystal-quest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a layout from a menu",
	Long: `Start Crystal Quest in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a layout.
Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select layout
  Tab          - High scores
  Q            - Quit

Examples:
  crystalquest menu
  crystalquest menu --fps 30 --difficulty easy`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger("crystalquest")
	defer closeLog()

	questCfg, preset, err := loadQuest()
	if err != nil {
		exitErr("%v", err)
	}
	if _, err := loadLayouts(newLogger("crystalquest"), questCfg.Rules.CrystalsNeeded); err != nil {
		exitErr("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.LayoutID == "" {
			break
		}
		lay, err := layout.Get(menuResult.LayoutID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		back, err := tui.Run(tui.GameOptions{
			Quest:     questCfg,
			Preset:    preset,
			Layout:    lay,
			Runtime:   cfg,
			Store:     store,
			Logger:    logger,
			AllowBack: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
