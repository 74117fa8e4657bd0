package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-quest/internal/layout"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long: `Shows the built-in layout and every layout found in
~/.crystalquest/layouts or passed with --layout.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, _, err := loadQuest()
	if err != nil {
		exitErr("%v", err)
	}
	if _, err := loadLayouts(newLogger("crystalquest"), cfg.Rules.CrystalsNeeded); err != nil {
		exitErr("%v", err)
	}

	layouts := layout.List()
	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range layouts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'crystalquest play <id>' to play a layout.")
}
