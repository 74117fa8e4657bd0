// crystalquest is a terminal platformer: collect the crystals on every level
// while dodging the creatures that patrol the ledges.
//
// Usage:
//
//	crystalquest list              - List available layouts
//	crystalquest play [layout]     - Play a layout (default: classic)
//	crystalquest menu              - Pick layouts interactively
//	crystalquest serve             - Start SSH server for remote play
//	crystalquest scores [layout]   - Show high scores for a layout
//	crystalquest sim               - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.crystalquest/scores.db)
//	--config <path>       - Tuning YAML (default: search order)
//	--difficulty <preset> - easy, normal or hard
//	--layout <file>       - Register an extra layout YAML file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/layout"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayoutFile string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crystalquest",
	Short: "Crystal Quest - a platformer in your terminal",
	Long: `Crystal Quest is a single-screen platformer played in the terminal.
Collect every crystal to advance a level; enemies get faster each level.

Available commands:
  list     - Show all available layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run the game headless with a scripted input

Examples:
  crystalquest play
  crystalquest play --difficulty hard
  crystalquest menu
  crystalquest serve --ssh :2222
  crystalquest sim --script hop-right --ticks 3600`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLayoutFile, "layout", "", "Extra layout YAML file to register")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// exitErr prints err the way every subcommand reports failures and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds a stderr logger at the --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// newFileLogger builds a logger for full-screen programs, where writing to
// the terminal would tear the display. Falls back to discarding output.
func newFileLogger(prefix string) (*log.Logger, func()) {
	dir := config.UserDir("")
	if dir == "" {
		return nil, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "play.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }
}

// loadQuest loads tuning from --config and applies --difficulty.
func loadQuest() (config.QuestConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.QuestConfig{}, "", err
	}
	cfg, err := config.LoadQuest(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyQuestPreset(&cfg, preset)
	return cfg, preset, nil
}

// loadLayouts registers user layouts from ~/.crystalquest/layouts and the
// --layout file. Broken user files are reported but do not stop the game.
// It returns the id of the --layout file, if one was given.
func loadLayouts(logger *log.Logger, crystalsNeeded int) (string, error) {
	if dir := config.UserDir("layouts"); dir != "" {
		ids, err := layout.LoadDir(dir, crystalsNeeded)
		if err != nil {
			logger.Warn("some user layouts were skipped", "dir", dir, "error", err)
		}
		if len(ids) > 0 {
			logger.Debug("loaded user layouts", "dir", dir, "ids", ids)
		}
	}

	if flagLayoutFile == "" {
		return "", nil
	}
	l, err := layout.LoadFile(flagLayoutFile, crystalsNeeded)
	if err != nil {
		return "", err
	}
	layout.Register(l)
	return l.ID, nil
}
