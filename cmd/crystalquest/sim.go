package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/quest"
)

var (
	flagSimTicks  int
	flagSimScript string
)

var simCmd = &cobra.Command{
	Use:   "sim [layout]",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, feeding a scripted input each tick.
Milestones are logged and the final HUD and state hash are printed, which
makes it easy to compare two builds tick for tick.

Scripts:
  idle       - no input
  right      - hold right
  hop-right  - hold right and jump regularly
  zigzag     - walk back and forth, jumping at each turn

Examples:
  crystalquest sim
  crystalquest sim --script zigzag --ticks 7200
  crystalquest sim towers --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagSimScript, "script", "hop-right", "Input script: "+scriptNames())
}

// inputScript returns the keys held on a given tick.
type inputScript func(tick uint64) core.InputFrame

var scripts = map[string]inputScript{
	"idle": func(uint64) core.InputFrame {
		return core.NewInputFrame()
	},
	"right": func(uint64) core.InputFrame {
		return core.InputOf(core.ActionRight)
	},
	"hop-right": func(tick uint64) core.InputFrame {
		if tick%45 < 5 {
			return core.InputOf(core.ActionRight, core.ActionJump)
		}
		return core.InputOf(core.ActionRight)
	},
	"zigzag": func(tick uint64) core.InputFrame {
		phase := tick % 240
		dir := core.ActionRight
		if phase >= 120 {
			dir = core.ActionLeft
		}
		if phase%120 < 4 {
			return core.InputOf(dir, core.ActionJump)
		}
		return core.InputOf(dir)
	},
}

func scriptNames() string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

// simulate drives a session with script for at most ticks ticks, stopping
// early at game over. Every event is passed to logger.
func simulate(s *quest.Session, script inputScript, ticks int, logger *log.Logger) quest.Snapshot {
	s.Start()
	snap := s.Snapshot()
	for i := 0; i < ticks; i++ {
		snap = s.Tick(script(snap.Tick))
		for _, e := range snap.Events {
			logEvent(logger, e)
		}
		if snap.Terminal {
			break
		}
	}
	return snap
}

func logEvent(logger *log.Logger, e quest.Event) {
	switch e.Kind {
	case quest.EventCrystal:
		logger.Debug("crystal collected", "tick", e.Tick, "crystal", e.Crystal, "score", e.Score)
	case quest.EventLevelUp:
		logger.Info("level up", "tick", e.Tick, "level", e.Level, "score", e.Score)
	case quest.EventLifeLost:
		logger.Info("life lost", "tick", e.Tick, "cause", e.Cause, "lives", e.Lives)
	case quest.EventGameOver:
		logger.Warn("game over", "tick", e.Tick, "score", e.Score, "level", e.Level)
	}
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger("crystalquest-sim")

	script, ok := scripts[flagSimScript]
	if !ok {
		exitErr("unknown script %q (want %s)", flagSimScript, scriptNames())
	}

	questCfg, _, err := loadQuest()
	if err != nil {
		exitErr("%v", err)
	}
	fileID, err := loadLayouts(logger, questCfg.Rules.CrystalsNeeded)
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
		exitErr("%v", err)
	}

	session, err := quest.NewSession(questCfg, lay, flagFPS)
	if err != nil {
		exitErr("%v", err)
	}

	logger.Info("simulating", "layout", layoutID, "script", flagSimScript, "ticks", flagSimTicks)
	snap := simulate(session, script, flagSimTicks, logger)

	hud := snap.HUD
	fmt.Printf("Layout:   %s\n", lay.Title)
	fmt.Printf("Ticks:    %d (%.1fs)\n", snap.Tick, snap.Elapsed.Seconds())
	fmt.Printf("State:    %s\n", snap.State)
	fmt.Printf("Score:    %d\n", hud.Score)
	fmt.Printf("Level:    %d\n", hud.Level)
	fmt.Printf("Lives:    %d\n", hud.Lives)
	fmt.Printf("Crystals: %d/%d\n", hud.Crystals, hud.CrystalsNeeded)
	fmt.Printf("Hash:     %016x\n", snap.Hash())
}
