package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/quest"
	"github.com/vovakirdan/crystal-quest/internal/storage"
)

// dropLayout drops the player through one crystal and then off the bottom.
func dropLayout() layout.Layout {
	return layout.Layout{
		ID:        "drop",
		Title:     "Drop",
		Platforms: []layout.Box{{X: 600, Y: 100, W: 100, H: 20}},
		Crystals: []layout.Box{
			{X: 55, Y: 460, W: 20, H: 20},
			{X: 700, Y: 20, W: 20, H: 20},
			{X: 740, Y: 20, W: 20, H: 20},
		},
	}
}

func newTestModel(t *testing.T, opts GameOptions) Model {
	t.Helper()
	if opts.Quest == (config.QuestConfig{}) {
		opts.Quest = config.DefaultQuestConfig()
	}
	if opts.Layout.ID == "" {
		opts.Layout = layout.Classic()
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.gen})
}

func started(t *testing.T, opts GameOptions) Model {
	t.Helper()
	m, cmd := update(t, newTestModel(t, opts), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting should schedule a tick")
	}
	return m
}

func TestModelStartsOnStory(t *testing.T) {
	starts := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		runeKey(" "),
	}

	for _, key := range starts {
		m := newTestModel(t, GameOptions{})
		if m.session.State() != quest.StateStory {
			t.Fatalf("new model should show the story, got %v", m.session.State())
		}
		if !strings.Contains(m.View(), "Press Enter to start") {
			t.Error("story screen should prompt for the start signal")
		}

		m, cmd := update(t, m, key)
		if m.session.State() != quest.StatePlaying {
			t.Errorf("%q should start the session", key.String())
		}
		if cmd == nil {
			t.Errorf("%q should schedule the first tick", key.String())
		}
	}
}

func TestModelIgnoresTicksInStory(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m, cmd := tick(t, m)
	if cmd != nil || m.snap.Tick != 0 {
		t.Error("ticks before the start signal should be dropped")
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := started(t, GameOptions{})

	m, cmd := tick(t, m)
	if m.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.Snapshot().Tick)
	}
	if cmd == nil {
		t.Error("a playing session should schedule the next tick")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := started(t, GameOptions{})

	m, cmd := update(t, m, TickMsg{Gen: m.gen - 1})
	if cmd != nil || m.Snapshot().Tick != 0 {
		t.Error("a tick from an older loop should be ignored")
	}
}

func TestModelPause(t *testing.T) {
	m := started(t, GameOptions{})
	m, _ = tick(t, m)

	m, cmd := update(t, m, runeKey("p"))
	if !m.paused || cmd != nil {
		t.Fatal("p should pause without scheduling ticks")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the pause box")
	}

	m, cmd = tick(t, m)
	if cmd != nil || m.Snapshot().Tick != 1 {
		t.Error("no ticks should run while paused")
	}

	m, cmd = update(t, m, runeKey("p"))
	if m.paused || cmd == nil {
		t.Fatal("p again should resume ticking")
	}
	m, _ = tick(t, m)
	if m.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d, expected 2 after resume", m.Snapshot().Tick)
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m := started(t, GameOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = tick(t, m)
	if vx := m.Snapshot().Player.Vel.X; vx != 5 {
		t.Fatalf("velX = %v, expected 5 while right is held", vx)
	}

	hold := config.DefaultQuestConfig().Input.HoldTicks
	for i := 0; i < hold; i++ {
		m, _ = tick(t, m)
	}
	if vx := m.Snapshot().Player.Vel.X; vx >= 5 {
		t.Errorf("velX = %v, expected friction once the hold window ends", vx)
	}
}

func TestModelGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultQuestConfig()
	cfg.Rules.Lives = 1
	m := started(t, GameOptions{Quest: cfg, Layout: dropLayout(), Store: store})

	var cmd tea.Cmd
	for i := 0; i < 200; i++ {
		m, cmd = tick(t, m)
		if m.Snapshot().Terminal {
			break
		}
	}
	if !m.Snapshot().Terminal {
		t.Fatal("player should run out of lives")
	}
	if cmd != nil {
		t.Error("the tick loop should stop at game over")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view should show the summary")
	}

	for i := 0; i < 5; i++ {
		m, _ = tick(t, m)
	}

	scores, err := store.TopScores("drop", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 100 || scores[0].Level != 1 {
		t.Errorf("saved %d/%d, expected 100/1", scores[0].Score, scores[0].Level)
	}

	m, _ = update(t, m, runeKey("r"))
	if m.session.State() != quest.StateStory {
		t.Errorf("restart should build a fresh session, got %v", m.session.State())
	}
	if hud := m.Snapshot().HUD; hud.Score != 0 || hud.Lives != 1 {
		t.Errorf("HUD after restart = %+v", hud)
	}
	if m.scoreSaved {
		t.Error("restart should reset the saved flag")
	}
}

func TestModelConfigReloadAppliesOnRestart(t *testing.T) {
	m := started(t, GameOptions{Preset: config.DifficultyHard})

	reloaded := config.DefaultQuestConfig()
	reloaded.Rules.Lives = 9
	reloaded.Player.Speed = 7
	m, _ = update(t, m, ConfigMsg{Config: reloaded})

	if m.quest.Rules.Lives != 2 {
		t.Errorf("lives = %d, expected the hard preset to apply to reloads", m.quest.Rules.Lives)
	}
	if m.quest.Player.Speed != 7 {
		t.Errorf("speed = %v, expected the reloaded value", m.quest.Player.Speed)
	}
	if m.Snapshot().HUD.Lives != 3 {
		t.Error("a reload must not touch the running session")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Esc should be ignored when there is no menu to return to")
	}

	m = newTestModel(t, GameOptions{AllowBack: true})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("Esc should leave for the menu")
	}

	m = newTestModel(t, GameOptions{})
	m, cmd = update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := started(t, GameOptions{Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.session.State() != quest.StatePlaying {
		t.Error("resizing should not reset the session")
	}
}
