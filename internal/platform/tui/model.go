package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
	"github.com/vovakirdan/crystal-quest/internal/quest"
	"github.com/vovakirdan/crystal-quest/internal/storage"
	"github.com/vovakirdan/crystal-quest/internal/view"
)

// GameOptions configures a hosted play session.
type GameOptions struct {
	Quest     config.QuestConfig
	Preset    config.DifficultyPreset // Reapplied to tuning reloaded by Watcher
	Layout    layout.Layout
	Runtime   core.RuntimeConfig
	Store     *storage.Store  // Optional; nil disables high scores
	Logger    *log.Logger     // Optional
	Watcher   *config.Watcher // Optional; reloads apply to the next session
	AllowBack bool            // Esc/B leaves the game for the layout menu
}

// Model is the Bubble Tea model hosting one Crystal Quest session at a time.
// It is the frame scheduler for the session: ticks run only while the
// session is Playing and not paused.
type Model struct {
	opts       GameOptions
	quest      config.QuestConfig
	session    *quest.Session
	snap       quest.Snapshot
	screen     *core.Screen
	keys       *KeyMapper
	hold       KeyHold
	logger     *log.Logger
	gen        int // Current tick loop; TickMsgs from older loops are dropped
	paused     bool
	scoreSaved bool // Whether the score has been saved for the current game over
	quitting   bool
	back       bool
}

// NewModel creates a model with a fresh session on the story screen.
func NewModel(opts GameOptions) (Model, error) {
	def := core.DefaultConfig()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = def.TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:   opts,
		quest:  opts.Quest,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:   NewKeyMapper(),
		logger: logger,
	}
	if err := m.newSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newSession replaces the session with a fresh one built from the current
// tuning. This is the restart path; nothing carries over.
func (m *Model) newSession() error {
	s, err := quest.NewSession(m.quest, m.opts.Layout, m.opts.Runtime.TickRate)
	if err != nil {
		return fmt.Errorf("tui: cannot start session: %w", err)
	}
	m.session = s
	m.snap = s.Snapshot()
	m.hold = NewKeyHold(m.quest.Input.HoldTicks)
	m.gen = nextTickGen()
	m.paused = false
	m.scoreSaved = false
	return nil
}

// Init starts listening for config reloads. Ticking starts with the start signal.
func (m Model) Init() tea.Cmd {
	return waitForConfig(m.opts.Watcher)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case ConfigMsg:
		cfg := msg.Config
		config.ApplyQuestPreset(&cfg, m.opts.Preset)
		m.quest = cfg
		m.logger.Info("config reloaded, applies to the next session", "path", m.opts.Watcher.Path())
		return m, waitForConfig(m.opts.Watcher)

	case ConfigErrMsg:
		m.logger.Warn("config reload failed, keeping previous tuning", "error", msg.Err)
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.opts.AllowBack {
		m.back = true
		m.gen = nextTickGen()
		return m, tea.Quit
	}

	switch m.session.State() {
	case quest.StateStory:
		if action == core.ActionStart || action == core.ActionJump {
			if m.session.Start() {
				m.snap = m.session.Snapshot()
				return m, m.startTicking()
			}
		}

	case quest.StatePlaying:
		switch action {
		case core.ActionPause:
			m.paused = !m.paused
			if m.paused {
				m.hold.Release()
				m.gen = nextTickGen()
				return m, nil
			}
			return m, m.startTicking()
		case core.ActionLeft, core.ActionRight, core.ActionJump:
			if !m.paused {
				m.hold.Press(action)
			}
		}

	case quest.StateGameOver:
		if action == core.ActionRestart {
			if err := m.newSession(); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
		}
	}

	return m, nil
}

// startTicking begins a new tick loop, orphaning any loop still in flight.
func (m *Model) startTicking() tea.Cmd {
	m.gen = nextTickGen()
	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// handleTick runs one simulation step. The loop ends at game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.session.State() != quest.StatePlaying {
		return m, nil
	}

	m.snap = m.session.Tick(m.hold.Frame())
	m.hold.Advance()

	for _, e := range m.snap.Events {
		m.logger.Debug("event", "kind", e.Kind, "tick", e.Tick, "score", m.snap.HUD.Score, "lives", m.snap.HUD.Lives)
	}

	if m.snap.Terminal {
		m.saveScore()
		return m, nil
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// saveScore records the finished session once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	hud := m.snap.HUD
	if m.opts.Store == nil || hud.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.session.LayoutID(), hud.Score, hud.Level); err != nil {
		m.logger.Warn("could not save score", "layout", m.session.LayoutID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	view.Draw(m.screen, m.snap)

	dir := config.UserDir("screenshots")
	if dir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.LayoutID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view.Draw(m.screen, m.snap)
	if m.paused {
		view.DrawPaused(m.screen)
	}

	return RenderScreen(m.screen)
}

// Snapshot returns the last snapshot produced by the session.
func (m Model) Snapshot() quest.Snapshot {
	return m.snap
}

// BackToMenu returns true if the player asked to return to the layout menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one layout. It reports whether the
// player left for the layout menu rather than quitting.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
