// Package quest implements the Crystal Quest simulation: entity records, the
// physics integrator, the session state machine and the per-frame tick.
// It owns no scheduler and does no rendering; a host calls Tick once per
// frame and hands the returned Snapshot to a renderer.
package quest

import (
	"fmt"

	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
)

// State is the session phase.
type State int

const (
	StateStory    State = iota // Waiting for the start signal
	StatePlaying               // Ticking
	StateGameOver              // Terminal; only the summary is produced
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStory:
		return "story"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session owns every piece of mutable game state. Nothing is shared at
// package scope; a restart means building a new Session.
type Session struct {
	cfg     config.QuestConfig
	physics Physics
	layout  layout.Layout

	state             State
	score             int
	lives             int
	level             int
	crystalsCollected int

	player    Player
	platforms []Platform
	crystals  []Crystal
	enemies   []Enemy

	tick     uint64
	tickRate int
	events   []Event
}

// NewSession builds a session in the Story state from tuning and a layout.
// tickRate is only used to derive elapsed time for animation; values <= 0
// fall back to 60.
func NewSession(cfg config.QuestConfig, lay layout.Layout, tickRate int) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := lay.Validate(cfg.Rules.CrystalsNeeded); err != nil {
		return nil, err
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Session{
		cfg:      cfg,
		physics:  NewPhysics(cfg),
		layout:   lay,
		state:    StateStory,
		lives:    cfg.Rules.Lives,
		level:    1,
		tickRate: tickRate,
		player: Player{
			Body:      core.NewRect(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
			Speed:     cfg.Player.Speed,
			JumpPower: cfg.Player.JumpPower,
			Facing:    FacingRight,
		},
	}

	s.platforms = make([]Platform, len(lay.Platforms))
	for i, b := range lay.Platforms {
		s.platforms[i] = Platform{Body: rectOf(b)}
	}

	s.crystals = make([]Crystal, len(lay.Crystals))
	for i, b := range lay.Crystals {
		s.crystals[i] = Crystal{Body: rectOf(b)}
	}

	s.enemies = make([]Enemy, len(lay.Enemies))
	for i, e := range lay.Enemies {
		kind, err := ParseEnemyKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("quest: layout %s enemy %d: %w", lay.ID, i, err)
		}
		s.enemies[i] = Enemy{
			Body:      rectOf(e.Box),
			Speed:     e.Speed,
			Direction: FacingRight,
			Kind:      kind,
		}
	}

	return s, nil
}

// Start fires the start signal. It only has an effect in the Story state
// and reports whether the session moved to Playing.
func (s *Session) Start() bool {
	if s.state != StateStory {
		return false
	}
	s.state = StatePlaying
	return true
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// GameState summarizes the session for the host.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		Level:    s.level,
		GameOver: s.state == StateGameOver,
		Started:  s.state != StateStory,
	}
}

// LayoutID returns the ID of the layout the session was built from.
func (s *Session) LayoutID() string {
	return s.layout.ID
}

// loseLife takes a life and puts the player back at spawn.
func (s *Session) loseLife(cause Cause) {
	s.lives--
	s.emit(Event{Kind: EventLifeLost, Cause: cause, Lives: s.lives})
	s.resetPlayer()
}

// resetPlayer moves the player to spawn and zeroes its velocity. Running out
// of lives is detected here, so GameOver is entered on the same tick.
func (s *Session) resetPlayer() {
	s.player.Body.X = s.cfg.Player.SpawnX
	s.player.Body.Y = s.cfg.Player.SpawnY
	s.player.Vel = core.Vec2{}

	if s.lives <= 0 && s.state != StateGameOver {
		s.state = StateGameOver
		s.emit(Event{Kind: EventGameOver, Score: s.score, Level: s.level})
	}
}

// updateCrystals collects every uncollected crystal the player overlaps.
// Reaching the threshold advances the level immediately, inside the loop,
// so later crystals are tested against the reset flags and spawn position.
func (s *Session) updateCrystals() {
	for i := range s.crystals {
		c := &s.crystals[i]
		if c.Collected || !core.Overlaps(s.player.Body, c.Body) {
			continue
		}

		c.Collected = true
		s.crystalsCollected++
		s.score += s.cfg.Rules.CrystalPoints
		s.emit(Event{Kind: EventCrystal, Crystal: i, Score: s.score})

		if s.crystalsCollected >= s.cfg.Rules.CrystalsNeeded {
			s.nextLevel()
		}
	}
}

// nextLevel advances the level: counters and crystals reset, every enemy
// speeds up, and the player returns to spawn.
func (s *Session) nextLevel() {
	s.level++
	s.crystalsCollected = 0
	s.score += s.cfg.Rules.LevelBonus

	for i := range s.crystals {
		s.crystals[i].Collected = false
	}

	for i := range s.enemies {
		s.enemies[i].Speed *= s.cfg.Rules.EnemySpeedScale
	}

	s.emit(Event{Kind: EventLevelUp, Level: s.level, Score: s.score})
	s.resetPlayer()
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	s.events = append(s.events, e)
}
