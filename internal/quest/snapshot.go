package quest

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/vovakirdan/crystal-quest/internal/core"
)

// walkCycle is the horizontal distance covered by one walk animation frame.
const walkCycle = 15.0

// Snapshot is the read-only projection of a session handed to the renderer
// after each tick. Slices are freshly allocated and safe to keep.
type Snapshot struct {
	Tick     uint64
	State    State
	Terminal bool          // GameOver reached; the host should stop ticking
	Elapsed  time.Duration // Playing time, drives crystal animation

	World     core.Vec2 // World width and height
	Layout    string    // Layout title
	Story     []string  // Story text shown before the start signal
	Player    PlayerView
	Crystals  []CrystalView // Uncollected crystals only
	Enemies   []EnemyView
	Platforms []core.Rect
	HUD       HUD

	Events []Event // Milestones raised during this tick
}

// PlayerView is the player's pose for drawing.
type PlayerView struct {
	Body     core.Rect
	Vel      core.Vec2
	Facing   Facing
	Grounded bool
	Phase    int // 0 idle, 1-2 walk cycle, 3 airborne
}

// CrystalView is a visible crystal.
type CrystalView struct {
	Index int
	Body  core.Rect
}

// EnemyView is an enemy for drawing.
type EnemyView struct {
	Body      core.Rect
	Kind      EnemyKind
	Direction Facing
}

// HUD holds the counters shown to the player.
type HUD struct {
	Score          int
	Lives          int
	Level          int
	Crystals       int
	CrystalsNeeded int
}

// Snapshot projects the current state without advancing it.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		State:    s.state,
		Terminal: s.state == StateGameOver,
		Elapsed:  time.Duration(s.tick) * time.Second / time.Duration(s.tickRate),
		World:    core.Vec2{X: s.cfg.World.Width, Y: s.cfg.World.Height},
		Layout:   s.layout.Title,
		Story:    s.layout.Story,
		Player: PlayerView{
			Body:     s.player.Body,
			Vel:      s.player.Vel,
			Facing:   s.player.Facing,
			Grounded: s.player.Grounded,
			Phase:    animPhase(s.player),
		},
		Crystals:  make([]CrystalView, 0, len(s.crystals)),
		Enemies:   make([]EnemyView, len(s.enemies)),
		Platforms: make([]core.Rect, len(s.platforms)),
		HUD: HUD{
			Score:          s.score,
			Lives:          s.lives,
			Level:          s.level,
			Crystals:       s.crystalsCollected,
			CrystalsNeeded: s.cfg.Rules.CrystalsNeeded,
		},
	}

	for i, c := range s.crystals {
		if !c.Collected {
			snap.Crystals = append(snap.Crystals, CrystalView{Index: i, Body: c.Body})
		}
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = EnemyView{Body: e.Body, Kind: e.Kind, Direction: e.Direction}
	}
	for i, p := range s.platforms {
		snap.Platforms[i] = p.Body
	}
	if len(s.events) > 0 {
		snap.Events = append([]Event(nil), s.events...)
	}

	return snap
}

// animPhase derives the walk frame from grounded state and distance travelled.
func animPhase(p Player) int {
	switch {
	case !p.Grounded:
		return 3
	case core.AbsF(p.Vel.X) < 0.5:
		return 0
	default:
		return 1 + int(p.Stride/walkCycle)%2
	}
}

// Hash returns an FNV-1a digest of the observable state for determinism checks.
// Events, story text and the layout title are not part of the digest.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putF := func(v float64) {
		putU(math.Float64bits(v))
	}
	putI := func(v int) {
		putU(uint64(int64(v)))
	}
	putRect := func(r core.Rect) {
		putF(r.X)
		putF(r.Y)
		putF(r.W)
		putF(r.H)
	}

	putU(s.Tick)
	putI(int(s.State))
	putI(s.HUD.Score)
	putI(s.HUD.Lives)
	putI(s.HUD.Level)
	putI(s.HUD.Crystals)

	putRect(s.Player.Body)
	putF(s.Player.Vel.X)
	putF(s.Player.Vel.Y)
	putI(int(s.Player.Facing))
	if s.Player.Grounded {
		putI(1)
	} else {
		putI(0)
	}

	putI(len(s.Crystals))
	for _, c := range s.Crystals {
		putI(c.Index)
	}
	for _, e := range s.Enemies {
		putRect(e.Body)
		putI(int(e.Direction))
	}

	return h.Sum64()
}
