package quest

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCrystal  EventKind = iota // A crystal was collected
	EventLevelUp                   // The last needed crystal was collected
	EventLifeLost                  // The player fell off or touched an enemy
	EventGameOver                  // Lives ran out
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCrystal:
		return "crystal"
	case EventLevelUp:
		return "level_up"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause explains a lost life.
type Cause int

const (
	CauseNone Cause = iota
	CauseFell
	CauseEnemy
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Event is a game-domain milestone reported in the tick's snapshot.
// Only the fields relevant to Kind are set.
type Event struct {
	Tick    uint64
	Kind    EventKind
	Cause   Cause
	Crystal int // Index of the collected crystal
	Lives   int
	Level   int
	Score   int
}
