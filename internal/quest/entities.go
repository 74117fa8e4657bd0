package quest

import (
	"fmt"

	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/layout"
)

// Facing is the horizontal direction a body points in: +1 right, -1 left.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// EnemyKind selects the enemy's look. The simulation never branches on it.
type EnemyKind int

const (
	EnemySpiky EnemyKind = iota
	EnemyGhost
	EnemyBlob
)

// String returns the layout name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemySpiky:
		return "spiky"
	case EnemyGhost:
		return "ghost"
	case EnemyBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a layout kind name into an EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch s {
	case "spiky":
		return EnemySpiky, nil
	case "ghost":
		return EnemyGhost, nil
	case "blob":
		return EnemyBlob, nil
	}
	return 0, fmt.Errorf("quest: unknown enemy kind %q", s)
}

// Player is the controllable character. It is created once per session and
// repositioned, never destroyed, when a life is lost.
type Player struct {
	Body      core.Rect
	Vel       core.Vec2
	Speed     float64 // Horizontal velocity while a direction is held
	JumpPower float64 // Upward velocity applied on jump
	Grounded  bool
	Facing    Facing
	Stride    float64 // Horizontal distance travelled, drives the walk cycle
}

// Platform is static level geometry.
type Platform struct {
	Body core.Rect
}

// Crystal is a collectible. Collected flags are reset on every level advance.
type Crystal struct {
	Body      core.Rect
	Collected bool
}

// Enemy paces back and forth along the platform it stands on.
// Enemies persist across levels; Speed grows on every level advance.
type Enemy struct {
	Body      core.Rect
	Speed     float64 // Horizontal velocity magnitude per tick
	Direction Facing
	Kind      EnemyKind
}

func rectOf(b layout.Box) core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}
