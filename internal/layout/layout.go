// Package layout describes the static content of a level: platforms, crystal
// spots and enemy spawns. Layouts are loaded from YAML or registered in code
// and stay immutable for the whole session.
package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned by Validate for malformed layouts.
var ErrInvalidLayout = errors.New("layout: invalid layout")

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EnemySpawn places one patrolling enemy.
type EnemySpawn struct {
	Box   `yaml:",inline"`
	Speed float64 `yaml:"speed"` // Horizontal velocity magnitude per tick
	Kind  string  `yaml:"kind"`  // spiky, ghost or blob
}

// Layout is a complete single-screen level.
type Layout struct {
	ID        string       `yaml:"id"`
	Title     string       `yaml:"title"`
	Story     []string     `yaml:"story"`
	Platforms []Box        `yaml:"platforms"`
	Crystals  []Box        `yaml:"crystals"`
	Enemies   []EnemySpawn `yaml:"enemies"`
}

// Kinds lists the enemy kinds a layout may use.
var Kinds = []string{"spiky", "ghost", "blob"}

// Validate checks the layout against the number of crystals a level needs.
func (l Layout) Validate(crystalsNeeded int) error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLayout)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("%w: %s has no platforms", ErrInvalidLayout, l.ID)
	}
	if len(l.Crystals) != crystalsNeeded {
		return fmt.Errorf("%w: %s has %d crystals, needs exactly %d", ErrInvalidLayout, l.ID, len(l.Crystals), crystalsNeeded)
	}
	for i, b := range l.Platforms {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: %s platform %d has non-positive size", ErrInvalidLayout, l.ID, i)
		}
	}
	for i, b := range l.Crystals {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: %s crystal %d has non-positive size", ErrInvalidLayout, l.ID, i)
		}
	}
	for i, e := range l.Enemies {
		if e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("%w: %s enemy %d has non-positive size", ErrInvalidLayout, l.ID, i)
		}
		if !knownKind(e.Kind) {
			return fmt.Errorf("%w: %s enemy %d has unknown kind %q", ErrInvalidLayout, l.ID, i, e.Kind)
		}
	}
	return nil
}

func knownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
