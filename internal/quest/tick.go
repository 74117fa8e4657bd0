package quest

import (
	"github.com/vovakirdan/crystal-quest/internal/core"
)

// Tick advances the session by one frame and returns what the renderer
// should draw.
//
// In Story nothing changes. In Playing the player moves first, then each
// enemy moves and is tested against the player, then crystals are picked up.
// If lives run out part-way through, the rest of the tick is skipped. In
// GameOver the snapshot is marked Terminal and the host should stop calling.
func (s *Session) Tick(in core.InputFrame) Snapshot {
	s.events = s.events[:0]

	if s.state == StatePlaying {
		s.tick++
		s.step(in)
	}

	return s.Snapshot()
}

func (s *Session) step(in core.InputFrame) {
	if s.physics.StepPlayer(&s.player, in, s.platforms) {
		s.loseLife(CauseFell)
		if s.state != StatePlaying {
			return
		}
	}

	for i := range s.enemies {
		s.physics.StepEnemy(&s.enemies[i], s.platforms)

		if core.Overlaps(s.player.Body, s.enemies[i].Body) {
			s.loseLife(CauseEnemy)
			if s.state != StatePlaying {
				return
			}
		}
	}

	s.updateCrystals()
}
