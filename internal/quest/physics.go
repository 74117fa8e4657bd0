package quest

import (
	"github.com/vovakirdan/crystal-quest/internal/config"
	"github.com/vovakirdan/crystal-quest/internal/core"
)

// Physics integrates player and enemy motion for one fixed step.
// It only touches kinematics; life loss is reported back to the caller.
type Physics struct {
	Gravity   float64 // Added to velY every tick
	Friction  float64 // velX multiplier when no direction is held
	Width     float64 // World width, used for the horizontal clamp and enemy edges
	Height    float64 // World height; falling below it loses a life
	Tolerance float64 // Enemy foot-to-platform-top band
}

// NewPhysics builds the integrator from tuning.
func NewPhysics(cfg config.QuestConfig) Physics {
	return Physics{
		Gravity:   cfg.Physics.Gravity,
		Friction:  cfg.Physics.Friction,
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Tolerance: cfg.Enemies.PatrolTolerance,
	}
}

// StepPlayer advances the player by one tick and reports whether it fell
// below the bottom of the world.
func (ph Physics) StepPlayer(p *Player, in core.InputFrame, platforms []Platform) (fell bool) {
	// Horizontal intent; friction decays velX toward zero but never snaps it
	switch {
	case in.Has(core.ActionLeft):
		p.Vel.X = -p.Speed
		p.Facing = FacingLeft
	case in.Has(core.ActionRight):
		p.Vel.X = p.Speed
		p.Facing = FacingRight
	default:
		p.Vel.X *= ph.Friction
	}

	// Holding jump re-triggers on every grounded tick
	if in.Has(core.ActionJump) && p.Grounded {
		p.Vel.Y = -p.JumpPower
		p.Grounded = false
	}

	p.Vel.Y += ph.Gravity

	p.Body.X += p.Vel.X
	p.Body.Y += p.Vel.Y
	p.Stride += core.AbsF(p.Vel.X)

	ph.ResolvePlatforms(p, platforms)

	p.Body.X = core.ClampF(p.Body.X, 0, ph.Width-p.Body.W)

	return p.Body.Y > ph.Height
}

// ResolvePlatforms lands the player on a platform it overlaps while moving
// down. Overlaps are handled in platform order; a landing zeroes velY, so
// later overlaps in the same pass no longer qualify.
func (ph Physics) ResolvePlatforms(p *Player, platforms []Platform) {
	p.Grounded = false
	for _, pl := range platforms {
		if !core.Overlaps(p.Body, pl.Body) {
			continue
		}
		if p.Vel.Y > 0 {
			p.Body.Y = pl.Body.Y - p.Body.H
			p.Vel.Y = 0
			p.Grounded = true
		}
	}
}

// StepEnemy moves the enemy one tick along its patrol and turns it around
// when it walks off its platform or reaches a screen edge.
func (ph Physics) StepEnemy(e *Enemy, platforms []Platform) {
	e.Body.X += e.Speed * float64(e.Direction)

	if !ph.Supported(*e, platforms) || e.Body.X <= 0 || e.Body.Right() >= ph.Width {
		e.Direction = -e.Direction
	}
}

// Supported reports whether some platform lies under the enemy's feet: the
// enemy's horizontal span must reach into the platform and its foot must sit
// within Tolerance of the platform top. The first match wins.
func (ph Physics) Supported(e Enemy, platforms []Platform) bool {
	foot := e.Body.Bottom()
	for _, pl := range platforms {
		if e.Body.X > pl.Body.X-e.Body.W &&
			e.Body.X < pl.Body.Right() &&
			foot >= pl.Body.Y-ph.Tolerance &&
			foot <= pl.Body.Y+ph.Tolerance {
			return true
		}
	}
	return false
}
