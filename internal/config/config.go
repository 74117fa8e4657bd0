// Package config provides YAML-based tuning for Crystal Quest: world size,
// physics constants, level rules, and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range tuning values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// QuestConfig contains all tuning for a Crystal Quest session.
type QuestConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Rules   RulesConfig   `yaml:"rules"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Input   InputConfig   `yaml:"input"`
}

// WorldConfig defines the play field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick integration constants.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // Added to velY every tick
	Friction float64 `yaml:"friction"` // velX multiplier when no direction is held
}

// PlayerConfig defines the player body and its spawn point.
type PlayerConfig struct {
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpPower float64 `yaml:"jump_power"`
}

// RulesConfig defines scoring and level progression.
type RulesConfig struct {
	Lives           int     `yaml:"lives"`
	CrystalsNeeded  int     `yaml:"crystals_needed"`
	CrystalPoints   int     `yaml:"crystal_points"`
	LevelBonus      int     `yaml:"level_bonus"`
	EnemySpeedScale float64 `yaml:"enemy_speed_scale"` // Applied to every enemy on level advance
}

// EnemyConfig defines patrol behavior.
type EnemyConfig struct {
	PatrolTolerance float64 `yaml:"patrol_tolerance"` // Foot-to-platform-top band, in world units
}

// InputConfig defines how the terminal host turns key presses into held state.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key stays held after its last press
}

// Validate checks the configuration for values the simulation cannot run with.
func (c QuestConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player wider than the world", ErrInvalidConfig)
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return fmt.Errorf("%w: friction must be in [0, 1], got %v", ErrInvalidConfig, c.Physics.Friction)
	case c.Rules.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidConfig, c.Rules.Lives)
	case c.Rules.CrystalsNeeded < 1:
		return fmt.Errorf("%w: crystals_needed must be at least 1, got %d", ErrInvalidConfig, c.Rules.CrystalsNeeded)
	case c.Rules.EnemySpeedScale <= 0:
		return fmt.Errorf("%w: enemy_speed_scale must be positive", ErrInvalidConfig)
	case c.Enemies.PatrolTolerance < 0:
		return fmt.Errorf("%w: patrol_tolerance must not be negative", ErrInvalidConfig)
	}
	return nil
}
