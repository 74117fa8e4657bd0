package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the built-in tuning, matching defaults/quest.yaml.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:  0.8,
			Friction: 0.8,
		},
		Player: PlayerConfig{
			SpawnX:    50,
			SpawnY:    400,
			Width:     30,
			Height:    40,
			Speed:     5,
			JumpPower: 15,
		},
		Rules: RulesConfig{
			Lives:           3,
			CrystalsNeeded:  3,
			CrystalPoints:   100,
			LevelBonus:      500,
			EnemySpeedScale: 1.2,
		},
		Enemies: EnemyConfig{
			PatrolTolerance: 5,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultQuestYAML
}
