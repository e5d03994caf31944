package config

import (
	_ "embed"
)

//go:embed defaults/knight.yaml
var defaultKnightYAML []byte

// DefaultKnightConfig returns the hardcoded knight configuration.
func DefaultKnightConfig() KnightConfig {
	return KnightConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:   980,
			JumpForce: 500,
			MoveSpeed: 300,
			MaxDelta:  0.05,
		},
		Level: LevelConfig{
			GroundHeight:   100,
			PlatformHeight: 10,
			FirstRow:       200,
			TopMargin:      100,
			MinStep:        30,
			MaxStep:        80,
			EdgeMargin:     50,
			MinWidth:       80,
			MaxWidth:       180,
			GoalSize:       20,
			GoalOffset:     20,
			LandingDivisor: 5,
		},
		Player: PlayerConfig{
			Name:        "Player",
			Description: "A lone knight.",
			Health:      100,
			Power:       10,
			Alignment:   1,
			Size:        20,
			SpawnY:      100,
		},
		Combat: CombatConfig{
			Ruleset:          RulesetStandard,
			ClassicMaxDamage: 50,
		},
		Text: TextConfig{
			ScrollSpeed:      15,
			DeathScrollSpeed: 5,
			MaxLines:         6,
			PageDwell:        1.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "knight", "knight_classic":
		return defaultKnightYAML
	default:
		return nil
	}
}
