// Package config provides YAML-based game configuration loading and
// difficulty presets for the knight game.
package config

import (
	"errors"
	"fmt"
)

// KnightConfig contains all configuration for the knight game.
type KnightConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Level    LevelConfig    `yaml:"level"`
	Player   PlayerConfig   `yaml:"player"`
	Combat   CombatConfig   `yaml:"combat"`
	Text     TextConfig     `yaml:"text"`
	Bestiary BestiaryConfig `yaml:"bestiary"`
}

// WorldConfig defines the world extent in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the platforming physics.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // units/s^2, applied downward
	JumpForce float64 `yaml:"jump_force"` // initial upward velocity
	MoveSpeed float64 `yaml:"move_speed"` // horizontal velocity while a move key is down
	MaxDelta  float64 `yaml:"max_delta"`  // upper bound on a frame's delta time, seconds
}

// LevelConfig defines procedural platform layout.
type LevelConfig struct {
	GroundHeight   float64 `yaml:"ground_height"`
	PlatformHeight float64 `yaml:"platform_height"`
	FirstRow       int     `yaml:"first_row"`  // y of the first generated row
	TopMargin      int     `yaml:"top_margin"` // rows stop at height - top_margin
	MinStep        int     `yaml:"min_step"`
	MaxStep        int     `yaml:"max_step"` // exclusive
	EdgeMargin     int     `yaml:"edge_margin"`
	MinWidth       int     `yaml:"min_width"`
	MaxWidth       int     `yaml:"max_width"` // exclusive
	GoalSize       float64 `yaml:"goal_size"`
	GoalOffset     float64 `yaml:"goal_offset"`
	LandingDivisor float64 `yaml:"landing_divisor"` // landing platform width = world width / divisor
}

// PlayerConfig defines the player's body and starting stats.
type PlayerConfig struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Health      float64 `yaml:"health"`
	Power       float64 `yaml:"power"`
	Alignment   int     `yaml:"alignment"`
	Size        float64 `yaml:"size"`
	SpawnY      float64 `yaml:"spawn_y"`
}

// CombatConfig selects the combat ruleset.
type CombatConfig struct {
	Ruleset          string `yaml:"ruleset"` // "standard" or "classic"
	ClassicMaxDamage int    `yaml:"classic_max_damage"`
}

// TextConfig defines message box behavior.
type TextConfig struct {
	ScrollSpeed      float64 `yaml:"scroll_speed"`       // characters per second
	DeathScrollSpeed float64 `yaml:"death_scroll_speed"` // characters per second on the over screen
	MaxLines         int     `yaml:"max_lines"`
	PageDwell        float64 `yaml:"page_dwell"` // seconds a full page stays before overflow continues
}

// BestiaryConfig locates the creature table.
type BestiaryConfig struct {
	Path string `yaml:"path"` // empty means the embedded table
}

// Rulesets.
const (
	RulesetStandard = "standard"
	RulesetClassic  = "classic"
)

// Validate rejects values that would make level generation panic or never
// terminate.
func (c KnightConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Level.MinStep <= 0 || c.Level.MaxStep <= c.Level.MinStep {
		errs = append(errs, fmt.Errorf("level step range [%d,%d) is empty or non-positive", c.Level.MinStep, c.Level.MaxStep))
	}
	if c.Level.MinWidth <= 0 || c.Level.MaxWidth <= c.Level.MinWidth {
		errs = append(errs, fmt.Errorf("platform width range [%d,%d) is empty", c.Level.MinWidth, c.Level.MaxWidth))
	}
	// Row x positions are drawn from int(width) - 2*edge_margin columns.
	if int(c.World.Width)-2*c.Level.EdgeMargin < 1 {
		errs = append(errs, fmt.Errorf("edge margin %d leaves no room in width %v", c.Level.EdgeMargin, c.World.Width))
	}
	if c.Level.PlatformHeight <= 0 || c.Level.GroundHeight <= 0 || c.Level.LandingDivisor <= 0 {
		errs = append(errs, errors.New("platform, ground and landing sizes must be positive"))
	}
	if c.Player.Size <= 0 || c.Player.Health <= 0 {
		errs = append(errs, errors.New("player size and health must be positive"))
	}
	if c.Physics.MaxDelta <= 0 {
		errs = append(errs, errors.New("physics max_delta must be positive"))
	}
	switch c.Combat.Ruleset {
	case RulesetStandard:
	case RulesetClassic:
		if c.Combat.ClassicMaxDamage <= 0 {
			errs = append(errs, errors.New("classic_max_damage must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown combat ruleset %q", c.Combat.Ruleset))
	}
	if c.Text.MaxLines <= 0 {
		errs = append(errs, errors.New("text max_lines must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid knight config: %w", errors.Join(errs...))
	}
	return nil
}
