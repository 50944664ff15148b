// Package config provides YAML-based configuration loading for the
// simulation tunables: arena bounds, physics constants, spawn timing,
// entity extents, and the life pool.
package config

import "fmt"

// Config is the complete tunable surface of the game. Every value has a
// default matching the reference rules; config files and difficulty
// presets may override these named constants but nothing else.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Targets    TargetsConfig    `yaml:"targets"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Health     HealthConfig     `yaml:"health"`
	Rules      RulesConfig      `yaml:"rules"`
}

// ArenaConfig defines the play-area bounds in world units.
// The y axis grows upward; the origin is the arena center.
type ArenaConfig struct {
	LeftWall   float64 `yaml:"left_wall"`
	RightWall  float64 `yaml:"right_wall"`
	TopWall    float64 `yaml:"top_wall"`
	BottomWall float64 `yaml:"bottom_wall"`
}

// PhysicsConfig defines projectile motion constants.
// Velocities are in world units per tick; gravity in units per tick squared.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	LaunchVelocity float64 `yaml:"launch_velocity"`
}

// SpawnConfig defines the adaptive spawn timer.
// The period after N blocks is difficulty_base^(1/N) * base_period_ms,
// shrinking toward base_period_ms as blocks accumulate.
type SpawnConfig struct {
	BasePeriodMs   float64 `yaml:"base_period_ms"`
	DifficultyBase float64 `yaml:"difficulty_base"`
}

// TargetsConfig defines the ninja columns.
// Offset is the height of the ninja row above the bottom wall.
type TargetsConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"`
}

// ProjectileConfig defines the shuriken extent.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the blocking paddle.
// The paddle width is the column width divided by width_ratio.
type PaddleConfig struct {
	WidthRatio float64 `yaml:"width_ratio"`
	Height     float64 `yaml:"height"`
	Y          float64 `yaml:"y"`
}

// HealthConfig defines the health marker row.
// Offset is the height of the row above the bottom wall.
type HealthConfig struct {
	Offset float64 `yaml:"offset"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig defines the session rules.
type RulesConfig struct {
	MaxLives int `yaml:"max_lives"`
}

// Validate checks that the configuration can drive a session.
// Spawning requires at least one target column, so a bad config must be
// rejected here rather than discovered mid-game.
func (c Config) Validate() error {
	if c.Targets.Count < 1 {
		return fmt.Errorf("config: targets.count must be at least 1, got %d", c.Targets.Count)
	}
	if c.Rules.MaxLives < 1 {
		return fmt.Errorf("config: rules.max_lives must be at least 1, got %d", c.Rules.MaxLives)
	}
	if c.Arena.LeftWall >= c.Arena.RightWall {
		return fmt.Errorf("config: arena.left_wall (%g) must be below arena.right_wall (%g)", c.Arena.LeftWall, c.Arena.RightWall)
	}
	if c.Arena.BottomWall >= c.Arena.TopWall {
		return fmt.Errorf("config: arena.bottom_wall (%g) must be below arena.top_wall (%g)", c.Arena.BottomWall, c.Arena.TopWall)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.LaunchVelocity <= 0 {
		return fmt.Errorf("config: physics.launch_velocity must be positive, got %g", c.Physics.LaunchVelocity)
	}
	if c.Spawn.BasePeriodMs <= 0 {
		return fmt.Errorf("config: spawn.base_period_ms must be positive, got %g", c.Spawn.BasePeriodMs)
	}
	if c.Spawn.DifficultyBase <= 1 {
		return fmt.Errorf("config: spawn.difficulty_base must be above 1, got %g", c.Spawn.DifficultyBase)
	}
	if c.Paddle.WidthRatio <= 0 {
		return fmt.Errorf("config: paddle.width_ratio must be positive, got %g", c.Paddle.WidthRatio)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset returns true for a recognized preset name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
