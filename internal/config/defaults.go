package config

import (
	_ "embed"
)

//go:embed defaults/workshop.yaml
var defaultWorkshopYAML []byte

// Default returns the reference configuration: an 800x600 arena with five
// ninja columns, three lives, and a 1500ms base spawn period.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			LeftWall:   -400,
			RightWall:  400,
			TopWall:    300,
			BottomWall: -300,
		},
		Physics: PhysicsConfig{
			Gravity:        0.25,
			LaunchVelocity: 20,
		},
		Spawn: SpawnConfig{
			BasePeriodMs:   1500,
			DifficultyBase: 1.1,
		},
		Targets: TargetsConfig{
			Count:  5,
			Width:  40,
			Height: 80,
			Offset: 100,
		},
		Projectile: ProjectileConfig{
			Width:  30,
			Height: 30,
		},
		Paddle: PaddleConfig{
			WidthRatio: 1.2,
			Height:     20,
			Y:          -40,
		},
		Health: HealthConfig{
			Offset: 20,
			Width:  20,
			Height: 10,
		},
		Rules: RulesConfig{
			MaxLives: 3,
		},
	}
}
