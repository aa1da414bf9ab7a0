package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Ship: ShipConfig{
			Width:  60,
			Height: 48,
			Limit:  3,
		},
		Enemy: EnemyConfig{
			Width:  44,
			Height: 44,
			Points: 50,
		},
		Projectile: ProjectileConfig{
			Width:  3,
			Height: 15,
			Cap:    3,
		},
		Speeds: SpeedConfig{
			Ship:       480,
			Projectile: 720,
			Enemy:      120,
			FleetDrop:  30,
		},
		Gameplay: GameplayConfig{
			SpeedupRatio: 1.1,
			ScoreScale:   1.5,
			RespawnDelay: 0.5,
		},
		Difficulty: DifficultyPresets{
			Easy: DifficultyPreset{
				ShipSpeedFactor:       1.0,
				ProjectileSpeedFactor: 1.2,
				EnemySpeedFactor:      0.7,
				SpeedupRatio:          1.05,
				ShipLimit:             4,
			},
			Medium: DifficultyPreset{
				ShipSpeedFactor:       1.0,
				ProjectileSpeedFactor: 1.0,
				EnemySpeedFactor:      1.0,
				SpeedupRatio:          1.1,
				ShipLimit:             3,
			},
			Hard: DifficultyPreset{
				ShipSpeedFactor:       1.1,
				ProjectileSpeedFactor: 0.9,
				EnemySpeedFactor:      1.5,
				SpeedupRatio:          1.2,
				ShipLimit:             2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
