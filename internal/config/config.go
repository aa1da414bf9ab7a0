// Package config provides YAML/TOML game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Screen     ScreenConfig      `yaml:"screen" toml:"screen"`
	Ship       ShipConfig        `yaml:"ship" toml:"ship"`
	Enemy      EnemyConfig       `yaml:"enemy" toml:"enemy"`
	Projectile ProjectileConfig  `yaml:"projectile" toml:"projectile"`
	Speeds     SpeedConfig       `yaml:"speeds" toml:"speeds"`
	Gameplay   GameplayConfig    `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyPresets `yaml:"difficulty" toml:"difficulty"`
}

// ScreenConfig defines the world size. Rendering scales it to the terminal.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Limit  int     `yaml:"limit" toml:"limit"` // Ships per game
}

// EnemyConfig defines a single fleet member.
type EnemyConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Points int     `yaml:"points" toml:"points"` // Points per enemy at level 1
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Cap    int     `yaml:"cap" toml:"cap"`       // Max live projectiles
	Pierce bool    `yaml:"pierce" toml:"pierce"` // Projectiles survive enemy hits
}

// SpeedConfig holds base speeds in world units per second.
type SpeedConfig struct {
	Ship       float64 `yaml:"ship" toml:"ship"`
	Projectile float64 `yaml:"projectile" toml:"projectile"`
	Enemy      float64 `yaml:"enemy" toml:"enemy"`
	FleetDrop  float64 `yaml:"fleet_drop" toml:"fleet_drop"` // Distance per edge bounce
}

// GameplayConfig holds progression parameters.
type GameplayConfig struct {
	SpeedupRatio float64 `yaml:"speedup_ratio" toml:"speedup_ratio"` // Speed multiplier per level
	ScoreScale   float64 `yaml:"score_scale" toml:"score_scale"`     // Points multiplier per level
	RespawnDelay float64 `yaml:"respawn_delay" toml:"respawn_delay"` // Seconds frozen after losing a ship
}

// DifficultyPresets holds one preset per difficulty.
type DifficultyPresets struct {
	Easy   DifficultyPreset `yaml:"easy" toml:"easy"`
	Medium DifficultyPreset `yaml:"medium" toml:"medium"`
	Hard   DifficultyPreset `yaml:"hard" toml:"hard"`
}

// DifficultyPreset scales the base speeds and selects a speedup ratio.
// Zero values fall back to the base configuration.
type DifficultyPreset struct {
	ShipSpeedFactor       float64 `yaml:"ship_speed_factor" toml:"ship_speed_factor"`
	ProjectileSpeedFactor float64 `yaml:"projectile_speed_factor" toml:"projectile_speed_factor"`
	EnemySpeedFactor      float64 `yaml:"enemy_speed_factor" toml:"enemy_speed_factor"`
	SpeedupRatio          float64 `yaml:"speedup_ratio" toml:"speedup_ratio"`
	ShipLimit             int     `yaml:"ship_limit" toml:"ship_limit"`
}

// Preset returns the preset for a difficulty.
func (p DifficultyPresets) Preset(d Difficulty) DifficultyPreset {
	switch d {
	case DifficultyEasy:
		return p.Easy
	case DifficultyHard:
		return p.Hard
	default:
		return p.Medium
	}
}

// Validate checks that the configuration can drive a game.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("ship.width", c.Ship.Width)
	positive("ship.height", c.Ship.Height)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("speeds.ship", c.Speeds.Ship)
	positive("speeds.projectile", c.Speeds.Projectile)
	positive("speeds.enemy", c.Speeds.Enemy)

	if c.Speeds.FleetDrop < 0 {
		errs = append(errs, fmt.Errorf("speeds.fleet_drop must not be negative, got %v", c.Speeds.FleetDrop))
	}
	if c.Ship.Limit < 1 {
		errs = append(errs, fmt.Errorf("ship.limit must be at least 1, got %d", c.Ship.Limit))
	}
	if c.Projectile.Cap < 1 {
		errs = append(errs, fmt.Errorf("projectile.cap must be at least 1, got %d", c.Projectile.Cap))
	}
	if c.Enemy.Points < 0 {
		errs = append(errs, fmt.Errorf("enemy.points must not be negative, got %d", c.Enemy.Points))
	}
	if c.Gameplay.SpeedupRatio < 1 {
		errs = append(errs, fmt.Errorf("gameplay.speedup_ratio must be >= 1, got %v", c.Gameplay.SpeedupRatio))
	}
	if c.Gameplay.ScoreScale < 1 {
		errs = append(errs, fmt.Errorf("gameplay.score_scale must be >= 1, got %v", c.Gameplay.ScoreScale))
	}
	if c.Gameplay.RespawnDelay < 0 {
		errs = append(errs, fmt.Errorf("gameplay.respawn_delay must not be negative, got %v", c.Gameplay.RespawnDelay))
	}

	for _, d := range Difficulties() {
		p := c.Difficulty.Preset(d)
		if p.SpeedupRatio != 0 && p.SpeedupRatio < 1 {
			errs = append(errs, fmt.Errorf("difficulty.%s.speedup_ratio must be >= 1, got %v", d, p.SpeedupRatio))
		}
		if p.ShipSpeedFactor < 0 || p.ProjectileSpeedFactor < 0 || p.EnemySpeedFactor < 0 {
			errs = append(errs, fmt.Errorf("difficulty.%s speed factors must not be negative", d))
		}
	}

	// Sizes do not depend on difficulty or level.
	if len(errs) == 0 {
		if cols, rows := FleetLayout(c.SettingsFor(DifficultyMedium, 1)); cols == 0 || rows == 0 {
			errs = append(errs, fmt.Errorf("screen %vx%v leaves no room for the fleet (%d columns, %d rows)",
				c.Screen.Width, c.Screen.Height, cols, rows))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
