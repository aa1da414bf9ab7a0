package config

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a CLI or config string into a Difficulty.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Title returns the display name for the difficulty.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

// Settings is the immutable per-level view of the configuration.
// Speeds are already scaled by the difficulty preset and by
// speedup^(level-1).
type Settings struct {
	Difficulty Difficulty
	Level      int

	ScreenWidth  float64
	ScreenHeight float64

	ShipWidth        float64
	ShipHeight       float64
	EnemyWidth       float64
	EnemyHeight      float64
	ProjectileWidth  float64
	ProjectileHeight float64

	ProjectileCap int
	Pierce        bool
	ShipLimit     int

	ShipSpeed       float64
	ProjectileSpeed float64
	EnemySpeed      float64
	FleetDropSpeed  float64
	EnemyPoints     int

	SpeedupRatio float64
	RespawnDelay float64
}

// Scaling limits. Levels past MaxScaledLevel keep that level's speeds and
// points.
const (
	MaxScaledLevel = 30
	MaxEnemyPoints = math.MaxInt32
)

// SettingsFor derives the settings for a difficulty at the given level.
// Levels below 1 are treated as level 1.
// Scaling stops at MaxScaledLevel and points never exceed MaxEnemyPoints.
func (c InvadersConfig) SettingsFor(d Difficulty, level int) Settings {
	if level < 1 {
		level = 1
	}
	p := c.Difficulty.Preset(d)

	speedup := orDefault(p.SpeedupRatio, c.Gameplay.SpeedupRatio)
	if speedup < 1 {
		speedup = 1
	}
	scoreScale := c.Gameplay.ScoreScale
	if scoreScale < 1 {
		scoreScale = 1
	}
	shipLimit := c.Ship.Limit
	if p.ShipLimit > 0 {
		shipLimit = p.ShipLimit
	}

	scaled := float64(min(level, MaxScaledLevel) - 1)
	factor := math.Pow(speedup, scaled)
	points := math.Min(float64(c.Enemy.Points)*math.Pow(scoreScale, scaled), MaxEnemyPoints)

	return Settings{
		Difficulty: d,
		Level:      level,

		ScreenWidth:  c.Screen.Width,
		ScreenHeight: c.Screen.Height,

		ShipWidth:        c.Ship.Width,
		ShipHeight:       c.Ship.Height,
		EnemyWidth:       c.Enemy.Width,
		EnemyHeight:      c.Enemy.Height,
		ProjectileWidth:  c.Projectile.Width,
		ProjectileHeight: c.Projectile.Height,

		ProjectileCap: c.Projectile.Cap,
		Pierce:        c.Projectile.Pierce,
		ShipLimit:     shipLimit,

		ShipSpeed:       c.Speeds.Ship * orDefault(p.ShipSpeedFactor, 1) * factor,
		ProjectileSpeed: c.Speeds.Projectile * orDefault(p.ProjectileSpeedFactor, 1) * factor,
		EnemySpeed:      c.Speeds.Enemy * orDefault(p.EnemySpeedFactor, 1) * factor,
		FleetDropSpeed:  c.Speeds.FleetDrop * factor,
		EnemyPoints:     int(points),

		SpeedupRatio: speedup,
		RespawnDelay: c.Gameplay.RespawnDelay,
	}
}

// orDefault returns v unless it is zero.
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// FleetLayout returns how many columns and rows of enemies fit in the world.
// One enemy width is kept free on each side and one enemy gap between
// columns; the bottom leaves room for the ship. Never negative.
func FleetLayout(s Settings) (columns, rows int) {
	ew, eh := s.EnemyWidth, s.EnemyHeight
	if ew <= 0 || eh <= 0 {
		return 0, 0
	}
	columns = int(math.Floor((s.ScreenWidth - 2*ew) / (2 * ew)))
	rows = int(math.Floor((s.ScreenHeight - 3*eh - s.ShipHeight) / (2 * eh)))
	return max(columns, 0), max(rows, 0)
}
