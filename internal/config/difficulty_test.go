package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"fixed", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestSettingsForLevelOne(t *testing.T) {
	cfg := DefaultInvadersConfig()
	s := cfg.SettingsFor(DifficultyMedium, 1)

	if s.Level != 1 {
		t.Errorf("Level = %d, expected 1", s.Level)
	}
	if !almostEqual(s.ShipSpeed, cfg.Speeds.Ship) {
		t.Errorf("ShipSpeed = %v, expected %v", s.ShipSpeed, cfg.Speeds.Ship)
	}
	if !almostEqual(s.EnemySpeed, cfg.Speeds.Enemy) {
		t.Errorf("EnemySpeed = %v, expected %v", s.EnemySpeed, cfg.Speeds.Enemy)
	}
	if s.EnemyPoints != cfg.Enemy.Points {
		t.Errorf("EnemyPoints = %d, expected %d", s.EnemyPoints, cfg.Enemy.Points)
	}
	if s.ProjectileCap != cfg.Projectile.Cap {
		t.Errorf("ProjectileCap = %d, expected %d", s.ProjectileCap, cfg.Projectile.Cap)
	}
}

func TestSettingsForScalesEveryLevel(t *testing.T) {
	cfg := DefaultInvadersConfig()

	for _, d := range Difficulties() {
		t.Run(string(d), func(t *testing.T) {
			prev := cfg.SettingsFor(d, 1)
			ratio := prev.SpeedupRatio
			for level := 2; level <= 6; level++ {
				next := cfg.SettingsFor(d, level)
				checks := []struct {
					name       string
					prev, next float64
				}{
					{"ship", prev.ShipSpeed, next.ShipSpeed},
					{"projectile", prev.ProjectileSpeed, next.ProjectileSpeed},
					{"enemy", prev.EnemySpeed, next.EnemySpeed},
					{"fleet drop", prev.FleetDropSpeed, next.FleetDropSpeed},
				}
				for _, c := range checks {
					if !almostEqual(c.next, c.prev*ratio) {
						t.Errorf("level %d %s speed = %v, expected %v", level, c.name, c.next, c.prev*ratio)
					}
				}
				if next.EnemyPoints < prev.EnemyPoints {
					t.Errorf("level %d points decreased: %d -> %d", level, prev.EnemyPoints, next.EnemyPoints)
				}
				prev = next
			}
		})
	}
}

func TestSettingsForPresets(t *testing.T) {
	cfg := DefaultInvadersConfig()
	easy := cfg.SettingsFor(DifficultyEasy, 1)
	hard := cfg.SettingsFor(DifficultyHard, 1)

	if easy.EnemySpeed >= hard.EnemySpeed {
		t.Errorf("easy enemies (%v) should be slower than hard (%v)", easy.EnemySpeed, hard.EnemySpeed)
	}
	if easy.ShipLimit != 4 || hard.ShipLimit != 2 {
		t.Errorf("ShipLimit easy=%d hard=%d, expected 4 and 2", easy.ShipLimit, hard.ShipLimit)
	}
	if easy.SpeedupRatio != 1.05 || hard.SpeedupRatio != 1.2 {
		t.Errorf("SpeedupRatio easy=%v hard=%v", easy.SpeedupRatio, hard.SpeedupRatio)
	}
}

func TestSettingsForZeroPresetFallsBack(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Difficulty.Medium = DifficultyPreset{}

	s := cfg.SettingsFor(DifficultyMedium, 1)
	if !almostEqual(s.EnemySpeed, cfg.Speeds.Enemy) {
		t.Errorf("EnemySpeed = %v, expected base %v", s.EnemySpeed, cfg.Speeds.Enemy)
	}
	if s.SpeedupRatio != cfg.Gameplay.SpeedupRatio {
		t.Errorf("SpeedupRatio = %v, expected base %v", s.SpeedupRatio, cfg.Gameplay.SpeedupRatio)
	}
	if s.ShipLimit != cfg.Ship.Limit {
		t.Errorf("ShipLimit = %d, expected base %d", s.ShipLimit, cfg.Ship.Limit)
	}
}

func TestSettingsForClampsLevel(t *testing.T) {
	cfg := DefaultInvadersConfig()
	if s := cfg.SettingsFor(DifficultyMedium, 0); s.Level != 1 {
		t.Errorf("Level 0 should clamp to 1, got %d", s.Level)
	}
}

func TestSettingsForStopsScalingAtMaxLevel(t *testing.T) {
	cfg := DefaultInvadersConfig()
	capped := cfg.SettingsFor(DifficultyHard, MaxScaledLevel)

	for _, level := range []int{MaxScaledLevel + 1, 1000, math.MaxInt32} {
		s := cfg.SettingsFor(DifficultyHard, level)
		if s.Level != level {
			t.Errorf("Level = %d, expected %d", s.Level, level)
		}
		if s.EnemySpeed != capped.EnemySpeed || s.ShipSpeed != capped.ShipSpeed {
			t.Errorf("level %d speeds = %v/%v, expected the level %d values %v/%v",
				level, s.EnemySpeed, s.ShipSpeed, MaxScaledLevel, capped.EnemySpeed, capped.ShipSpeed)
		}
		if s.EnemyPoints != capped.EnemyPoints || s.EnemyPoints <= 0 {
			t.Errorf("level %d EnemyPoints = %d, expected %d", level, s.EnemyPoints, capped.EnemyPoints)
		}
	}
}

func TestSettingsForClampsPoints(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Enemy.Points = 1_000_000
	cfg.Gameplay.ScoreScale = 10

	s := cfg.SettingsFor(DifficultyMedium, MaxScaledLevel)
	if s.EnemyPoints != MaxEnemyPoints {
		t.Errorf("EnemyPoints = %d, expected %d", s.EnemyPoints, MaxEnemyPoints)
	}
}

func TestFleetLayout(t *testing.T) {
	base := DefaultInvadersConfig().SettingsFor(DifficultyMedium, 1)

	tests := []struct {
		name       string
		edit       func(*Settings)
		cols, rows int
	}{
		{"defaults", func(*Settings) {}, 12, 7},
		{"narrow screen", func(s *Settings) { s.ScreenWidth = 100 }, 0, 7},
		{"short screen", func(s *Settings) { s.ScreenHeight = 100 }, 12, 0},
		{"zero enemy", func(s *Settings) { s.EnemyWidth = 0 }, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.edit(&s)
			cols, rows := FleetLayout(s)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("FleetLayout() = (%d, %d), expected (%d, %d)", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}
