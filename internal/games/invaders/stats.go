package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// MaxScore is the highest score a session can reach.
const MaxScore = math.MaxInt32

// Stats tracks score and progression for a session.
type Stats struct {
	Score      int
	HighScore  int // Survives Reset
	Level      int
	ShipsLeft  int
	Active     bool
	Difficulty config.Difficulty
}

// Reset starts a new game at level 1 with a full set of ships.
func (s *Stats) Reset(d config.Difficulty, ships int) {
	s.Score = 0
	s.Level = 1
	s.ShipsLeft = max(ships, 0)
	s.Difficulty = d
}

// AddScore adds points and raises the high score if it was beaten.
// Non-positive amounts are ignored so the score never goes down.
// The score saturates at MaxScore.
func (s *Stats) AddScore(points int) {
	if points <= 0 {
		return
	}
	if points >= MaxScore-s.Score {
		s.Score = MaxScore
	} else {
		s.Score += points
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// LoseShip takes one ship away and returns how many are left.
func (s *Stats) LoseShip() int {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	return s.ShipsLeft
}
