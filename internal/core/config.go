package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the externally visible state of a game.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen this session (including persisted)
	Level     int  // Current level, starting at 1
	ShipsLeft int  // Remaining ships
	Active    bool // Whether gameplay is running (playing or respawning)
	GameOver  bool // Whether the last game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Draw  DrawBatch // Draw commands for this tick
	Quit  bool      // Whether the game processed a quit request
}
