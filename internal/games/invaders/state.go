package invaders

// State is the top-level mode of a game session.
type State int

const (
	StateMenu          State = iota // Waiting for a difficulty choice
	StatePlaying                    // Simulation running
	StateRespawnPause               // Ship lost, world frozen briefly
	StateGameOver                   // Out of ships
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateRespawnPause:
		return "respawn_pause"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is something that may move the game to another state.
type Trigger int

const (
	TriggerStart        Trigger = iota // Difficulty chosen or quick play
	TriggerShipLost                    // Hit with ships remaining
	TriggerLastShipLost                // Hit with no ships remaining
	TriggerRespawn                     // Respawn delay elapsed
	TriggerLevelClear                  // Fleet destroyed
	TriggerRestart                     // Back to the difficulty menu
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerShipLost:
		return "ship_lost"
	case TriggerLastShipLost:
		return "last_ship_lost"
	case TriggerRespawn:
		return "respawn"
	case TriggerLevelClear:
		return "level_clear"
	case TriggerRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// transitions lists every allowed move. Anything missing is ignored.
var transitions = map[State]map[Trigger]State{
	StateMenu: {
		TriggerStart: StatePlaying,
	},
	StatePlaying: {
		TriggerShipLost:     StateRespawnPause,
		TriggerLastShipLost: StateGameOver,
		TriggerLevelClear:   StatePlaying,
	},
	StateRespawnPause: {
		TriggerRespawn: StatePlaying,
	},
	StateGameOver: {
		TriggerRestart: StateMenu,
		TriggerStart:   StatePlaying,
	},
}

// Next returns the state reached from s on t, and whether the move is allowed.
func (s State) Next(t Trigger) (State, bool) {
	to, ok := transitions[s][t]
	return to, ok
}
