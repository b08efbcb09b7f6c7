package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateReplaying
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateReplaying:
		return "Replaying"
	default:
		return "Unknown"
	}
}

// Simulates reports whether the world advances in this state
func (s GameState) Simulates() bool {
	return s == StatePlaying || s == StateReplaying
}
