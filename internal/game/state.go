// Package game provides the main command loop and state management.
package game

// State represents the overall game state.
type State int

const (
	// StatePlaying - the command loop is running.
	StatePlaying State = iota
	// StateVictory - every enemy on the board has been defeated.
	StateVictory
	// StateDefeat - the player has been defeated.
	StateDefeat
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Mode represents what the next keypress means.
type Mode int

const (
	// ModePlay - normal movement and action keys.
	ModePlay Mode = iota
	// ModeDropSlot - waiting for a 1-4 equipment slot choice.
	ModeDropSlot
	// ModeDropRing - waiting for a ring number to drop.
	ModeDropRing
)
