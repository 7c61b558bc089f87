package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible board
	// population and combat. A seed of 0 means a random seed will be
	// generated.
	Seed int64

	// Width and Height of the board in squares.
	Width  int
	Height int

	// LegacyRNG reseeds board population from the wall clock on every
	// call instead of drawing from the seeded generator.
	LegacyRNG bool

	// PlayerName and PlayerRace configure the player character.
	// PlayerRace must be one of: human, elf, dwarf, hobbit, orc.
	PlayerName string
	PlayerRace string
}

// withDefaults fills in unset fields.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 12
	}
	if c.Height <= 0 {
		c.Height = 12
	}
	if c.PlayerName == "" {
		c.PlayerName = "Adventurer"
	}
	if c.PlayerRace == "" {
		c.PlayerRace = "human"
	}
	return c
}
