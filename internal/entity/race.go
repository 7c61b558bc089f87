// Package entity provides game characters: the player and board enemies.
package entity

import "fmt"

// Race represents a character's race.
type Race int

const (
	RaceHuman Race = iota
	RaceElf
	RaceDwarf
	RaceHobbit
	RaceOrc
)

// String returns the race name.
func (r Race) String() string {
	switch r {
	case RaceHuman:
		return "Human"
	case RaceElf:
		return "Elf"
	case RaceDwarf:
		return "Dwarf"
	case RaceHobbit:
		return "Hobbit"
	case RaceOrc:
		return "Orc"
	default:
		return "Unknown"
	}
}

// ID returns the race identifier for data lookup.
func (r Race) ID() string {
	switch r {
	case RaceHuman:
		return "human"
	case RaceElf:
		return "elf"
	case RaceDwarf:
		return "dwarf"
	case RaceHobbit:
		return "hobbit"
	case RaceOrc:
		return "orc"
	default:
		return "unknown"
	}
}

// ParseRace converts a race identifier to a Race.
func ParseRace(id string) (Race, error) {
	switch id {
	case "human":
		return RaceHuman, nil
	case "elf":
		return RaceElf, nil
	case "dwarf":
		return RaceDwarf, nil
	case "hobbit":
		return RaceHobbit, nil
	case "orc":
		return RaceOrc, nil
	default:
		return RaceHuman, fmt.Errorf("unknown race %q", id)
	}
}

// AllRaces returns every race in selection order.
func AllRaces() []Race {
	return []Race{RaceHuman, RaceElf, RaceDwarf, RaceHobbit, RaceOrc}
}
