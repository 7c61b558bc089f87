package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// StatBlock is a full attack/defence quadruple. The day/night cycle
// overwrites an orc's stats with one of these wholesale, never incrementally.
type StatBlock struct {
	Attack        int     `json:"attack"`
	AttackChance  float64 `json:"attackChance"`
	Defence       int     `json:"defence"`
	DefenceChance float64 `json:"defenceChance"`
}

// RaceDef defines a playable race loaded from JSON.
type RaceDef struct {
	ID            string  `json:"id"`     // Unique identifier (e.g., "human")
	Name          string  `json:"name"`   // Display name (e.g., "Human")
	Symbol        string  `json:"symbol"` // Single character for rendering
	Color         string  `json:"color"`  // Hex color for rendering
	Attack        int     `json:"attack"`
	AttackChance  float64 `json:"attackChance"`
	Defence       int     `json:"defence"`
	DefenceChance float64 `json:"defenceChance"`
	Health        int     `json:"health"`
	Strength      int     `json:"strength"`

	// Day and Night hold the time-of-day stat overrides.
	// Only orcs carry them; nil for every other race.
	Day   *StatBlock `json:"day,omitempty"`
	Night *StatBlock `json:"night,omitempty"`
}

// SymbolRune returns the symbol as a rune for rendering.
func (r *RaceDef) SymbolRune() rune {
	if len(r.Symbol) == 0 {
		return '?'
	}
	return rune(r.Symbol[0])
}

// TCellColor returns the race color as a tcell.Color.
func (r *RaceDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(r.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// HasTimeOfDay reports whether this race reacts to the day/night cycle.
func (r *RaceDef) HasTimeOfDay() bool {
	return r.Day != nil && r.Night != nil
}

// RacesFile represents the structure of races.json.
type RacesFile struct {
	Races []RaceDef `json:"races"`
}

// RaceRegistry holds loaded race definitions and provides lookup utilities.
type RaceRegistry struct {
	races []RaceDef
	byID  map[string]*RaceDef
}

// NewRaceRegistry creates a registry from loaded race definitions.
func NewRaceRegistry(races []RaceDef) *RaceRegistry {
	registry := &RaceRegistry{
		races: races,
		byID:  make(map[string]*RaceDef),
	}
	for i := range races {
		registry.byID[races[i].ID] = &races[i]
	}
	return registry
}

// LoadRaceRegistry loads and creates a registry from the embedded races.json.
func LoadRaceRegistry() (*RaceRegistry, error) {
	file, err := Load[RacesFile]("races.json")
	if err != nil {
		return nil, err
	}
	if len(file.Races) == 0 {
		return nil, errors.New("no races loaded from races.json")
	}
	return NewRaceRegistry(file.Races), nil
}

// MustLoadRaceRegistry loads a registry, panicking on error.
func MustLoadRaceRegistry() *RaceRegistry {
	registry, err := LoadRaceRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the race definition with the given ID, or nil if not found.
func (r *RaceRegistry) GetByID(id string) *RaceDef {
	return r.byID[id]
}

// All returns all race definitions.
func (r *RaceRegistry) All() []RaceDef {
	return r.races
}

// Count returns the number of races in the registry.
func (r *RaceRegistry) Count() int {
	return len(r.races)
}
