package gamedata

import "errors"

// ItemDef defines an item loaded from JSON. The kind string selects which
// of the bonus fields are meaningful:
//   - weapon: attackBonus
//   - armour, shield: defenceBonus, attackPenalty
//   - ring: healthDelta (may be negative), strengthBonus
type ItemDef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Weight        int    `json:"weight"`
	AttackBonus   int    `json:"attackBonus,omitempty"`
	DefenceBonus  int    `json:"defenceBonus,omitempty"`
	AttackPenalty int    `json:"attackPenalty,omitempty"`
	HealthDelta   int    `json:"healthDelta,omitempty"`
	StrengthBonus int    `json:"strengthBonus,omitempty"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// ItemRegistry holds loaded item definitions.
type ItemRegistry struct {
	items []ItemDef
	byID  map[string]*ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: items,
		byID:  make(map[string]*ItemDef),
	}
	for i := range items {
		registry.byID[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	if len(file.Items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(file.Items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.byID[id]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of item definitions in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
