package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/gridfell/internal/gamedata"
	"github.com/samdwyer/gridfell/internal/item"
)

// Pickup and drop failures. All are local: the caller reports them and
// the character's state is unchanged.
var (
	// ErrItemTooHeavy is returned when equipped weight plus the new item's
	// weight would exceed the character's base strength.
	ErrItemTooHeavy = errors.New("item too heavy")
	// ErrUnknownItemKind is returned for an item of no recognized kind.
	ErrUnknownItemKind = errors.New("item not recognized")
	// ErrInvalidRingIndex is returned when a ring drop index is out of range.
	ErrInvalidRingIndex = errors.New("invalid ring choice")
)

// Character represents the player or an enemy on the board.
//
// Health doubles as the base stat: rings shift the computed maximum
// (TotalHealth) while combat and defense reactions mutate Health
// directly. Health floors at zero and is clamped to TotalHealth after
// damage is applied.
type Character struct {
	ID   string // Instance ID, recorded on combat spans
	Name string
	Race Race
	Def  *gamedata.RaceDef // Definition this character was built from (nil in some tests)

	Attack        int
	AttackChance  float64
	Defence       int
	DefenceChance float64
	Health        int
	Strength      int

	Weapon *item.Item // Equipped weapon (nil if none)
	Armor  *item.Item // Equipped armor (nil if none)
	Shield *item.Item // Equipped shield (nil if none)
	Rings  []*item.Item

	Inventory []*item.Item

	// Night tracks the last time of day applied to this character.
	// Only meaningful for orcs.
	Night bool
}

// New creates a character with explicit base stats.
func New(name string, race Race, attack int, attackChance float64, defence int, defenceChance float64, health, strength int) *Character {
	return &Character{
		Name:          name,
		Race:          race,
		Attack:        attack,
		AttackChance:  attackChance,
		Defence:       defence,
		DefenceChance: defenceChance,
		Health:        health,
		Strength:      strength,
	}
}

// NewFromDef creates a character with base stats from a race definition.
func NewFromDef(name string, race Race, def *gamedata.RaceDef) *Character {
	c := New(name, race, def.Attack, def.AttackChance, def.Defence, def.DefenceChance, def.Health, def.Strength)
	c.Def = def
	return c
}

// CurrentWeight returns the total weight of all equipped items.
func (c *Character) CurrentWeight() int {
	total := 0
	if c.Weapon != nil {
		total += c.Weapon.Weight
	}
	if c.Armor != nil {
		total += c.Armor.Weight
	}
	if c.Shield != nil {
		total += c.Shield.Weight
	}
	for _, r := range c.Rings {
		total += r.Weight
	}
	return total
}

// TotalAttack returns the attack value including all equipment modifiers.
// Ring strength bonuses count toward attack as well as strength.
func (c *Character) TotalAttack() int {
	total := c.Attack
	if c.Weapon != nil {
		total += c.Weapon.AttackBonus
	}
	if c.Armor != nil {
		total -= c.Armor.AttackPenalty
	}
	if c.Shield != nil {
		total -= c.Shield.AttackPenalty
	}
	for _, r := range c.Rings {
		total += r.StrengthBonus
	}
	return total
}

// TotalDefence returns the defence value including armor and shield bonuses.
func (c *Character) TotalDefence() int {
	total := c.Defence
	if c.Armor != nil {
		total += c.Armor.DefenceBonus
	}
	if c.Shield != nil {
		total += c.Shield.DefenceBonus
	}
	return total
}

// TotalStrength returns the strength value including ring bonuses.
func (c *Character) TotalStrength() int {
	total := c.Strength
	for _, r := range c.Rings {
		total += r.StrengthBonus
	}
	return total
}

// TotalHealth returns the maximum health including ring deltas,
// which may be negative.
func (c *Character) TotalHealth() int {
	total := c.Health
	for _, r := range c.Rings {
		total += r.HealthDelta
	}
	return total
}

// Defeated reports whether the character is out of the fight.
func (c *Character) Defeated() bool {
	return c.TotalHealth() <= 0
}

// PickUp equips the item, replacing any item already in its slot. The
// replaced item is discarded, not returned to the board. Rings always
// append; there is no upper bound on how many can be worn.
//
// The weight gate compares current equipped weight against base
// strength, not ring-augmented strength; rings already worn count
// toward the weight. Weapons are the one kind that never lands in the
// inventory.
func (c *Character) PickUp(it *item.Item) error {
	if c.CurrentWeight()+it.Weight > c.Strength {
		return ErrItemTooHeavy
	}
	switch it.Kind {
	case item.KindWeapon:
		c.Weapon = it
	case item.KindArmour:
		c.Armor = it
		c.Inventory = append(c.Inventory, it)
	case item.KindShield:
		c.Shield = it
		c.Inventory = append(c.Inventory, it)
	case item.KindRing:
		c.Rings = append(c.Rings, it)
		c.Inventory = append(c.Inventory, it)
	default:
		return ErrUnknownItemKind
	}
	return nil
}

// DropWeapon clears the weapon slot and reports the dropped weapon's
// name. Reports false if no weapon was equipped.
func (c *Character) DropWeapon() (string, bool) {
	if c.Weapon == nil {
		return "", false
	}
	name := c.Weapon.Name
	c.Weapon = nil
	return name, true
}

// DropArmour clears the armor slot and reports the dropped armor's name.
func (c *Character) DropArmour() (string, bool) {
	if c.Armor == nil {
		return "", false
	}
	name := c.Armor.Name
	c.Armor = nil
	return name, true
}

// DropShield clears the shield slot and reports the dropped shield's name.
func (c *Character) DropShield() (string, bool) {
	if c.Shield == nil {
		return "", false
	}
	name := c.Shield.Name
	c.Shield = nil
	return name, true
}

// DropRing removes the ring at the given zero-based index. An
// out-of-range index is a no-op failure; the ring collection is
// unchanged.
func (c *Character) DropRing(index int) (string, error) {
	if index < 0 || index >= len(c.Rings) {
		return "", ErrInvalidRingIndex
	}
	name := c.Rings[index].Name
	c.Rings = append(c.Rings[:index], c.Rings[index+1:]...)
	return name, nil
}

// SetTimeOfDay overwrites the full attack/defence quadruple from the
// race's day or night profile. Races without profiles are unaffected.
func (c *Character) SetTimeOfDay(night bool) {
	c.Night = night
	if c.Def == nil || !c.Def.HasTimeOfDay() {
		return
	}
	profile := c.Def.Day
	if night {
		profile = c.Def.Night
	}
	c.Attack = profile.Attack
	c.AttackChance = profile.AttackChance
	c.Defence = profile.Defence
	c.DefenceChance = profile.DefenceChance
}

// StatLine returns a one-line summary of the character's derived stats.
func (c *Character) StatLine() string {
	line := fmt.Sprintf("%s, race: %s, attack: %d, defence: %d, health: %d, strength: %d",
		c.Name, c.Race, c.TotalAttack(), c.TotalDefence(), c.TotalHealth(), c.TotalStrength())
	if c.Race == RaceOrc {
		if c.Night {
			line += " [Night]"
		} else {
			line += " [Day]"
		}
	}
	return line
}
