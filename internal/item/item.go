// Package item provides the items that can be found and equipped on the board.
package item

import (
	"fmt"

	"github.com/samdwyer/gridfell/internal/gamedata"
)

// Kind discriminates the item variants. Pickup and equip sites switch on
// it explicitly instead of relying on runtime type checks.
type Kind int

const (
	KindWeapon Kind = iota
	KindArmour
	KindShield
	KindRing
	kindUnknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "Weapon"
	case KindArmour:
		return "Armour"
	case KindShield:
		return "Shield"
	case KindRing:
		return "Ring"
	default:
		return "Unknown"
	}
}

// ParseKind converts a gamedata kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "weapon":
		return KindWeapon, nil
	case "armour":
		return KindArmour, nil
	case "shield":
		return KindShield, nil
	case "ring":
		return KindRing, nil
	default:
		return kindUnknown, fmt.Errorf("unrecognized item kind %q", s)
	}
}

// Item is a tagged union over the four item variants. Which bonus fields
// are meaningful depends on Kind:
//   - Weapon: AttackBonus
//   - Armour, Shield: DefenceBonus, AttackPenalty
//   - Ring: HealthDelta (may be negative), StrengthBonus
//
// Items are immutable once created; board squares and characters share
// them by pointer.
type Item struct {
	Name          string
	Kind          Kind
	Weight        int
	AttackBonus   int
	DefenceBonus  int
	AttackPenalty int
	HealthDelta   int
	StrengthBonus int
}

// NewWeapon creates a weapon with the given attack bonus.
func NewWeapon(name string, weight, attackBonus int) *Item {
	return &Item{Name: name, Kind: KindWeapon, Weight: weight, AttackBonus: attackBonus}
}

// NewArmour creates armour with the given defence bonus and attack penalty.
func NewArmour(name string, weight, defenceBonus, attackPenalty int) *Item {
	return &Item{Name: name, Kind: KindArmour, Weight: weight, DefenceBonus: defenceBonus, AttackPenalty: attackPenalty}
}

// NewShield creates a shield with the given defence bonus and attack penalty.
func NewShield(name string, weight, defenceBonus, attackPenalty int) *Item {
	return &Item{Name: name, Kind: KindShield, Weight: weight, DefenceBonus: defenceBonus, AttackPenalty: attackPenalty}
}

// NewRing creates a ring with the given health delta and strength bonus.
func NewRing(name string, weight, healthDelta, strengthBonus int) *Item {
	return &Item{Name: name, Kind: KindRing, Weight: weight, HealthDelta: healthDelta, StrengthBonus: strengthBonus}
}

// FromDef creates an item from a data-driven definition.
func FromDef(def *gamedata.ItemDef) (*Item, error) {
	kind, err := ParseKind(def.Kind)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", def.ID, err)
	}
	return &Item{
		Name:          def.Name,
		Kind:          kind,
		Weight:        def.Weight,
		AttackBonus:   def.AttackBonus,
		DefenceBonus:  def.DefenceBonus,
		AttackPenalty: def.AttackPenalty,
		HealthDelta:   def.HealthDelta,
		StrengthBonus: def.StrengthBonus,
	}, nil
}

// Describe returns a one-line human-readable summary of the item.
func (i *Item) Describe() string {
	switch i.Kind {
	case KindWeapon:
		return fmt.Sprintf("%s (Weapon, Attack +%d, Weight: %d)", i.Name, i.AttackBonus, i.Weight)
	case KindArmour, KindShield:
		return fmt.Sprintf("%s (%s, Defence +%d, Attack -%d, Weight: %d)",
			i.Name, i.Kind, i.DefenceBonus, i.AttackPenalty, i.Weight)
	case KindRing:
		return fmt.Sprintf("%s (Ring, Health %+d, Strength +%d, Weight: %d)",
			i.Name, i.HealthDelta, i.StrengthBonus, i.Weight)
	default:
		return fmt.Sprintf("%s (Weight: %d)", i.Name, i.Weight)
	}
}
