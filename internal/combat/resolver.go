// Package combat provides turn-based attack resolution between characters.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/gridfell/internal/entity"
)

// ResultKind identifies how an attack resolved.
type ResultKind int

const (
	// ResultMissed - the attack roll failed, nothing happened.
	ResultMissed ResultKind = iota
	// ResultDefended - the defence roll succeeded and the defender's
	// race reaction fired; no attack damage was applied.
	ResultDefended
	// ResultHit - damage was applied to the defender.
	ResultHit
	// ResultBlocked - both rolls passed but the defender's total defence
	// absorbed the attack entirely.
	ResultBlocked
)

// String returns a human-readable result name.
func (k ResultKind) String() string {
	switch k {
	case ResultMissed:
		return "missed"
	case ResultDefended:
		return "defended"
	case ResultHit:
		return "hit"
	case ResultBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Result contains the outcome of resolving a single attack.
type Result struct {
	Kind             ResultKind
	Damage           int    // Applied damage, for ResultHit
	Message          string // Human-readable description
	DefenderDefeated bool
}

// Resolver resolves attacks between characters. All randomness is drawn
// from the injected generator, so a seeded Resolver replays identically.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from the given random source.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve plays out one attack from attacker against defender.
//
// The attack roll must come in at or under the attacker's attack chance
// or the attack misses outright. A successful defence roll hands control
// to the defender's race reaction instead of the damage step. Otherwise
// damage is the margin of total attack over total defence; a non-positive
// margin is a full block. Health floors at zero and is clamped to the
// defender's total health after damage.
func (r *Resolver) Resolve(attacker, defender *entity.Character) Result {
	attackRoll := r.rng.Float64()
	if attackRoll > attacker.AttackChance {
		return Result{
			Kind:             ResultMissed,
			Message:          fmt.Sprintf("%s missed!", attacker.Name),
			DefenderDefeated: defender.Defeated(),
		}
	}

	defenceRoll := r.rng.Float64()
	if defenceRoll < defender.DefenceChance {
		reaction := r.applyDefenseReaction(attacker, defender)
		return Result{
			Kind:             ResultDefended,
			Message:          reaction.Message,
			DefenderDefeated: defender.Defeated(),
		}
	}

	if attacker.TotalAttack() > defender.TotalDefence() {
		damage := attacker.TotalAttack() - defender.TotalDefence()
		defender.Health -= damage
		if defender.Health < 0 {
			defender.Health = 0
		}
		if defender.Health > defender.TotalHealth() {
			defender.Health = defender.TotalHealth()
		}
		return Result{
			Kind:             ResultHit,
			Damage:           damage,
			Message:          fmt.Sprintf("%s takes %d hits of damage", defender.Name, damage),
			DefenderDefeated: defender.Defeated(),
		}
	}

	return Result{
		Kind:             ResultBlocked,
		Message:          fmt.Sprintf("%s blocked the attack", defender.Name),
		DefenderDefeated: defender.Defeated(),
	}
}
