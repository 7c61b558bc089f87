package combat

import (
	"fmt"

	"github.com/samdwyer/gridfell/internal/entity"
)

// Reaction describes the race-specific side effect of a successful
// defence roll.
type Reaction struct {
	HealthDelta int
	Message     string
}

// applyDefenseReaction dispatches the defence-success effect on the
// defender's race and mutates the defender's health accordingly.
//
// The orc's day penalty works off the attacker's base attack and the
// defender's base defence, not the equipment-augmented totals.
func (r *Resolver) applyDefenseReaction(attacker, defender *entity.Character) Reaction {
	defended := fmt.Sprintf("%s defended successfully!", defender.Name)

	switch defender.Race {
	case entity.RaceElf:
		defender.Health++
		return Reaction{
			HealthDelta: 1,
			Message:     fmt.Sprintf("%s %s health increased to %d", defended, defender.Name, defender.Health),
		}

	case entity.RaceHobbit:
		loss := r.rng.Intn(6)
		defender.Health -= loss
		if defender.Health < 0 {
			defender.Health = 0
		}
		return Reaction{
			HealthDelta: -loss,
			Message:     fmt.Sprintf("%s %s health reduced to %d", defended, defender.Name, defender.Health),
		}

	case entity.RaceOrc:
		if defender.Night {
			defender.Health++
			return Reaction{
				HealthDelta: 1,
				Message:     fmt.Sprintf("%s health increased to %d", defender.Name, defender.Health),
			}
		}
		margin := attacker.Attack - defender.Defence
		if margin < 0 {
			margin = 0
		}
		loss := margin / 4
		defender.Health -= loss
		if defender.Health < 0 {
			defender.Health = 0
		}
		return Reaction{
			HealthDelta: -loss,
			Message:     defended,
		}

	default:
		// Humans and dwarves only acknowledge the successful defence.
		return Reaction{Message: defended}
	}
}
