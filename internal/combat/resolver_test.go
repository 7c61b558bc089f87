package combat

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/item"
)

func newResolver(seed int64) *Resolver {
	return NewResolver(rand.New(rand.NewSource(seed)))
}

func TestResolveMiss(t *testing.T) {
	r := newResolver(1)

	// Attack chance 0 means any positive roll misses.
	attacker := entity.New("Swinger", entity.RaceHuman, 30, 0.0, 20, 0.5, 60, 100)
	defender := entity.New("Target", entity.RaceHuman, 30, 0.5, 20, 0.0, 60, 100)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultMissed {
		t.Fatalf("Expected miss, got %s", result.Kind)
	}
	if defender.Health != 60 {
		t.Errorf("Miss must not change defender health, got %d", defender.Health)
	}
}

func TestResolveHit(t *testing.T) {
	r := newResolver(1)

	// Attack chance 1 always lands; defence chance 0 never triggers.
	attacker := entity.New("Swinger", entity.RaceHuman, 30, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Target", entity.RaceHuman, 30, 0.5, 20, 0.0, 60, 100)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultHit {
		t.Fatalf("Expected hit, got %s", result.Kind)
	}
	// damage = totalAttack 30 - totalDefence 20
	if result.Damage != 10 {
		t.Errorf("Expected 10 damage, got %d", result.Damage)
	}
	if defender.Health != 50 {
		t.Errorf("Expected defender health 50, got %d", defender.Health)
	}
	if result.DefenderDefeated {
		t.Error("Defender should not be defeated")
	}
}

func TestResolveBlocked(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 20, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Wall", entity.RaceDwarf, 30, 0.5, 40, 0.0, 50, 130)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultBlocked {
		t.Fatalf("Expected block, got %s", result.Kind)
	}
	if defender.Health != 50 {
		t.Errorf("Blocked attack must not change health, got %d", defender.Health)
	}
}

func TestResolveHealthFloorsAtZero(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 50, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Frail", entity.RaceHuman, 30, 0.5, 10, 0.0, 5, 100)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultHit {
		t.Fatalf("Expected hit, got %s", result.Kind)
	}
	if defender.Health != 0 {
		t.Errorf("Expected health floored at 0, got %d", defender.Health)
	}
	if !result.DefenderDefeated {
		t.Error("Defender at zero health should be defeated")
	}
}

func TestResolveClampsToTotalHealth(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 30, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Cursed", entity.RaceHuman, 30, 0.5, 20, 0.0, 60, 100)
	if err := defender.PickUp(item.NewRing("Ring of Strength", 1, -10, 50)); err != nil {
		t.Fatalf("PickUp failed: %v", err)
	}

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultHit {
		t.Fatalf("Expected hit, got %s", result.Kind)
	}
	// 10 damage lands (health 50), then health is clamped to the ring-reduced
	// maximum computed from the new health value.
	if defender.Health != 40 {
		t.Errorf("Expected health clamped to 40, got %d", defender.Health)
	}
}

func TestDefenseReactionElf(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 30, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Legolas", entity.RaceElf, 40, 1.0, 10, 1.0, 40, 70)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	if defender.Health != 41 {
		t.Errorf("Expected elf health 41 after reaction, got %d", defender.Health)
	}
}

func TestDefenseReactionHuman(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 30, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Bob", entity.RaceHuman, 30, 0.5, 20, 1.0, 60, 100)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	if defender.Health != 60 {
		t.Errorf("Human reaction must not change health, got %d", defender.Health)
	}
}

func TestDefenseReactionHobbit(t *testing.T) {
	r := newResolver(7)

	attacker := entity.New("Swinger", entity.RaceHuman, 30, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Frodo", entity.RaceHobbit, 25, 0.333, 20, 1.0, 70, 85)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	if defender.Health > 70 || defender.Health < 65 {
		t.Errorf("Hobbit reaction loss must be in [0,5], health went to %d", defender.Health)
	}
}

func TestDefenseReactionOrcDayClampsNegativeMargin(t *testing.T) {
	r := newResolver(1)

	// Attacker base attack 10 vs orc base defence 30: margin clamps to 0.
	attacker := entity.New("Swinger", entity.RaceHuman, 10, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Azog", entity.RaceOrc, 25, 0.25, 30, 1.0, 50, 130)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	if defender.Health != 50 {
		t.Errorf("Clamped orc day reaction must not change health, got %d", defender.Health)
	}
}

func TestDefenseReactionOrcDay(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 45, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Azog", entity.RaceOrc, 25, 0.25, 5, 1.0, 50, 130)

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	// Quarter of the clamped base-stat margin: (45-5)/4 = 10.
	if defender.Health != 40 {
		t.Errorf("Expected orc health 40 after day reaction, got %d", defender.Health)
	}
}

func TestDefenseReactionOrcNight(t *testing.T) {
	r := newResolver(1)

	attacker := entity.New("Swinger", entity.RaceHuman, 45, 1.0, 20, 0.5, 60, 100)
	defender := entity.New("Azog", entity.RaceOrc, 45, 1.0, 25, 1.0, 50, 130)
	defender.Night = true

	result := r.Resolve(attacker, defender)

	if result.Kind != ResultDefended {
		t.Fatalf("Expected defended, got %s", result.Kind)
	}
	if defender.Health != 51 {
		t.Errorf("Expected orc health 51 after night reaction, got %d", defender.Health)
	}
}

func TestResolveSeededReplay(t *testing.T) {
	run := func() (ResultKind, int) {
		r := newResolver(99)
		attacker := entity.New("Swinger", entity.RaceHuman, 30, 0.6667, 20, 0.5, 60, 100)
		defender := entity.New("Frodo", entity.RaceHobbit, 25, 0.333, 20, 0.6667, 70, 85)
		result := r.Resolve(attacker, defender)
		return result.Kind, defender.Health
	}

	kind1, health1 := run()
	kind2, health2 := run()

	if kind1 != kind2 || health1 != health2 {
		t.Errorf("Same seed must replay identically: (%s,%d) != (%s,%d)",
			kind1, health1, kind2, health2)
	}
}
