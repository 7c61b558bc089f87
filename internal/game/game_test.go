package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gridfell/internal/entity"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(Config{
		Seed:       42,
		Width:      12,
		Height:     12,
		PlayerName: "Tester",
		PlayerRace: "human",
	})
	require.NoError(t, err)
	g.Setup(context.Background())
	return g
}

func TestNewSpawnsRosterAndPool(t *testing.T) {
	g := newTestGame(t)

	assert.Len(t, g.enemies, 5, "one enemy per race")
	assert.Len(t, g.items, 6)
	assert.Equal(t, 5, g.Board().EnemyCount())
	assert.Equal(t, StatePlaying, g.State())

	races := make(map[entity.Race]bool)
	for _, e := range g.enemies {
		races[e.Race] = true
		assert.NotEmpty(t, e.ID)
	}
	assert.Len(t, races, 5)
}

func TestMoveClampsAtEdges(t *testing.T) {
	g := newTestGame(t)

	// Player starts at the origin; moving up or left must be rejected.
	g.Move(-1, 0)
	assert.Equal(t, 0, g.row)
	g.Move(0, -1)
	assert.Equal(t, 0, g.col)

	g.Move(1, 0)
	assert.Equal(t, 1, g.row)
	assert.Nil(t, g.Board().At(0, 0).Player, "player reference moves with the player")
	assert.Equal(t, g.Player(), g.Board().At(1, 0).Player)
}

func TestCycleSchedule(t *testing.T) {
	var c Cycle

	// Commands 1-4: day. Command 5 flips to night; command 10 back to day.
	for i := 1; i <= 4; i++ {
		night, flipped := c.Tick()
		assert.False(t, night, "command %d should be day", i)
		assert.False(t, flipped)
	}

	night, flipped := c.Tick()
	assert.True(t, night, "command 5 flips to night")
	assert.True(t, flipped)

	for i := 6; i <= 9; i++ {
		night, flipped = c.Tick()
		assert.True(t, night)
		assert.False(t, flipped)
	}

	night, flipped = c.Tick()
	assert.False(t, night, "command 10 flips back to day")
	assert.True(t, flipped)
}

func TestTimeOfDayTogglesBoardOrcs(t *testing.T) {
	g := newTestGame(t)

	var orc *entity.Character
	g.Board().ForEachEnemy(func(e *entity.Character) {
		if e.Race == entity.RaceOrc {
			orc = e
		}
	})
	require.NotNil(t, orc, "roster always contains an orc")
	require.Equal(t, 25, orc.Attack)

	g.applyTimeOfDay(context.Background(), true)
	assert.Equal(t, 45, orc.Attack)
	assert.Equal(t, 1.0, orc.AttackChance)
	assert.Equal(t, 25, orc.Defence)
	assert.Equal(t, 0.5, orc.DefenceChance)
	assert.True(t, orc.Night)

	g.applyTimeOfDay(context.Background(), false)
	assert.Equal(t, 25, orc.Attack)
	assert.Equal(t, 0.25, orc.AttackChance)
}

func TestAttackDefeatAwardsGold(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	// Plant a doomed enemy under the player and make the exchange
	// deterministic: the player always lands, the enemy never defends.
	victim := entity.New("Victim", entity.RaceHuman, 10, 0.0, 0, 0.0, 1, 100)
	g.player.AttackChance = 1.0
	sq := g.Board().At(g.row, g.col)
	sq.Enemy = victim

	g.Attack(ctx)

	assert.True(t, victim.Defeated())
	assert.Nil(t, sq.Enemy, "defeated enemy leaves the board")
	assert.Equal(t, goldPerKill, g.Gold())
	assert.Equal(t, StatePlaying, g.State(), "other enemies remain")
}

func TestVictoryWhenBoardCleared(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	// Sweep all spawned enemies off the board, then beat a final one.
	for row := 0; row < g.Board().Height; row++ {
		for col := 0; col < g.Board().Width; col++ {
			g.Board().At(row, col).Enemy = nil
		}
	}
	last := entity.New("Last", entity.RaceHuman, 10, 0.0, 0, 0.0, 1, 100)
	g.player.AttackChance = 1.0
	g.Board().At(g.row, g.col).Enemy = last

	g.Attack(ctx)

	assert.Equal(t, StateVictory, g.State())
	assert.Equal(t, goldPerKill, g.Gold())
}

func TestAttackWithNoEnemy(t *testing.T) {
	g := newTestGame(t)

	g.Board().At(g.row, g.col).Enemy = nil
	g.Attack(context.Background())

	assert.Contains(t, g.Messages()[len(g.Messages())-1], "No enemy to attack")
}

func TestPickUpFlow(t *testing.T) {
	g := newTestGame(t)
	sq := g.Board().At(g.row, g.col)

	sq.Item = nil
	g.PickUp()
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "No item here!")

	sq.Item = g.items[0] // the sword
	g.PickUp()
	assert.Nil(t, sq.Item, "picked-up item leaves the square")
	assert.NotNil(t, g.Player().Weapon)
}

func TestPickUpTooHeavyLeavesItemOnGround(t *testing.T) {
	g := newTestGame(t)
	g.player.Strength = 5
	sq := g.Board().At(g.row, g.col)
	sq.Item = g.items[0] // sword, weight 10

	g.PickUp()

	assert.NotNil(t, sq.Item, "rejected item stays on the ground")
	assert.Nil(t, g.Player().Weapon)
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "Item too heavy")
}

func TestDropMenuFlow(t *testing.T) {
	g := newTestGame(t)

	g.mode = ModeDropSlot
	g.DropSlot('1')
	assert.Equal(t, ModePlay, g.mode)
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "No weapon to drop.")

	g.mode = ModeDropSlot
	g.DropSlot('4')
	assert.Equal(t, ModePlay, g.mode, "no rings keeps us out of ring selection")
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "No rings to drop.")

	g.mode = ModeDropSlot
	g.DropSlot('9')
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "Invalid choice!")
}

func TestDropRingKeyInvalidSelection(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.player.PickUp(g.items[4])) // ring of life

	g.mode = ModeDropRing
	g.DropRingKey('5')

	assert.Len(t, g.player.Rings, 1, "invalid selection leaves rings unchanged")
	assert.Contains(t, g.Messages()[len(g.Messages())-1], "Invalid ring selection!")

	g.mode = ModeDropRing
	g.DropRingKey('1')
	assert.Empty(t, g.player.Rings)
}
