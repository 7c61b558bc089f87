package world

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/item"
	"github.com/samdwyer/gridfell/internal/pkg/clock"
	"github.com/samdwyer/gridfell/internal/telemetry"
)

// Populate assigns each enemy to a uniformly random square holding no
// enemy, then each item to a uniformly random square holding no enemy
// and no item. Placement mutates the board in place. Randomness comes
// entirely from the injected generator, so a seeded call replays
// identically.
//
// The caller must ensure len(enemies)+len(items) <= Width*Height;
// otherwise the rejection loop never terminates.
func (b *Board) Populate(ctx context.Context, enemies []*entity.Character, items []*item.Item, rng *rand.Rand) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.populate")
	defer span.End()

	retries := 0

	for _, enemy := range enemies {
		row := rng.Intn(b.Height)
		col := rng.Intn(b.Width)
		for b.grid[row][col].Enemy != nil {
			row = rng.Intn(b.Height)
			col = rng.Intn(b.Width)
			retries++
		}
		b.grid[row][col].Enemy = enemy
	}

	for _, it := range items {
		row := rng.Intn(b.Height)
		col := rng.Intn(b.Width)
		for b.grid[row][col].Enemy != nil || b.grid[row][col].Item != nil {
			row = rng.Intn(b.Height)
			col = rng.Intn(b.Width)
			retries++
		}
		b.grid[row][col].Item = it
	}

	span.SetAttributes(
		attribute.Int("board.width", b.Width),
		attribute.Int("board.height", b.Height),
		attribute.Int("board.enemy_count", len(enemies)),
		attribute.Int("board.item_count", len(items)),
		attribute.Int("board.placement_retries", retries),
	)
}

// PopulateLegacy reseeds a fresh generator from the clock on every call
// before placing. Placement is not reproducible unless the clock is
// fixed.
func (b *Board) PopulateLegacy(ctx context.Context, enemies []*entity.Character, items []*item.Item, clk clock.Clock) {
	rng := rand.New(rand.NewSource(clk.Now().UnixNano()))
	b.Populate(ctx, enemies, items, rng)
}
