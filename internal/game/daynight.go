package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/telemetry"
)

// Cycle drives the day/night state from the command counter. The first
// five commands of every ten-command window are day, the rest night.
type Cycle struct {
	commands int
	night    bool
}

// Night reports whether it is currently night.
func (c *Cycle) Night() bool {
	return c.night
}

// Commands returns the number of counted commands so far.
func (c *Cycle) Commands() int {
	return c.commands
}

// Tick counts one command and re-evaluates the time of day. It returns
// the current time and whether it just flipped.
func (c *Cycle) Tick() (night, flipped bool) {
	c.commands++
	night = c.commands%10 >= 5
	flipped = night != c.night
	c.night = night
	return night, flipped
}

// applyTimeOfDay pushes the new time of day onto every enemy on the
// board. Only orcs carry day/night profiles, so everyone else is
// untouched.
func (g *Game) applyTimeOfDay(ctx context.Context, night bool) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.time_of_day")
	defer span.End()

	toggled := 0
	g.board.ForEachEnemy(func(e *entity.Character) {
		if e.Def != nil && e.Def.HasTimeOfDay() {
			toggled++
		}
		e.SetTimeOfDay(night)
	})

	span.SetAttributes(
		attribute.Bool("night", night),
		attribute.Int("orcs_toggled", toggled),
		attribute.Int("command_count", g.cycle.Commands()),
	)
}
