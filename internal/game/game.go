package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridfell/internal/combat"
	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/gamedata"
	"github.com/samdwyer/gridfell/internal/item"
	"github.com/samdwyer/gridfell/internal/pkg/clock"
	"github.com/samdwyer/gridfell/internal/pkg/idgen"
	"github.com/samdwyer/gridfell/internal/telemetry"
	"github.com/samdwyer/gridfell/internal/ui"
	"github.com/samdwyer/gridfell/internal/world"
)

const (
	goldPerKill = 20
	maxMessages = 6
)

// Default roster spawned at game start, one enemy per race.
var defaultEnemies = []struct {
	name string
	race string
}{
	{"Bob", "human"},
	{"Legolas", "elf"},
	{"Gimli", "dwarf"},
	{"Frodo", "hobbit"},
	{"Azog", "orc"},
}

// Default item pool scattered on the board.
var defaultItemIDs = []string{
	"sword", "dagger", "leather_armor", "plate_armor", "ring_of_life", "ring_of_strength",
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer

	board    *world.Board
	player   *entity.Character
	enemies  []*entity.Character
	items    []*item.Item
	resolver *combat.Resolver
	rng      *rand.Rand
	clk      clock.Clock
	ids      idgen.Generator
	races    *gamedata.RaceRegistry

	cycle    Cycle
	state    State
	mode     Mode
	gold     int
	row, col int // player position
	messages []string
	running  bool
}

// New creates a game from the given configuration. The terminal screen
// is not touched until Run.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()

	races, err := gamedata.LoadRaceRegistry()
	if err != nil {
		return nil, err
	}
	itemRegistry, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	seed := cfg.Seed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	ids := idgen.NewUUID("char")

	race, err := entity.ParseRace(cfg.PlayerRace)
	if err != nil {
		return nil, err
	}
	player := entity.NewFromDef(cfg.PlayerName, race, races.GetByID(race.ID()))
	player.ID = ids.Generate()

	g := &Game{
		cfg:      cfg,
		board:    world.NewBoard(cfg.Width, cfg.Height),
		player:   player,
		resolver: combat.NewResolver(rng),
		rng:      rng,
		clk:      clk,
		ids:      ids,
		races:    races,
		state:    StatePlaying,
		running:  true,
	}

	for _, spawn := range defaultEnemies {
		r, err := entity.ParseRace(spawn.race)
		if err != nil {
			return nil, err
		}
		e := entity.NewFromDef(spawn.name, r, races.GetByID(spawn.race))
		e.ID = ids.Generate()
		g.enemies = append(g.enemies, e)
	}

	for _, id := range defaultItemIDs {
		def := itemRegistry.GetByID(id)
		if def == nil {
			return nil, fmt.Errorf("default item %q not in registry", id)
		}
		it, err := item.FromDef(def)
		if err != nil {
			return nil, err
		}
		g.items = append(g.items, it)
	}

	return g, nil
}

// Setup populates the board and places the player at the origin.
func (g *Game) Setup(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if g.cfg.LegacyRNG {
		g.board.PopulateLegacy(ctx, g.enemies, g.items, g.clk)
	} else {
		g.board.Populate(ctx, g.enemies, g.items, g.rng)
	}

	g.row, g.col = 0, 0
	g.board.At(g.row, g.col).Player = g.player

	span.SetAttributes(
		attribute.Int("board.width", g.cfg.Width),
		attribute.Int("board.height", g.cfg.Height),
		attribute.String("player.id", g.player.ID),
		attribute.String("player.race", g.player.Race.ID()),
		attribute.Bool("rng.legacy", g.cfg.LegacyRNG),
	)

	g.log("Welcome, %s. Clear the board of enemies!", g.player.Name)
}

// Run executes the main game loop on a terminal screen.
func (g *Game) Run(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	defer g.screen.Close()

	g.Setup(ctx)

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.endSpan(ctx)
	return nil
}

func (g *Game) endSpan(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("outcome", g.state.String()),
		attribute.Int("gold", g.gold),
		attribute.Int("commands", g.cycle.Commands()),
		attribute.Int("enemies_remaining", g.board.EnemyCount()),
	)
	span.End()
}

func (g *Game) render() {
	g.renderer.Render(g.board, ui.HUD{
		StatLine: g.player.StatLine(),
		Player:   g.player,
		Row:      g.row,
		Col:      g.col,
		Gold:     g.gold,
		Night:    g.cycle.Night(),
		Messages: g.messages,
		Prompt:   g.prompt(),
	})
}

func (g *Game) prompt() string {
	switch g.mode {
	case ModeDropSlot:
		return "Drop what? (1=Weapon, 2=Armour, 3=Shield, 4=Ring, esc=cancel)"
	case ModeDropRing:
		return fmt.Sprintf("Which ring? (1-%d, esc=cancel)", len(g.player.Rings))
	default:
		switch g.state {
		case StateVictory:
			return "You defeated all the enemies and won the game! (x = exit)"
		case StateDefeat:
			return "You died! Game over! (x = exit)"
		default:
			return "w/a/s/d = move, g = pickup, j = attack, h = drop, k = look, l = inventory, x = exit"
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input according to the current mode.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		if g.mode != ModePlay {
			g.mode = ModePlay
			return
		}
		g.running = false
		return
	}

	switch g.mode {
	case ModeDropSlot:
		g.DropSlot(ev.Rune())
		if g.mode == ModePlay {
			// The drop command counts once, when the menu flow finishes.
			g.afterCommand(ctx)
		}
	case ModeDropRing:
		g.DropRingKey(ev.Rune())
		g.afterCommand(ctx)
	default:
		g.handlePlayKey(ctx, ev)
	}
}

func (g *Game) handlePlayKey(ctx context.Context, ev *tcell.EventKey) {
	if g.state != StatePlaying {
		// Only exit remains once the game is decided.
		if ev.Rune() == 'x' || ev.Rune() == 'q' {
			g.running = false
		}
		return
	}

	counted := true
	switch ev.Key() {
	case tcell.KeyUp:
		g.Move(-1, 0)
	case tcell.KeyDown:
		g.Move(1, 0)
	case tcell.KeyLeft:
		g.Move(0, -1)
	case tcell.KeyRight:
		g.Move(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			g.Move(-1, 0)
		case 's':
			g.Move(1, 0)
		case 'a':
			g.Move(0, -1)
		case 'd':
			g.Move(0, 1)
		case 'g':
			g.PickUp()
		case 'j':
			g.Attack(ctx)
		case 'h':
			g.mode = ModeDropSlot
			counted = false
		case 'k':
			g.Look()
		case 'l':
			g.ShowInventory()
		case 'x', 'q':
			g.running = false
			counted = false
		default:
			g.log("Invalid command!")
			counted = false
		}
	default:
		counted = false
	}

	if counted {
		g.afterCommand(ctx)
	}
}

// afterCommand advances the day/night cycle and flips orcs on a change.
func (g *Game) afterCommand(ctx context.Context) {
	night, flipped := g.cycle.Tick()
	if !flipped {
		return
	}
	g.applyTimeOfDay(ctx, night)
	if night {
		g.log("It is now night.")
	} else {
		g.log("It is now daytime.")
	}
}

// Move shifts the player by the given square delta, clamped to the board.
func (g *Game) Move(dRow, dCol int) {
	newRow, newCol := g.row+dRow, g.col+dCol
	target := g.board.At(newRow, newCol)
	if target == nil {
		g.log("Cannot move there! You're at the edge of the board.")
		return
	}

	g.board.At(g.row, g.col).Player = nil
	g.row, g.col = newRow, newCol
	target.Player = g.player

	if target.Enemy != nil {
		g.log("You've encountered an enemy! %s", target.Enemy.StatLine())
	}
	if target.Item != nil {
		g.log("You've found an item! %s", target.Item.Describe())
	}
}

// PickUp attempts to pick up the item on the player's square.
func (g *Game) PickUp() {
	sq := g.board.At(g.row, g.col)
	if sq.Item == nil {
		g.log("No item here!")
		return
	}

	err := g.player.PickUp(sq.Item)
	switch {
	case err == nil:
		g.log("Picked up %s", sq.Item.Describe())
		sq.Item = nil
	case errors.Is(err, entity.ErrItemTooHeavy):
		g.log("Item too heavy")
	case errors.Is(err, entity.ErrUnknownItemKind):
		g.log("Item not recognized.")
	default:
		g.log("Cannot pick that up: %v", err)
	}
}

// Attack resolves one exchange with the enemy on the player's square:
// the player strikes first, then a surviving enemy strikes back.
func (g *Game) Attack(ctx context.Context) {
	sq := g.board.At(g.row, g.col)
	if sq.Enemy == nil {
		g.log("No enemy to attack")
		return
	}
	enemy := sq.Enemy

	result := g.resolveTraced(ctx, g.player, enemy)
	g.log("%s attacks %s: %s", g.player.Name, enemy.Name, result.Message)

	if enemy.Defeated() {
		g.log("%s defeated! Received %d gold!", enemy.Race, goldPerKill)
		sq.Enemy = nil
		g.gold += goldPerKill
		if g.board.EnemyCount() == 0 {
			g.state = StateVictory
			g.log("Congratulations! You defeated all the enemies and won the game!")
		}
		return
	}

	counter := g.resolveTraced(ctx, enemy, g.player)
	g.log("%s attacks %s: %s", enemy.Name, g.player.Name, counter.Message)
	if g.player.Defeated() {
		g.state = StateDefeat
		g.log("You died! Game over!")
	}
}

func (g *Game) resolveTraced(ctx context.Context, attacker, defender *entity.Character) combat.Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.resolve")
	defer span.End()

	result := g.resolver.Resolve(attacker, defender)

	span.SetAttributes(
		attribute.String("attacker.id", attacker.ID),
		attribute.String("defender.id", defender.ID),
		attribute.String("result", result.Kind.String()),
		attribute.Int("damage", result.Damage),
		attribute.Bool("defender_defeated", result.DefenderDefeated),
	)
	return result
}

// Look reports what shares the player's square.
func (g *Game) Look() {
	sq := g.board.At(g.row, g.col)
	if sq.Enemy == nil && sq.Item == nil {
		g.log("Square is empty!")
		return
	}
	if sq.Enemy != nil {
		g.log("Enemy here: %s", sq.Enemy.StatLine())
	}
	if sq.Item != nil {
		g.log("Item here: %s", sq.Item.Describe())
	}
}

// ShowInventory reports equipped items and gold.
func (g *Game) ShowInventory() {
	p := g.player
	describe := func(slot string, it *item.Item) {
		if it == nil {
			g.log("%s: None", slot)
			return
		}
		g.log("%s: %s", slot, it.Describe())
	}
	g.log("Equipped Items:")
	describe("Weapon", p.Weapon)
	describe("Armour", p.Armor)
	describe("Shield", p.Shield)
	if len(p.Rings) == 0 {
		g.log("Rings: None")
	} else {
		for i, ring := range p.Rings {
			g.log("Ring %d: %s", i+1, ring.Describe())
		}
	}
	g.log("Total gold collected: %d", g.gold)
}

// DropSlot handles the 1-4 choice of the drop menu.
func (g *Game) DropSlot(key rune) {
	g.mode = ModePlay
	switch key {
	case '1':
		name, ok := g.player.DropWeapon()
		g.reportDrop("weapon", name, ok)
	case '2':
		name, ok := g.player.DropArmour()
		g.reportDrop("armor", name, ok)
	case '3':
		name, ok := g.player.DropShield()
		g.reportDrop("shield", name, ok)
	case '4':
		if len(g.player.Rings) == 0 {
			g.log("No rings to drop.")
			return
		}
		g.mode = ModeDropRing
	default:
		g.log("Invalid choice! Please enter 1, 2, 3, or 4.")
	}
}

func (g *Game) reportDrop(slot string, name string, ok bool) {
	if !ok {
		g.log("No %s to drop.", slot)
		return
	}
	g.log("Dropping %s: %s", slot, name)
}

// DropRingKey handles the numeric ring choice, 1-based like the menu.
func (g *Game) DropRingKey(key rune) {
	g.mode = ModePlay
	index := int(key-'0') - 1
	name, err := g.player.DropRing(index)
	if err != nil {
		g.log("Invalid ring selection! Please enter a number between 1 and %d.", len(g.player.Rings))
		return
	}
	g.log("Dropping ring: %s", name)
}

// log appends a formatted message to the rolling message window.
func (g *Game) log(format string, args ...any) {
	g.messages = append(g.messages, fmt.Sprintf(format, args...))
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// Messages returns the current message window, most recent last.
func (g *Game) Messages() []string {
	return g.messages
}

// Board exposes the board for rendering and tests.
func (g *Game) Board() *world.Board {
	return g.board
}

// Player exposes the player character.
func (g *Game) Player() *entity.Character {
	return g.player
}

// Gold returns the gold collected so far.
func (g *Game) Gold() int {
	return g.gold
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}
