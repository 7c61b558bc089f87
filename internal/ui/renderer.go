package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/world"
)

// Board symbols: player, enemy, item.
const (
	symbolPlayer = '#'
	symbolEnemy  = '*'
	symbolItem   = '+'
)

// HUD carries everything drawn around the board.
type HUD struct {
	StatLine string
	Player   *entity.Character
	Row, Col int
	Gold     int
	Night    bool
	Messages []string
	Prompt   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board and HUD to the screen.
func (r *Renderer) Render(board *world.Board, hud HUD) {
	r.screen.Clear()

	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			sq := board.At(row, col)
			symbol, style := r.squareLook(sq)

			// Each cell is drawn |.| wide.
			x := col * 3
			separator := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			r.screen.SetContent(x, row, '|', separator)
			r.screen.SetContent(x+1, row, symbol, style)
			r.screen.SetContent(x+2, row, '|', separator)
		}
	}

	y := board.Height + 1
	info := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.screen.Print(0, y, fmt.Sprintf("Current location: %d %d", hud.Row, hud.Col), info)
	r.screen.Print(0, y+1, hud.StatLine, info)
	r.drawHealthBar(0, y+2, hud.Player)
	r.screen.Print(0, y+3, fmt.Sprintf("Gold: %d", hud.Gold), info)
	if hud.Night {
		r.screen.Print(0, y+4, "Current Time: Night", tcell.StyleDefault.Foreground(tcell.ColorBlue))
	} else {
		r.screen.Print(0, y+4, "Current Time: Day", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	for i, msg := range hud.Messages {
		r.screen.Print(0, y+6+i, msg, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Print(0, y+6+len(hud.Messages)+1, hud.Prompt, tcell.StyleDefault.Foreground(tcell.ColorTeal))

	r.screen.Show()
}

// squareLook picks the symbol and style for a square. Player wins over
// enemy, enemy over item.
func (r *Renderer) squareLook(sq *world.Square) (rune, tcell.Style) {
	switch {
	case sq.Player != nil:
		return symbolPlayer, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case sq.Enemy != nil:
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if sq.Enemy.Def != nil {
			style = tcell.StyleDefault.Foreground(sq.Enemy.Def.TCellColor())
		}
		return symbolEnemy, style
	case sq.Item != nil:
		return symbolItem, tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return ' ', tcell.StyleDefault
	}
}

// drawHealthBar renders a colored HP bar, blending red to green with
// the health fraction.
func (r *Renderer) drawHealthBar(x, y int, player *entity.Character) {
	const barWidth = 20

	maxHealth := player.TotalHealth()
	fraction := 0.0
	if maxHealth > 0 {
		fraction = float64(player.Health) / float64(maxHealth)
		if fraction > 1 {
			fraction = 1
		}
		if fraction < 0 {
			fraction = 0
		}
	}

	low := colorful.Color{R: 0.8, G: 0.15, B: 0.15}
	high := colorful.Color{R: 0.2, G: 0.75, B: 0.2}
	blend := low.BlendRgb(high, fraction)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(blend.R*255), int32(blend.G*255), int32(blend.B*255)))

	filled := int(fraction * barWidth)
	label := fmt.Sprintf("HP %d/%d ", player.Health, maxHealth)
	r.screen.Print(x, y, label, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i := 0; i < barWidth; i++ {
		symbol := '░'
		if i < filled {
			symbol = '█'
		}
		r.screen.SetContent(x+len(label)+i, y, symbol, style)
	}
}
