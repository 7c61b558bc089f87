// Package world provides the game board and its random population.
package world

import (
	"github.com/samdwyer/gridfell/internal/entity"
	"github.com/samdwyer/gridfell/internal/item"
)

// Square is a single board cell. The enemy, item, and player slots are
// independent: a square may hold any combination of them. Squares only
// reference characters and items; the game owns the underlying pools.
type Square struct {
	Enemy  *entity.Character
	Item   *item.Item
	Player *entity.Character
}

// Empty reports whether nothing occupies the square.
func (s *Square) Empty() bool {
	return s.Enemy == nil && s.Item == nil && s.Player == nil
}

// Board is a fixed-size 2D grid of squares.
type Board struct {
	Width  int
	Height int
	grid   [][]Square // indexed [row][col]
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	grid := make([][]Square, height)
	for row := range grid {
		grid[row] = make([]Square, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		grid:   grid,
	}
}

// At returns the square at the given position, or nil if out of range.
func (b *Board) At(row, col int) *Square {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return nil
	}
	return &b.grid[row][col]
}

// EnemyCount returns the number of enemies currently on the board.
func (b *Board) EnemyCount() int {
	count := 0
	for row := range b.grid {
		for col := range b.grid[row] {
			if b.grid[row][col].Enemy != nil {
				count++
			}
		}
	}
	return count
}

// ForEachEnemy calls fn for every enemy on the board.
func (b *Board) ForEachEnemy(fn func(*entity.Character)) {
	for row := range b.grid {
		for col := range b.grid[row] {
			if e := b.grid[row][col].Enemy; e != nil {
				fn(e)
			}
		}
	}
}
