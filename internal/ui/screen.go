// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is a thin wrapper over a tcell terminal screen. It exposes
// just the operations the renderer and the game loop need.
type Screen struct {
	tc tcell.Screen
}

// NewScreen initializes the terminal for cell-based drawing. The
// caller must Close it to restore the terminal.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// Close restores the terminal state.
func (s *Screen) Close() {
	s.tc.Fini()
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Clear wipes the draw buffer.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Show flushes the draw buffer to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// SetContent draws one rune at the given cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}

// Print draws a string left to right starting at the given cell.
func (s *Screen) Print(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.tc.SetContent(col, y, r, nil, style)
		col++
	}
}

// Sync forces a full repaint, used after terminal resizes.
func (s *Screen) Sync() {
	s.tc.Sync()
}
