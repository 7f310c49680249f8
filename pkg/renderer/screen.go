package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
)

// Glyphs drawn by ScreenRenderer, one terminal column per cell
const (
	RuneWall  = '#'
	RuneHead  = '@'
	RuneBody  = 'o'
	RuneFruit = '*'
	RuneCrash = 'X'
)

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHead  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBody  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFruit = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCrash = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText  = tcell.StyleDefault
)

// ScreenRenderer draws game snapshots on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Render draws the board with its wall frame at the top-left corner and a status
// line underneath.
func (r *ScreenRenderer) Render(s game.GameState) error {
	r.screen.Clear()

	w, h := s.Board.Width, s.Board.Height
	for x := 0; x < w+2; x++ {
		r.screen.SetContent(x, 0, RuneWall, nil, styleWall)
		r.screen.SetContent(x, h+1, RuneWall, nil, styleWall)
	}
	for y := 1; y <= h; y++ {
		r.screen.SetContent(0, y, RuneWall, nil, styleWall)
		r.screen.SetContent(w+1, y, RuneWall, nil, styleWall)
	}

	for _, f := range s.Fruits {
		r.put(s.Board, f, RuneFruit, styleFruit)
	}
	for i, p := range s.Snake {
		if i == len(s.Snake)-1 {
			r.put(s.Board, p, RuneHead, styleHead)
		} else {
			r.put(s.Board, p, RuneBody, styleBody)
		}
	}
	if s.CrashPoint != nil {
		r.put(s.Board, *s.CrashPoint, RuneCrash, styleCrash)
	}

	status := fmt.Sprintf("Score: %d  Length: %d  Speed: %dms", s.Score, len(s.Snake), s.TickInterval)
	switch {
	case s.GameOver:
		status += "  GAME OVER (r restart, q quit)"
	case s.Paused:
		status += "  PAUSED"
	}
	r.text(0, h+2, status)

	r.screen.Show()
	return nil
}

// put draws inside the frame; off-board points only show when they land on the wall
func (r *ScreenRenderer) put(b game.Board, p game.Point, ch rune, style tcell.Style) {
	if p.X < -1 || p.X > b.Width || p.Y < -1 || p.Y > b.Height {
		return
	}
	r.screen.SetContent(p.X+1, p.Y+1, ch, nil, style)
}

func (r *ScreenRenderer) text(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, styleText)
		x++
	}
}
