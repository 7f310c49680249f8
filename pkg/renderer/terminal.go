package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gulbrand/rusty-the-snake/pkg/config"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFruit
	cellCrash
)

// NewTerminalRenderer creates a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// clearScreen moves the cursor home and clears using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	r.buffer.WriteString("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// resize keeps the board buffer at the playfield size plus a one-cell wall frame
func (r *TerminalRenderer) resize(b game.Board) {
	rows, cols := b.Height+2, b.Width+2
	if len(r.board) == rows && (rows == 0 || len(r.board[0]) == cols) {
		return
	}
	// Pre-allocate board to reduce GC pressure
	r.board = make([][]int, rows)
	for i := range r.board {
		r.board[i] = make([]int, cols)
	}
}

// set marks a playfield cell, ignoring points outside the frame
func (r *TerminalRenderer) set(p game.Point, cell int) {
	y, x := p.Y+1, p.X+1
	if y < 0 || y >= len(r.board) || x < 0 || x >= len(r.board[y]) {
		return
	}
	r.board[y][x] = cell
}

// Render renders the game state to the terminal
func (r *TerminalRenderer) Render(s game.GameState) error {
	r.resize(s.Board)
	r.buffer.Reset()
	r.clearScreen()

	for y := range r.board {
		for x := range r.board[y] {
			edge := y == 0 || y == len(r.board)-1 || x == 0 || x == len(r.board[y])-1
			if edge {
				r.board[y][x] = cellWall
			} else {
				r.board[y][x] = cellEmpty
			}
		}
	}

	for _, f := range s.Fruits {
		r.set(f, cellFruit)
	}
	for i, p := range s.Snake {
		if i == len(s.Snake)-1 {
			r.set(p, cellHead)
		} else {
			r.set(p, cellBody)
		}
	}
	if s.CrashPoint != nil {
		r.set(*s.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE GAME 🐍\n")
	fmt.Fprintf(&r.buffer, "  Score: %d  |  Length: %d  |  Speed: %dms\n\n",
		s.Score, len(s.Snake), s.TickInterval)

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFruit:
				r.buffer.WriteString(config.CharFruit)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  P to pause, Q to quit\n")

	if s.Paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	if s.GameOver {
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}
