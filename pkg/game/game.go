package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/config"
)

// Game is the complete simulation state. It is not safe for concurrent use:
// Turn and Tick must be called from the same goroutine.
type Game struct {
	board     Board
	rules     config.Rules
	rng       *rand.Rand
	snake     *Body
	fruits    *FruitSet
	direction Direction
	pending   Direction // zero when no turn is queued
	score     uint
	ticks     uint64

	gameOver   bool
	deathCause DeathCause
	crashPoint Point
}

// NewGame creates a game with the default rules and a time-seeded random source.
func NewGame(width, height int) (*Game, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewGameWithRules(width, height, config.DefaultRules(), rng)
}

// NewGameWithRules creates a game with the snake lying on the middle row, tail at the
// centre column and heading right.
func NewGameWithRules(width, height int, rules config.Rules, rng *rand.Rand) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := Board{Width: width, Height: height}
	x, y := width/2, height/2
	if width <= 0 || height <= 0 || x+rules.InitialLength-1 >= width {
		return nil, fmt.Errorf("%w: %dx%d cannot hold %d cells from column %d",
			ErrBoardTooSmall, width, height, rules.InitialLength, x)
	}

	cells := make([]Point, rules.InitialLength)
	for i := range cells {
		cells[i] = Point{X: x + i, Y: y}
	}

	return &Game{
		board:     board,
		rules:     rules,
		rng:       rng,
		snake:     NewBody(cells...),
		fruits:    NewFruitSet(rules.MaxFruits),
		direction: Right,
	}, nil
}

// Turn queues a heading change for the next tick. Only 90 degree turns relative to
// the heading the snake is currently moving in are kept; anything else is ignored.
// A later call before the next tick replaces an earlier one.
func (g *Game) Turn(d Direction) {
	if g.direction.CanTurnTo(d) {
		g.pending = d
	}
}

// Tick advances the simulation by one step. Calling it after the game is over
// does nothing.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}

	if g.pending.Valid() {
		g.direction = g.pending
		g.pending = 0
	}

	if err := g.snake.Advance(g.direction); err != nil {
		return
	}
	g.ticks++
	head, _ := g.snake.Head()

	if g.fruits.Consume(head) {
		g.snake.Grow()
		g.score++
	}

	g.trySpawnFruit()
	g.checkCollision(head)
}

// trySpawnFruit rolls for a new fruit when the board is below its cap.
func (g *Game) trySpawnFruit() {
	if g.fruits.Full() {
		return
	}
	if g.rng.Intn(100) > g.rules.SpawnChance {
		return
	}
	g.fruits.Spawn(g.rng, g.board, g.snake, g.rules.MaxSpawnAttempts)
}

// checkCollision latches the first terminal condition so snapshots can report it.
func (g *Game) checkCollision(head Point) {
	switch {
	case !g.board.Contains(head):
		g.deathCause = DeathCauseWallCollision
	case g.snake.Contains(head, true):
		g.deathCause = DeathCauseSelfCollision
	default:
		return
	}
	g.gameOver = true
	g.crashPoint = head
}

// IsGameOver reports whether the head has left the board or hit another segment.
func (g *Game) IsGameOver() bool {
	head, err := g.snake.Head()
	if err != nil {
		return false
	}
	return !g.board.Contains(head) || g.snake.Contains(head, true)
}

// Head returns the head position; false only for an empty body.
func (g *Game) Head() (Point, bool) {
	head, err := g.snake.Head()
	if err != nil {
		return Point{}, false
	}
	return head, true
}

// Score returns the number of fruits eaten.
func (g *Game) Score() uint {
	return g.score
}

// TickInterval is the delay the driver should wait before the next Tick.
// It shrinks by a fixed step per segment down to the configured floor.
func (g *Game) TickInterval() time.Duration {
	interval := g.rules.BaseTickInterval - time.Duration(g.snake.Len())*g.rules.PerSegmentDecrement
	return max(interval, g.rules.MinTickInterval)
}

// Direction returns the committed heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Pending returns the queued turn, if any.
func (g *Game) Pending() (Direction, bool) {
	return g.pending, g.pending.Valid()
}

// Len returns the number of body segments.
func (g *Game) Len() int {
	return g.snake.Len()
}

// Body returns a copy of the snake cells, tail first.
func (g *Game) Body() []Point {
	return g.snake.Cells()
}

// Fruits returns a copy of the fruit positions in insertion order.
func (g *Game) Fruits() []Point {
	return g.fruits.Points()
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Rules() config.Rules {
	return g.rules
}

// Ticks returns how many moves the snake has made.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// PlaceFruit puts a fruit at p if p is on the board, off the body, not already
// fruit, and the cap allows it.
func (g *Game) PlaceFruit(p Point) bool {
	if !g.board.Contains(p) || g.snake.Contains(p, false) {
		return false
	}
	return g.fruits.Add(p)
}

// Snapshot returns a copy of the current game state for serialization
func (g *Game) Snapshot() GameState {
	state := GameState{
		Board:        g.board,
		Snake:        g.snake.Cells(),
		Fruits:       g.fruits.Points(),
		Score:        g.score,
		Direction:    g.direction,
		Ticks:        g.ticks,
		TickInterval: g.TickInterval().Milliseconds(),
		GameOver:     g.IsGameOver(),
		DeathCause:   g.deathCause,
	}

	if g.gameOver {
		crash := g.crashPoint
		state.CrashPoint = &crash
	}

	return state
}

// GetGameConfig returns the current game configuration
func (g *Game) GetGameConfig() GameConfig {
	return GameConfig{
		Width:       g.board.Width,
		Height:      g.board.Height,
		MaxFruits:   g.rules.MaxFruits,
		SpawnChance: g.rules.SpawnChance,
	}
}
