package game

import "fmt"

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board holds the playfield dimensions in cells
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether p lies in [0,Width) x [0,Height)
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells on the board
func (b Board) Cells() int {
	return b.Width * b.Height
}

// DeathCause names why a game ended
type DeathCause string

const (
	DeathCauseNone          DeathCause = ""
	DeathCauseWallCollision DeathCause = "wall-collision"
	DeathCauseSelfCollision DeathCause = "self-collision"
)

// GameState is a read-only snapshot of the game for renderers and clients
type GameState struct {
	Board        Board      `json:"board"`
	Snake        []Point    `json:"snake"` // tail first, head last
	Fruits       []Point    `json:"fruits"`
	Score        uint       `json:"score"`
	Direction    Direction  `json:"direction"`
	Ticks        uint64     `json:"ticks"`
	TickInterval int64      `json:"tickIntervalMs"`
	GameOver     bool       `json:"gameOver"`
	Paused       bool       `json:"paused"`
	DeathCause   DeathCause `json:"deathCause,omitempty"`
	CrashPoint   *Point     `json:"crashPoint,omitempty"`
}

// Head returns the last snake cell, if any
func (s GameState) Head() (Point, bool) {
	if len(s.Snake) == 0 {
		return Point{}, false
	}
	return s.Snake[len(s.Snake)-1], true
}

// GameConfig is a DTO for game settings sent to client on connect
type GameConfig struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	MaxFruits   int `json:"maxFruits"`
	SpawnChance int `json:"spawnChance"`
}
