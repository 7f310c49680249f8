package config

import (
	"errors"
	"fmt"
	"time"
)

// Game board dimensions
const (
	StandardWidth  = 32
	StandardHeight = 32
	LargeWidth     = 38
	LargeHeight    = 38
)

// Snake settings
const (
	InitialLength = 5 // Cells in the starting row, tail at the board center
)

// Fruit spawn settings
const (
	MaxFruitsOnBoard = 10
	FruitSpawnChance = 15  // Spawn when a roll in [0,100) is <= this value
	MaxSpawnAttempts = 100 // Random cells tried before skipping a spawn
)

// Speed settings
const (
	BaseTickInterval    = 300 * time.Millisecond
	PerSegmentDecrement = 12 * time.Millisecond
	MinTickInterval     = 50 * time.Millisecond // 300ms - 21*12ms would go below this
)

// Server settings
const (
	ServerAddr     = ":8080"
	WriteTimeout   = 2 * time.Second
	CommandBacklog = 32 // Buffered commands per connection
)

// Emoji characters for rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFruit = "🍎"
	CharCrash = "💥"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the tunable parameters of a single game.
type Rules struct {
	InitialLength       int
	MaxFruits           int
	SpawnChance         int // -1 disables spawning; 0 still spawns on a roll of 0
	MaxSpawnAttempts    int
	BaseTickInterval    time.Duration
	PerSegmentDecrement time.Duration
	MinTickInterval     time.Duration
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		InitialLength:       InitialLength,
		MaxFruits:           MaxFruitsOnBoard,
		SpawnChance:         FruitSpawnChance,
		MaxSpawnAttempts:    MaxSpawnAttempts,
		BaseTickInterval:    BaseTickInterval,
		PerSegmentDecrement: PerSegmentDecrement,
		MinTickInterval:     MinTickInterval,
	}
}

// Validate reports the first out-of-range field.
func (r Rules) Validate() error {
	switch {
	case r.InitialLength < 1:
		return fmt.Errorf("%w: initial length %d", ErrInvalidRules, r.InitialLength)
	case r.MaxFruits < 0:
		return fmt.Errorf("%w: max fruits %d", ErrInvalidRules, r.MaxFruits)
	case r.SpawnChance < -1 || r.SpawnChance > 100:
		return fmt.Errorf("%w: spawn chance %d", ErrInvalidRules, r.SpawnChance)
	case r.MaxSpawnAttempts < 1:
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalidRules, r.MaxSpawnAttempts)
	case r.MinTickInterval <= 0:
		return fmt.Errorf("%w: min tick interval %v", ErrInvalidRules, r.MinTickInterval)
	case r.BaseTickInterval < r.MinTickInterval:
		return fmt.Errorf("%w: base tick interval %v below floor %v", ErrInvalidRules, r.BaseTickInterval, r.MinTickInterval)
	case r.PerSegmentDecrement < 0:
		return fmt.Errorf("%w: per-segment decrement %v", ErrInvalidRules, r.PerSegmentDecrement)
	}
	return nil
}
