package game

import "fmt"

// Direction is one of the four headings. The zero value is not a direction.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

type directionInfo struct {
	name     string
	delta    Point
	opposite Direction
	turns    [2]Direction // legal next headings
}

var directionTable = [Right + 1]directionInfo{
	Up:    {name: "up", delta: Point{X: 0, Y: -1}, opposite: Down, turns: [2]Direction{Left, Right}},
	Down:  {name: "down", delta: Point{X: 0, Y: 1}, opposite: Up, turns: [2]Direction{Left, Right}},
	Left:  {name: "left", delta: Point{X: -1, Y: 0}, opposite: Right, turns: [2]Direction{Up, Down}},
	Right: {name: "right", delta: Point{X: 1, Y: 0}, opposite: Left, turns: [2]Direction{Up, Down}},
}

// Directions lists every valid heading.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit step for d, or the zero Point for an invalid value.
func (d Direction) Delta() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionTable[d].delta
}

func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return directionTable[d].opposite
}

// CanTurnTo reports whether next is a 90 degree turn from d.
// Keeping the heading or reversing are both illegal.
func (d Direction) CanTurnTo(next Direction) bool {
	if !d.Valid() {
		return false
	}
	for _, t := range directionTable[d].turns {
		if t == next {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionTable[d].name
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionTable[d].name), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = parsed
	return nil
}

// ParseDirection maps "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions() {
		if directionTable[d].name == s {
			return d, true
		}
	}
	return 0, false
}
