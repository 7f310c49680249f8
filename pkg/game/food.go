package game

import "math/rand"

// FruitSet holds the fruit on the board. Iteration follows insertion order so that
// consumption and rendering are reproducible.
type FruitSet struct {
	items []Point
	limit int
}

// NewFruitSet creates an empty set holding at most limit fruits.
func NewFruitSet(limit int) *FruitSet {
	return &FruitSet{
		items: make([]Point, 0, limit),
		limit: limit,
	}
}

func (f *FruitSet) Len() int {
	return len(f.items)
}

// Full reports whether the set has reached its cap.
func (f *FruitSet) Full() bool {
	return len(f.items) >= f.limit
}

// Has reports whether a fruit sits at p.
func (f *FruitSet) Has(p Point) bool {
	for _, item := range f.items {
		if item == p {
			return true
		}
	}
	return false
}

// Add places a fruit at p. Duplicates and additions past the cap are refused.
func (f *FruitSet) Add(p Point) bool {
	if f.Full() || f.Has(p) {
		return false
	}
	f.items = append(f.items, p)
	return true
}

// Consume removes the first fruit at p and reports whether one was there.
// Only one is removed even if p somehow appears twice.
func (f *FruitSet) Consume(p Point) bool {
	for i, item := range f.items {
		if item == p {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Points returns a copy of the fruit positions.
func (f *FruitSet) Points() []Point {
	out := make([]Point, len(f.items))
	copy(out, f.items)
	return out
}

// Spawn tries up to attempts random cells of board and places a fruit on the
// first one that is free of the body and of other fruit. It gives up quietly
// when every attempt lands on an occupied cell.
func (f *FruitSet) Spawn(rng *rand.Rand, board Board, body *Body, attempts int) (Point, bool) {
	if f.Full() || board.Cells() <= body.Len()+f.Len() {
		return Point{}, false
	}

	for i := 0; i < attempts; i++ {
		pos := Point{
			X: rng.Intn(board.Width),
			Y: rng.Intn(board.Height),
		}

		if body.Contains(pos, false) || f.Has(pos) {
			continue
		}

		f.items = append(f.items, pos)
		return pos, true
	}
	return Point{}, false
}
