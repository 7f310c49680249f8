package game

// Body is the snake, stored tail first and head last in a ring buffer so that
// moving costs one pop at the tail and one push at the head.
type Body struct {
	cells []Point
	start int // ring index of the tail
	n     int

	vacated    Point // tail cell dropped by the last Advance
	hasVacated bool
}

// NewBody builds a body from cells ordered tail to head.
func NewBody(cells ...Point) *Body {
	capacity := 8
	for capacity < len(cells)+1 {
		capacity *= 2
	}
	b := &Body{cells: make([]Point, capacity)}
	for _, c := range cells {
		b.pushBack(c)
	}
	return b
}

func (b *Body) Len() int {
	return b.n
}

// At returns the i-th segment counting from the tail. It panics when i is out of range,
// like a slice index.
func (b *Body) At(i int) Point {
	if i < 0 || i >= b.n {
		panic("game: body index out of range")
	}
	return b.cells[(b.start+i)%len(b.cells)]
}

// Head returns the leading segment.
func (b *Body) Head() (Point, error) {
	if b.n == 0 {
		return Point{}, ErrEmptyBody
	}
	return b.At(b.n - 1), nil
}

// Tail returns the trailing segment.
func (b *Body) Tail() (Point, error) {
	if b.n == 0 {
		return Point{}, ErrEmptyBody
	}
	return b.At(0), nil
}

// Advance moves the head one cell towards d and drops the tail.
// The dropped cell is remembered for Grow.
func (b *Body) Advance(d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	head, err := b.Head()
	if err != nil {
		return err
	}
	newHead := head.Add(d.Delta())
	b.vacated = b.popFront()
	b.hasVacated = true
	b.pushBack(newHead)
	return nil
}

// Grow puts the last vacated tail cell back, so the body ends this tick one
// segment longer. It returns false when there is nothing to restore.
func (b *Body) Grow() bool {
	if !b.hasVacated {
		return false
	}
	b.pushFront(b.vacated)
	b.hasVacated = false
	return true
}

// Contains reports whether p is a segment. With excludeHead the head itself is skipped,
// which is what the self-collision check needs.
func (b *Body) Contains(p Point, excludeHead bool) bool {
	n := b.n
	if excludeHead {
		n--
	}
	for i := 0; i < n; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments, tail first.
func (b *Body) Cells() []Point {
	out := make([]Point, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *Body) pushBack(p Point) {
	b.reserve()
	b.cells[(b.start+b.n)%len(b.cells)] = p
	b.n++
}

func (b *Body) pushFront(p Point) {
	b.reserve()
	b.start = (b.start - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.start] = p
	b.n++
}

func (b *Body) popFront() Point {
	p := b.cells[b.start]
	b.start = (b.start + 1) % len(b.cells)
	b.n--
	return p
}

// reserve doubles the ring when it is full, unrolling it so the tail sits at index 0.
func (b *Body) reserve() {
	if b.n < len(b.cells) {
		return
	}
	grown := make([]Point, max(8, len(b.cells)*2))
	for i := 0; i < b.n; i++ {
		grown[i] = b.At(i)
	}
	b.cells = grown
	b.start = 0
}
