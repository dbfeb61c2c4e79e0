package snake

// PositionSet is a set of occupied cells.
type PositionSet map[Position]struct{}

// Has reports whether p is in the set.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Body is the snake: a non-empty sequence of cells, head at index 0.
type Body struct {
	segments []Position
}

// Spawn places a single-segment snake one third across the grid and
// vertically centered.
func Spawn(g Grid) Body {
	return NewBody(Position{X: g.Cols / 3, Y: g.Rows / 2})
}

// NewBody builds a body from head-first segments.
func NewBody(head Position, rest ...Position) Body {
	segs := make([]Position, 0, 1+len(rest))
	segs = append(segs, head)
	segs = append(segs, rest...)
	return Body{segments: segs}
}

// Head returns the first segment.
func (b Body) Head() Position {
	return b.segments[0]
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b.segments)
}

// Segments returns a head-first copy of the body.
func (b Body) Segments() []Position {
	out := make([]Position, len(b.segments))
	copy(out, b.segments)
	return out
}

// Advance computes the cell the head would move to.
func (b Body) Advance(d Direction) Position {
	return b.Head().Add(d)
}

// Grow prepends p and keeps the tail.
func (b *Body) Grow(p Position) {
	b.segments = append([]Position{p}, b.segments...)
}

// MoveWithoutGrowth prepends p and drops the tail.
func (b *Body) MoveWithoutGrowth(p Position) {
	copy(b.segments[1:], b.segments[:len(b.segments)-1])
	b.segments[0] = p
}

// CollidesWithSelf reports whether p is occupied by any segment, the tail
// included.
func (b Body) CollidesWithSelf(p Position) bool {
	for _, seg := range b.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// CollidesWithWall reports whether p lies outside g.
func (b Body) CollidesWithWall(p Position, g Grid) bool {
	return !g.Contains(p)
}

// Occupied returns the set of cells covered by the body.
func (b Body) Occupied() PositionSet {
	set := make(PositionSet, len(b.segments))
	for _, seg := range b.segments {
		set[seg] = struct{}{}
	}
	return set
}
