package snake

import "fmt"

// Position is a cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four valid directions. Y grows downwards.
var (
	DirRight = Direction{DX: 1, DY: 0}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirDown  = Direction{DX: 0, DY: 1}
	DirUp    = Direction{DX: 0, DY: -1}
)

// DirectionOf validates a (dx, dy) pair. Only the four unit vectors are accepted.
func DirectionOf(dx, dy int) (Direction, bool) {
	d := Direction{DX: dx, DY: dy}
	switch d {
	case DirRight, DirLeft, DirDown, DirUp:
		return d, true
	default:
		return Direction{}, false
	}
}

// Opposite reports whether d is the exact reverse of other.
func (d Direction) Opposite(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Grid is the playing field.
type Grid struct {
	Cols, Rows int
}

// GridForArea derives the play area from the single "area" control:
// area columns by floor(area*2/3) rows. The control's range is enforced by
// the caller.
func GridForArea(area int) Grid {
	return Grid{Cols: area, Rows: area * 2 / 3}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}
