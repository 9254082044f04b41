package hilbert

import "fmt"

// Curve is a Hilbert curve over a grid of fixed level. The zero value is the
// level 0 curve, a single cell.
//
// Unlike the package level functions, a Curve validates its level once, in
// New, so its methods only need to check the distance or coordinate.
type Curve struct {
	level int
}

// New returns the curve for the given level.
func New(level int) (Curve, error) {
	if err := CheckLevel(level); err != nil {
		return Curve{}, err
	}
	return Curve{level: level}, nil
}

// NewForSide returns the curve covering a grid of the given side length.
func NewForSide(side uint32) (Curve, error) {
	level, err := LevelForSide(side)
	if err != nil {
		return Curve{}, err
	}
	return New(level)
}

func (c Curve) Level() int     { return c.level }
func (c Curve) Side() uint32   { return Side(c.level) }
func (c Curve) Size() uint64   { return Size(c.level) }
func (c Curve) String() string { return fmt.Sprintf("hilbert(level=%d)", c.level) }

// Contains reports whether p is a cell of the grid.
func (c Curve) Contains(p Coord) bool {
	side := c.Side()
	return p.X < side && p.Y < side
}

// Coord returns the cell at distance d.
func (c Curve) Coord(d uint64) (Coord, error) {
	if d >= c.Size() {
		return Coord{}, fmt.Errorf(
			"%w: distance %d outside [0, %d) for level %d", ErrInvalidInput, d, c.Size(), c.level)
	}
	x, y := toCoord(c.level, d)
	return Coord{X: x, Y: y}, nil
}

// Distance returns the distance of the cell p.
func (c Curve) Distance(p Coord) (uint64, error) {
	if !c.Contains(p) {
		return 0, fmt.Errorf(
			"%w: coordinate %s outside [0, %d) for level %d", ErrInvalidInput, p, c.Side(), c.level)
	}
	return toDistance(c.level, p.X, p.Y), nil
}
