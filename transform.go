package hilbert

import "fmt"

// Coord is a cell of the grid. X and Y are each in [0, Side(level)).
type Coord struct {
	X, Y uint32
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// DistanceToCoord returns the cell at distance d along the level curve.
//
// Returns ErrInvalidInput if level is not in [0, MaxLevel] or d >= Size(level).
func DistanceToCoord(level int, d uint64) (Coord, error) {
	if err := CheckLevel(level); err != nil {
		return Coord{}, err
	}
	if d >= Size(level) {
		return Coord{}, fmt.Errorf(
			"%w: distance %d outside [0, %d) for level %d", ErrInvalidInput, d, Size(level), level)
	}
	x, y := toCoord(level, d)
	return Coord{X: x, Y: y}, nil
}

// CoordToDistance returns the distance along the level curve of the cell (x, y).
//
// Returns ErrInvalidInput if level is not in [0, MaxLevel] or either
// coordinate is >= Side(level).
func CoordToDistance(level int, x, y uint32) (uint64, error) {
	if err := CheckLevel(level); err != nil {
		return 0, err
	}
	side := Side(level)
	if x >= side || y >= side {
		return 0, fmt.Errorf(
			"%w: coordinate (%d,%d) outside [0, %d) for level %d", ErrInvalidInput, x, y, side, level)
	}
	return toDistance(level, x, y), nil
}

// toCoord is the unchecked form of DistanceToCoord. The result for an out of
// range level or distance is nonsense.
func toCoord(level int, d uint64) (x, y uint32) {
	n := Side(level)
	for s := uint32(1); s < n; s <<= 1 {
		rx := uint32(1 & (d >> 1))
		ry := uint32(1 & (d ^ uint64(rx)))
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		d >>= 2
	}
	return x, y
}

// toDistance is the unchecked form of CoordToDistance.
func toDistance(level int, x, y uint32) uint64 {
	var d uint64
	for s := Side(level) >> 1; s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = rotate(s, x, y, rx, ry)
	}
	return d
}

// rotate folds (x, y) into the frame of the quadrant (rx, ry) of a block of
// side s.
func rotate(s, x, y, rx, ry uint32) (uint32, uint32) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = s - 1 - x
		y = s - 1 - y
	}
	return y, x
}
