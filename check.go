package hilbert

import "fmt"

// Check walks the whole level curve and confirms that
//
//   - every distance round trips through CoordToDistance,
//   - no cell is visited twice (with the length being 4^level this also
//     means every cell is visited),
//   - consecutive cells are exactly one unit step apart.
//
// It returns nil if the curve is sound, otherwise ErrRoundTrip,
// ErrDuplicate or ErrNotAdjacent wrapped with the failing distance.
//
// The cost is linear in Size(level) in both time and memory (one bit per cell).
func Check(level int) error {
	if err := checkEnumerateLevel(level); err != nil {
		return err
	}
	c := Curve{level: level}

	seen := make([]uint64, (c.Size()+63)/64)
	var prev Coord
	for d, p := range c.All() {
		if got := toDistance(level, p.X, p.Y); got != d {
			return fmt.Errorf("%w: d=%d gave %s which maps back to %d", ErrRoundTrip, d, p, got)
		}
		cell := uint64(p.Y)<<level | uint64(p.X)
		if seen[cell/64]&(1<<(cell%64)) != 0 {
			return fmt.Errorf("%w: d=%d at %s", ErrDuplicate, d, p)
		}
		seen[cell/64] |= 1 << (cell % 64)

		if d > 0 && !UnitAdjacent(prev, p) {
			return fmt.Errorf("%w: d=%d from %s to %s", ErrNotAdjacent, d, prev, p)
		}
		prev = p
	}

	Logger().Debug("hilbert: curve checked", "level", level, "points", c.Size())
	return nil
}

// UnitAdjacent reports whether a and b differ by exactly one in exactly one
// axis.
func UnitAdjacent(a, b Coord) bool {
	return absDiff(a.X, b.X)+absDiff(a.Y, b.Y) == 1
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
