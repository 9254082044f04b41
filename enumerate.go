package hilbert

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is the number of points a parallel worker computes
// between checks of its context.
const cancelCheckInterval = 1 << 16

// Enumerate returns every cell of the level grid in curve order. The element
// at index d is DistanceToCoord(level, d). Enumerate(0) is [(0,0)].
//
// Returns ErrInvalidInput if level is not in [0, MaxEnumerateLevel].
func Enumerate(level int) ([]Coord, error) {
	if err := checkEnumerateLevel(level); err != nil {
		return nil, err
	}
	points := make([]Coord, Size(level))
	fill(points, level, 0)
	return points, nil
}

// Points is Enumerate for an already validated curve.
func (c Curve) Points() ([]Coord, error) {
	return Enumerate(c.level)
}

// All returns an iterator over (distance, cell) pairs in curve order. The
// sequence may be ranged over any number of times, and may be used for levels
// too large to hold in memory.
func (c Curve) All() iter.Seq2[uint64, Coord] {
	return func(yield func(uint64, Coord) bool) {
		n := c.Size()
		for d := uint64(0); d < n; d++ {
			x, y := toCoord(c.level, d)
			if !yield(d, Coord{X: x, Y: y}) {
				return
			}
		}
	}
}

// All is the package level form of Curve.All.
func All(level int) (iter.Seq2[uint64, Coord], error) {
	c, err := New(level)
	if err != nil {
		return nil, err
	}
	return c.All(), nil
}

// EnumerateParallel produces the same sequence as Enumerate, splitting the
// distance range into contiguous spans computed concurrently. Each worker
// writes only its own span of the result, so no locking is required.
//
// workers <= 0 means runtime.GOMAXPROCS(0). If ctx is cancelled the partial
// result is discarded and ctx.Err() is returned.
func EnumerateParallel(ctx context.Context, level int, workers int) ([]Coord, error) {
	if err := checkEnumerateLevel(level); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := Size(level)
	if uint64(workers) > n {
		workers = int(n)
	}
	span := (n + uint64(workers) - 1) / uint64(workers)

	Logger().Debug("hilbert: enumerate parallel",
		"level", level, "points", n, "workers", workers, "span", span)

	points := make([]Coord, n)
	g, gctx := errgroup.WithContext(ctx)
	for start := uint64(0); start < n; start += span {
		end := min(start+span, n)
		g.Go(func() error {
			for lo := start; lo < end; lo += cancelCheckInterval {
				if err := gctx.Err(); err != nil {
					return err
				}
				hi := min(lo+cancelCheckInterval, end)
				fill(points[lo:hi], level, lo)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// fill sets points[i] to the cell at distance first+i.
func fill(points []Coord, level int, first uint64) {
	for i := range points {
		x, y := toCoord(level, first+uint64(i))
		points[i] = Coord{X: x, Y: y}
	}
}

func checkEnumerateLevel(level int) error {
	if level < 0 || level > MaxEnumerateLevel {
		return fmt.Errorf(
			"%w: level %d outside [0, %d] for enumeration", ErrInvalidInput, level, MaxEnumerateLevel)
	}
	return nil
}
