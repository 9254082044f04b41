// Package hilbert maps between 2D grid coordinates and distances along a
// discrete Hilbert curve, and enumerates the curve in traversal order.
package hilbert

/*

# The curve

A Hilbert curve of level L visits every cell of a 2^L x 2^L grid exactly once,
moving a single unit step between consecutive cells. The distance of a cell is
its position in that visiting order. Nearby distances map to nearby cells,
which is why the curve is useful for spatial indexing and for drawing.

Level 1 is the basic "U":

	y
	1   1 ─── 2
	    │     │
	0   0     3
	    0     1   x

Level 2 replaces each cell of the level 1 shape with a rotated or reflected
copy of the whole level 1 curve, chosen so that the copies join end to end:

	y
	3   5 ─── 6     9 ─── 10
	    │     │     │     │
	2   4     7 ─── 8     11
	    │                 │
	1   3 ─── 2     13 ── 12
	          │     │
	0   0 ─── 1     14 ── 15
	    0     1     2     3   x

Note the level 2 curve starts by stepping along x while level 1 steps along y.
The orientation of the first quadrant alternates with the parity of the level.

# Approach

There is no recursion and no lookup table. Both directions consume the
distance two bits at a time, one bit per axis, with the quadrant size s being
a power of two.

DistanceToCoord works from the finest quadrant (s = 1) up to the coarsest.
For each pair of bits

	rx = 1 & (d / 2)
	ry = 1 & (d ^ rx)

selects one of the four quadrants (0,0), (0,1), (1,1), (1,0) in curve order.
The coordinate accumulated so far is folded into the frame of that quadrant
with the rotate transform, then offset by s in each axis that has its bit set.

CoordToDistance runs the other way, coarsest to finest. It reads the s bit of
x and y, adds s*s*((3*rx) ^ ry) for the quadrants skipped over at this depth
and applies the same rotate transform before moving down a level.

# Rotate

	if ry == 0 {
		if rx == 1 {
			x, y = s-1-x, s-1-y
		}
		x, y = y, x
	}

The lower two quadrants of the "U" are the ones whose copies are turned. The
lower left one is mirrored about the main diagonal (a swap), the lower right
one about the anti-diagonal (reflect then swap). The upper two are plain
translated copies.

# Bounds

Coordinates are uint32 and distances uint64. MaxLevel is 31 so that the
number of cells, 4^31, still fits comfortably in a uint64. Negative
coordinates and distances can not be expressed; invalid levels, distances and
coordinates are reported as ErrInvalidInput.

*/
