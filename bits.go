package hilbert

import (
	"fmt"
	"math/bits"
)

const (
	// MaxLevel is the deepest curve supported. Coordinates at this level fit
	// a uint32 and the cell count, 4^MaxLevel, fits a uint64.
	MaxLevel = 31

	// MaxEnumerateLevel is the deepest curve that Enumerate, EnumerateParallel
	// and Check will materialise: 16 on 64-bit platforms (32 GiB of Coord),
	// 13 on 32-bit ones. Deeper curves must be streamed with All.
	MaxEnumerateLevel = (enumerateBytesLog2 - coordBytesLog2) / 2
)

const (
	// enumerateBytesLog2 is log2 of the largest slice of Coord we allocate.
	enumerateBytesLog2 = 30 + 5*(bits.UintSize/64)
	// coordBytesLog2 is log2 of the size of a Coord, two uint32.
	coordBytesLog2 = 3
)

// Side returns the grid side length, 2^level.
//
// The caller is responsible for ensuring 0 <= level <= MaxLevel.
// CheckLevel can be used to check this.
func Side(level int) uint32 { return uint32(1) << level }

// Size returns the number of cells in the grid, which is also the number of
// distances on the curve: 4^level.
//
// The caller is responsible for ensuring 0 <= level <= MaxLevel.
func Size(level int) uint64 { return uint64(1) << (2 * level) }

// CheckLevel returns ErrInvalidInput if level is outside [0, MaxLevel].
func CheckLevel(level int) error {
	if level < 0 || level > MaxLevel {
		return fmt.Errorf("%w: level %d outside [0, %d]", ErrInvalidInput, level, MaxLevel)
	}
	return nil
}

// LevelForSide returns the level whose grid has the given side length. The
// side must be a power of two.
func LevelForSide(side uint32) (int, error) {
	if !IsPow2(side) {
		return 0, fmt.Errorf("%w: side %d is not a power of two", ErrInvalidInput, side)
	}
	return int(Log2Uint32(side)), nil
}

// IsPow2 determines if v is a perfect power of 2.
func IsPow2(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// Log2Uint32 efficiently computes log base 2 of num
func Log2Uint32(num uint32) uint32 {
	return uint32(bits.Len32(num) - 1)
}
