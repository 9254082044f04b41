package hilbert_test

import (
	"fmt"
	"testing"

	"github.com/muratgu/hilbert"
	"github.com/muratgu/hilbert/hilberttesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	for level := 0; level <= 10; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			require.NoError(t, hilbert.Check(level))
		})
	}
}

func TestCheckInvalidLevel(t *testing.T) {
	require.ErrorIs(t, hilbert.Check(-1), hilbert.ErrInvalidInput)
	require.ErrorIs(t, hilbert.Check(hilbert.MaxEnumerateLevel+1), hilbert.ErrInvalidInput)
}

func TestCheckLogs(t *testing.T) {
	tc := hilberttesting.NewTestContext(t, hilberttesting.TestConfig{})

	require.NoError(t, hilbert.Check(3))
	assert.Contains(t, tc.Logged(), "points=64")
}

func TestUnitAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b hilbert.Coord
		want bool
	}{
		{"step in x", hilbert.Coord{X: 1, Y: 1}, hilbert.Coord{X: 2, Y: 1}, true},
		{"step back in y", hilbert.Coord{X: 1, Y: 1}, hilbert.Coord{X: 1, Y: 0}, true},
		{"same cell", hilbert.Coord{X: 1, Y: 1}, hilbert.Coord{X: 1, Y: 1}, false},
		{"diagonal", hilbert.Coord{X: 1, Y: 1}, hilbert.Coord{X: 2, Y: 2}, false},
		{"jump", hilbert.Coord{X: 0, Y: 0}, hilbert.Coord{X: 2, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hilbert.UnitAdjacent(tt.a, tt.b); got != tt.want {
				t.Errorf("UnitAdjacent(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
