package hilberttesting

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/muratgu/hilbert"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	T   *testing.T
	Log *slog.Logger

	mu  sync.Mutex
	buf bytes.Buffer
}

type TestConfig struct {
	// LogLevel is the minimum level captured from the hilbert package
	// logger. nil means debug.
	LogLevel slog.Leveler
	// TestLabelPrefix is attached to every captured record as "test".
	TestLabelPrefix string
}

// NewTestContext installs a capturing logger as the hilbert package logger
// for the duration of the test. Tests using it must not run in parallel with
// other tests that set the package logger.
func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	t.Helper()
	c := &TestContext{T: t}

	level := cfg.LogLevel
	if level == nil {
		level = slog.LevelDebug
	}
	c.Log = slog.New(slog.NewTextHandler(lockedWriter{c}, &slog.HandlerOptions{Level: level}))
	if cfg.TestLabelPrefix != "" {
		c.Log = c.Log.With("test", cfg.TestLabelPrefix)
	}

	hilbert.SetLogger(c.Log)
	t.Cleanup(func() { hilbert.SetLogger(nil) })
	return c
}

// Logged returns everything captured so far.
func (c *TestContext) Logged() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

type lockedWriter struct{ c *TestContext }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.buf.Write(p)
}

// RequireSpaceFilling asserts that points is a complete level curve
// sequence: 4^level long, every cell present exactly once and each step a
// single unit move.
func RequireSpaceFilling(t *testing.T, level int, points []hilbert.Coord) {
	t.Helper()

	require.Len(t, points, int(hilbert.Size(level)))

	side := hilbert.Side(level)
	seen := make(map[hilbert.Coord]int, len(points))
	for d, p := range points {
		require.Less(t, p.X, side, "x out of range at d=%d", d)
		require.Less(t, p.Y, side, "y out of range at d=%d", d)

		first, dup := seen[p]
		require.False(t, dup, "%s visited at d=%d and d=%d", p, first, d)
		seen[p] = d

		if d > 0 {
			require.True(t, hilbert.UnitAdjacent(points[d-1], p),
				"d=%d: %s -> %s is not a unit step", d, points[d-1], p)
		}
	}
}

// RequireRoundTrip asserts that every distance of the level curve maps to a
// cell that maps back to the same distance.
func RequireRoundTrip(t *testing.T, level int) {
	t.Helper()

	for d := uint64(0); d < hilbert.Size(level); d++ {
		p, err := hilbert.DistanceToCoord(level, d)
		require.NoError(t, err)
		got, err := hilbert.CoordToDistance(level, p.X, p.Y)
		require.NoError(t, err)
		require.Equal(t, d, got, "level %d: d=%d -> %s -> %d", level, d, p, got)
	}
}
