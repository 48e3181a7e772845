package debye

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/katalvlaran/lvscatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestGatherOptions_Defaults checks the documented defaults.
func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)
	assert.Equal(t, DefaultMaxTableBytes, o.maxTableBytes)
	assert.Same(t, lvscatter.Logger(), o.logger)
}

// TestGatherOptions_LastWins verifies setters apply in order.
func TestGatherOptions_LastWins(t *testing.T) {
	o := gatherOptions(WithWorkers(2), WithMaxTableBytes(1024), WithWorkers(5), WithLogger(nil))
	assert.Equal(t, 5, o.workers)
	assert.Equal(t, int64(1024), o.maxTableBytes)
	assert.NotNil(t, o.logger, "nil logger falls back to the package logger")
}

// TestOptions_Panics verifies constructors reject nonsense values.
func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(0) })
	assert.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(-3) })
	assert.PanicsWithValue(t, panicMaxBytesInvalid, func() { WithMaxTableBytes(0) })
}

// TestWithLogger_Diagnostics checks that a per-call logger receives the
// table and intensity records.
func TestWithLogger_Diagnostics(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Compute(1, 2, 0.5, []r3.Vec{{}, {X: 1}}, WithLogger(l), WithWorkers(2))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "distance table built")
	assert.Contains(t, buf.String(), "points=2")
	assert.Contains(t, buf.String(), "intensity computed")
	assert.Contains(t, buf.String(), "samples=2")
}
