package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	w := newTestWorld(16, 16)

	require.True(t, w.Paint(3, 3, Sand))
	require.Equal(t, 1, w.UndoDepth())
	require.Equal(t, 1, w.ParticleCount())

	require.True(t, w.Undo())
	require.Equal(t, 0, w.ParticleCount())
	require.Equal(t, 0, w.UndoDepth())
	require.Equal(t, 1, w.RedoDepth())

	require.True(t, w.Redo())
	require.Equal(t, 1, w.ParticleCount())
	p := w.grid.At(3, 3)
	require.NotNil(t, p)
	require.Equal(t, Sand, p.Type)
	require.Equal(t, 0, w.RedoDepth())
}

func TestUndoRestoresExactStroke(t *testing.T) {
	w := newTestWorld(16, 16)

	w.Paint(3, 3, Sand)
	w.Paint(8, 8, Water)
	require.Equal(t, 2, w.ParticleCount())

	// Undoing once removes only the second stroke.
	require.True(t, w.Undo())
	require.Equal(t, 1, w.ParticleCount())
	require.Nil(t, w.grid.At(8, 8))
	require.NotNil(t, w.grid.At(3, 3))
}

func TestUndoEmptyStack(t *testing.T) {
	w := newTestWorld(8, 8)
	require.False(t, w.Undo())
	require.False(t, w.Redo())
}

func TestHistoryEvictsOldest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 8
	cfg.Params.BrushRadius = 1
	cfg.Params.HistoryLimit = 10
	w := NewWithConfig(cfg)

	for i := 0; i < 15; i++ {
		w.Paint(i*2, 3, Wall)
	}
	require.Equal(t, 10, w.UndoDepth())

	for w.Undo() {
	}
	// The five oldest strokes fell off the stack and survive the unwinding.
	require.Equal(t, 5, w.ParticleCount())
}

func TestNewMutationInvalidatesRedo(t *testing.T) {
	w := newTestWorld(16, 16)

	w.Paint(3, 3, Sand)
	require.True(t, w.Undo())
	require.Equal(t, 1, w.RedoDepth())

	w.Paint(5, 5, Water)
	require.Equal(t, 0, w.RedoDepth())
	require.False(t, w.Redo())
}

func TestUndoCoversSimulationSteps(t *testing.T) {
	w := newTestWorld(16, 16)
	w.rng = stubRand{f: 0.99}

	w.Paint(5, 0, Sand)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	require.Nil(t, w.grid.At(5, 0))

	// Undo restores the pre-stroke world, not the pre-step one.
	require.True(t, w.Undo())
	require.Equal(t, 0, w.ParticleCount())
}
