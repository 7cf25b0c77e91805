package sand

import (
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/snappy"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	w := newTestWorld(20, 12)
	w.DrawRect(0, 10, 19, 11, Wall, true)
	w.DrawEllipse(6, 3, 3, 2, Sand, true)
	w.Paint(14, 2, Water)
	fire := w.spawn(Fire, 10, 5)
	fire.Life = 42
	fire.Span = 90

	data, err := w.Export()
	require.NoError(t, err)

	other := newTestWorld(20, 12)
	require.NoError(t, other.Import(data))

	require.Equal(t, w.Snapshot(), other.Snapshot())

	p := other.grid.At(10, 5)
	require.NotNil(t, p)
	require.Equal(t, Fire, p.Type)
	require.Equal(t, 42, p.Life)
	require.Equal(t, 90, p.Span)
}

func TestImportResizesGrid(t *testing.T) {
	small := newTestWorld(10, 8)
	small.Paint(4, 4, Metal)
	data, err := small.Export()
	require.NoError(t, err)

	big := newTestWorld(30, 30)
	require.NoError(t, big.Import(data))
	size := big.Size()
	require.Equal(t, 10, size.W)
	require.Equal(t, 8, size.H)
	require.Equal(t, 1, big.ParticleCount())
}

func TestImportReactivatesParticles(t *testing.T) {
	src := newTestWorld(10, 10)
	src.Paint(5, 2, Sand)
	data, err := src.Export()
	require.NoError(t, err)

	dst := newTestWorld(10, 10)
	dst.rng = stubRand{f: 0.99}
	// Burn through ticks so the next one is not a periodic full scan.
	for dst.Tick()%fullScanInterval == 0 {
		dst.Step()
	}
	require.NoError(t, dst.Import(data))
	require.Greater(t, dst.ActiveCells(), 0)

	dst.Step()
	p := dst.grid.At(5, 3)
	require.NotNil(t, p)
	require.Equal(t, Sand, p.Type)
}

func encodeSnapshot(s Snapshot) []byte {
	raw, _ := json.Marshal(s)
	return snappy.Encode(nil, raw)
}

func TestImportRejectsBadSnapshots(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("not a snapshot"), ErrInvalidSnapshot},
		{"zero dimensions", encodeSnapshot(Snapshot{}), ErrInvalidSnapshot},
		{"count mismatch", encodeSnapshot(Snapshot{
			Width: 4, Height: 4, Count: 2,
			Cells: []CellState{{X: 1, Y: 1, Type: "sand"}},
		}), ErrInvalidSnapshot},
		{"out of range cell", encodeSnapshot(Snapshot{
			Width: 4, Height: 4, Count: 1,
			Cells: []CellState{{X: 9, Y: 1, Type: "sand"}},
		}), ErrInvalidSnapshot},
		{"duplicate cell", encodeSnapshot(Snapshot{
			Width: 4, Height: 4, Count: 2,
			Cells: []CellState{{X: 1, Y: 1, Type: "sand"}, {X: 1, Y: 1, Type: "water"}},
		}), ErrInvalidSnapshot},
		{"unknown element", encodeSnapshot(Snapshot{
			Width: 4, Height: 4, Count: 1,
			Cells: []CellState{{X: 1, Y: 1, Type: "plasma"}},
		}), ErrUnknownElement},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(10, 10)
			w.Paint(5, 5, Wall)
			before := w.Snapshot()

			err := w.Import(tc.data)
			require.ErrorIs(t, err, tc.want)
			// Rejected wholesale: nothing changed.
			require.Equal(t, before, w.Snapshot())
			require.Equal(t, 1, w.UndoDepth())
		})
	}
}

func TestImportIsUndoable(t *testing.T) {
	src := newTestWorld(10, 10)
	src.Paint(2, 2, Oil)
	data, err := src.Export()
	require.NoError(t, err)

	w := newTestWorld(10, 10)
	w.Paint(7, 7, Metal)
	require.NoError(t, w.Import(data))
	require.Nil(t, w.grid.At(7, 7))
	require.NotNil(t, w.grid.At(2, 2))

	require.True(t, w.Undo())
	require.NotNil(t, w.grid.At(7, 7))
	require.Nil(t, w.grid.At(2, 2))
}
