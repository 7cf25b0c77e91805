package sand

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klauspost/compress/snappy"
)

// ErrUnknownElement is returned when creation or import references an element
// type that is not defined.
var ErrUnknownElement = errors.New("sand: unknown element type")

// ErrInvalidSnapshot is returned when imported state is missing required
// fields or internally inconsistent. Imports are rejected wholesale: on any
// error the prior world state is left intact.
var ErrInvalidSnapshot = errors.New("sand: invalid snapshot")

// CellState records one occupied cell with its behaviorally relevant
// transient fields. Color variation is cosmetic and resampled on import.
type CellState struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Type      string  `json:"type"`
	Life      int     `json:"life,omitempty"`
	Span      int     `json:"span,omitempty"`
	Burning   int     `json:"burning,omitempty"`
	Corrosion float64 `json:"corrosion,omitempty"`
}

// Snapshot is a sparse full-grid capture, the unit of history and
// persistence.
type Snapshot struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Count  int         `json:"count"`
	Cells  []CellState `json:"cells"`
}

// Snapshot captures the current grid as an ordered sparse cell list.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Width:  w.grid.Width(),
		Height: w.grid.Height(),
		Count:  w.grid.Count(),
		Cells:  make([]CellState, 0, w.grid.Count()),
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := w.grid.At(x, y)
			if p == nil {
				continue
			}
			s.Cells = append(s.Cells, CellState{
				X:         x,
				Y:         y,
				Type:      p.Type.String(),
				Life:      p.Life,
				Span:      p.Span,
				Burning:   p.Burning,
				Corrosion: p.Corrosion,
			})
		}
	}
	return s
}

// Export serializes the current grid as a snappy-compressed JSON snapshot.
func (w *World) Export() ([]byte, error) {
	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("sand: export: %w", err)
	}
	return snappy.Encode(nil, data), nil
}

// decodeSnapshot parses and fully validates an exported snapshot without
// touching world state.
func decodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("%w: missing dimensions", ErrInvalidSnapshot)
	}
	if s.Count != len(s.Cells) {
		return s, fmt.Errorf("%w: count %d does not match %d cells",
			ErrInvalidSnapshot, s.Count, len(s.Cells))
	}
	seen := make(map[int]struct{}, len(s.Cells))
	for _, c := range s.Cells {
		if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
			return s, fmt.Errorf("%w: cell (%d,%d) out of range", ErrInvalidSnapshot, c.X, c.Y)
		}
		if _, ok := TypeByName(c.Type); !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownElement, c.Type)
		}
		idx := c.Y*s.Width + c.X
		if _, dup := seen[idx]; dup {
			return s, fmt.Errorf("%w: duplicate cell (%d,%d)", ErrInvalidSnapshot, c.X, c.Y)
		}
		seen[idx] = struct{}{}
	}
	return s, nil
}

// Import replaces the grid with the decoded snapshot, resizing if the
// dimensions differ. Validation happens before any mutation, so a rejected
// import leaves the prior state untouched. Every restored particle's region
// is reactivated.
func (w *World) Import(data []byte) error {
	s, err := decodeSnapshot(data)
	if err != nil {
		return err
	}
	w.beginMutation()
	w.applySnapshot(s)
	return nil
}

func (w *World) applySnapshot(s Snapshot) {
	if s.Width != w.grid.Width() || s.Height != w.grid.Height() {
		w.grid = NewGrid(s.Width, s.Height)
	} else {
		w.grid.Clear()
	}
	clear(w.active)
	clear(w.pending)
	for _, c := range s.Cells {
		t, _ := TypeByName(c.Type)
		p := w.NewParticle(t, c.X, c.Y)
		p.Life = c.Life
		p.Span = c.Span
		if p.Span == 0 && p.Life > 0 {
			p.Span = p.Life
		}
		p.Burning = c.Burning
		p.Corrosion = c.Corrosion
		w.grid.Set(c.X, c.Y, p)
		w.markRegion(c.X, c.Y)
	}
}
