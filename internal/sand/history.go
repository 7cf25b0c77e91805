package sand

// History keeps bounded undo/redo stacks of compressed grid snapshots.
type History struct {
	undo      [][]byte
	redo      [][]byte
	limit     int
	restoring bool
}

func newHistory(limit int) *History {
	if limit <= 0 {
		limit = 10
	}
	return &History{limit: limit}
}

func (h *History) reset() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.restoring = false
}

// push records a pre-mutation snapshot, evicting the oldest entry on
// overflow and invalidating the redo stack.
func (h *History) push(data []byte) {
	h.undo = append(h.undo, data)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// UndoDepth reports how many undo steps are available.
func (w *World) UndoDepth() int { return len(w.history.undo) }

// RedoDepth reports how many redo steps are available.
func (w *World) RedoDepth() int { return len(w.history.redo) }

// beginMutation snapshots the grid before a mutating drawing or clear
// operation. Restores in progress are not re-recorded.
func (w *World) beginMutation() {
	if w.history.restoring {
		return
	}
	data, err := w.Export()
	if err != nil {
		return
	}
	w.history.push(data)
}

// Undo restores the most recent pre-mutation snapshot, moving the current
// state onto the redo stack. Returns false when there is nothing to undo.
func (w *World) Undo() bool {
	h := w.history
	if len(h.undo) == 0 {
		return false
	}
	current, err := w.Export()
	if err != nil {
		return false
	}
	data := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	h.restoring = true
	defer func() { h.restoring = false }()
	if err := w.Import(data); err != nil {
		h.undo = append(h.undo, data)
		return false
	}
	h.redo = append(h.redo, current)
	return true
}

// Redo re-applies the most recently undone state, symmetric to Undo.
func (w *World) Redo() bool {
	h := w.history
	if len(h.redo) == 0 {
		return false
	}
	current, err := w.Export()
	if err != nil {
		return false
	}
	data := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	h.restoring = true
	defer func() { h.restoring = false }()
	if err := w.Import(data); err != nil {
		h.redo = append(h.redo, data)
		return false
	}
	h.undo = append(h.undo, current)
	return true
}
