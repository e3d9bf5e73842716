package board

import "pcbdraw/core"

// snapshot is the item arena at one point in time.
type snapshot []*core.Shape

func (s snapshot) clone() snapshot {
	c := make(snapshot, len(s))
	for i, item := range s {
		if item != nil {
			c[i] = item.Clone()
		}
	}
	return c
}

// History manages undo/redo using direct struct storage of board snapshots.
type History struct {
	states  []snapshot
	labels  []string
	current int // Current position in history
	max     int // Maximum number of states to keep
}

// NewHistory creates a new history manager.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]snapshot, 0, max),
		current: -1,
		max:     max,
	}
}

// saveState saves a new state (creates a deep copy).
func (h *History) saveState(items snapshot, label string) {
	// If we're not at the end, truncate everything after current
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
		h.labels = h.labels[:h.current+1]
	}

	h.states = append(h.states, items.clone())
	h.labels = append(h.labels, label)

	// If we exceed max, remove oldest
	if len(h.states) > h.max {
		h.states = h.states[1:]
		h.labels = h.labels[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if we can undo.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if we can redo.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// UndoLabel names the step Undo would revert.
func (h *History) UndoLabel() string {
	if !h.CanUndo() {
		return ""
	}
	return h.labels[h.current]
}

// RedoLabel names the step Redo would reapply.
func (h *History) RedoLabel() string {
	if !h.CanRedo() {
		return ""
	}
	return h.labels[h.current+1]
}

func (h *History) undo() snapshot {
	h.current--
	// Return a clone to prevent accidental modification of history
	return h.states[h.current].clone()
}

func (h *History) redo() snapshot {
	h.current++
	return h.states[h.current].clone()
}

// Clear clears all history.
func (h *History) Clear() {
	h.states = h.states[:0]
	h.labels = h.labels[:0]
	h.current = -1
}

// Stats returns current position and total states.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
