// Package history keeps undo and redo stacks of immutable snapshots.
package history

// History holds the present value plus the values before it (past) and the
// values undone after it (future). It is not safe for concurrent use.
type History[T any] struct {
	past    []T
	present T
	future  []T
	limit   int
}

// New starts a history at initial. A positive limit caps the undo depth;
// the oldest snapshots are dropped first.
func New[T any](initial T, limit int) *History[T] {
	return &History[T]{
		past:    []T{},
		present: initial,
		future:  []T{},
		limit:   limit,
	}
}

// Present returns the current value.
func (h *History[T]) Present() T {
	return h.present
}

// Push records the present on the undo stack, clears the redo stack and
// makes next the present.
func (h *History[T]) Push(next T) {
	h.past = append(h.past, h.present)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = h.future[:0]
	h.present = next
}

// Replace swaps the present without touching either stack.
func (h *History[T]) Replace(next T) {
	h.present = next
}

// Undo steps back one snapshot. It reports false when there is nothing to
// undo.
func (h *History[T]) Undo() bool {
	if len(h.past) == 0 {
		return false
	}

	lastIndex := len(h.past) - 1
	previous := h.past[lastIndex]
	h.past = h.past[:lastIndex]

	h.future = append(h.future, h.present)
	h.present = previous
	return true
}

// Redo re-applies the most recently undone snapshot. It reports false when
// there is nothing to redo.
func (h *History[T]) Redo() bool {
	if len(h.future) == 0 {
		return false
	}

	lastIndex := len(h.future) - 1
	next := h.future[lastIndex]
	h.future = h.future[:lastIndex]

	h.past = append(h.past, h.present)
	h.present = next
	return true
}

// CanUndo reports whether Undo would do anything.
func (h *History[T]) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History[T]) CanRedo() bool { return len(h.future) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History[T]) Depth() (past, future int) {
	return len(h.past), len(h.future)
}
