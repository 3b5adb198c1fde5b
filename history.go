package stamps

// History is the undo/redo stack of committed items.
//
// Every mutation which changes the visible content calls the change hook
// supplied at construction. History is not safe for concurrent use.
type History struct {
	items    []Drawable
	redo     []Drawable
	onChange func()
}

// NewHistory creates an empty history. onChange may be nil.
func NewHistory(onChange func()) *History {
	return &History{onChange: onChange}
}

// Commit appends an item and discards the redo sequence.
func (h *History) Commit(item Drawable) {
	h.items = append(h.items, item)
	h.redo = nil
	h.changed()
}

// Undo moves the last committed item onto the redo sequence.
// It reports false, without signaling, when there is nothing to undo.
func (h *History) Undo() bool {
	n := len(h.items)
	if n == 0 {
		return false
	}
	item := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	h.redo = append(h.redo, item)
	h.changed()
	return true
}

// Redo moves the most recently undone item back onto the committed sequence.
// It reports false, without signaling, when there is nothing to redo.
func (h *History) Redo() bool {
	n := len(h.redo)
	if n == 0 {
		return false
	}
	item := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.items = append(h.items, item)
	h.changed()
	return true
}

// Clear empties both sequences. Cleared items cannot be restored.
func (h *History) Clear() {
	h.items = nil
	h.redo = nil
	h.changed()
}

// Items returns a copy of the committed items in insertion order.
func (h *History) Items() []Drawable {
	return append([]Drawable(nil), h.items...)
}

// Redoable returns a copy of the redo sequence, the next item to redo last.
func (h *History) Redoable() []Drawable {
	return append([]Drawable(nil), h.redo...)
}

func (h *History) Len() int      { return len(h.items) }
func (h *History) CanUndo() bool { return len(h.items) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func (h *History) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}
