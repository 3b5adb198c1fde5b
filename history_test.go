package stamps

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStroke(x float64) *Stroke {
	s := NewStroke(Point{X: x, Y: 0}, Thin, color.NRGBA{A: 0xff})
	s.Append(Point{X: x + 1, Y: 1})
	return s
}

func TestHistory_CommitUndoRedo(t *testing.T) {
	assert := assert.New(t)

	signals := 0
	h := NewHistory(func() { signals++ })

	a, b := newTestStroke(0), NewSticker("⭐", Point{X: 5, Y: 5}, 0)
	h.Commit(a)
	h.Commit(b)
	assert.Equal(2, signals)
	assert.Equal([]Drawable{a, b}, h.Items())

	assert.True(h.Undo())
	assert.Equal([]Drawable{a}, h.Items())
	assert.Equal([]Drawable{b}, h.Redoable())
	assert.True(h.CanRedo())

	assert.True(h.Redo())
	assert.Equal([]Drawable{a, b}, h.Items())
	assert.Empty(h.Redoable())
	assert.Equal(4, signals)
}

func TestHistory_UndoRedoOnEmptyAreNoOps(t *testing.T) {
	assert := assert.New(t)

	signals := 0
	h := NewHistory(func() { signals++ })

	assert.False(h.Undo())
	assert.False(h.Redo())
	assert.Equal(0, signals)
	assert.False(h.CanUndo())
	assert.False(h.CanRedo())

	// A nil hook is allowed.
	h = NewHistory(nil)
	h.Commit(newTestStroke(0))
	assert.True(h.Undo())
}

func TestHistory_KUndosRemoveLastK(t *testing.T) {
	assert := assert.New(t)

	var items []Drawable
	h := NewHistory(nil)
	for i := 0; i < 6; i++ {
		s := newTestStroke(float64(i))
		items = append(items, s)
		h.Commit(s)
	}

	for k := 1; k <= 6; k++ {
		assert.True(h.Undo())
		assert.Equal(6-k, h.Len())
		for i, item := range h.Items() {
			assert.Same(items[i], item)
		}
		redo := h.Redoable()
		assert.Len(redo, k)
		for j, item := range redo {
			assert.Same(items[5-j], item)
		}
	}
	assert.False(h.Undo())

	// Redo restores in the original order.
	for k := 1; k <= 6; k++ {
		assert.True(h.Redo())
	}
	assert.Equal(items, h.Items())
}

func TestHistory_CommitDiscardsRedo(t *testing.T) {
	assert := assert.New(t)

	h := NewHistory(nil)
	a, b, c := newTestStroke(0), newTestStroke(1), newTestStroke(2)
	h.Commit(a)
	h.Commit(b)
	h.Undo()

	h.Commit(c)
	assert.False(h.CanRedo())
	assert.False(h.Redo())
	assert.Equal([]Drawable{a, c}, h.Items())
}

func TestHistory_Clear(t *testing.T) {
	assert := assert.New(t)

	signals := 0
	h := NewHistory(func() { signals++ })
	h.Commit(newTestStroke(0))
	h.Commit(newTestStroke(1))
	h.Undo()

	h.Clear()
	assert.Equal(4, signals)
	assert.Empty(h.Items())
	assert.False(h.Undo())
	assert.False(h.Redo())
}

func TestHistory_ItemsIsACopy(t *testing.T) {
	h := NewHistory(nil)
	a := newTestStroke(0)
	h.Commit(a)

	items := h.Items()
	items[0] = nil
	assert.Equal(t, []Drawable{a}, h.Items())
}
