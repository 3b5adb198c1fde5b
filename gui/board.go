// Package gui hosts a stamps board in a desktop window.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/esimov/stamps"
	"github.com/esimov/stamps/paint"
)

// BoardWidget shows the raster canvas of a board and forwards the pointer
// events it receives to the board.
type BoardWidget struct {
	widget.BaseWidget

	board  *stamps.Board
	image  *canvas.Image
	bg     *canvas.Rectangle
	size   fyne.Size
	redraw func()
	err    error
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget creates the widget displaying c, the surface of b.
// The board redraw hook is taken over by the widget; use OnRedraw to be
// notified of the board changes.
func NewBoardWidget(b *stamps.Board, c *paint.Canvas) *BoardWidget {
	r := c.Bounds()
	w := &BoardWidget{
		board: b,
		image: canvas.NewImageFromImage(c.Image()),
		bg:    canvas.NewRectangle(color.White),
		size:  fyne.NewSize(float32(r.Dx()), float32(r.Dy())),
	}
	w.image.FillMode = canvas.ImageFillOriginal
	w.image.ScaleMode = canvas.ImageScalePixels
	w.bg.SetMinSize(w.size)

	b.OnRedraw(func() {
		w.err = c.Err()
		c.ResetErr()
		w.image.Refresh()
		if w.redraw != nil {
			w.redraw()
		}
	})
	w.ExtendBaseWidget(w)
	return w
}

// OnRedraw registers fn to be called after the board has been redrawn.
func (w *BoardWidget) OnRedraw(fn func()) {
	w.redraw = fn
}

// Err returns the drawing error of the last redraw, such as a sticker glyph
// missing from the font.
func (w *BoardWidget) Err() error {
	return w.err
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(w.bg, w.image))
}

func (w *BoardWidget) MinSize() fyne.Size {
	return w.size
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.Press(w.point(e.Position))
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.Release()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.Move(w.point(e.Position))
}

func (w *BoardWidget) DragEnd() {
	w.board.Release()
}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	w.board.Move(w.point(e.Position))
}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.board.Move(w.point(e.Position))
}

func (w *BoardWidget) MouseOut() {
	w.board.Leave()
}

// point converts a widget position to a board coordinate.
func (w *BoardWidget) point(p fyne.Position) stamps.Point {
	return stamps.Point{X: float64(p.X), Y: float64(p.Y)}
}
