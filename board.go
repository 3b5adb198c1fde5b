package stamps

import (
	"errors"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/esimov/stamps/paint"
	"github.com/esimov/stamps/utils"
)

// ErrNoSurface is returned when a board is created without a drawing surface.
var ErrNoSurface = errors.New("no drawing surface")

// State is the state of the drawing gesture.
type State uint8

const (
	StateIdle State = iota
	StateDrawingStroke
	StatePlacingSticker
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawingStroke:
		return "drawing stroke"
	case StatePlacingSticker:
		return "placing sticker"
	}
	return "unknown"
}

// Board ties the history, the active tool and the gesture state machine to a
// drawing surface. Any change of the visible content redraws the whole surface.
// A Board is not safe for concurrent use: all calls must come from the goroutine
// delivering the pointer and button events.
type Board struct {
	// Logger, when set, traces gestures and history changes.
	Logger *log.Logger

	surface paint.Surface
	history *History
	tool    Tool
	state   State

	stroke  *Stroke
	sticker *Sticker

	preview Preview
	cursor  Point
	hover   bool

	stickers []string
	rnd      *rand.Rand
	onRedraw func()
}

// NewBoard creates an empty board drawing onto s.
func NewBoard(s paint.Surface) (*Board, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	b := &Board{
		surface:  s,
		tool:     DefaultTool(),
		stickers: append([]string(nil), DefaultStickers...),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.history = NewHistory(b.Redraw)
	b.preview = NewPreview(b.tool, b.cursor)
	return b, nil
}

// OnRedraw registers fn to be called after every redraw.
func (b *Board) OnRedraw(fn func()) {
	b.onRedraw = fn
}

// SetRand replaces the random source used by RandomColor.
func (b *Board) SetRand(r *rand.Rand) {
	b.rnd = r
}

func (b *Board) Surface() paint.Surface { return b.surface }
func (b *Board) History() *History      { return b.history }
func (b *Board) Tool() Tool             { return b.tool }
func (b *Board) State() State           { return b.state }

// Preview returns the current tool preview and whether it is drawn.
func (b *Board) Preview() (Preview, bool) {
	return b.preview, b.previewVisible()
}

// Items returns a copy of the committed items.
func (b *Board) Items() []Drawable {
	return b.history.Items()
}

// Stickers returns the glyphs offered by the sticker selector.
func (b *Board) Stickers() []string {
	return append([]string(nil), b.stickers...)
}

// Press starts a gesture at p: a new stroke in marker mode or a new sticker in
// sticker mode. The item is committed right away. A gesture still in progress
// is ended first.
func (b *Board) Press(p Point) {
	if b.state != StateIdle {
		b.endGesture()
	}
	b.cursor = p
	b.hover = true

	switch b.tool.Mode {
	case ModeSticker:
		b.sticker = NewSticker(b.tool.Glyph, p, b.tool.Rotation)
		b.state = StatePlacingSticker
		b.logf("sticker %s placed at (%.1f, %.1f)", b.sticker.Glyph, p.X, p.Y)
		b.history.Commit(b.sticker)
	default:
		b.stroke = NewStroke(p, b.tool.Thickness, b.tool.Color)
		b.state = StateDrawingStroke
		b.logf("stroke started at (%.1f, %.1f)", p.X, p.Y)
		b.history.Commit(b.stroke)
	}
}

// Move extends the active stroke, drags the active sticker or, when idle,
// moves the tool preview to p.
func (b *Board) Move(p Point) {
	b.cursor = p
	b.hover = true

	switch b.state {
	case StateDrawingStroke:
		b.stroke.Append(p)
	case StatePlacingSticker:
		b.sticker.MoveTo(p)
	default:
		b.preview = NewPreview(b.tool, p)
	}
	b.Redraw()
}

// Release ends the active gesture.
func (b *Board) Release() {
	if b.state == StateIdle {
		return
	}
	b.endGesture()
	b.Redraw()
}

// Leave ends the active gesture and hides the preview until the pointer moves
// over the board again.
func (b *Board) Leave() {
	b.endGesture()
	b.hover = false
	b.Redraw()
}

// Undo ends the active gesture and reverts the last committed item.
func (b *Board) Undo() bool {
	ended := b.endGesture()
	ok := b.history.Undo()
	b.logf("undo: %v, %d items", ok, b.history.Len())
	if !ok && ended {
		b.Redraw()
	}
	return ok
}

// Redo ends the active gesture and restores the last undone item.
func (b *Board) Redo() bool {
	ended := b.endGesture()
	ok := b.history.Redo()
	b.logf("redo: %v, %d items", ok, b.history.Len())
	if !ok && ended {
		b.Redraw()
	}
	return ok
}

// Clear ends the active gesture and removes every item from the history.
func (b *Board) Clear() {
	b.endGesture()
	b.history.Clear()
	b.logf("board cleared")
}

// SetMode switches between the marker and the sticker tool.
func (b *Board) SetMode(m Mode) {
	b.tool.Mode = m
	b.toolChanged()
}

// SetThickness selects the marker tool with the given thickness.
// Non positive values are ignored.
func (b *Board) SetThickness(t float64) {
	if t <= 0 {
		return
	}
	b.tool.Mode = ModeMarker
	b.tool.Thickness = t
	b.toolChanged()
}

// SetColor changes the marker color.
func (b *Board) SetColor(c color.NRGBA) {
	b.tool.Color = c
	b.toolChanged()
}

// RandomColor assigns a random marker color and returns it.
func (b *Board) RandomColor() color.NRGBA {
	c := b.tool.RandomColor(b.rnd)
	b.toolChanged()
	return c
}

// SetGlyph selects the sticker tool with the given glyph.
// A blank glyph is ignored.
func (b *Board) SetGlyph(glyph string) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return
	}
	b.tool.Mode = ModeSticker
	b.tool.Glyph = glyph
	b.toolChanged()
}

// SetRotation sets the rotation, in degrees, of the stickers placed next.
func (b *Board) SetRotation(deg float64) {
	b.tool.Rotation = deg
	b.toolChanged()
}

// AddSticker extends the sticker set with a custom glyph.
// It reports false for a blank glyph. Any other text is accepted as is.
func (b *Board) AddSticker(glyph string) bool {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return false
	}
	for _, g := range b.stickers {
		if g == glyph {
			return true
		}
	}
	b.stickers = append(b.stickers, glyph)
	return true
}

// Redraw clears the surface, renders the committed items in order and the tool
// preview on top of them.
func (b *Board) Redraw() {
	s := b.surface
	s.Clear(s.Bounds())
	for _, item := range b.history.items {
		item.Render(s)
	}
	if b.previewVisible() {
		b.preview.Render(s)
	}
	if b.onRedraw != nil {
		b.onRedraw()
	}
}

func (b *Board) previewVisible() bool {
	return b.state == StateIdle && b.hover && b.preview != nil
}

// toolChanged replaces the preview after a tool change and redraws.
func (b *Board) toolChanged() {
	b.preview = NewPreview(b.tool, b.cursor)
	b.logf("tool: %s, thickness %v, color %s, glyph %s",
		b.tool.Mode, b.tool.Thickness, utils.RGBAToHex(b.tool.Color), b.tool.Glyph)
	b.Redraw()
}

// endGesture returns to Idle and reports whether a gesture was active.
func (b *Board) endGesture() bool {
	active := b.state != StateIdle
	if active {
		b.logf("%s ended", b.state)
	}
	b.state = StateIdle
	b.stroke = nil
	b.sticker = nil
	b.preview = NewPreview(b.tool, b.cursor)
	return active
}

func (b *Board) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}
