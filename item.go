package stamps

import (
	"image/color"

	"github.com/esimov/stamps/paint"
	"github.com/google/uuid"
)

// DefaultStickerSize is the font size used for stickers, in board pixels.
const DefaultStickerSize = 32

// StickerColor is the fill color used for sticker glyphs.
var StickerColor = color.NRGBA{A: 0xff}

// Point is a board coordinate.
type Point struct {
	X, Y float64
}

// ItemKind identifies the variant of a Drawable.
type ItemKind uint8

const (
	KindStroke ItemKind = iota
	KindSticker
)

func (k ItemKind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindSticker:
		return "sticker"
	}
	return "unknown"
}

// Drawable is an item committed to the board history.
// The set of implementations is closed: only *Stroke and *Sticker satisfy it.
type Drawable interface {
	Render(s paint.Surface)
	Kind() ItemKind

	drawable()
}

// Stroke is a freehand marker line.
type Stroke struct {
	ID        string
	Points    []Point
	Thickness float64
	Color     color.NRGBA
}

// NewStroke starts a stroke at p.
func NewStroke(p Point, thickness float64, c color.NRGBA) *Stroke {
	return &Stroke{
		ID:        uuid.NewString(),
		Points:    []Point{p},
		Thickness: thickness,
		Color:     c,
	}
}

// Append records the next pointer position of the stroke.
func (s *Stroke) Append(p Point) {
	s.Points = append(s.Points, p)
}

// Render draws the stroke as a round capped polyline.
// A stroke holding a single point draws nothing.
func (s *Stroke) Render(surf paint.Surface) {
	if len(s.Points) < 2 {
		return
	}
	surf.BeginPath()
	surf.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		surf.LineTo(p.X, p.Y)
	}
	surf.Stroke(s.Color, s.Thickness, paint.RoundCap)
}

func (s *Stroke) Kind() ItemKind { return KindStroke }

func (*Stroke) drawable() {}

// Sticker is an emoji glyph stamped on the board.
type Sticker struct {
	ID       string
	Glyph    string
	Pos      Point
	Rotation float64
	Size     float64
}

// NewSticker creates a sticker of the default size at p.
func NewSticker(glyph string, p Point, rotation float64) *Sticker {
	return &Sticker{
		ID:       uuid.NewString(),
		Glyph:    glyph,
		Pos:      p,
		Rotation: rotation,
		Size:     DefaultStickerSize,
	}
}

// MoveTo moves the sticker while it is being dragged.
func (s *Sticker) MoveTo(p Point) {
	s.Pos = p
}

func (s *Sticker) Render(surf paint.Surface) {
	drawGlyph(surf, s.Glyph, s.Pos, s.Rotation, s.Size, StickerColor)
}

func (s *Sticker) Kind() ItemKind { return KindSticker }

func (*Sticker) drawable() {}

// drawGlyph paints a glyph centered on pos, rotated clockwise by rotation degrees.
func drawGlyph(surf paint.Surface, glyph string, pos Point, rotation, size float64, c color.NRGBA) {
	if size <= 0 {
		size = DefaultStickerSize
	}
	surf.Save()
	surf.Translate(pos.X, pos.Y)
	surf.Rotate(rotation)
	surf.FillText(glyph, 0, 0, paint.Font{Size: size}, c)
	surf.Restore()
}
