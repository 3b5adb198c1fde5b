package stamps

import (
	"image/color"

	"github.com/esimov/stamps/paint"
)

// previewAlpha is the opacity of the sticker preview glyph.
const previewAlpha = 0x80

// Preview is the transient tool affordance drawn under the pointer.
// Previews are never committed to the history.
type Preview interface {
	Render(s paint.Surface)
}

// MarkerPreview outlines the marker tip: a circle of diameter Thickness.
type MarkerPreview struct {
	Pos       Point
	Thickness float64
	Color     color.NRGBA
}

func (p *MarkerPreview) Render(s paint.Surface) {
	s.BeginPath()
	s.Arc(p.Pos.X, p.Pos.Y, p.Thickness/2)
	s.Stroke(p.Color, 1, paint.FlatCap)
}

// StickerPreview shows the selected glyph, half transparent, where it would be placed.
type StickerPreview struct {
	Pos      Point
	Glyph    string
	Rotation float64
	Size     float64
}

func (p *StickerPreview) Render(s paint.Surface) {
	c := StickerColor
	c.A = previewAlpha
	drawGlyph(s, p.Glyph, p.Pos, p.Rotation, p.Size, c)
}

// NewPreview builds the preview matching the tool at position p.
func NewPreview(t Tool, p Point) Preview {
	if t.Mode == ModeSticker {
		return &StickerPreview{
			Pos:      p,
			Glyph:    t.Glyph,
			Rotation: t.Rotation,
			Size:     DefaultStickerSize,
		}
	}
	return &MarkerPreview{
		Pos:       p,
		Thickness: t.Thickness,
		Color:     t.Color,
	}
}
