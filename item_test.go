package stamps

import (
	"image/color"
	"testing"

	"github.com/esimov/stamps/paint"
	"github.com/stretchr/testify/assert"
)

func TestItem_StrokeRender(t *testing.T) {
	assert := assert.New(t)

	red := color.NRGBA{R: 0xff, A: 0xff}
	s := NewStroke(Point{X: 1, Y: 2}, Thick, red)
	assert.Equal(KindStroke, s.Kind())
	assert.NotEmpty(s.ID)

	rec := newRecorder()
	s.Render(rec)
	assert.Empty(rec.calls, "a single point stroke must not paint")

	s.Append(Point{X: 3, Y: 4})
	s.Append(Point{X: 5, Y: 6})
	s.Render(rec)
	assert.Equal([]string{
		"begin",
		"moveto 1,2",
		"lineto 3,4",
		"lineto 5,6",
		"stroke {255 0 0 255} w=6 round",
	}, rec.calls)
}

func TestItem_StrokeWithIdenticalPointsIsADot(t *testing.T) {
	assert := assert.New(t)

	s := NewStroke(Point{X: 16, Y: 16}, Thick, color.NRGBA{A: 0xff})
	s.Append(Point{X: 16, Y: 16})

	c := paint.NewCanvas(32, 32)
	s.Render(c)
	assert.Equal(uint8(0xff), c.Image().NRGBAAt(16, 16).A)
	assert.Equal(uint8(0), c.Image().NRGBAAt(24, 16).A)

	single := NewStroke(Point{X: 16, Y: 16}, Thick, color.NRGBA{A: 0xff})
	c = paint.NewCanvas(32, 32)
	single.Render(c)
	assert.Equal(uint8(0), c.Image().NRGBAAt(16, 16).A)
}

func TestItem_StickerRender(t *testing.T) {
	assert := assert.New(t)

	s := NewSticker("🚀", Point{X: 50, Y: 60}, 30)
	assert.Equal(KindSticker, s.Kind())
	assert.Equal(float64(DefaultStickerSize), s.Size)

	s.MoveTo(Point{X: 70, Y: 80})

	rec := newRecorder()
	s.Render(rec)
	assert.Equal([]string{
		"save",
		"translate 70,80",
		"rotate 30",
		"text 🚀 0,0 size=32 {0 0 0 255}",
		"restore",
	}, rec.calls)
}

func TestItem_IDsAreUnique(t *testing.T) {
	a := NewSticker("⭐", Point{}, 0)
	b := NewSticker("⭐", Point{}, 0)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItem_Previews(t *testing.T) {
	assert := assert.New(t)

	tool := DefaultTool()
	tool.Thickness = Thick
	tool.Color = color.NRGBA{B: 0xff, A: 0xff}

	p := NewPreview(tool, Point{X: 10, Y: 20})
	assert.IsType(&MarkerPreview{}, p)

	rec := newRecorder()
	p.Render(rec)
	assert.Equal([]string{
		"begin",
		"arc 10,20 r=3",
		"stroke {0 0 255 255} w=1 flat",
	}, rec.calls)

	tool.Mode = ModeSticker
	tool.Glyph = "🌙"
	tool.Rotation = 45
	p = NewPreview(tool, Point{X: 10, Y: 20})
	assert.IsType(&StickerPreview{}, p)

	rec.reset()
	p.Render(rec)
	assert.Equal([]string{
		"save",
		"translate 10,20",
		"rotate 45",
		"text 🌙 0,0 size=32 {0 0 0 128}",
		"restore",
	}, rec.calls)
}

func TestItem_Kinds(t *testing.T) {
	assert.Equal(t, "stroke", KindStroke.String())
	assert.Equal(t, "sticker", KindSticker.String())
	assert.Equal(t, "marker", ModeMarker.String())
	assert.Equal(t, "placing sticker", StatePlacingSticker.String())
}
