package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var black = color.NRGBA{A: 0xff}

// inkBounds returns the smallest rectangle holding every pixel whose alpha exceeds min.
func inkBounds(img *image.NRGBA, min uint8) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > min {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestCanvas_SinglePointPathIsNotPainted(t *testing.T) {
	c := NewCanvas(32, 32)
	c.BeginPath()
	c.MoveTo(10, 10)
	c.Stroke(black, 8, RoundCap)

	assert.True(t, inkBounds(c.Image(), 0).Empty())
}

func TestCanvas_ZeroLengthSegment(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(32, 32)
	c.BeginPath()
	c.MoveTo(16, 16)
	c.LineTo(16, 16)
	c.Stroke(black, 8, RoundCap)

	ink := inkBounds(c.Image(), 0x80)
	assert.False(ink.Empty())
	assert.Equal(uint8(0xff), c.Image().NRGBAAt(16, 16).A)
	assert.InDelta(8, ink.Dx(), 2)
	assert.InDelta(8, ink.Dy(), 2)

	c = NewCanvas(32, 32)
	c.BeginPath()
	c.MoveTo(16, 16)
	c.LineTo(16, 16)
	c.Stroke(black, 8, FlatCap)
	assert.True(inkBounds(c.Image(), 0).Empty())
}

func TestCanvas_StrokeLine(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(64, 64)
	c.BeginPath()
	c.MoveTo(10, 32)
	c.LineTo(54, 32)
	c.Stroke(color.NRGBA{R: 0xff, A: 0xff}, 4, FlatCap)

	img := c.Image()
	assert.Equal(color.NRGBA{R: 0xff, A: 0xff}, img.NRGBAAt(32, 32))
	assert.Equal(uint8(0), img.NRGBAAt(32, 40).A)
	assert.Equal(uint8(0), img.NRGBAAt(5, 32).A)

	ink := inkBounds(img, 0x80)
	assert.Equal(10, ink.Min.X)
	assert.Equal(54, ink.Max.X)
	assert.InDelta(4, ink.Dy(), 1)
}

func TestCanvas_CapsExtendTheStroke(t *testing.T) {
	for _, cap := range []LineCap{SquareCap, RoundCap} {
		t.Run(cap.String(), func(t *testing.T) {
			c := NewCanvas(64, 64)
			c.BeginPath()
			c.MoveTo(20, 32)
			c.LineTo(44, 32)
			c.Stroke(black, 8, cap)

			ink := inkBounds(c.Image(), 0x80)
			assert.InDelta(t, 16, ink.Min.X, 1)
			assert.InDelta(t, 48, ink.Max.X, 1)
		})
	}
}

func TestCanvas_Arc(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(64, 64)
	c.BeginPath()
	c.Arc(32, 32, 10)
	c.Stroke(black, 2, FlatCap)

	img := c.Image()
	assert.Equal(uint8(0), img.NRGBAAt(32, 32).A)
	assert.Greater(img.NRGBAAt(42, 32).A, uint8(0x80))
	assert.Greater(img.NRGBAAt(32, 22).A, uint8(0x80))

	ink := inkBounds(img, 0x80)
	assert.InDelta(22, ink.Dx(), 2)
}

func TestCanvas_TransformScalesWidths(t *testing.T) {
	c := NewCanvas(128, 128)
	c.Scale(4, 4)
	c.BeginPath()
	c.MoveTo(4, 16)
	c.LineTo(28, 16)
	c.Stroke(black, 2, FlatCap)

	ink := inkBounds(c.Image(), 0x80)
	assert.Equal(t, image.Rect(16, 60, 112, 68), ink)
}

func TestCanvas_SaveRestore(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(64, 64)
	c.Save()
	c.Translate(10, 10)
	c.Rotate(90)
	assert.InDelta(10, c.apply(0, 0).x, 1e-9)
	assert.InDelta(10, c.apply(1, 0).x, 1e-9)
	assert.InDelta(11, c.apply(1, 0).y, 1e-9)
	c.Restore()
	assert.Equal(point{3, 4}, c.apply(3, 4))

	// Unbalanced restore is ignored.
	c.Restore()
	assert.Equal(point{3, 4}, c.apply(3, 4))
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(16, 16)
	c.BeginPath()
	c.MoveTo(0, 8)
	c.LineTo(16, 8)
	c.Stroke(black, 16, FlatCap)
	assert.False(t, inkBounds(c.Image(), 0).Empty())

	c.Clear(c.Bounds())
	assert.True(t, inkBounds(c.Image(), 0).Empty())
}

func TestCanvas_FillTextIsCentered(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(1024, 1024)
	c.Scale(4, 4)
	c.FillText("A", 50, 50, Font{Size: 32}, black)
	assert.NoError(c.Err())

	ink := inkBounds(c.Image(), 0x40)
	assert.False(ink.Empty())
	assert.InDelta(200, (ink.Min.X+ink.Max.X)/2, 3)
	assert.InDelta(200, (ink.Min.Y+ink.Max.Y)/2, 3)
	// 32px glyph drawn at 4×.
	assert.Greater(ink.Dy(), 64)
}

func TestCanvas_FillTextRotated(t *testing.T) {
	assert := assert.New(t)

	upright := NewCanvas(128, 128)
	upright.FillText("I", 64, 64, Font{Size: 48}, black)
	ink := inkBounds(upright.Image(), 0x40)
	assert.Greater(ink.Dy(), ink.Dx())

	rotated := NewCanvas(128, 128)
	rotated.Translate(64, 64)
	rotated.Rotate(90)
	rotated.FillText("I", 0, 0, Font{Size: 48}, black)
	ink = inkBounds(rotated.Image(), 0x40)
	assert.Greater(ink.Dx(), ink.Dy())
	assert.InDelta(64, (ink.Min.X+ink.Max.X)/2, 3)
	assert.InDelta(64, (ink.Min.Y+ink.Max.Y)/2, 3)
}

func TestCanvas_FillTextIgnoresEmptyInput(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillText("", 8, 8, Font{Size: 12}, black)
	c.FillText("x", 8, 8, Font{}, black)
	assert.True(t, inkBounds(c.Image(), 0).Empty())
}

func TestCanvas_FillTextReportsMissingGlyphs(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(64, 64)
	c.FillText("⭐", 32, 32, Font{Size: 32}, black)
	assert.ErrorIs(c.Err(), ErrMissingGlyph)
	assert.Contains(c.Err().Error(), "U+2B50")
	// The placeholder glyph is still drawn.
	assert.False(inkBounds(c.Image(), 0).Empty())

	c.ResetErr()
	assert.NoError(c.Err())

	// Variation selectors are not looked up.
	c.FillText("A\uFE0F", 32, 32, Font{Size: 32}, black)
	assert.NoError(c.Err())
}

func TestParseFont(t *testing.T) {
	_, err := ParseFont([]byte("not a font"))
	assert.Error(t, err)

	f, err := DefaultFont()
	assert.NoError(t, err)
	assert.NotNil(t, f)
}
