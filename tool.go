package stamps

import (
	"image/color"
	"math/rand"
)

// Mode is the active tool kind.
type Mode uint8

const (
	ModeMarker Mode = iota
	ModeSticker
)

func (m Mode) String() string {
	switch m {
	case ModeMarker:
		return "marker"
	case ModeSticker:
		return "sticker"
	}
	return "unknown"
}

// Marker thickness presets.
const (
	Thin  = 2.0
	Thick = 6.0
)

// DefaultStickers is the sticker set offered on a new board.
var DefaultStickers = []string{"⭐", "🌙", "🪐", "🚀"}

// Palette holds the colors offered next to the random color action.
var Palette = []color.NRGBA{
	{A: 0xff},
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	{R: 0xfd, G: 0xd8, B: 0x35, A: 0xff},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
}

// Tool is the active tool configuration shared by the gesture handlers and the preview.
type Tool struct {
	Mode      Mode
	Thickness float64
	Color     color.NRGBA
	Glyph     string
	Rotation  float64
}

// DefaultTool returns a thin black marker with the first default sticker selected.
func DefaultTool() Tool {
	return Tool{
		Mode:      ModeMarker,
		Thickness: Thin,
		Color:     color.NRGBA{A: 0xff},
		Glyph:     DefaultStickers[0],
	}
}

// RandomColor assigns an opaque random color to the tool and returns it.
func (t *Tool) RandomColor(rnd *rand.Rand) color.NRGBA {
	n := rnd.Uint32()
	t.Color = color.NRGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}
	return t.Color
}
