// Package imop implements the Porter-Duff source-over composition used for
// mixing a graphic element with its backdrop.
//
// Stamps uses it to flatten an exported drawing over an opaque background,
// since JPEG, BMP and GIF output cannot carry the alpha channel of the canvas.
package imop

import (
	"image"
	"image/color"
	"math"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// SrcOver composes the src image over the dst backdrop and writes the result into bitmap.
// All the images are expected to share the src bounds.
func SrcOver(bitmap *Bitmap, src, dst *image.NRGBA) *Bitmap {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	bounds := src.Bounds().Intersect(dst.Bounds()).Intersect(bitmap.Img.Bounds())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			b := dst.NRGBAAt(x, y)
			bitmap.Img.SetNRGBA(x, y, compose(s, b))
		}
	}
	return bitmap
}

// compose applies the source-over formula on a single pixel.
func compose(s, b color.NRGBA) color.NRGBA {
	as := float64(s.A) / 255
	ab := float64(b.A) / 255
	// fractions of source and backdrop
	fs, fb := 1.0, 1-as

	an := as*fs + ab*fb
	if an <= 0 {
		return color.NRGBA{}
	}

	// Premultiplied composition, converted back to straight alpha.
	channel := func(cs, cb uint8) uint8 {
		v := (as*fs*float64(cs) + ab*fb*float64(cb)) / an
		return uint8(math.Min(255, math.Round(v)))
	}

	return color.NRGBA{
		R: channel(s.R, b.R),
		G: channel(s.G, b.G),
		B: channel(s.B, b.B),
		A: uint8(math.Round(an * 255)),
	}
}
