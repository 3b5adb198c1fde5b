package paint

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrMissingGlyph is recorded when the font has no outline for a rune of the
// text to draw. The default font covers no emoji.
var ErrMissingGlyph = errors.New("missing glyph")

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

// DefaultFont returns the Go Regular typeface, parsed once.
func DefaultFont() (*opentype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// ParseFont parses a TrueType or OpenType font, e.g. one carrying emoji outlines.
func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse the font file: %w", err)
	}
	return f, nil
}

// face returns a cached font face of the given device pixel size.
func (c *Canvas) face(size float64) (font.Face, error) {
	key := math.Round(size*100) / 100
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	fnt, err := c.typeface()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    key,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a font face of size %v: %w", key, err)
	}
	c.faces[key] = f
	return f, nil
}

// typeface returns the font set with SetFont or the default one.
func (c *Canvas) typeface() (*opentype.Font, error) {
	if c.font != nil {
		return c.font, nil
	}
	return DefaultFont()
}

// checkGlyphs returns an ErrMissingGlyph error for the first rune of text
// the font maps to the .notdef glyph. Selectors, joiners and combining marks
// are not checked.
func (c *Canvas) checkGlyphs(text string) error {
	fnt, err := c.typeface()
	if err != nil {
		return err
	}
	var buf sfnt.Buffer
	for _, r := range text {
		if unicode.In(r, unicode.Variation_Selector, unicode.Cf, unicode.Mn, unicode.Me) {
			continue
		}
		idx, err := fnt.GlyphIndex(&buf, r)
		if err != nil {
			return fmt.Errorf("could not look up %q: %w", r, err)
		}
		if idx == 0 {
			return fmt.Errorf("%w %q (U+%04X)", ErrMissingGlyph, r, r)
		}
	}
	return nil
}
