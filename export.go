package stamps

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/stamps/imop"
	"github.com/esimov/stamps/paint"
	"github.com/esimov/stamps/utils"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/opentype"
)

// ExportScale is the default resolution multiplier of exported images.
const ExportScale = 4

// ErrUnsupportedFormat is returned for an export path with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an export file format.
type Format uint8

const (
	PNG Format = iota
	JPEG
	BMP
	GIF
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case GIF:
		return "gif"
	case PDF:
		return "pdf"
	}
	return "unknown"
}

// HasAlpha reports whether the format keeps the transparency of the export.
func (f Format) HasAlpha() bool {
	return f == PNG || f == PDF
}

// FormatFromPath returns the export format matching the extension of path.
// A path without extension is exported as PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".gif":
		return GIF, nil
	case ".pdf":
		return PDF, nil
	default:
		return PNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Exporter renders the committed items onto an offscreen canvas.
// The zero value exports at ExportScale with the default font over a white background.
type Exporter struct {
	// Scale multiplies the board size. Non positive values mean ExportScale.
	Scale float64
	// Font overrides the sticker font.
	Font *opentype.Font
	// Background is used to flatten the image for formats without alpha.
	Background color.Color
}

// Export renders items on a board of w×h pixels at the given scale.
func Export(items []Drawable, w, h int, scale float64) (*image.NRGBA, error) {
	return Exporter{Scale: scale}.Render(items, w, h)
}

// Render draws items in order onto a new transparent canvas of
// (w*scale)×(h*scale) pixels, scaling every coordinate, width and font size.
func (e Exporter) Render(items []Drawable, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", w, h)
	}
	scale := e.scale()
	c := paint.NewCanvas(
		utils.Max(1, int(float64(w)*scale+0.5)),
		utils.Max(1, int(float64(h)*scale+0.5)),
	)
	if e.Font != nil {
		c.SetFont(e.Font)
	}
	c.Scale(scale, scale)
	for _, item := range items {
		item.Render(c)
	}
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("could not render the board: %w", err)
	}
	return c.Image(), nil
}

// Encode writes img to w in the given format. Formats without alpha are
// flattened over the exporter background first.
func (e Exporter) Encode(w io.Writer, img *image.NRGBA, f Format) error {
	var src image.Image = img
	if !f.HasAlpha() {
		src = Flatten(img, e.background())
	}

	switch f {
	case PNG:
		return png.Encode(w, src)
	case JPEG:
		return jpeg.Encode(w, src, &jpeg.Options{Quality: 100})
	case BMP:
		return bmp.Encode(w, src)
	case GIF:
		return gif.Encode(w, src, nil)
	case PDF:
		return e.EncodePDF(w, img)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// EncodeFile writes img to path using the format given by its extension.
// The file is removed when the encoding fails.
func (e Exporter) EncodeFile(path string, img *image.NRGBA) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := e.Encode(out, img, f); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("could not encode the %s image: %w", f, err)
	}
	return out.Close()
}

// EncodePDF wraps img in a single page PDF document. The page has the size of
// the board in points, independent of the export scale.
func (e Exporter) EncodePDF(w io.Writer, img *image.NRGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	scale := e.scale()
	b := img.Bounds()
	pw, ph := float64(b.Dx())/scale, float64(b.Dy())/scale

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("board", opt, &buf)
	pdf.ImageOptions("board", 0, 0, pw, ph, false, opt, 0, "")

	return pdf.Output(w)
}

// Encode writes img to w using the default exporter settings.
func Encode(w io.Writer, img *image.NRGBA, f Format) error {
	return Exporter{}.Encode(w, img, f)
}

// EncodeFile writes img to path using the default exporter settings.
func EncodeFile(path string, img *image.NRGBA) error {
	return Exporter{}.EncodeFile(path, img)
}

func (e Exporter) scale() float64 {
	if e.Scale <= 0 {
		return ExportScale
	}
	return e.Scale
}

func (e Exporter) background() color.Color {
	if e.Background == nil {
		return color.White
	}
	return e.Background
}

// Flatten composites img over an opaque background of color bg.
func Flatten(img *image.NRGBA, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	backdrop := image.NewNRGBA(b)
	draw.Draw(backdrop, b, image.NewUniform(bg), image.Point{}, draw.Src)

	return imop.SrcOver(imop.NewBitmap(b), img, backdrop).Img
}

// Thumbnail scales img down to fit into a size×size box, keeping its aspect ratio.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	return imaging.Fit(img, size, size, imaging.Lanczos)
}
