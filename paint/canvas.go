package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/stamps/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

type point struct {
	x, y float64
}

type subpath struct {
	pts    []point
	closed bool
}

// Canvas is a Surface backed by an in-memory *image.NRGBA.
// The canvas starts fully transparent. It is not safe for concurrent use.
type Canvas struct {
	img   *image.NRGBA
	ctm   f64.Aff3
	stack []f64.Aff3
	path  []subpath

	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

var _ Surface = (*Canvas)(nil)

// NewCanvas allocates a transparent canvas of w×h device pixels using the default font.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:   image.NewNRGBA(image.Rect(0, 0, w, h)),
		ctm:   identity,
		faces: make(map[float64]font.Face),
	}
}

// Image returns the backing image. It is updated in place by every drawing operation.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// SetFont replaces the font used by FillText. A nil font restores the default one.
func (c *Canvas) SetFont(f *opentype.Font) {
	c.font = f
	c.faces = make(map[float64]font.Face)
}

// Err returns the last error raised while drawing text, if any. A text with
// runes the font cannot draw yields an error wrapping ErrMissingGlyph.
func (c *Canvas) Err() error {
	return c.err
}

// ResetErr forgets the error reported by Err.
func (c *Canvas) ResetErr() {
	c.err = nil
}

// Bounds returns the device space extent of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clear makes the region r fully transparent.
func (c *Canvas) Clear(r image.Rectangle) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{pts: []point{c.apply(x, y)}})
}

// LineTo adds a straight segment to the current subpath.
// Without a current subpath it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.pts = append(sp.pts, c.apply(x, y))
}

// Arc adds a closed circle as a new subpath.
func (c *Canvas) Arc(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	n := circleSegments(r * c.scaleFactor())
	pts := make([]point, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, c.apply(cx+r*math.Cos(t), cy+r*math.Sin(t)))
	}
	c.path = append(c.path, subpath{pts: pts, closed: true})
}

// Stroke paints the outline of the current path. Segments are joined with
// round joins. A subpath holding a single point is not painted, while a
// zero length segment produces a dot under RoundCap.
func (c *Canvas) Stroke(col color.Color, width float64, cap LineCap) {
	hw := width * c.scaleFactor() / 2
	if hw <= 0 || len(c.path) == 0 {
		return
	}

	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	var painted bool
	for _, sp := range c.path {
		if len(sp.pts) < 2 {
			continue
		}
		pts := sp.pts
		if sp.closed {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		last := len(pts) - 1
		for i := 1; i <= last; i++ {
			p0, p1 := pts[i-1], pts[i]
			if cap == SquareCap && !sp.closed {
				if i == 1 {
					p0 = extend(p1, p0, hw)
				}
				if i == last {
					p1 = extend(p0, p1, hw)
				}
			}
			addSegment(r, p0, p1, hw)
		}
		for i, p := range pts {
			isEnd := !sp.closed && (i == 0 || i == last)
			if !isEnd || cap == RoundCap {
				addCircle(r, p, hw)
			}
		}
		painted = true
	}
	if painted {
		r.Draw(c.img, b, image.NewUniform(col), image.Point{})
	}
}

// FillText paints text so that the center of its ink bounds lands on (x, y).
// The glyphs are rasterized at device resolution and rotated as a tile.
// Runes missing from the font are drawn as the font's placeholder glyph and
// reported through Err.
func (c *Canvas) FillText(text string, x, y float64, f Font, col color.Color) {
	if text == "" || f.Size <= 0 {
		return
	}
	if err := c.checkGlyphs(text); err != nil {
		c.err = err
	}
	face, err := c.face(f.Size * c.scaleFactor())
	if err != nil {
		c.err = err
		return
	}
	tile := rasterizeText(face, text, col)
	if tile == nil {
		return
	}
	if deg := c.rotation(); utils.Abs(deg) > 1e-6 {
		// imaging rotates counter-clockwise for positive angles.
		tile = imaging.Rotate(tile, -deg, color.Transparent)
	}

	center := c.apply(x, y)
	tb := tile.Bounds()
	at := image.Pt(
		int(math.Round(center.x-float64(tb.Dx())/2)),
		int(math.Round(center.y-float64(tb.Dy())/2)),
	)
	draw.Draw(c.img, tb.Sub(tb.Min).Add(at), tile, tb.Min, draw.Over)
}

// Save pushes the current transformation onto the state stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the last saved transformation. It is a no-op on an empty stack.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = mul(c.ctm, f64.Aff3{1, 0, dx, 0, 1, dy})
}

func (c *Canvas) Rotate(deg float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	c.ctm = mul(c.ctm, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = mul(c.ctm, f64.Aff3{sx, 0, 0, 0, sy, 0})
}

// apply maps a user space coordinate to device space.
func (c *Canvas) apply(x, y float64) point {
	m := c.ctm
	return point{
		x: m[0]*x + m[1]*y + m[2],
		y: m[3]*x + m[4]*y + m[5],
	}
}

// scaleFactor returns the uniform scale of the current transformation,
// used to convert line widths and font sizes to device space.
func (c *Canvas) scaleFactor() float64 {
	m := c.ctm
	return math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3]))
}

// rotation returns the rotation of the current transformation in degrees.
func (c *Canvas) rotation() float64 {
	return math.Atan2(c.ctm[3], c.ctm[0]) * 180 / math.Pi
}

// mul returns the affine product m×n.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// extend moves p away from from by d along the from→p direction.
func extend(from, p point, d float64) point {
	dx, dy := p.x-from.x, p.y-from.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return p
	}
	return point{p.x + dx/l*d, p.y + dy/l*d}
}

// addSegment adds the rectangle covering the segment p0-p1 with half width hw.
// It must keep the winding used by addCircle.
func addSegment(r *vector.Rasterizer, p0, p1 point, hw float64) {
	dx, dy := p1.x-p0.x, p1.y-p0.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := dy/l*hw, -dx/l*hw

	r.MoveTo(float32(p0.x+nx), float32(p0.y+ny))
	r.LineTo(float32(p1.x+nx), float32(p1.y+ny))
	r.LineTo(float32(p1.x-nx), float32(p1.y-ny))
	r.LineTo(float32(p0.x-nx), float32(p0.y-ny))
	r.ClosePath()
}

// addCircle adds a disc of radius rad centered on p.
func addCircle(r *vector.Rasterizer, p point, rad float64) {
	n := circleSegments(rad)
	r.MoveTo(float32(p.x+rad), float32(p.y))
	for i := 1; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		r.LineTo(float32(p.x+rad*math.Cos(t)), float32(p.y+rad*math.Sin(t)))
	}
	r.ClosePath()
}

// circleSegments returns the number of polygon edges approximating a circle of radius r.
func circleSegments(r float64) int {
	return utils.Clamp(int(math.Ceil(math.Pi*r)), 12, 256)
}

// rasterizeText draws text on a tile fitted to its ink bounds.
func rasterizeText(face font.Face, text string, col color.Color) *image.NRGBA {
	bounds, _ := font.BoundString(face, text)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return nil
	}

	tile := image.NewNRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(text)
	return tile
}
