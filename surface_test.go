package stamps

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/esimov/stamps/paint"
)

// recorder is a paint.Surface keeping a log of the calls it receives.
type recorder struct {
	bounds image.Rectangle
	calls  []string
}

var _ paint.Surface = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{bounds: image.Rect(0, 0, 256, 256)}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

// count returns the number of recorded calls starting with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) Bounds() image.Rectangle    { return r.bounds }
func (r *recorder) Clear(rect image.Rectangle) { r.log("clear %v", rect) }
func (r *recorder) BeginPath()                 { r.log("begin") }
func (r *recorder) MoveTo(x, y float64)        { r.log("moveto %g,%g", x, y) }
func (r *recorder) LineTo(x, y float64)        { r.log("lineto %g,%g", x, y) }
func (r *recorder) Arc(cx, cy, rad float64)    { r.log("arc %g,%g r=%g", cx, cy, rad) }
func (r *recorder) Save()                      { r.log("save") }
func (r *recorder) Restore()                   { r.log("restore") }
func (r *recorder) Translate(dx, dy float64)   { r.log("translate %g,%g", dx, dy) }
func (r *recorder) Rotate(deg float64)         { r.log("rotate %g", deg) }
func (r *recorder) Scale(sx, sy float64)       { r.log("scale %g,%g", sx, sy) }

func (r *recorder) Stroke(c color.Color, width float64, cap paint.LineCap) {
	r.log("stroke %v w=%g %s", c, width, cap)
}

func (r *recorder) FillText(text string, x, y float64, f paint.Font, c color.Color) {
	r.log("text %s %g,%g size=%g %v", text, x, y, f.Size, c)
}
