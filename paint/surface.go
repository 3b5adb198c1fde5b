// Package paint defines the immediate-mode 2D drawing surface consumed by the
// drawable items of a board, together with a raster implementation of it.
package paint

import (
	"image"
	"image/color"
)

// LineCap describes the head or tail of a stroked path.
type LineCap uint8

const (
	// FlatCap ends the stroke exactly at the path end points.
	FlatCap LineCap = iota
	// SquareCap extends the stroke by half of its width past the end points.
	SquareCap
	// RoundCap ends the stroke with a half disc of diameter the stroke width.
	RoundCap
)

func (c LineCap) String() string {
	switch c {
	case FlatCap:
		return "flat"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	}
	return "unknown"
}

// Font selects the text face used by FillText. Size is expressed in user space units.
type Font struct {
	Size float64
}

// Surface is an immediate-mode drawing target.
//
// Coordinates passed to the path and text operations are in user space and
// are mapped to device space by the current transformation, which is
// modified by Translate, Rotate and Scale and saved or restored as a stack.
// Path points are transformed at the time they are added.
type Surface interface {
	// Bounds returns the device space extent of the surface.
	Bounds() image.Rectangle
	// Clear makes the device space region r fully transparent.
	Clear(r image.Rectangle)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a closed circle centered at (cx, cy) as a new subpath.
	Arc(cx, cy, r float64)
	// Stroke paints the current path outline with the given color, width and cap.
	Stroke(c color.Color, width float64, cap LineCap)

	// FillText paints text centered on (x, y).
	FillText(text string, x, y float64, f Font, c color.Color)

	Save()
	Restore()
	Translate(dx, dy float64)
	// Rotate rotates the user space clockwise by deg degrees.
	Rotate(deg float64)
	Scale(sx, sy float64)
}
