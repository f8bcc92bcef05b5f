package glyph

import (
	"math"

	"github.com/gogpu/sdfglyph/text/msdf"
)

// Frame is the pixel rectangle a glyph is rasterized into.
type Frame struct {
	// Ink is the glyph's ink rectangle in font units, or the unit square
	// when the glyph has no ink.
	Ink msdf.Rect

	// Scale converts font units to pixels.
	Scale float64

	// Padded is the ink rectangle in pixels grown by half the range.
	Padded msdf.Rect

	// Width and Height are the bitmap dimensions.
	Width, Height int

	// Projection maps font units onto the bitmap.
	Projection msdf.Projection
}

// ComputeFrame sizes the bitmap for a glyph with the given ink bounds.
// Degenerate ink (empty in either direction) is replaced by the unit
// square so whitespace glyphs still get a small, valid frame.
func ComputeFrame(ink msdf.Rect, fontSize, emSize, pxRange float64) Frame {
	if ink.IsEmpty() {
		ink = msdf.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	}

	scale := fontSize / emSize
	half := pxRange / 2
	padded := ink.Scale(scale).Expand(half)

	return Frame{
		Ink:    ink,
		Scale:  scale,
		Padded: padded,
		Width:  pixelExtent(padded.Width()),
		Height: pixelExtent(padded.Height()),
		Projection: msdf.NewProjection(
			msdf.Point{X: scale, Y: scale},
			msdf.Point{X: -padded.MinX / scale, Y: -padded.MinY / scale},
		),
	}
}

// PlaneBounds returns the ink rectangle in pixels, without padding.
func (f Frame) PlaneBounds() msdf.Rect {
	return f.Ink.Scale(f.Scale)
}

// pixelExtent rounds a pixel length up to a bitmap dimension. Lengths
// beyond the int32 range saturate so they are still rejected as too large.
func pixelExtent(v float64) int {
	switch {
	case !(v > 0):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int(math.Ceil(v))
	}
}
