package glyph

import "github.com/gogpu/sdfglyph/text/msdf"

// Result is the outcome of one Generate call.
type Result struct {
	// Failure is FailureNone on success.
	Failure FailureKind

	// Err is the underlying cause of a failure, for logs.
	Err error

	Width    int
	Height   int
	Channels int

	// Advance is the horizontal advance in pixels.
	Advance float32

	// PlaneBounds is the ink rectangle in pixels: left, bottom, right, top.
	PlaneBounds [4]float32

	// AtlasBounds is the glyph's placement in the bitmap, which is always
	// the whole bitmap: 0, 0, width, height.
	AtlasBounds [4]float32

	// Pixels holds Channels*Width*Height values, channel-interleaved and
	// row-major with row 0 at the bottom.
	Pixels []float32
}

// Success reports whether a bitmap was produced.
func (r *Result) Success() bool {
	return r.Failure == FailureNone
}

func failure(kind FailureKind, err error) Result {
	return Result{Failure: kind, Err: err}
}

// packResult assembles a successful result.
func packResult(frame Frame, rawAdvance float64, bm *msdf.Bitmap) Result {
	pb := frame.PlaneBounds()
	return Result{
		Width:       bm.Width,
		Height:      bm.Height,
		Channels:    bm.Channels,
		Advance:     float32(rawAdvance * frame.Scale),
		PlaneBounds: [4]float32{float32(pb.MinX), float32(pb.MinY), float32(pb.MaxX), float32(pb.MaxY)},
		AtlasBounds: [4]float32{0, 0, float32(bm.Width), float32(bm.Height)},
		Pixels:      packPixels(bm),
	}
}

// packPixels returns the bitmap's pixel sequence. The bitmap already uses
// the output layout, so no copy is made.
func packPixels(bm *msdf.Bitmap) []float32 {
	return bm.Pix[:bm.Channels*bm.Width*bm.Height]
}
