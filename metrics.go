package sdfglyph

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/sdfglyph/glyph"
)

// MetricsSlots is the number of positional slots in the host metrics
// record.
const MetricsSlots = 10

// Metrics is the fixed-layout record filled by every generation call.
// Field order matches the positional slots:
//
//	[success, width, height, advance, boundsL, boundsB, boundsR, boundsT,
//	 atlasOriginX, atlasOriginY]
//
// Failure widens the record with the failure reason; it is not one of the
// positional slots.
type Metrics struct {
	Success bool
	Width   int
	Height  int
	Advance float32

	// Plane bounds in pixels.
	BoundsL, BoundsB, BoundsR, BoundsT float32

	// Atlas origin of the glyph within the returned bitmap.
	AtlasOriginX, AtlasOriginY float32

	Failure glyph.FailureKind
}

// setResult fills m from a pipeline result.
func (m *Metrics) setResult(res *glyph.Result) {
	if !res.Success() {
		*m = Metrics{Failure: res.Failure}
		return
	}
	*m = Metrics{
		Success:      true,
		Width:        res.Width,
		Height:       res.Height,
		Advance:      res.Advance,
		BoundsL:      res.PlaneBounds[0],
		BoundsB:      res.PlaneBounds[1],
		BoundsR:      res.PlaneBounds[2],
		BoundsT:      res.PlaneBounds[3],
		AtlasOriginX: res.AtlasBounds[0],
		AtlasOriginY: res.AtlasBounds[1],
	}
}

// Slots returns the positional view of the record.
func (m *Metrics) Slots() [MetricsSlots]float32 {
	var success float32
	if m.Success {
		success = 1
	}
	return [MetricsSlots]float32{
		success,
		float32(m.Width),
		float32(m.Height),
		m.Advance,
		m.BoundsL, m.BoundsB, m.BoundsR, m.BoundsT,
		m.AtlasOriginX, m.AtlasOriginY,
	}
}

// PutSlots writes the positional view as little-endian float32 values.
// dst must hold at least 4*MetricsSlots bytes.
func (m *Metrics) PutSlots(dst []byte) {
	_ = dst[4*MetricsSlots-1]
	for i, v := range m.Slots() {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
}
