//go:build wasip1

package main

import (
	"unsafe"

	"github.com/gogpu/sdfglyph"
	"github.com/gogpu/sdfglyph/glyph"
)

var (
	ctx         = sdfglyph.NewContext()
	lastFailure glyph.FailureKind
)

//go:wasmexport prepare_font_buffer
func prepareFontBuffer(size int32) unsafe.Pointer {
	buf := ctx.PrepareFontBuffer(int(size))
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(buf))
}

//go:wasmexport clear_variation_axes
func clearVariationAxes() {
	ctx.ClearVariationAxes()
}

//go:wasmexport add_variation_axis
func addVariationAxis(tag unsafe.Pointer, value float64) {
	if tag == nil {
		return
	}
	// Read at most four bytes, stopping at the terminator.
	var raw [4]byte
	for i := range raw {
		b := *(*byte)(unsafe.Add(tag, i))
		if b == 0 {
			break
		}
		raw[i] = b
	}
	ctx.AddVariationAxis(axisTag(raw[:]), value)
}

//go:wasmexport generate_glyph
func generateGlyph(fontLen int32, charCode uint32, fontSize, pixelRange float64, outMetrics unsafe.Pointer) unsafe.Pointer {
	return finish(ctx.GenerateGlyph, fontLen, charCode, fontSize, pixelRange, outMetrics)
}

//go:wasmexport generate_mtsdf_glyph
func generateMTSDFGlyph(fontLen int32, charCode uint32, fontSize, pixelRange float64, outMetrics unsafe.Pointer) unsafe.Pointer {
	return finish(ctx.GenerateMTSDFGlyph, fontLen, charCode, fontSize, pixelRange, outMetrics)
}

//go:wasmexport generate_glyph_var
func generateGlyphVar(fontLen int32, charCode uint32, fontSize, pixelRange float64, outMetrics unsafe.Pointer) unsafe.Pointer {
	return finish(ctx.GenerateGlyphVar, fontLen, charCode, fontSize, pixelRange, outMetrics)
}

//go:wasmexport generate_mtsdf_glyph_var
func generateMTSDFGlyphVar(fontLen int32, charCode uint32, fontSize, pixelRange float64, outMetrics unsafe.Pointer) unsafe.Pointer {
	return finish(ctx.GenerateMTSDFGlyphVar, fontLen, charCode, fontSize, pixelRange, outMetrics)
}

//go:wasmexport has_glyph
func hasGlyph(fontLen int32, charCode uint32) bool {
	return ctx.HasGlyph(int(fontLen), rune(charCode))
}

//go:wasmexport free_buffers
func freeBuffers() {
	ctx.FreeBuffers()
}

// last_failure returns the FailureKind of the most recent generate call.
//
//go:wasmexport last_failure
func lastFailureKind() int32 {
	return int32(lastFailure)
}

type generateFunc func(fontLen int, codepoint rune, fontSize, pxRange float64, out *sdfglyph.Metrics) []float32

func finish(gen generateFunc, fontLen int32, charCode uint32, fontSize, pixelRange float64, outMetrics unsafe.Pointer) unsafe.Pointer {
	var m sdfglyph.Metrics
	pixels := gen(int(fontLen), rune(charCode), fontSize, pixelRange, &m)
	lastFailure = m.Failure

	if outMetrics != nil {
		m.PutSlots(unsafe.Slice((*byte)(outMetrics), 4*sdfglyph.MetricsSlots))
	}
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(pixels))
}
