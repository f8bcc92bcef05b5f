// Package glyph turns one codepoint of an in-memory font into a
// multi-channel signed distance field plus the layout metrics needed to
// place it.
//
// The pipeline is a single call:
//
//	opts := glyph.DefaultOptions()
//	opts.FontSize = 48
//	opts.Field = msdf.FieldMTSDF
//	res := glyph.Generate(fontBytes, 'A', opts)
//	if !res.Success() {
//	    log.Printf("%v: %v", res.Failure, res.Err)
//	}
//
// Generate parses the font, applies variation axes, extracts the outline,
// colors its edges and rasterizes it into a frame that pads the glyph's ink
// bounds by half the pixel range on every side. Glyphs without ink (space)
// use a unit-square frame and produce an all-zero field.
//
// Pixels are channel-interleaved and row-major. Row 0 is the bottom row of
// the frame; the Y axis points up, as in font design space.
//
// Generate holds no state between calls and may run concurrently.
package glyph
