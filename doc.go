// Package sdfglyph generates multi-channel signed distance fields for
// single font glyphs and keeps the scratch buffers a host needs to drive
// it over a raw numeric boundary.
//
// # Overview
//
// The work is split across packages:
//   - sdfglyph: Context, the caller-owned buffer manager, and the
//     positional Metrics record
//   - glyph: the generation pipeline (frame, pipeline, result packing)
//   - text: font backends, outlines and variation axes
//   - text/msdf: shape model, edge coloring and distance field rasterizer
//
// # Quick Start
//
//	ctx := sdfglyph.NewContext()
//
//	buf := ctx.PrepareFontBuffer(len(fontBytes))
//	n := copy(buf, fontBytes)
//
//	var m sdfglyph.Metrics
//	pixels := ctx.GenerateMTSDFGlyph(n, 'A', 48, 4, &m)
//	if !m.Success {
//	    log.Printf("no bitmap: %v", m.Failure)
//	}
//
// # Variation Axes
//
// Axes are collected on the Context and applied by the *Var calls:
//
//	ctx.ClearVariationAxes()
//	ctx.AddVariationAxis("wght", 700)
//	pixels := ctx.GenerateGlyphVar(n, 'A', 48, 4, &m)
//
// # Coordinate System
//
// Bitmaps use font coordinates:
//   - Row 0 is the bottom row
//   - Y increases up
//   - Values above 0.5 are inside the glyph
//
// For pure Go callers glyph.Generate is the simpler entry point; Context
// exists for hosts that reuse buffers across calls.
package sdfglyph
