package glyph

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/sdfglyph/text"
	"github.com/gogpu/sdfglyph/text/msdf"
)

// Generate rasterizes the glyph for codepoint into a distance field.
//
// Codepoints the font does not map are rendered with glyph 0 (.notdef).
// Failures are reported through Result.Failure and Result.Err; Generate
// never panics on malformed input.
func Generate(fontBytes []byte, codepoint rune, opts Options) Result {
	log := opts.logger()

	if err := opts.Validate(); err != nil {
		return fail(log, codepoint, FailureInit, err)
	}
	cfg := opts.rasterConfig()

	font, err := text.ParseFont(fontBytes, opts.Parser)
	if err != nil {
		return fail(log, codepoint, FailureFontInvalid, err)
	}
	em := font.UnitsPerEm()
	if em <= 0 {
		return fail(log, codepoint, FailureFontInvalid, fmt.Errorf("%w: %d", ErrInvalidEmSize, em))
	}

	if len(opts.Axes) > 0 {
		applied := text.ApplyAxes(font, opts.Axes)
		log.Debug("glyph: variation axes", "requested", len(opts.Axes), "applied", applied)
	}

	gid := font.GlyphIndex(codepoint)
	outline, err := font.LoadGlyph(gid)
	if err != nil {
		return fail(log, codepoint, FailureGlyphMissing, fmt.Errorf("glyph: load %d: %w", gid, err))
	}

	shape := msdf.FromOutline(outline)
	shape.Normalize()
	msdf.EdgeColoringSimple(shape, cfg.AngleThreshold, 0)

	frame := ComputeFrame(shape.Bounds(), opts.FontSize, float64(em), opts.PixelRange)

	bm, err := msdf.NewGenerator(cfg).Generate(shape, opts.Field, frame.Projection, frame.Width, frame.Height)
	if err != nil {
		return fail(log, codepoint, FailureInit, err)
	}

	res := packResult(frame, float64(outline.Advance), bm)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("glyph: generated",
			"codepoint", fmt.Sprintf("U+%04X", codepoint),
			"name", runenames.Name(codepoint),
			"gid", gid,
			"field", opts.Field,
			"edges", shape.EdgeCount(),
			"width", res.Width,
			"height", res.Height)
	}
	return res
}

func fail(log *slog.Logger, codepoint rune, kind FailureKind, err error) Result {
	log.Warn("glyph: generation failed",
		"codepoint", fmt.Sprintf("U+%04X", codepoint),
		"reason", kind,
		"err", err)
	return failure(kind, err)
}

// GenerateMSDF renders a 3-channel field with default options.
func GenerateMSDF(fontBytes []byte, codepoint rune, fontSize, pxRange float64) Result {
	return Generate(fontBytes, codepoint, variantOptions(msdf.FieldMSDF, fontSize, pxRange, nil))
}

// GenerateMTSDF renders a 4-channel field with default options.
func GenerateMTSDF(fontBytes []byte, codepoint rune, fontSize, pxRange float64) Result {
	return Generate(fontBytes, codepoint, variantOptions(msdf.FieldMTSDF, fontSize, pxRange, nil))
}

// GenerateMSDFVar is GenerateMSDF with variation axes applied.
func GenerateMSDFVar(fontBytes []byte, codepoint rune, fontSize, pxRange float64, axes []text.VariationAxis) Result {
	return Generate(fontBytes, codepoint, variantOptions(msdf.FieldMSDF, fontSize, pxRange, axes))
}

// GenerateMTSDFVar is GenerateMTSDF with variation axes applied.
func GenerateMTSDFVar(fontBytes []byte, codepoint rune, fontSize, pxRange float64, axes []text.VariationAxis) Result {
	return Generate(fontBytes, codepoint, variantOptions(msdf.FieldMTSDF, fontSize, pxRange, axes))
}

func variantOptions(field msdf.FieldType, fontSize, pxRange float64, axes []text.VariationAxis) Options {
	opts := DefaultOptions()
	opts.Field = field
	opts.FontSize = fontSize
	opts.PixelRange = pxRange
	opts.Axes = axes
	return opts
}
