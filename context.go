package sdfglyph

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/sdfglyph/glyph"
	"github.com/gogpu/sdfglyph/text"
	"github.com/gogpu/sdfglyph/text/msdf"
)

// Context owns the scratch buffers shared by a sequence of generation
// calls: the font bytes written by the host, the output pixels, and the
// variation axis list. Buffers only grow until FreeBuffers.
//
// A Context is not safe for concurrent use. Give each goroutine its own.
type Context struct {
	fontBuf  []byte
	pixelBuf []float32
	axes     []text.VariationAxis
	opts     contextOptions
}

// NewContext creates a Context with empty buffers.
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{opts: o}
}

// PrepareFontBuffer returns a font byte region of at least n bytes for the
// caller to fill. The region grows when n exceeds its size and is never
// shrunk; a grown region does not keep its previous contents.
func (c *Context) PrepareFontBuffer(n int) []byte {
	if n > len(c.fontBuf) {
		Logger().Debug("sdfglyph: font buffer grown", "from", len(c.fontBuf), "to", n)
		c.fontBuf = make([]byte, n)
	}
	return c.fontBuf
}

// ClearVariationAxes empties the axis list.
func (c *Context) ClearVariationAxes() {
	c.axes = c.axes[:0]
}

// AddVariationAxis appends an axis. Tags longer than four bytes are
// truncated.
func (c *Context) AddVariationAxis(tag string, value float64) {
	c.axes = append(c.axes, text.NewVariationAxis(tag, value))
}

// VariationAxes returns a copy of the current axis list.
func (c *Context) VariationAxes() []text.VariationAxis {
	return append([]text.VariationAxis(nil), c.axes...)
}

// GenerateGlyph renders a 3-channel MSDF from the first fontLen bytes of
// the font buffer. On success it fills out and returns the pixels, which
// alias the context's pixel buffer and stay valid until the next
// generation or FreeBuffers. On failure it returns nil.
func (c *Context) GenerateGlyph(fontLen int, codepoint rune, fontSize, pxRange float64, out *Metrics) []float32 {
	return c.generate(msdf.FieldMSDF, false, fontLen, codepoint, fontSize, pxRange, out)
}

// GenerateMTSDFGlyph is GenerateGlyph with a fourth, true distance channel.
func (c *Context) GenerateMTSDFGlyph(fontLen int, codepoint rune, fontSize, pxRange float64, out *Metrics) []float32 {
	return c.generate(msdf.FieldMTSDF, false, fontLen, codepoint, fontSize, pxRange, out)
}

// GenerateGlyphVar is GenerateGlyph with the current variation axes
// applied.
func (c *Context) GenerateGlyphVar(fontLen int, codepoint rune, fontSize, pxRange float64, out *Metrics) []float32 {
	return c.generate(msdf.FieldMSDF, true, fontLen, codepoint, fontSize, pxRange, out)
}

// GenerateMTSDFGlyphVar is GenerateMTSDFGlyph with the current variation
// axes applied.
func (c *Context) GenerateMTSDFGlyphVar(fontLen int, codepoint rune, fontSize, pxRange float64, out *Metrics) []float32 {
	return c.generate(msdf.FieldMTSDF, true, fontLen, codepoint, fontSize, pxRange, out)
}

func (c *Context) generate(field msdf.FieldType, withAxes bool, fontLen int, codepoint rune, fontSize, pxRange float64, out *Metrics) []float32 {
	log := Logger()

	var res glyph.Result
	if fontLen < 0 || fontLen > len(c.fontBuf) {
		err := fmt.Errorf("%w: %d of %d", glyph.ErrFontLength, fontLen, len(c.fontBuf))
		log.Warn("sdfglyph: generation failed", "reason", glyph.FailureFontInvalid, "err", err)
		res = glyph.Result{Failure: glyph.FailureFontInvalid, Err: err}
	} else {
		opts := glyph.Options{
			FontSize:       fontSize,
			PixelRange:     pxRange,
			Field:          field,
			Parser:         c.opts.parser,
			AngleThreshold: c.opts.angleThreshold,
			Workers:        c.opts.workers,
			Logger:         log,
		}
		if withAxes {
			opts.Axes = c.axes
		}
		res = glyph.Generate(c.fontBuf[:fontLen], codepoint, opts)
	}

	if out != nil {
		out.setResult(&res)
	}
	if !res.Success() {
		return nil
	}

	n := len(res.Pixels)
	if n > len(c.pixelBuf) {
		log.Debug("sdfglyph: pixel buffer grown", "from", len(c.pixelBuf), "to", n)
		c.pixelBuf = make([]float32, n)
	}
	copy(c.pixelBuf, res.Pixels)
	return c.pixelBuf[:n]
}

// HasGlyph reports whether the font in the first fontLen bytes of the font
// buffer maps codepoint to a glyph other than .notdef, using the same
// backend as the generate calls.
func (c *Context) HasGlyph(fontLen int, codepoint rune) bool {
	if fontLen < 0 || fontLen > len(c.fontBuf) {
		return false
	}
	return glyph.HasGlyph(c.fontBuf[:fontLen], codepoint, c.opts.parser)
}

// FreeBuffers releases all three buffers. Later calls regrow them.
func (c *Context) FreeBuffers() {
	Logger().Debug("sdfglyph: buffers released",
		slog.Int("font", len(c.fontBuf)),
		slog.Int("pixels", len(c.pixelBuf)),
		slog.Int("axes", len(c.axes)))
	c.fontBuf = nil
	c.pixelBuf = nil
	c.axes = nil
}

// FontCapacity returns the current size of the font buffer in bytes.
func (c *Context) FontCapacity() int {
	return len(c.fontBuf)
}

// PixelCapacity returns the current size of the pixel buffer in floats.
func (c *Context) PixelCapacity() int {
	return len(c.pixelBuf)
}
