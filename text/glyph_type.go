package text

// GlyphType indicates how a glyph is stored in the font.
type GlyphType uint8

const (
	// GlyphTypeOutline is a vector path glyph (default).
	GlyphTypeOutline GlyphType = iota

	// GlyphTypeBitmap is an embedded bitmap glyph.
	// Found in sbix (Apple) or CBDT/CBLC (Google) tables.
	GlyphTypeBitmap

	// GlyphTypeSVG is an SVG document glyph.
	GlyphTypeSVG
)

// String returns the string representation of the glyph type.
func (t GlyphType) String() string {
	switch t {
	case GlyphTypeOutline:
		return "Outline"
	case GlyphTypeBitmap:
		return "Bitmap"
	case GlyphTypeSVG:
		return "SVG"
	default:
		return unknownStr
	}
}
