// Package text loads fonts and extracts glyph outlines for distance-field
// generation.
//
// Fonts are parsed through a pluggable backend:
//
//   - "gotext" (default): github.com/go-text/typesetting. Supports variable
//     fonts, so variation axes can be applied before outlines are extracted.
//   - "ximage": golang.org/x/image/font/sfnt. Parses lazily and is used for
//     cheap glyph-existence checks.
//
// All coordinates returned by this package are in font design units with the
// Y axis pointing up.
//
// # Example usage
//
//	font, err := text.ParseFont(data, text.DefaultParserName)
//	if err != nil {
//	    return err
//	}
//	text.ApplyAxes(font, []text.VariationAxis{text.NewVariationAxis("wght", 700)})
//	outline, err := font.LoadGlyph(font.GlyphIndex('A'))
//
// # Variation axes
//
// Only the five registered OpenType axes (wght, wdth, opsz, ital, slnt) are
// honored. Unknown tags are skipped without error.
package text
