package glyph

import "github.com/gogpu/sdfglyph/text"

// HasGlyph reports whether the font maps codepoint to a glyph other than
// .notdef. It does not read outlines, so a mapped glyph with no ink (space)
// still counts. Unparseable fonts report false.
//
// The parser name selects the backend as in Generate, so both agree on
// which fonts load. An empty name selects text.DefaultParserName.
func HasGlyph(fontBytes []byte, codepoint rune, parser string) bool {
	if parser == "" {
		parser = text.DefaultParserName
	}
	font, err := text.ParseFont(fontBytes, parser)
	if err != nil {
		return false
	}
	return font.GlyphIndex(codepoint) != text.NotDef
}
