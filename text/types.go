package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index inside a font.
// Index 0 is reserved for the .notdef (missing glyph) slot.
type GlyphID uint16

// NotDef is the reserved missing-glyph index.
const NotDef GlyphID = 0
