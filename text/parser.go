package text

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., go-text/typesetting vs golang.org/x/image/font/sfnt).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	// Implementations must not retain data after Parse returns
	// unless they document otherwise.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// A ParsedFont carries mutable variation state and is NOT safe for
// concurrent use.
type ParsedFont interface {
	// UnitsPerEm returns the design units per em (the em size).
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns NotDef (0) if the rune is not mapped.
	GlyphIndex(r rune) GlyphID

	// LoadGlyph extracts the outline and raw advance of a glyph, in font
	// units with Y up, honoring the current variation coordinates.
	// A glyph with no contours (space) yields an empty outline, not an error.
	LoadGlyph(gid GlyphID) (*GlyphOutline, error)

	// FontAxes lists the variation axes declared by the font.
	// It is empty for non variable fonts.
	FontAxes() []AxisInfo

	// SetVariation sets one variation axis, identified by its 4-byte tag,
	// to value (in design units). It reports whether the axis was applied.
	SetVariation(tag string, value float64) bool
}

// Parser backend names.
const (
	// ParserGoText selects the github.com/go-text/typesetting backend.
	ParserGoText = "gotext"

	// ParserXImage selects the golang.org/x/image/font/sfnt backend.
	ParserXImage = "ximage"

	// DefaultParserName is the backend used when no name is given.
	DefaultParserName = ParserGoText
)

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{
	ParserGoText: &gotextParser{},
	ParserXImage: &ximageParser{},
}

// RegisterParser registers a custom font parser.
// It must be called before fonts are parsed (typically from init).
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[DefaultParserName]
}

// ParseFont parses data with the named backend.
// Unknown or empty names fall back to DefaultParserName.
func ParseFont(data []byte, parserName string) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return getParser(parserName).Parse(data)
}
