package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
// sfnt reads tables lazily, which makes this backend the cheaper choice when
// only the cmap is consulted.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// It has no variable font support.
type ximageParsedFont struct {
	font   *opentype.Font
	buffer sfnt.Buffer
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	idx, err := f.font.GlyphIndex(&f.buffer, r)
	if err != nil {
		return NotDef
	}
	return GlyphID(idx)
}

// LoadGlyph implements ParsedFont.LoadGlyph.
//
// sfnt scales outlines by ppem/unitsPerEm and grows Y downwards. Loading at
// ppem == unitsPerEm keeps coordinates in font units; Y is negated.
func (f *ximageParsedFont) LoadGlyph(gid GlyphID) (*GlyphOutline, error) {
	ppem := fixed.I(f.UnitsPerEm())

	segments, err := f.font.LoadGlyph(&f.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: glyph %d is %s", ErrNoOutline, gid, GlyphTypeBitmap)
		}
		return nil, fmt.Errorf("%w: glyph %d: %v", ErrNoOutline, gid, err)
	}

	b := newOutlineBuilder(gid, len(segments))
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.add(OutlineOpMoveTo, fixedPointToOutline(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.add(OutlineOpLineTo, fixedPointToOutline(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.add(OutlineOpQuadTo, fixedPointToOutline(seg.Args[0]), fixedPointToOutline(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.add(OutlineOpCubicTo, fixedPointToOutline(seg.Args[0]), fixedPointToOutline(seg.Args[1]), fixedPointToOutline(seg.Args[2]))
		}
	}

	advance, err := f.font.GlyphAdvance(&f.buffer, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
	if err != nil {
		advance = 0
	}
	return b.finish(float32(fixedToFloat64(advance))), nil
}

// FontAxes implements ParsedFont.FontAxes.
func (f *ximageParsedFont) FontAxes() []AxisInfo {
	return nil
}

// SetVariation implements ParsedFont.SetVariation.
// sfnt cannot instance variable fonts, so no axis is ever applied.
func (f *ximageParsedFont) SetVariation(string, float64) bool {
	return false
}

// fixedPointToOutline converts a Y-down fixed.Point26_6 to a Y-up OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
