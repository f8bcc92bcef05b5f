package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

var fvarTag = ot.MustNewTag("fvar")

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font tables: %w", err)
	}

	raw, _ := ld.RawTable(fvarTag)
	return &gotextParsedFont{face: font.NewFace(ft), axes: axesFromFvar(raw)}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// The face holds the variation coordinates, which is why it is
// not safe for concurrent use.
type gotextParsedFont struct {
	face *font.Face
	axes []AxisInfo
	vars []font.Variation
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return NotDef
	}
	return GlyphID(gid)
}

// LoadGlyph implements ParsedFont.LoadGlyph.
func (f *gotextParsedFont) LoadGlyph(gid GlyphID) (*GlyphOutline, error) {
	fgid := font.GID(gid)

	var outline font.GlyphOutline
	switch data := f.face.GlyphData(fgid).(type) {
	case font.GlyphOutline:
		outline = data
	case font.GlyphBitmap:
		return nil, fmt.Errorf("%w: glyph %d is %s", ErrNoOutline, gid, GlyphTypeBitmap)
	case font.GlyphSVG:
		return nil, fmt.Errorf("%w: glyph %d is %s", ErrNoOutline, gid, GlyphTypeSVG)
	}
	// No data at all is a blank glyph, as FreeType reports it.

	b := newOutlineBuilder(gid, len(outline.Segments))
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			b.add(OutlineOpMoveTo, segmentPoint(seg.Args[0]))
		case ot.SegmentOpLineTo:
			b.add(OutlineOpLineTo, segmentPoint(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			b.add(OutlineOpQuadTo, segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			b.add(OutlineOpCubicTo, segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]), segmentPoint(seg.Args[2]))
		}
	}

	return b.finish(f.face.HorizontalAdvance(fgid)), nil
}

// FontAxes implements ParsedFont.FontAxes.
func (f *gotextParsedFont) FontAxes() []AxisInfo {
	return f.axes
}

// SetVariation implements ParsedFont.SetVariation.
// Values accumulate: setting wdth after wght keeps the weight.
func (f *gotextParsedFont) SetVariation(tag string, value float64) bool {
	if len(tag) != 4 || !hasAxis(f.axes, tag) {
		return false
	}

	t := ot.MustNewTag(tag)
	replaced := false
	for i := range f.vars {
		if f.vars[i].Tag == t {
			f.vars[i].Value = float32(value)
			replaced = true
		}
	}
	if !replaced {
		f.vars = append(f.vars, font.Variation{Tag: t, Value: float32(value)})
	}

	f.face.SetVariations(f.vars)
	return true
}

func segmentPoint(p ot.SegmentPoint) OutlinePoint {
	return OutlinePoint{X: p.X, Y: p.Y}
}
