package text

// OutlinePoint represents a point in a glyph outline, in font units.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// pointCount returns how many entries of Points the operation uses.
func (op OutlineOp) pointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of zero or more contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph in font units.
	Advance float32

	// GID is the glyph ID this outline represents.
	GID GlyphID

	// Type indicates the type of glyph (outline, bitmap, SVG).
	Type GlyphType
}

// outlineBuilder accumulates segments. Both parser backends feed it so
// their outlines are built identically.
type outlineBuilder struct {
	outline GlyphOutline
}

func newOutlineBuilder(gid GlyphID, capacity int) *outlineBuilder {
	return &outlineBuilder{
		outline: GlyphOutline{
			Segments: make([]OutlineSegment, 0, capacity),
			GID:      gid,
			Type:     GlyphTypeOutline,
		},
	}
}

// add appends a segment; only the first op.pointCount() points are read.
func (b *outlineBuilder) add(op OutlineOp, pts ...OutlinePoint) {
	seg := OutlineSegment{Op: op}
	for i := 0; i < op.pointCount() && i < len(pts); i++ {
		seg.Points[i] = pts[i]
	}
	b.outline.Segments = append(b.outline.Segments, seg)
}

// finish sets the advance and returns the outline.
func (b *outlineBuilder) finish(advance float32) *GlyphOutline {
	b.outline.Advance = advance
	out := b.outline
	return &out
}
