package msdf

import "github.com/gogpu/sdfglyph/text"

// Contour represents a closed contour of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{
		Edges: make([]Edge, 0),
	}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// SignedArea returns twice the shoelace area of the contour's control
// polygon. It is positive for counter-clockwise contours in a Y-up space.
func (c *Contour) SignedArea() float64 {
	var area float64
	for i := range c.Edges {
		pts := c.Edges[i].controlPoints()
		for j := 0; j+1 < len(pts); j++ {
			area += pts[j].Cross(pts[j+1])
		}
	}
	return area
}

// Winding returns 1 for counter-clockwise contours, -1 for clockwise
// contours and 0 for degenerate ones.
func (c *Contour) Winding() int {
	switch a := c.SignedArea(); {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Reverse flips the direction of travel of the contour.
func (c *Contour) Reverse() {
	n := len(c.Edges)
	for i := 0; i < n/2; i++ {
		c.Edges[i], c.Edges[n-1-i] = c.Edges[n-1-i], c.Edges[i]
	}
	for i := range c.Edges {
		c.Edges[i].Reverse()
	}
}

// Shape represents a complete glyph shape consisting of contours.
// Coordinates are font units with Y up.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{
		Contours: make([]*Contour, 0),
	}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// Bounds computes the overall bounding box.
func (s *Shape) Bounds() Rect {
	var bounds Rect
	first := true
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		if first {
			bounds = c.Bounds()
			first = false
			continue
		}
		bounds = bounds.Union(c.Bounds())
	}
	return bounds
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Normalize prepares the shape for distance evaluation. Single-edge
// contours are split into thirds so they can carry three colors, and
// contours are reversed when the shape as a whole winds counter-clockwise,
// so that the filled interior lies to the right of every edge.
func (s *Shape) Normalize() {
	var area float64
	for _, c := range s.Contours {
		if len(c.Edges) == 1 {
			parts := c.Edges[0].SplitInThirds()
			c.Edges = append(c.Edges[:0], parts[:]...)
		}
		area += c.SignedArea()
	}
	if area > 0 {
		for _, c := range s.Contours {
			c.Reverse()
		}
	}
}

// FromOutline converts a GlyphOutline into a Shape. Open contours are
// closed with a straight edge and zero-length lines are dropped.
func FromOutline(outline *text.GlyphOutline) *Shape {
	shape := NewShape()
	if outline == nil || len(outline.Segments) == 0 {
		return shape
	}

	var (
		current    *Contour
		start, pos Point
	)

	flush := func() {
		if current == nil || len(current.Edges) == 0 {
			return
		}
		if pos.Sub(start).LengthSquared() > 1e-12 {
			current.AddEdge(NewLinearEdge(pos, start))
		}
		shape.AddContour(current)
	}

	for _, seg := range outline.Segments {
		if seg.Op == text.OutlineOpMoveTo {
			flush()
			current = NewContour()
			start = toPoint(seg.Points[0])
			pos = start
			continue
		}

		if current == nil {
			current = NewContour()
			start = pos
		}

		switch seg.Op {
		case text.OutlineOpLineTo:
			end := toPoint(seg.Points[0])
			if end.Sub(pos).LengthSquared() > 1e-12 {
				current.AddEdge(NewLinearEdge(pos, end))
			}
			pos = end

		case text.OutlineOpQuadTo:
			end := toPoint(seg.Points[1])
			current.AddEdge(NewQuadraticEdge(pos, toPoint(seg.Points[0]), end))
			pos = end

		case text.OutlineOpCubicTo:
			end := toPoint(seg.Points[2])
			current.AddEdge(NewCubicEdge(pos, toPoint(seg.Points[0]), toPoint(seg.Points[1]), end))
			pos = end
		}
	}
	flush()

	return shape
}

func toPoint(p text.OutlinePoint) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}
