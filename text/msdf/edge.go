package msdf

import (
	"math"
)

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor determines which RGB channels an edge contributes to.
// Different colors at corners preserve sharpness in MSDF.
type EdgeColor uint8

const (
	// ColorBlack means the edge contributes to no channels.
	ColorBlack EdgeColor = 0

	// ColorRed means the edge contributes to the red channel.
	ColorRed EdgeColor = 1

	// ColorGreen means the edge contributes to the green channel.
	ColorGreen EdgeColor = 2

	// ColorYellow combines red and green channels.
	ColorYellow = ColorRed | ColorGreen

	// ColorBlue means the edge contributes to the blue channel.
	ColorBlue EdgeColor = 4

	// ColorMagenta combines red and blue channels.
	ColorMagenta = ColorRed | ColorBlue

	// ColorCyan combines green and blue channels.
	ColorCyan = ColorGreen | ColorBlue

	// ColorWhite means the edge contributes to all channels.
	ColorWhite = ColorRed | ColorGreen | ColorBlue
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// HasRed returns true if the color includes the red channel.
func (c EdgeColor) HasRed() bool { return c&ColorRed != 0 }

// HasGreen returns true if the color includes the green channel.
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }

// HasBlue returns true if the color includes the blue channel.
func (c EdgeColor) HasBlue() bool { return c&ColorBlue != 0 }

// Edge represents a single edge segment for distance calculation.
// An edge can be linear, quadratic, or cubic Bezier.
type Edge struct {
	// Type is the geometric type of this edge.
	Type EdgeType

	// Points contains the control and end points for this edge.
	// Linear: P0 (start), P1 (end)
	// Quadratic: P0 (start), P1 (control), P2 (end)
	// Cubic: P0 (start), P1 (control1), P2 (control2), P3 (end)
	Points [4]Point

	// Color determines which channels this edge affects.
	Color EdgeColor
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{
		Type:   EdgeLinear,
		Points: [4]Point{start, end, {}, {}},
		Color:  ColorWhite,
	}
}

// NewQuadraticEdge creates a new quadratic Bezier edge.
func NewQuadraticEdge(start, control, end Point) Edge {
	return Edge{
		Type:   EdgeQuadratic,
		Points: [4]Point{start, control, end, {}},
		Color:  ColorWhite,
	}
}

// NewCubicEdge creates a new cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Point) Edge {
	return Edge{
		Type:   EdgeCubic,
		Points: [4]Point{start, control1, control2, end},
		Color:  ColorWhite,
	}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Point {
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1]
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[0]
	}
}

// controlPoints returns the points that define the edge, in order.
func (e *Edge) controlPoints() []Point {
	switch e.Type {
	case EdgeQuadratic:
		return e.Points[:3]
	case EdgeCubic:
		return e.Points[:4]
	default:
		return e.Points[:2]
	}
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeQuadratic:
		return evaluateQuadratic(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return evaluateCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[0]
	}
}

// DirectionAt returns the tangent direction at parameter t.
// Where the derivative vanishes (a control point coincides with an
// endpoint) the chord towards the next distinct point is used instead.
func (e *Edge) DirectionAt(t float64) Point {
	p := e.Points
	switch e.Type {
	case EdgeLinear:
		return p[1].Sub(p[0])
	case EdgeQuadratic:
		d := quadraticDerivative(p[0], p[1], p[2], t)
		if d.LengthSquared() == 0 {
			return p[2].Sub(p[0])
		}
		return d
	case EdgeCubic:
		d := cubicDerivative(p[0], p[1], p[2], p[3], t)
		if d.LengthSquared() == 0 {
			if t == 0 {
				d = p[2].Sub(p[0])
			} else if t == 1 {
				d = p[3].Sub(p[1])
			}
			if d.LengthSquared() == 0 {
				d = p[3].Sub(p[0])
			}
		}
		return d
	default:
		return Point{1, 0}
	}
}

// SignedDistance calculates the signed distance from point p to this edge.
// It also returns the curve parameter of the closest point. The parameter
// falls outside [0, 1] when p lies beyond an endpoint along the edge's end
// tangent; PerpendicularDistance uses it to extend the edge.
func (e *Edge) SignedDistance(p Point) (SignedDistance, float64) {
	switch e.Type {
	case EdgeLinear:
		return linearSignedDistance(e.Points[0], e.Points[1], p)
	case EdgeQuadratic:
		return e.curveSignedDistance(p, quadraticCandidates(e.Points[0], e.Points[1], e.Points[2], p))
	case EdgeCubic:
		return e.curveSignedDistance(p, cubicCandidates(e.Points[0], e.Points[1], e.Points[2], e.Points[3], p))
	default:
		return Infinite(), 0
	}
}

// PerpendicularDistance converts sd into a pseudo-distance: if the closest
// point of p is an endpoint and p lies beyond it, the distance to the
// edge's tangent line through that endpoint is used when it is smaller.
func (e *Edge) PerpendicularDistance(sd SignedDistance, p Point, param float64) SignedDistance {
	switch {
	case param < 0:
		dir := e.DirectionAt(0).Normalized()
		aq := p.Sub(e.StartPoint())
		if aq.Dot(dir) < 0 {
			if pd := aq.Cross(dir); math.Abs(pd) <= math.Abs(sd.Distance) {
				return NewSignedDistance(pd, 0)
			}
		}
	case param > 1:
		dir := e.DirectionAt(1).Normalized()
		bq := p.Sub(e.EndPoint())
		if bq.Dot(dir) > 0 {
			if pd := bq.Cross(dir); math.Abs(pd) <= math.Abs(sd.Distance) {
				return NewSignedDistance(pd, 0)
			}
		}
	}
	return sd
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	switch e.Type {
	case EdgeLinear:
		return linearBounds(e.Points[0], e.Points[1])
	case EdgeQuadratic:
		return quadraticBounds(e.Points[0], e.Points[1], e.Points[2])
	case EdgeCubic:
		return cubicBounds(e.Points[0], e.Points[1], e.Points[2], e.Points[3])
	default:
		return Rect{}
	}
}

// Reverse flips the direction of travel of the edge.
func (e *Edge) Reverse() {
	p := e.Points
	switch e.Type {
	case EdgeLinear:
		e.Points[0], e.Points[1] = p[1], p[0]
	case EdgeQuadratic:
		e.Points[0], e.Points[2] = p[2], p[0]
	case EdgeCubic:
		e.Points = [4]Point{p[3], p[2], p[1], p[0]}
	}
}

// SplitAt splits the edge at parameter t using de Casteljau subdivision.
// Both halves keep the edge's color.
func (e *Edge) SplitAt(t float64) (Edge, Edge) {
	p := e.Points
	first, second := Edge{Type: e.Type, Color: e.Color}, Edge{Type: e.Type, Color: e.Color}
	switch e.Type {
	case EdgeLinear:
		m := p[0].Lerp(p[1], t)
		first.Points = [4]Point{p[0], m}
		second.Points = [4]Point{m, p[1]}
	case EdgeQuadratic:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		m := a.Lerp(b, t)
		first.Points = [4]Point{p[0], a, m}
		second.Points = [4]Point{m, b, p[2]}
	case EdgeCubic:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		c := p[2].Lerp(p[3], t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		m := ab.Lerp(bc, t)
		first.Points = [4]Point{p[0], a, ab, m}
		second.Points = [4]Point{m, bc, c, p[3]}
	}
	return first, second
}

// SplitInThirds splits the edge into three consecutive parts of equal
// parameter length.
func (e *Edge) SplitInThirds() [3]Edge {
	a, rest := e.SplitAt(1.0 / 3.0)
	b, c := rest.SplitAt(0.5)
	return [3]Edge{a, b, c}
}

// evaluateQuadratic evaluates a quadratic Bezier curve at parameter t.
func evaluateQuadratic(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B(t) = (1-t)^2*P0 + 2*(1-t)*t*P1 + t^2*P2
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evaluateCubic evaluates a cubic Bezier curve at parameter t.
func evaluateCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	// B(t) = (1-t)^3*P0 + 3*(1-t)^2*t*P1 + 3*(1-t)*t^2*P2 + t^3*P3
	return Point{
		u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

// quadraticDerivative returns the derivative of a quadratic Bezier at t.
func quadraticDerivative(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 2*(1-t)*(P1-P0) + 2*t*(P2-P1)
	return Point{
		2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

// cubicDerivative returns the derivative of a cubic Bezier at t.
func cubicDerivative(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 3*(1-t)^2*(P1-P0) + 6*(1-t)*t*(P2-P1) + 3*t^2*(P3-P2)
	return Point{
		3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// linearSignedDistance calculates signed distance from point p to line segment a-b.
// The sign is positive when p lies to the right of a->b.
func linearSignedDistance(a, b, p Point) (SignedDistance, float64) {
	ab := b.Sub(a)
	aq := p.Sub(a)

	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		// Degenerate line - both points are the same
		return NewSignedDistance(aq.Length(), 0), 0
	}

	// Unclamped projection of p onto the line
	param := aq.Dot(ab) / abLenSq

	eq := a.Sub(p)
	if param > 0.5 {
		eq = b.Sub(p)
	}
	endpointDistance := eq.Length()

	if param > 0 && param < 1 {
		ortho := aq.Cross(ab) / math.Sqrt(abLenSq)
		if math.Abs(ortho) < endpointDistance {
			return NewSignedDistance(ortho, 0), param
		}
	}

	dot := math.Abs(ab.Normalized().Dot(eq.Normalized()))
	return NewSignedDistance(nonZeroSign(aq.Cross(ab))*endpointDistance, dot), param
}

// curveSignedDistance picks the closest of the candidate parameters (which
// always include both endpoints) and extends the parameter past an endpoint
// when p lies beyond it.
func (e *Edge) curveSignedDistance(p Point, candidates []float64) (SignedDistance, float64) {
	minDist := Infinite()
	best := 0.0

	for _, t := range candidates {
		if t < 0 || t > 1 {
			continue
		}
		pt := e.PointAt(t)
		diff := p.Sub(pt)
		tangent := e.DirectionAt(t)
		dist := nonZeroSign(diff.Cross(tangent)) * diff.Length()

		// Orthogonality only matters at endpoints, where two edges meet.
		var dot float64
		if t == 0 || t == 1 {
			dot = math.Abs(tangent.Normalized().Dot(diff.Mul(-1).Normalized()))
		}

		sd := NewSignedDistance(dist, dot)
		if sd.IsCloserThan(minDist) {
			minDist = sd
			best = t
		}
	}

	return minDist, extendParam(e, p, best)
}

// extendParam maps an endpoint parameter to a value outside [0, 1] when p
// is behind the start or past the end along the end tangents.
func extendParam(e *Edge, p Point, t float64) float64 {
	switch t {
	case 0:
		dir := e.DirectionAt(0)
		if s := p.Sub(e.StartPoint()).Dot(dir); s < 0 {
			return s / dir.LengthSquared()
		}
	case 1:
		dir := e.DirectionAt(1)
		if s := p.Sub(e.EndPoint()).Dot(dir); s > 0 {
			return 1 + s/dir.LengthSquared()
		}
	}
	return t
}

// quadraticCandidates returns the parameters where the distance from p to a
// quadratic Bezier can be minimal: the endpoints and the roots of the
// derivative of the squared distance.
func quadraticCandidates(p0, p1, p2, p Point) []float64 {
	// Transform so p is at origin
	qa := p0.Sub(p)
	qb := p1.Sub(p)
	qc := p2.Sub(p)

	// Coefficients of the Bezier curve: B(t) = a*t^2 + b*t + c
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	// d(dist^2)/dt = 0 is a cubic equation.
	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := 2*a.Dot(c) + b.Dot(b)
	c0 := b.Dot(c)

	return append([]float64{0, 1}, solveCubic(c3, c2, c1, c0)...)
}

// cubicCandidates returns candidate parameters for the closest point on a
// cubic Bezier. The distance derivative is a quintic polynomial, so uniform
// samples refined with Newton's method are used for robustness.
func cubicCandidates(p0, p1, p2, p3, p Point) []float64 {
	const numSamples = 8
	candidates := make([]float64, 0, numSamples+3)
	candidates = append(candidates, 0, 1)
	for i := 0; i <= numSamples; i++ {
		t := float64(i) / float64(numSamples)
		candidates = append(candidates, newtonRefineCubic(p0, p1, p2, p3, p, t))
	}
	return candidates
}

// newtonRefineCubic refines a parameter t using Newton's method.
func newtonRefineCubic(p0, p1, p2, p3, p Point, t float64) float64 {
	const maxIter = 8
	const epsilon = 1e-10

	for i := 0; i < maxIter; i++ {
		pt := evaluateCubic(p0, p1, p2, p3, t)
		diff := pt.Sub(p)

		d1 := cubicDerivative(p0, p1, p2, p3, t)
		d2 := cubicSecondDerivative(p0, p1, p2, p3, t)

		// f(t) = diff.Dot(d1) (derivative of distance squared)
		// f'(t) = d1.Dot(d1) + diff.Dot(d2)
		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)

		if math.Abs(fp) < epsilon {
			break
		}

		dt := -f / fp
		if math.Abs(dt) < epsilon {
			break
		}

		t += dt

		// Clamp to valid range
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	return t
}

// cubicSecondDerivative returns the second derivative of a cubic Bezier at t.
func cubicSecondDerivative(p0, p1, p2, p3 Point, t float64) Point {
	// B''(t) = 6*(1-t)*(P2-2*P1+P0) + 6*t*(P3-2*P2+P1)
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// solveCubic solves a*x^3 + b*x^2 + c*x + d = 0.
// Returns real roots in [0, 1].
func solveCubic(a, b, c, d float64) []float64 {
	// Handle degenerate case: quadratic
	if math.Abs(a) < 1e-14 {
		return solveQuadratic(b, c, d)
	}

	return solveCubicCardano(a, b, c, d)
}

// solveCubicCardano uses Cardano's method to solve a cubic equation.
func solveCubicCardano(a, b, c, d float64) []float64 {
	var roots []float64

	// Normalize coefficients
	b /= a
	c /= a
	d /= a

	// Cardano's method: depress the cubic
	p := c - b*b/3
	q := d - b*c/3 + 2*b*b*b/27
	discriminant := q*q/4 + p*p*p/27

	switch {
	case discriminant > 1e-14:
		// One real root
		roots = solveCubicOneRoot(q, discriminant, b)
	case discriminant < -1e-14:
		// Three real roots
		roots = solveCubicThreeRoots(p, q, b)
	default:
		// Triple root or repeated roots
		roots = solveCubicRepeatedRoots(q, b)
	}

	return roots
}

// solveCubicOneRoot handles the case with one real root.
func solveCubicOneRoot(q, discriminant, b float64) []float64 {
	var roots []float64
	sqrtD := math.Sqrt(discriminant)
	u := cbrt(-q/2 + sqrtD)
	v := cbrt(-q/2 - sqrtD)
	root := u + v - b/3
	if root >= 0 && root <= 1 {
		roots = append(roots, root)
	}
	return roots
}

// solveCubicThreeRoots handles the case with three real roots.
func solveCubicThreeRoots(p, q, b float64) []float64 {
	var roots []float64
	r := math.Sqrt(-p * p * p / 27)
	phi := math.Acos(-q / (2 * r))
	cubeRootR := math.Pow(r, 1.0/3.0)

	for k := 0; k < 3; k++ {
		root := 2*cubeRootR*math.Cos((phi+float64(2*k)*math.Pi)/3) - b/3
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}
	return roots
}

// solveCubicRepeatedRoots handles the case with repeated roots.
func solveCubicRepeatedRoots(q, b float64) []float64 {
	var roots []float64
	u := cbrt(-q / 2)
	root1 := 2*u - b/3
	root2 := -u - b/3

	if root1 >= 0 && root1 <= 1 {
		roots = append(roots, root1)
	}
	if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
		roots = append(roots, root2)
	}
	return roots
}

// solveQuadratic solves a*x^2 + b*x + c = 0.
// Returns real roots in [0, 1].
func solveQuadratic(a, b, c float64) []float64 {
	// Handle degenerate case: linear
	if math.Abs(a) < 1e-14 {
		return solveLinear(b, c)
	}

	return solveQuadraticFull(a, b, c)
}

// solveLinear solves b*x + c = 0.
func solveLinear(b, c float64) []float64 {
	var roots []float64
	if math.Abs(b) >= 1e-14 {
		root := -c / b
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}
	return roots
}

// solveQuadraticFull solves a non-degenerate quadratic equation.
func solveQuadraticFull(a, b, c float64) []float64 {
	var roots []float64
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return roots
	}

	sqrtD := math.Sqrt(discriminant)
	root1 := (-b + sqrtD) / (2 * a)
	root2 := (-b - sqrtD) / (2 * a)

	if root1 >= 0 && root1 <= 1 {
		roots = append(roots, root1)
	}
	if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
		roots = append(roots, root2)
	}
	return roots
}

// cbrt returns the cube root of x (handles negative values).
func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1.0/3.0)
	}
	return math.Pow(x, 1.0/3.0)
}

// linearBounds returns the bounding box of a line segment.
func linearBounds(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// quadraticBounds returns the bounding box of a quadratic Bezier.
func quadraticBounds(p0, p1, p2 Point) Rect {
	bounds := linearBounds(p0, p2)

	// Find extrema in x
	// B'(t) = 2*(1-t)*(p1-p0) + 2*t*(p2-p1) = 0
	// t = (p0-p1)/(p0-2*p1+p2)
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-10 {
		t := (p0.X - p1.X) / dx
		if t > 0 && t < 1 {
			x := evaluateQuadratic(p0, p1, p2, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	// Find extrema in y
	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-10 {
		t := (p0.Y - p1.Y) / dy
		if t > 0 && t < 1 {
			y := evaluateQuadratic(p0, p1, p2, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}

// cubicBounds returns the bounding box of a cubic Bezier.
func cubicBounds(p0, p1, p2, p3 Point) Rect {
	bounds := linearBounds(p0, p3)

	// Find extrema using derivative roots
	// B'(t) = 3*(1-t)^2*(p1-p0) + 6*(1-t)*t*(p2-p1) + 3*t^2*(p3-p2)
	// This is a quadratic in t.

	// X extrema
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2*p0.X - 4*p1.X + 2*p2.X
	cx := -p0.X + p1.X

	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := evaluateCubic(p0, p1, p2, p3, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	// Y extrema
	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2*p0.Y - 4*p1.Y + 2*p2.Y
	cy := -p0.Y + p1.Y

	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := evaluateCubic(p0, p1, p2, p3, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}
