package msdf

import (
	"math"
)

// Config holds distance-field rasterizer parameters.
type Config struct {
	// Range is the distance range in output pixels.
	// A pixel Range/2 away from the outline encodes as 0 or 1.
	// Default: 4.0
	Range float64

	// AngleThreshold is the corner angle threshold (radians) used by
	// EdgeColoringSimple. Two edges meeting at a direction change larger
	// than asin(sin(AngleThreshold)) form a corner.
	// Default: 3.0
	AngleThreshold float64

	// Workers is the number of goroutines rows are split across.
	// Output does not depend on it.
	// Default: 1
	Workers int

	// MaxDimension bounds bitmap width and height.
	// Default: 4096
	MaxDimension int
}

// DefaultConfig returns the default rasterizer configuration.
func DefaultConfig() Config {
	return Config{
		Range:          4.0,
		AngleThreshold: 3.0,
		Workers:        1,
		MaxDimension:   4096,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if !(c.Range > 0) || math.IsInf(c.Range, 0) {
		return &ConfigError{Field: "Range", Reason: "must be positive and finite"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.Workers < 1 {
		return &ConfigError{Field: "Workers", Reason: "must be at least 1"}
	}
	if c.MaxDimension < 1 {
		return &ConfigError{Field: "MaxDimension", Reason: "must be at least 1"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}

// FieldType selects the distance field encoding.
type FieldType int

const (
	// FieldMSDF is a 3-channel multi-channel signed distance field.
	FieldMSDF FieldType = iota

	// FieldMTSDF is FieldMSDF plus the true signed distance in a 4th channel.
	FieldMTSDF
)

// Channels returns the number of channels per pixel.
func (t FieldType) Channels() int {
	if t == FieldMTSDF {
		return 4
	}
	return 3
}

// String returns a string representation of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldMSDF:
		return "MSDF"
	case FieldMTSDF:
		return "MTSDF"
	default:
		return "Unknown"
	}
}

// Bitmap is a dense float distance field.
// Pix is row-major and channel-interleaved; row 0 is the bottom row.
type Bitmap struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
}

// NewBitmap allocates a zeroed bitmap.
func NewBitmap(width, height, channels int) *Bitmap {
	return &Bitmap{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float32, width*height*channels),
	}
}

// PixelOffset returns the index of the first channel of pixel (x, y).
func (b *Bitmap) PixelOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// Pixel returns the channel values of pixel (x, y).
// The returned slice aliases Pix.
func (b *Bitmap) Pixel(x, y int) []float32 {
	off := b.PixelOffset(x, y)
	return b.Pix[off : off+b.Channels]
}

// Projection maps shape coordinates to pixel coordinates:
// pixel = (shape + Translate) * Scale.
type Projection struct {
	Scale     Point
	Translate Point
}

// NewProjection creates a projection.
func NewProjection(scale, translate Point) Projection {
	return Projection{Scale: scale, Translate: translate}
}

// Project converts a shape-space point to pixel space.
func (p Projection) Project(q Point) Point {
	return Point{
		X: p.Scale.X * (q.X + p.Translate.X),
		Y: p.Scale.Y * (q.Y + p.Translate.Y),
	}
}

// Unproject converts a pixel-space point to shape space.
func (p Projection) Unproject(q Point) Point {
	return Point{
		X: q.X/p.Scale.X - p.Translate.X,
		Y: q.Y/p.Scale.Y - p.Translate.Y,
	}
}

// valid reports whether both scale factors are positive and finite.
func (p Projection) valid() bool {
	return p.Scale.X > 0 && p.Scale.Y > 0 && !math.IsInf(p.Scale.X, 0) && !math.IsInf(p.Scale.Y, 0)
}

// Point represents a 2D point with float64 precision.
// Used internally for distance calculations.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p * scalar.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length (avoids sqrt).
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalized returns a unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.X / length, p.Y / length}
}

// Lerp returns linear interpolation between p and q: p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X + t*(q.X-p.X),
		p.Y + t*(q.Y-p.Y),
	}
}

// Rect represents a 2D rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Expand returns a rectangle expanded by the given margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Scale returns the rectangle with every coordinate multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{MinX: r.MinX * s, MinY: r.MinY * s, MaxX: r.MaxX * s, MaxY: r.MaxY * s}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// SignedDistance represents a signed distance with additional metadata.
type SignedDistance struct {
	// Distance is the signed Euclidean distance.
	// Positive = inside (right of the edge direction), Negative = outside.
	Distance float64

	// Dot is the dot product used for resolving ambiguities.
	// Used when distances are equal.
	Dot float64
}

// NewSignedDistance creates a new signed distance.
func NewSignedDistance(distance, dot float64) SignedDistance {
	return SignedDistance{Distance: distance, Dot: dot}
}

// Infinite returns a signed distance representing infinity.
func Infinite() SignedDistance {
	return SignedDistance{Distance: -math.MaxFloat64, Dot: 0}
}

// IsCloserThan returns true if d is closer to the edge than other.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD < absO {
		return true
	}
	if absD > absO {
		return false
	}
	// Equal absolute distance - use dot product to break ties
	return d.Dot < other.Dot
}

// nonZeroSign returns 1 for positive values and -1 otherwise.
func nonZeroSign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
