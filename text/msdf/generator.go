package msdf

import (
	"fmt"
	"sync"
)

// Generator rasterizes colored shapes into distance fields.
// A Generator is safe for concurrent use.
type Generator struct {
	config Config
}

// NewGenerator creates a new generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// GenerateMSDF renders a three-channel field. The shape must already be
// normalized and colored.
func (g *Generator) GenerateMSDF(shape *Shape, proj Projection, width, height int) (*Bitmap, error) {
	return g.Generate(shape, FieldMSDF, proj, width, height)
}

// GenerateMTSDF renders a four-channel field whose last channel holds the
// true signed distance.
func (g *Generator) GenerateMTSDF(shape *Shape, proj Projection, width, height int) (*Bitmap, error) {
	return g.Generate(shape, FieldMTSDF, proj, width, height)
}

// Generate renders a field of the given type.
//
// Each channel value is distance/range + 0.5 where distance is in pixels
// and range is Config.Range; values are not clamped. A shape without edges
// yields an all-zero bitmap.
func (g *Generator) Generate(shape *Shape, field FieldType, proj Projection, width, height int) (*Bitmap, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > g.config.MaxDimension || height > g.config.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrBitmapTooLarge, width, height, g.config.MaxDimension)
	}
	if !proj.valid() {
		return nil, ErrInvalidProjection
	}

	bm := NewBitmap(width, height, field.Channels())
	// Without edges every channel stays 0, the fully outside value.
	if shape == nil || shape.EdgeCount() == 0 || width == 0 || height == 0 {
		return bm, nil
	}

	// Distances are measured in shape units; the horizontal scale converts
	// the pixel range into that space.
	shapeRange := g.config.Range / proj.Scale.X

	g.generateRows(bm, shape, field, proj, shapeRange)
	return bm, nil
}

// generateRows splits the rows across Config.Workers goroutines.
func (g *Generator) generateRows(bm *Bitmap, shape *Shape, field FieldType, proj Projection, shapeRange float64) {
	numWorkers := min(g.config.Workers, bm.Height)
	if numWorkers <= 1 {
		g.processRows(bm, shape, field, proj, shapeRange, 0, bm.Height)
		return
	}

	var wg sync.WaitGroup
	rowsPerWorker := (bm.Height + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, bm.Height)
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			g.processRows(bm, shape, field, proj, shapeRange, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}

// processRows fills rows [startRow, endRow).
func (g *Generator) processRows(bm *Bitmap, shape *Shape, field FieldType, proj Projection, shapeRange float64, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < bm.Width; x++ {
			p := proj.Unproject(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			px := bm.Pixel(x, y)

			r, gr, b, sd := shapeDistances(shape, p)
			px[0] = encodeDistance(r, shapeRange)
			px[1] = encodeDistance(gr, shapeRange)
			px[2] = encodeDistance(b, shapeRange)
			if field == FieldMTSDF {
				px[3] = encodeDistance(sd, shapeRange)
			}
		}
	}
}

// channelSelection tracks the closest edge seen so far for one channel.
type channelSelection struct {
	dist  SignedDistance
	edge  *Edge
	param float64
}

func (c *channelSelection) add(e *Edge, sd SignedDistance, param float64) {
	if sd.IsCloserThan(c.dist) {
		c.dist = sd
		c.edge = e
		c.param = param
	}
}

// pseudo returns the pseudo-distance to the selected edge.
func (c *channelSelection) pseudo(p Point) float64 {
	return c.edge.PerpendicularDistance(c.dist, p, c.param).Distance
}

// shapeDistances returns the per-channel pseudo-distances at p together
// with the true signed distance to the whole shape. A channel no edge
// contributes to falls back to the overall closest edge.
func shapeDistances(shape *Shape, p Point) (r, g, b, trueDist float64) {
	sel := [3]channelSelection{{dist: Infinite()}, {dist: Infinite()}, {dist: Infinite()}}
	all := channelSelection{dist: Infinite()}

	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			e := &contour.Edges[i]
			sd, param := e.SignedDistance(p)
			all.add(e, sd, param)
			if e.Color.HasRed() {
				sel[0].add(e, sd, param)
			}
			if e.Color.HasGreen() {
				sel[1].add(e, sd, param)
			}
			if e.Color.HasBlue() {
				sel[2].add(e, sd, param)
			}
		}
	}

	var out [3]float64
	for i := range sel {
		if sel[i].edge == nil {
			out[i] = all.pseudo(p)
			continue
		}
		out[i] = sel[i].pseudo(p)
	}
	return out[0], out[1], out[2], all.dist.Distance
}

// encodeDistance maps a shape-space distance onto the output encoding.
func encodeDistance(d, shapeRange float64) float32 {
	return float32(d/shapeRange + 0.5)
}

// Median returns the median of three channel values, which recovers the
// signed distance encoded by a multi-channel field.
func Median(r, g, b float32) float32 {
	return max(min(r, g), min(max(r, g), b))
}
