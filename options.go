package sdfglyph

import "github.com/gogpu/sdfglyph/text"

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default backend and a single rasterizer goroutine
//	ctx := sdfglyph.NewContext()
//
//	// x/image backend, rows split across four goroutines
//	ctx := sdfglyph.NewContext(
//	    sdfglyph.WithParser(text.ParserXImage),
//	    sdfglyph.WithWorkers(4),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	parser         string
	workers        int
	angleThreshold float64
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		parser:         text.DefaultParserName,
		workers:        1,
		angleThreshold: 3.0,
	}
}

// WithParser selects the font backend used for generation.
// Unknown names fall back to text.DefaultParserName.
func WithParser(name string) ContextOption {
	return func(o *contextOptions) {
		o.parser = name
	}
}

// WithWorkers splits rasterization rows across n goroutines.
// Values below one are ignored. Output does not depend on n.
func WithWorkers(n int) ContextOption {
	return func(o *contextOptions) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithAngleThreshold sets the edge coloring corner threshold in radians.
func WithAngleThreshold(radians float64) ContextOption {
	return func(o *contextOptions) {
		o.angleThreshold = radians
	}
}
