package glyph

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/sdfglyph/text"
	"github.com/gogpu/sdfglyph/text/msdf"
)

// Options configures one Generate call.
type Options struct {
	// FontSize is the target size of one em, in pixels.
	FontSize float64

	// PixelRange is the distance range of the field, in pixels.
	PixelRange float64

	// Field selects MSDF (3 channels) or MTSDF (4 channels).
	Field msdf.FieldType

	// Axes are variation coordinates applied before the outline is read.
	// Unrecognized tags are ignored.
	Axes []text.VariationAxis

	// Parser names the font backend. Empty selects text.DefaultParserName.
	Parser string

	// AngleThreshold is the edge coloring corner threshold in radians.
	// Zero selects the rasterizer default.
	AngleThreshold float64

	// Workers is the number of goroutines rows are split across.
	// Zero selects one.
	Workers int

	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns options for a 32px MSDF with a 4px range.
func DefaultOptions() Options {
	return Options{
		FontSize:       32,
		PixelRange:     4,
		Field:          msdf.FieldMSDF,
		Parser:         text.DefaultParserName,
		AngleThreshold: msdf.DefaultConfig().AngleThreshold,
		Workers:        1,
	}
}

// Validate checks the options and the rasterizer configuration they imply.
func (o *Options) Validate() error {
	if !(o.FontSize > 0) || math.IsInf(o.FontSize, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFontSize, o.FontSize)
	}
	if o.Field != msdf.FieldMSDF && o.Field != msdf.FieldMTSDF {
		return fmt.Errorf("%w: %d", ErrInvalidField, int(o.Field))
	}
	cfg := o.rasterConfig()
	return cfg.Validate()
}

// rasterConfig builds the rasterizer configuration.
func (o *Options) rasterConfig() msdf.Config {
	cfg := msdf.DefaultConfig()
	cfg.Range = o.PixelRange
	if o.AngleThreshold != 0 {
		cfg.AngleThreshold = o.AngleThreshold
	}
	if o.Workers != 0 {
		cfg.Workers = o.Workers
	}
	return cfg
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return nopLogger
}
