package text

import (
	"github.com/go-text/typesetting/font/opentype/tables"
)

// AxisInfo describes one variation axis declared in a font's fvar table.
type AxisInfo struct {
	Tag     string
	Min     float64
	Default float64
	Max     float64
}

// axesFromFvar lists the axis records of a raw fvar table.
// A missing or unreadable table yields no axes: the font is static.
func axesFromFvar(raw []byte) []AxisInfo {
	if len(raw) == 0 {
		return nil
	}
	fvar, _, err := tables.ParseFvar(raw)
	if err != nil || len(fvar.Axis) == 0 {
		return nil
	}

	axes := make([]AxisInfo, len(fvar.Axis))
	for i, rec := range fvar.Axis {
		axes[i] = AxisInfo{
			Tag:     rec.Tag.String(),
			Min:     float64(rec.Minimum),
			Default: float64(rec.Default),
			Max:     float64(rec.Maximum),
		}
	}
	return axes
}

func hasAxis(axes []AxisInfo, tag string) bool {
	for _, a := range axes {
		if a.Tag == tag {
			return true
		}
	}
	return false
}
