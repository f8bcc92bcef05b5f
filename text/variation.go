package text

// VariationAxis is a 4-byte axis tag plus a value in design units,
// e.g. {"wght", 700}.
type VariationAxis struct {
	Tag   string
	Value float64
}

// NewVariationAxis builds an axis, keeping at most the first four bytes of
// tag.
func NewVariationAxis(tag string, value float64) VariationAxis {
	if len(tag) > 4 {
		tag = tag[:4]
	}
	return VariationAxis{Tag: tag, Value: value}
}

// registeredAxes maps the registered OpenType axis tags to their names.
var registeredAxes = map[string]string{
	"wght": "Weight",
	"wdth": "Width",
	"opsz": "Optical Size",
	"ital": "Italic",
	"slnt": "Slant",
}

// TagToName returns the canonical name of a registered axis tag.
// The second result is false for any other tag.
func TagToName(tag string) (string, bool) {
	name, ok := registeredAxes[tag]
	return name, ok
}

// ApplyAxes sets every recognized axis on font and returns how many were
// applied. Unrecognized tags and axes the font does not support are skipped;
// they are never an error. Order does not matter: each axis is independent.
func ApplyAxes(font ParsedFont, axes []VariationAxis) int {
	applied := 0
	for _, axis := range axes {
		if _, ok := TagToName(axis.Tag); !ok {
			continue
		}
		if font.SetVariation(axis.Tag, axis.Value) {
			applied++
		}
	}
	return applied
}
