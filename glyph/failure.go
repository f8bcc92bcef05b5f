package glyph

import (
	"errors"

	"github.com/gogpu/sdfglyph/text/msdf"
)

// FailureKind tells why a generation produced no bitmap.
type FailureKind int

const (
	// FailureNone means the glyph was generated.
	FailureNone FailureKind = iota

	// FailureInit means the rasterizer could not be set up: invalid
	// options, or a bitmap too large to allocate.
	FailureInit

	// FailureFontInvalid means the bytes are not a usable font.
	FailureFontInvalid

	// FailureGlyphMissing means the glyph has no vector outline.
	FailureGlyphMissing
)

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureInit:
		return "InitFailed"
	case FailureFontInvalid:
		return "FontInvalid"
	case FailureGlyphMissing:
		return "GlyphMissing"
	default:
		return "Unknown"
	}
}

// Sentinel errors for glyph package.
var (
	// ErrInvalidFontSize is returned when the font size is not a positive
	// finite number.
	ErrInvalidFontSize = errors.New("glyph: font size must be positive and finite")

	// ErrInvalidField is returned for a field type other than MSDF or MTSDF.
	ErrInvalidField = errors.New("glyph: unsupported field type")

	// ErrInvalidEmSize is returned when a font reports a non-positive
	// units-per-em.
	ErrInvalidEmSize = errors.New("glyph: font has invalid units per em")

	// ErrFontLength is returned when a declared font length does not fit
	// the font buffer.
	ErrFontLength = errors.New("glyph: font length out of range")

	// ErrBitmapTooLarge is returned when the padded frame exceeds the
	// rasterizer's maximum dimension.
	ErrBitmapTooLarge = msdf.ErrBitmapTooLarge
)
