package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

var parserNames = []string{ParserGoText, ParserXImage}

func TestParseFont_Empty(t *testing.T) {
	for _, name := range parserNames {
		_, err := ParseFont(nil, name)
		if !errors.Is(err, ErrEmptyFontData) {
			t.Errorf("ParseFont(nil, %q) error = %v, want ErrEmptyFontData", name, err)
		}
	}
}

func TestParseFont_Invalid(t *testing.T) {
	garbage := []byte("definitely not an OpenType font file")
	for _, name := range parserNames {
		if _, err := ParseFont(garbage, name); err == nil {
			t.Errorf("ParseFont(garbage, %q) succeeded, want error", name)
		}
	}
}

func TestParseFont_UnknownParserFallsBack(t *testing.T) {
	f, err := ParseFont(goregular.TTF, "no-such-backend")
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	if _, ok := f.(*gotextParsedFont); !ok {
		t.Errorf("ParseFont() backend = %T, want *gotextParsedFont", f)
	}
}

func TestRegisterParser(t *testing.T) {
	orig, had := parserRegistry["stub"]
	t.Cleanup(func() {
		if had {
			parserRegistry["stub"] = orig
		} else {
			delete(parserRegistry, "stub")
		}
	})

	RegisterParser("stub", &ximageParser{})
	f, err := ParseFont(goregular.TTF, "stub")
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	if _, ok := f.(*ximageParsedFont); !ok {
		t.Errorf("registered parser not used, got %T", f)
	}
}

func TestParsedFont_Basics(t *testing.T) {
	for _, name := range parserNames {
		t.Run(name, func(t *testing.T) {
			f, err := ParseFont(goregular.TTF, name)
			if err != nil {
				t.Fatalf("ParseFont() error = %v", err)
			}
			if got := f.UnitsPerEm(); got != 2048 {
				t.Errorf("UnitsPerEm() = %d, want 2048", got)
			}
			if f.GlyphIndex('A') == NotDef {
				t.Error("GlyphIndex('A') = 0, want mapped glyph")
			}
			if f.GlyphIndex(' ') == NotDef {
				t.Error("GlyphIndex(' ') = 0, want mapped glyph")
			}
			if got := f.GlyphIndex('一'); got != NotDef {
				t.Errorf("GlyphIndex(U+4E00) = %d, want 0", got)
			}
		})
	}
}

func TestParsedFont_LoadGlyph(t *testing.T) {
	for _, name := range parserNames {
		t.Run(name, func(t *testing.T) {
			f, err := ParseFont(goregular.TTF, name)
			if err != nil {
				t.Fatalf("ParseFont() error = %v", err)
			}

			outline, err := f.LoadGlyph(f.GlyphIndex('A'))
			if err != nil {
				t.Fatalf("LoadGlyph('A') error = %v", err)
			}
			if len(outline.Segments) == 0 {
				t.Fatal("LoadGlyph('A') returned empty outline")
			}
			if outline.Segments[0].Op != OutlineOpMoveTo {
				t.Errorf("first op = %v, want MoveTo", outline.Segments[0].Op)
			}
			if outline.Advance <= 0 {
				t.Errorf("Advance = %v, want > 0", outline.Advance)
			}
			// 'A' sits on the baseline and rises above it (Y up).
			if lo, hi := yRange(outline); lo > 1 || hi < 1000 {
				t.Errorf("y range = [%v, %v], want glyph on baseline with Y up", lo, hi)
			}

			space, err := f.LoadGlyph(f.GlyphIndex(' '))
			if err != nil {
				t.Fatalf("LoadGlyph(' ') error = %v", err)
			}
			if len(space.Segments) != 0 {
				t.Errorf("space has %d segments, want 0", len(space.Segments))
			}
			if space.Advance <= 0 {
				t.Errorf("space Advance = %v, want > 0", space.Advance)
			}
		})
	}
}

func TestParsedFont_BackendsAgree(t *testing.T) {
	gt, err := ParseFont(goregular.TTF, ParserGoText)
	if err != nil {
		t.Fatal(err)
	}
	xi, err := ParseFont(goregular.TTF, ParserXImage)
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range []rune{'A', 'g', 'O', '&'} {
		if gt.GlyphIndex(r) != xi.GlyphIndex(r) {
			t.Errorf("GlyphIndex(%q): gotext %d, ximage %d", r, gt.GlyphIndex(r), xi.GlyphIndex(r))
			continue
		}
		a, err := gt.LoadGlyph(gt.GlyphIndex(r))
		if err != nil {
			t.Fatal(err)
		}
		b, err := xi.LoadGlyph(xi.GlyphIndex(r))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(float64(a.Advance-b.Advance)) > 1 {
			t.Errorf("%q advance: gotext %v, ximage %v", r, a.Advance, b.Advance)
		}
		aLo, aHi := yRange(a)
		bLo, bHi := yRange(b)
		if math.Abs(float64(aLo-bLo)) > 1 || math.Abs(float64(aHi-bHi)) > 1 {
			t.Errorf("%q y range: gotext [%v, %v], ximage [%v, %v]", r, aLo, aHi, bLo, bHi)
		}
	}
}

// yRange returns the vertical extent of the outline's points.
func yRange(o *GlyphOutline) (lo, hi float32) {
	lo, hi = math.MaxFloat32, -math.MaxFloat32
	for _, seg := range o.Segments {
		for i := 0; i < seg.Op.pointCount(); i++ {
			lo = min(lo, seg.Points[i].Y)
			hi = max(hi, seg.Points[i].Y)
		}
	}
	return lo, hi
}
