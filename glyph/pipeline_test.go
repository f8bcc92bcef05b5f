package glyph

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdfglyph/text"
	"github.com/gogpu/sdfglyph/text/msdf"
)

func TestGenerateLetter(t *testing.T) {
	tests := []struct {
		name     string
		gen      func([]byte, rune, float64, float64) Result
		channels int
	}{
		{"msdf", GenerateMSDF, 3},
		{"mtsdf", GenerateMTSDF, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.gen(goregular.TTF, 'A', 32, 4)
			if !res.Success() {
				t.Fatalf("Failure = %v, Err = %v", res.Failure, res.Err)
			}
			if res.Width <= 0 || res.Height <= 0 {
				t.Fatalf("size = %dx%d, want positive", res.Width, res.Height)
			}
			if res.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", res.Channels, tt.channels)
			}
			if got, want := len(res.Pixels), tt.channels*res.Width*res.Height; got != want {
				t.Errorf("len(Pixels) = %d, want %d", got, want)
			}
			if res.AtlasBounds != [4]float32{0, 0, float32(res.Width), float32(res.Height)} {
				t.Errorf("AtlasBounds = %v", res.AtlasBounds)
			}
			pb := res.PlaneBounds
			if pb[0] >= pb[2] || pb[1] >= pb[3] {
				t.Errorf("PlaneBounds = %v, want non-empty", pb)
			}
		})
	}
}

func TestGenerateInsideAndOutside(t *testing.T) {
	res := GenerateMTSDF(goregular.TTF, 'I', 64, 4)
	if !res.Success() {
		t.Fatalf("Failure = %v, Err = %v", res.Failure, res.Err)
	}

	at := func(x, y int) []float32 {
		off := (y*res.Width + x) * res.Channels
		return res.Pixels[off : off+res.Channels]
	}

	// The padded frame's corner is outside the stem; the frame center is
	// inside it.
	if corner := at(0, 0); corner[3] >= 0.5 {
		t.Errorf("corner true distance = %v, want < 0.5", corner[3])
	}
	center := at(res.Width/2, res.Height/2)
	if m := msdf.Median(center[0], center[1], center[2]); m <= 0.5 {
		t.Errorf("center median = %v, want > 0.5", m)
	}
}

func TestGenerateSpace(t *testing.T) {
	res := GenerateMSDF(goregular.TTF, ' ', 32, 4)
	if !res.Success() {
		t.Fatalf("Failure = %v, Err = %v", res.Failure, res.Err)
	}
	if res.Width != 5 || res.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", res.Width, res.Height)
	}
	for i, v := range res.Pixels {
		if v != 0 {
			t.Fatalf("Pixels[%d] = %v, want 0", i, v)
		}
	}
	if res.Advance <= 0 {
		t.Errorf("Advance = %v, want positive", res.Advance)
	}
	s := float32(32.0 / 2048.0)
	if res.PlaneBounds != [4]float32{0, 0, s, s} {
		t.Errorf("PlaneBounds = %v, want unit square scaled", res.PlaneBounds)
	}
}

func TestGenerateAdvance(t *testing.T) {
	font, err := text.ParseFont(goregular.TTF, text.ParserGoText)
	if err != nil {
		t.Fatal(err)
	}
	outline, err := font.LoadGlyph(font.GlyphIndex('W'))
	if err != nil {
		t.Fatal(err)
	}
	want := float32(float64(outline.Advance) * (40.0 / float64(font.UnitsPerEm())))

	for _, r := range []float64{1, 4, 9.5} {
		res := GenerateMSDF(goregular.TTF, 'W', 40, r)
		if !res.Success() {
			t.Fatalf("range %v: Failure = %v", r, res.Failure)
		}
		if res.Advance != want {
			t.Errorf("range %v: Advance = %v, want %v", r, res.Advance, want)
		}
	}
}

func TestGenerateRangeGrowsFrame(t *testing.T) {
	base := GenerateMSDF(goregular.TTF, 'g', 32, 4)
	grown := GenerateMSDF(goregular.TTF, 'g', 32, 7)
	if !base.Success() || !grown.Success() {
		t.Fatal("generation failed")
	}
	if grown.Width != base.Width+3 || grown.Height != base.Height+3 {
		t.Errorf("range +3: %dx%d -> %dx%d", base.Width, base.Height, grown.Width, grown.Height)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.Field = msdf.FieldMTSDF
	opts.Axes = []text.VariationAxis{{Tag: "wght", Value: 700}}

	a := Generate(goregular.TTF, '&', opts)
	b := Generate(goregular.TTF, '&', opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical calls produced different results")
	}
}

func TestGenerateUnrecognizedAxis(t *testing.T) {
	plain := GenerateMTSDF(goregular.TTF, 'R', 24, 3)
	tagged := GenerateMTSDFVar(goregular.TTF, 'R', 24, 3, []text.VariationAxis{
		text.NewVariationAxis("abcd", 5),
		text.NewVariationAxis("zzzzzz", -1),
	})
	if !reflect.DeepEqual(plain, tagged) {
		t.Error("unrecognized axes changed the output")
	}

	// Go Regular has no fvar table, so even registered axes are no-ops.
	weighted := GenerateMSDFVar(goregular.TTF, 'R', 24, 3, []text.VariationAxis{{Tag: "wght", Value: 900}})
	if !reflect.DeepEqual(GenerateMSDF(goregular.TTF, 'R', 24, 3), weighted) {
		t.Error("axis on a static font changed the output")
	}
}

func TestGenerateWorkers(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 72
	serial := Generate(goregular.TTF, '@', opts)

	opts.Workers = 5
	parallel := Generate(goregular.TTF, '@', opts)

	if !reflect.DeepEqual(serial, parallel) {
		t.Error("worker count changed the output")
	}
}

func TestGenerateBackendsAgree(t *testing.T) {
	opts := DefaultOptions()
	gt := Generate(goregular.TTF, 'k', opts)

	opts.Parser = text.ParserXImage
	xi := Generate(goregular.TTF, 'k', opts)

	if !gt.Success() || !xi.Success() {
		t.Fatalf("failures: gotext %v, ximage %v", gt.Err, xi.Err)
	}
	if gt.Width != xi.Width || gt.Height != xi.Height {
		t.Errorf("sizes differ: %dx%d vs %dx%d", gt.Width, gt.Height, xi.Width, xi.Height)
	}
	if gt.Advance != xi.Advance {
		t.Errorf("advances differ: %v vs %v", gt.Advance, xi.Advance)
	}
}

func TestGenerateUnmappedFallsBackToNotdef(t *testing.T) {
	res := GenerateMSDF(goregular.TTF, 0x4E00, 32, 4)
	if !res.Success() {
		t.Errorf("Failure = %v, Err = %v; want .notdef rendering", res.Failure, res.Err)
	}
}

func TestGenerateFailures(t *testing.T) {
	registerNoOutlineParser()

	tests := []struct {
		name   string
		font   []byte
		mutate func(*Options)
		kind   FailureKind
		target error
	}{
		{"zero font size", goregular.TTF, func(o *Options) { o.FontSize = 0 }, FailureInit, ErrInvalidFontSize},
		{"zero range", goregular.TTF, func(o *Options) { o.PixelRange = 0 }, FailureInit, nil},
		{"bad field", goregular.TTF, func(o *Options) { o.Field = msdf.FieldType(9) }, FailureInit, ErrInvalidField},
		{"huge bitmap", goregular.TTF, func(o *Options) { o.FontSize = 20000 }, FailureInit, ErrBitmapTooLarge},
		{"bitmap past int64", goregular.TTF, func(o *Options) { o.FontSize = 1e19 }, FailureInit, ErrBitmapTooLarge},
		{"bitmap near float max", goregular.TTF, func(o *Options) { o.FontSize = 1e300 }, FailureInit, ErrBitmapTooLarge},
		{"empty font", nil, func(*Options) {}, FailureFontInvalid, text.ErrEmptyFontData},
		{"garbage font", []byte("definitely not a font"), func(*Options) {}, FailureFontInvalid, nil},
		{"no outline", goregular.TTF, func(o *Options) { o.Parser = "no-outline" }, FailureGlyphMissing, text.ErrNoOutline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			res := Generate(tt.font, 'A', opts)
			if res.Failure != tt.kind {
				t.Fatalf("Failure = %v, want %v (err %v)", res.Failure, tt.kind, res.Err)
			}
			if res.Success() || res.Pixels != nil || res.Width != 0 {
				t.Error("failed result carries output")
			}
			if res.Err == nil {
				t.Error("Err = nil")
			}
			if tt.target != nil && !errors.Is(res.Err, tt.target) {
				t.Errorf("Err = %v, want %v", res.Err, tt.target)
			}
		})
	}
}

func TestGenerateZeroRangeIsConfigError(t *testing.T) {
	opts := DefaultOptions()
	opts.PixelRange = 0
	res := Generate(goregular.TTF, 'A', opts)
	var ce *msdf.ConfigError
	if !errors.As(res.Err, &ce) || ce.Field != "Range" {
		t.Errorf("Err = %v, want Range config error", res.Err)
	}
}

func TestGenerateLogging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts.Axes = []text.VariationAxis{{Tag: "wght", Value: 400}}

	if res := Generate(goregular.TTF, 'A', opts); !res.Success() {
		t.Fatal(res.Err)
	}
	out := buf.String()
	for _, want := range []string{"LATIN CAPITAL LETTER A", "U+0041", "applied=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	Generate(nil, 'A', opts)
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("failure not logged at warn level:\n%s", buf.String())
	}
}

func TestDefaultOptionsValid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}

	// Zero threshold and workers select defaults.
	zero := Options{FontSize: 12, PixelRange: 2}
	if err := zero.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// noOutlineParser wraps the default backend but has no vector outlines,
// like a bitmap-only font.
type noOutlineParser struct{}

func (noOutlineParser) Parse(data []byte) (text.ParsedFont, error) {
	f, err := text.ParseFont(data, text.ParserXImage)
	if err != nil {
		return nil, err
	}
	return noOutlineFont{f}, nil
}

type noOutlineFont struct {
	text.ParsedFont
}

func (noOutlineFont) LoadGlyph(text.GlyphID) (*text.GlyphOutline, error) {
	return nil, text.ErrNoOutline
}

func registerNoOutlineParser() {
	text.RegisterParser("no-outline", noOutlineParser{})
}

func BenchmarkGenerateMSDF(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = GenerateMSDF(goregular.TTF, 'A', 32, 4)
	}
}
