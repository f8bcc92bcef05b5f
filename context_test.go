package sdfglyph

import (
	"os"
	"reflect"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdfglyph/glyph"
	"github.com/gogpu/sdfglyph/text"
	"github.com/gogpu/sdfglyph/text/msdf"
)

// loadFont copies goregular into the context's font buffer.
func loadFont(t testing.TB, ctx *Context) int {
	t.Helper()
	buf := ctx.PrepareFontBuffer(len(goregular.TTF))
	return copy(buf, goregular.TTF)
}

func TestPrepareFontBufferNeverShrinks(t *testing.T) {
	ctx := NewContext()

	if got := len(ctx.PrepareFontBuffer(100)); got < 100 {
		t.Fatalf("len = %d, want >= 100", got)
	}
	if got := len(ctx.PrepareFontBuffer(50)); got < 100 {
		t.Errorf("smaller request shrank buffer to %d", got)
	}
	if got := len(ctx.PrepareFontBuffer(100)); got < 100 {
		t.Errorf("equal request returned %d", got)
	}
	if got := len(ctx.PrepareFontBuffer(400)); got < 400 {
		t.Errorf("larger request returned %d, want >= 400", got)
	}
	if ctx.FontCapacity() < 400 {
		t.Errorf("FontCapacity() = %d", ctx.FontCapacity())
	}
	if got := len(ctx.PrepareFontBuffer(-5)); got < 400 {
		t.Errorf("negative request returned %d", got)
	}
}

func TestContextGenerate(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)

	tests := []struct {
		name     string
		gen      func(int, rune, float64, float64, *Metrics) []float32
		channels int
	}{
		{"GenerateGlyph", ctx.GenerateGlyph, 3},
		{"GenerateMTSDFGlyph", ctx.GenerateMTSDFGlyph, 4},
		{"GenerateGlyphVar", ctx.GenerateGlyphVar, 3},
		{"GenerateMTSDFGlyphVar", ctx.GenerateMTSDFGlyphVar, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metrics
			px := tt.gen(n, 'B', 32, 4, &m)
			if !m.Success {
				t.Fatalf("Success = false, Failure = %v", m.Failure)
			}
			if len(px) != tt.channels*m.Width*m.Height {
				t.Errorf("len(pixels) = %d, want %d", len(px), tt.channels*m.Width*m.Height)
			}
			if m.AtlasOriginX != 0 || m.AtlasOriginY != 0 {
				t.Errorf("atlas origin = (%v, %v)", m.AtlasOriginX, m.AtlasOriginY)
			}

			want := glyph.Generate(goregular.TTF, 'B', glyph.Options{
				FontSize:   32,
				PixelRange: 4,
				Field:      fieldFor(tt.channels),
			})
			if !slices.Equal(px, want.Pixels) {
				t.Error("pixels differ from glyph.Generate")
			}
		})
	}
}

func TestContextPixelBufferReuse(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)

	var m Metrics
	big := ctx.GenerateMTSDFGlyph(n, 'W', 64, 8, &m)
	if !m.Success {
		t.Fatal(m.Failure)
	}
	capAfterBig := ctx.PixelCapacity()
	if capAfterBig < len(big) {
		t.Fatalf("PixelCapacity() = %d < %d", capAfterBig, len(big))
	}

	small := ctx.GenerateGlyph(n, '.', 12, 2, &m)
	if !m.Success {
		t.Fatal(m.Failure)
	}
	if ctx.PixelCapacity() != capAfterBig {
		t.Errorf("pixel buffer changed from %d to %d on a smaller glyph", capAfterBig, ctx.PixelCapacity())
	}
	if &small[0] != &big[0] {
		t.Error("smaller glyph did not reuse the pixel buffer")
	}
}

func TestContextRepeatable(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)
	ctx.AddVariationAxis("wght", 650)

	var m1, m2 Metrics
	a := slices.Clone(ctx.GenerateMTSDFGlyphVar(n, 'x', 40, 4, &m1))
	b := ctx.GenerateMTSDFGlyphVar(n, 'x', 40, 4, &m2)
	if m1 != m2 {
		t.Errorf("metrics differ: %+v vs %+v", m1, m2)
	}
	if !slices.Equal(a, b) {
		t.Error("pixels differ between identical calls")
	}
}

func TestContextFailures(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)

	tests := []struct {
		name    string
		fontLen int
		size    float64
		want    glyph.FailureKind
	}{
		{"negative length", -1, 32, glyph.FailureFontInvalid},
		{"length past buffer", n + 1, 32, glyph.FailureFontInvalid},
		{"truncated font", 64, 32, glyph.FailureFontInvalid},
		{"bad size", n, 0, glyph.FailureInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Metrics{Success: true, Width: 99}
			px := ctx.GenerateGlyph(tt.fontLen, 'A', tt.size, 4, &m)
			if px != nil {
				t.Error("pixels returned on failure")
			}
			if m.Success || m.Width != 0 {
				t.Errorf("metrics not reset: %+v", m)
			}
			if m.Failure != tt.want {
				t.Errorf("Failure = %v, want %v", m.Failure, tt.want)
			}
		})
	}

	// A nil metrics slot is tolerated.
	if px := ctx.GenerateGlyph(n, 'A', 32, 4, nil); px == nil {
		t.Error("generation with nil metrics failed")
	}
}

func TestContextVariationAxes(t *testing.T) {
	ctx := NewContext()
	ctx.AddVariationAxis("wght", 700)
	ctx.AddVariationAxis("widthx", 80)

	want := []text.VariationAxis{{Tag: "wght", Value: 700}, {Tag: "widt", Value: 80}}
	if got := ctx.VariationAxes(); !reflect.DeepEqual(got, want) {
		t.Errorf("VariationAxes() = %v, want %v", got, want)
	}

	ctx.ClearVariationAxes()
	if got := ctx.VariationAxes(); len(got) != 0 {
		t.Errorf("after clear: %v", got)
	}
}

func TestContextUnrecognizedAxisNoOp(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)

	var m1, m2 Metrics
	plain := slices.Clone(ctx.GenerateGlyph(n, 'e', 24, 4, &m1))
	ctx.AddVariationAxis("zzzz", 3)
	tagged := ctx.GenerateGlyphVar(n, 'e', 24, 4, &m2)

	if m1 != m2 || !slices.Equal(plain, tagged) {
		t.Error("unrecognized axis changed the output")
	}
}

func TestContextHasGlyph(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)

	if !ctx.HasGlyph(n, 'A') {
		t.Error("HasGlyph('A') = false")
	}
	if !ctx.HasGlyph(n, ' ') {
		t.Error("HasGlyph(' ') = false")
	}
	if ctx.HasGlyph(n, 0x4E00) {
		t.Error("HasGlyph(U+4E00) = true")
	}
	if ctx.HasGlyph(n+10, 'A') || ctx.HasGlyph(-1, 'A') {
		t.Error("out of range length reported a glyph")
	}
}

func TestContextHasGlyphUsesParser(t *testing.T) {
	data, err := os.ReadFile("text/testdata/Selawik-VF-Subset.ttf")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		parser string
		want   bool
	}{
		{"default", "", true},
		{"gotext", text.ParserGoText, true},
		{"ximage rejects the font", text.ParserXImage, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []ContextOption
			if tt.parser != "" {
				opts = append(opts, WithParser(tt.parser))
			}
			ctx := NewContext(opts...)
			n := copy(ctx.PrepareFontBuffer(len(data)), data)

			if got := ctx.HasGlyph(n, ' '); got != tt.want {
				t.Errorf("HasGlyph(' ') = %v, want %v", got, tt.want)
			}
			var m Metrics
			pixels := ctx.GenerateGlyph(n, ' ', 24, 4, &m)
			if tt.want && (pixels == nil || !m.Success) {
				t.Errorf("HasGlyph true but generation failed: %v", m.Failure)
			}
		})
	}
}

func TestFreeBuffers(t *testing.T) {
	ctx := NewContext()
	n := loadFont(t, ctx)
	ctx.AddVariationAxis("wght", 500)

	var m Metrics
	ctx.GenerateGlyph(n, 'A', 32, 4, &m)

	ctx.FreeBuffers()
	if ctx.FontCapacity() != 0 || ctx.PixelCapacity() != 0 || len(ctx.VariationAxes()) != 0 {
		t.Fatalf("buffers not released: font %d, pixels %d, axes %d",
			ctx.FontCapacity(), ctx.PixelCapacity(), len(ctx.VariationAxes()))
	}

	// Old font length now exceeds the buffer.
	if px := ctx.GenerateGlyph(n, 'A', 32, 4, &m); px != nil || m.Failure != glyph.FailureFontInvalid {
		t.Errorf("generation after free: Failure = %v", m.Failure)
	}

	// Buffers regrow transparently.
	n = loadFont(t, ctx)
	if px := ctx.GenerateGlyph(n, 'A', 32, 4, &m); px == nil || !m.Success {
		t.Errorf("generation after regrow failed: %v", m.Failure)
	}
}

func TestContextOptions(t *testing.T) {
	ctx := NewContext(WithParser(text.ParserXImage), WithWorkers(3), WithWorkers(0), WithAngleThreshold(2.5))
	if ctx.opts.parser != text.ParserXImage || ctx.opts.workers != 3 || ctx.opts.angleThreshold != 2.5 {
		t.Errorf("opts = %+v", ctx.opts)
	}

	n := loadFont(t, ctx)
	var m Metrics
	if ctx.GenerateGlyph(n, 'Z', 32, 4, &m) == nil {
		t.Errorf("generation with options failed: %v", m.Failure)
	}

	bad := NewContext(WithAngleThreshold(-1))
	n = loadFont(t, bad)
	if bad.GenerateGlyph(n, 'Z', 32, 4, &m) != nil || m.Failure != glyph.FailureInit {
		t.Errorf("invalid threshold: Failure = %v, want InitFailed", m.Failure)
	}
}

func fieldFor(channels int) msdf.FieldType {
	if channels == 4 {
		return msdf.FieldMTSDF
	}
	return msdf.FieldMSDF
}

func BenchmarkContextGenerateGlyph(b *testing.B) {
	ctx := NewContext()
	n := loadFont(b, ctx)
	var m Metrics
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.GenerateGlyph(n, 'A', 32, 4, &m)
	}
}
