package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pxl"
)

func loadGoRegular(t *testing.T) *Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont(goregular) error = %v", err)
	}
	return f
}

func TestParseFontErrors(t *testing.T) {
	if _, err := ParseFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseFont(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("ParseFont(garbage) error = nil, want error")
	}
	if _, err := LoadFont("testdata/does-not-exist.ttf"); err == nil {
		t.Error("LoadFont(missing) error = nil, want error")
	}
}

func TestFontInfo(t *testing.T) {
	f := loadGoRegular(t)
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if f.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestFaceMetrics(t *testing.T) {
	f := loadGoRegular(t)
	small := NewFace(f, 12)
	large := NewFace(f, 24)

	ms, ml := small.Metrics(), large.Metrics()
	if ms.Ascent <= 0 || ms.Descent <= 0 {
		t.Fatalf("Metrics() = %+v, want positive ascent and descent", ms)
	}
	if ml.Height() <= ms.Height() {
		t.Errorf("Height at 24px = %d, want more than %d at 12px", ml.Height(), ms.Height())
	}
	if got := NewFace(f, 0).Metrics(); got != (Metrics{}) {
		t.Errorf("Metrics() at size 0 = %+v, want zero", got)
	}
}

func TestMeasure(t *testing.T) {
	face := NewFace(loadGoRegular(t), 16)

	w0, h0 := face.Measure("")
	if w0 != 0 || h0 != face.Metrics().Height() {
		t.Errorf("Measure(\"\") = (%d, %d), want (0, %d)", w0, h0, face.Metrics().Height())
	}

	w1, h1 := face.Measure("Hello")
	if w1 <= 0 {
		t.Fatalf("Measure(Hello) width = %d, want > 0", w1)
	}
	if h1 != face.Metrics().Height() {
		t.Errorf("Measure(Hello) height = %d, want %d", h1, face.Metrics().Height())
	}

	w2, _ := face.Measure("HelloHello")
	if w2 < 2*w1-2 || w2 > 2*w1 {
		t.Errorf("Measure(HelloHello) width = %d, want about %d", w2, 2*w1)
	}
}

func TestShapeOrder(t *testing.T) {
	face := NewFace(loadGoRegular(t), 16)
	glyphs := face.Shape("abc")
	if len(glyphs) != 3 {
		t.Fatalf("Shape(abc) = %d glyphs, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d X = %v, want > %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
	if glyphs[0].ID == 0 {
		t.Error("glyph for 'a' resolved to .notdef")
	}
}

func TestSplitRunsLatin(t *testing.T) {
	runs := splitRuns("hello world", DirectionAuto)
	var joined []rune
	for _, r := range runs {
		if r.rtl {
			t.Errorf("run %q is RTL, want LTR", string(r.text))
		}
		joined = append(joined, r.text...)
	}
	if string(joined) != "hello world" {
		t.Errorf("runs joined = %q, want %q", string(joined), "hello world")
	}
}

func TestRender(t *testing.T) {
	face := NewFace(loadGoRegular(t), 20)
	col := pxl.RGB(200, 40, 10)

	c, err := face.Render("Go", col)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	defer c.Release()

	w, h := face.Measure("Go")
	if c.Width() != w || c.Height() != h {
		t.Errorf("Render size = %dx%d, want %dx%d", c.Width(), c.Height(), w, h)
	}

	covered := 0
	for y := range h {
		for x := range w {
			p, _ := c.Value(x, y)
			if p.A == 0 {
				continue
			}
			covered++
			if p.R != col.R || p.G != col.G || p.B != col.B {
				t.Fatalf("pixel (%d,%d) = %v, want colour %v", x, y, p, col)
			}
		}
	}
	if covered == 0 {
		t.Error("Render produced no covered pixels")
	}
}

func TestRenderTranslucent(t *testing.T) {
	face := NewFace(loadGoRegular(t), 20)
	c, err := face.Render("I", pxl.RGBA(255, 255, 255, 128))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	defer c.Release()

	maxA := uint8(0)
	for y := range c.Height() {
		for x := range c.Width() {
			p, _ := c.Value(x, y)
			maxA = max(maxA, p.A)
		}
	}
	if maxA == 0 || maxA > 128 {
		t.Errorf("max alpha = %d, want in (0, 128]", maxA)
	}
}

func TestRenderEmpty(t *testing.T) {
	face := NewFace(loadGoRegular(t), 20)
	c, err := face.Render("", pxl.White)
	if err != nil {
		t.Fatalf("Render(\"\") error = %v", err)
	}
	if c.Width() != 0 || c.Pix() != nil {
		t.Errorf("Render(\"\") = %dx%d with pixels, want inert", c.Width(), c.Height())
	}
}

func TestRenderReusesOutlines(t *testing.T) {
	face := NewFace(loadGoRegular(t), 16)
	first, err := face.Render("aaa", pxl.White)
	if err != nil {
		t.Fatal(err)
	}
	st := face.CacheStats()
	if st.Glyphs != 1 || st.Misses != 1 || st.Hits != 2 {
		t.Errorf("outline cache after \"aaa\" = %+v, want one glyph loaded once", st)
	}

	second, err := face.Render("aaa", pxl.White)
	if err != nil {
		t.Fatal(err)
	}
	for y := range first.Height() {
		for x := range first.Width() {
			a, _ := first.Value(x, y)
			b, _ := second.Value(x, y)
			if a != b {
				t.Fatalf("pixel (%d,%d) differs between renders: %v vs %v", x, y, a, b)
			}
		}
	}
}
