package pxl

import (
	"errors"
	"testing"
)

func TestValueIgnoresClipAndOffset(t *testing.T) {
	c := mustNew(t, 4, 4)
	c.SetClip(1, 1, 2, 2)
	c.SetOffset(1, 1)

	c.SetValue(3, 3, Red)
	if got, ok := c.Value(3, 3); !ok || got != Red {
		t.Errorf("Value(3,3) = %v, %v; want red", got, ok)
	}
	if _, ok := c.Value(4, 0); ok {
		t.Error("Value outside the canvas reported ok")
	}
	c.SetValue(-1, 0, Red)
	c.SetValue(0, 4, Red)
}

func TestPixelHonoursClipAndOffset(t *testing.T) {
	c := mustNew(t, 4, 4)
	c.SetClip(1, 1, 3, 3)
	c.SetOffset(1, 0)

	c.SetPixel(0, 1, Green) // lands on (1,1)
	if got, _ := c.Value(1, 1); got != Green {
		t.Errorf("Value(1,1) = %v, want green", got)
	}
	if got, ok := c.Pixel(0, 1); !ok || got != Green {
		t.Errorf("Pixel(0,1) = %v, %v; want green", got, ok)
	}

	c.SetPixel(-1, 1, Green) // (0,1) is outside the clip
	if got, _ := c.Value(0, 1); got != Transparent {
		t.Errorf("clipped SetPixel wrote %v", got)
	}
	if _, ok := c.Pixel(2, 2); ok {
		t.Error("Pixel outside the clip reported ok")
	}
}

func TestSetPixelComposites(t *testing.T) {
	c := mustNew(t, 1, 1)
	c.SetValue(0, 0, Blue)
	c.SetPixel(0, 0, RGBA(255, 0, 0, 0))
	if got, _ := c.Value(0, 0); got != Blue {
		t.Errorf("transparent SetPixel changed pixel to %v", got)
	}
	c.SetPixel(0, 0, RGBA(255, 0, 0, 128))
	got, _ := c.Value(0, 0)
	if got.A != 255 || got.R < 126 || got.R > 129 || got.B < 126 || got.B > 129 {
		t.Errorf("half red over blue = %v, want about (128,0,127,255)", got)
	}
}

func TestExportImport(t *testing.T) {
	src := gradient(t, 3, 2)
	vals := src.Export()
	if len(vals) != 6 {
		t.Fatalf("Export() len = %d, want 6", len(vals))
	}
	if want, _ := src.Value(2, 1); vals[5] != want.Uint32() {
		t.Errorf("Export()[5] = %#08x, want %#08x", vals[5], want.Uint32())
	}

	dst := mustNew(t, 3, 2)
	if err := dst.Import(vals); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	sameCanvas(t, dst, src)

	if err := dst.Import(vals[:5]); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Import(short) error = %v, want ErrShortBuffer", err)
	}
}

func TestImportArea(t *testing.T) {
	c := mustNew(t, 4, 4)
	if err := c.ImportArea([]uint32{0xFF0000FF, 0x00FF00FF}, 1, 2, 2, 1); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Value(1, 2); got != Red {
		t.Errorf("Value(1,2) = %v, want red", got)
	}
	if got, _ := c.Value(2, 2); got != Green {
		t.Errorf("Value(2,2) = %v, want green", got)
	}

	// Areas that do not fit are ignored.
	if err := c.ImportArea([]uint32{0xFFFFFFFF}, 4, 0, 1, 1); err != nil {
		t.Errorf("out-of-canvas ImportArea error = %v", err)
	}
	if n := len(drawn(c)); n != 2 {
		t.Errorf("drawn pixels = %d, want 2", n)
	}

	c.Release()
	if err := c.ImportArea(nil, 0, 0, 0, 0); !errors.Is(err, ErrReleased) {
		t.Errorf("ImportArea on released canvas error = %v, want ErrReleased", err)
	}
}

func TestColorize(t *testing.T) {
	c := mustNew(t, 2, 1)
	c.SetValue(0, 0, White)
	c.SetValue(1, 0, RGBA(255, 255, 255, 128))
	c.Colorize(RGBA(255, 0, 51, 255))

	if got, _ := c.Value(0, 0); got != RGBA(255, 0, 51, 255) {
		t.Errorf("full coverage = %v", got)
	}
	if got, _ := c.Value(1, 0); got != RGBA(255, 0, 51, 128) {
		t.Errorf("half coverage = %v", got)
	}
}

func TestTransparentPaintLeavesCanvas(t *testing.T) {
	c := mustNew(t, 12, 12)
	for y := range 12 {
		for x := range 12 {
			// Transparent pixels with colour left in them, plus a few
			// translucent and opaque ones.
			c.SetValue(x, y, RGBA(9, 99, 199, uint8((x*y)%3*100)))
		}
	}
	want := append([]byte(nil), c.Pix()...)

	none := RGBA(200, 100, 50, 0)
	pat := mustNew(t, 2, 2)
	pat.Fill(none)
	src := mustNew(t, 4, 4)
	src.Clear(none)

	c.Fill(none)
	c.FillArea(1, 1, 5, 5, none)
	c.FillRect(0, 0, 11, 11, Pattern{Canvas: pat})
	c.SetPixel(3, 3, none)
	c.Line(0, 0, 11, 7, none)
	c.LineAA(0, 11, 11, 0, none)
	c.Circle(6, 6, 4, none)
	c.FillCircle(6, 6, 3, none)
	c.CircleAA(6, 6, 5, none)
	c.FillTriangle(0, 0, 11, 2, 4, 11, none)
	c.FillPolygon([]int{1, 1, 10, 1, 10, 10, 1, 10}, none)
	src.Blend(c, 2, 2)

	got := c.Pix()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d (pixel %d) = %d, want %d", i, i/4, got[i], want[i])
		}
	}
}
