package present

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pxl"
)

func nrgbaAt(img *image.NRGBA, x, y int) [4]uint8 {
	i := img.PixOffset(x, y)
	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func TestImagePresenterClear(t *testing.T) {
	p := NewImagePresenter(4, 3)
	p.Clear(pxl.RGB(10, 20, 30))

	got := nrgbaAt(p.Snapshot(), 3, 2)
	if got != [4]uint8{10, 20, 30, 255} {
		t.Errorf("pixel after Clear = %v, want [10 20 30 255]", got)
	}
}

func TestImagePresenterExpose(t *testing.T) {
	c, err := pxl.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Release()
	c.Clear(pxl.Red)

	p := NewImagePresenter(8, 8)
	p.Clear(pxl.Black)

	ctx := pxl.NewContext(pxl.WithPresenter(p))
	ctx.Expose(c, 1, 1, 0, 0)
	img := p.Snapshot()
	if got := nrgbaAt(img, 1, 1); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("exposed pixel = %v, want red", got)
	}
	if got := nrgbaAt(img, 3, 3); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("pixel outside exposed rect = %v, want black", got)
	}

	// Scaled expose covers the whole 4x4 destination.
	ctx.Expose(c, 4, 4, 4, 4)
	img = p.Snapshot()
	for _, pt := range []image.Point{{4, 4}, {7, 7}, {5, 6}} {
		if got := nrgbaAt(img, pt.X, pt.Y); got != [4]uint8{255, 0, 0, 255} {
			t.Errorf("scaled pixel %v = %v, want red", pt, got)
		}
	}
}

func TestImagePresenterIcon(t *testing.T) {
	c, _ := pxl.New(3, 3)
	c.Clear(pxl.Blue)

	p := NewImagePresenter(1, 1)
	ctx := pxl.NewContext(pxl.WithPresenter(p))
	ctx.SetIcon(c)

	icon := p.Icon()
	if icon == nil {
		t.Fatal("Icon() = nil after SetIcon")
	}
	c.Clear(pxl.Red)
	if got := nrgbaAt(icon, 0, 0); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("icon pixel = %v, want blue (icon must be a copy)", got)
	}
}

func TestImagePresenterFlip(t *testing.T) {
	p := NewImagePresenter(2, 2)
	var seen []int
	p.SetSink(func(_ *image.NRGBA, n int) error {
		seen = append(seen, n)
		return nil
	})
	ctx := pxl.NewContext(pxl.WithPresenter(p))
	for range 3 {
		if err := ctx.Flip(); err != nil {
			t.Fatalf("Flip() error = %v", err)
		}
	}
	if p.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", p.Frames())
	}
	if len(seen) != 3 || seen[2] != 3 {
		t.Errorf("sink saw %v, want [1 2 3]", seen)
	}

	boom := errors.New("boom")
	p.SetSink(func(*image.NRGBA, int) error { return boom })
	if err := p.Flip(); !errors.Is(err, boom) {
		t.Errorf("Flip() error = %v, want wrapped boom", err)
	}

	_ = p.Close()
	if err := p.Flip(); !errors.Is(err, ErrClosed) {
		t.Errorf("Flip() after Close error = %v, want ErrClosed", err)
	}
}

func TestPNGSequence(t *testing.T) {
	dir := t.TempDir()
	p := NewImagePresenter(3, 2)
	p.SetSink(PNGSequence(dir, "frame"))
	p.Clear(pxl.Green)
	if err := p.Flip(); err != nil {
		t.Fatalf("Flip() error = %v", err)
	}

	path := filepath.Join(dir, "frame00001.png")
	c, err := pxl.Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	if w, h := c.Size(); w != 3 || h != 2 {
		t.Errorf("frame size = %dx%d, want 3x2", w, h)
	}
	if got, _ := c.Value(2, 1); got != pxl.Green {
		t.Errorf("frame pixel = %v, want green", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame00002.png")); !os.IsNotExist(err) {
		t.Errorf("unexpected second frame, stat error = %v", err)
	}
}
