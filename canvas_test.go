package pxl

import (
	"errors"
	"sync"
	"testing"
)

func mustNew(t testing.TB, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	return c
}

func TestNew(t *testing.T) {
	c := mustNew(t, 3, 2)
	if c.Width() != 3 || c.Height() != 2 {
		t.Errorf("Size() = %dx%d, want 3x2", c.Width(), c.Height())
	}
	if len(c.Pix()) != 3*2*4 {
		t.Errorf("len(Pix()) = %d, want 24", len(c.Pix()))
	}
	if c.Stride() != 12 {
		t.Errorf("Stride() = %d, want 12", c.Stride())
	}
	for i, v := range c.Pix() {
		if v != 0 {
			t.Fatalf("Pix()[%d] = %d, want 0", i, v)
		}
	}
	if c.Refs() != 1 || !c.Owner() {
		t.Errorf("Refs() = %d, Owner() = %v, want 1, true", c.Refs(), c.Owner())
	}
	if got := c.Clip(); got != (Rect{X: 0, Y: 0, W: 3, H: 2}) {
		t.Errorf("Clip() = %+v, want full canvas", got)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"negative width", -1, 4, ErrInvalidSize},
		{"negative height", 4, -1, ErrInvalidSize},
		{"too large", MaxPixels, 2, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.want)
			}
			if c != nil {
				t.Errorf("New(%d, %d) = %v, want nil", tt.w, tt.h, c)
			}
		})
	}
}

func TestNewInert(t *testing.T) {
	for _, sz := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		c, err := New(sz[0], sz[1])
		if err != nil {
			t.Fatalf("New(%d, %d) error = %v", sz[0], sz[1], err)
		}
		if c.Pix() != nil {
			t.Errorf("New(%d, %d).Pix() != nil", sz[0], sz[1])
		}
		if c.Released() {
			t.Errorf("inert canvas reports Released")
		}
		// Every operation is a no-op.
		c.Fill(Red)
		c.Line(0, 0, 4, 4, Red)
		c.FillCircle(2, 2, 2, Red)
		c.FillPolygon([]int{0, 0, 4, 0, 0, 4}, Red)
		if _, ok := c.Value(0, 0); ok {
			t.Error("Value() on inert canvas reported ok")
		}
	}
}

func TestRefcount(t *testing.T) {
	const n = 5
	c := mustNew(t, 2, 2)
	for range n - 1 {
		c.Acquire()
	}
	if c.Refs() != n {
		t.Fatalf("Refs() = %d, want %d", c.Refs(), n)
	}
	for i := range n - 1 {
		if c.Release() {
			t.Fatalf("Release() #%d freed the buffer early", i+1)
		}
		if c.Pix() == nil {
			t.Fatalf("buffer gone after %d of %d releases", i+1, n)
		}
	}
	if !c.Release() {
		t.Fatal("final Release() did not free the buffer")
	}
	if !c.Released() || c.Pix() != nil {
		t.Error("canvas not released after final Release()")
	}
	if c.Release() {
		t.Error("Release() after free reported freeing again")
	}
	c.Acquire()
	if c.Refs() != 0 {
		t.Errorf("Acquire() revived a released canvas, Refs() = %d", c.Refs())
	}
	// Drawing on a released canvas is a no-op, not a panic.
	c.Fill(Red)
	c.Line(0, 0, 1, 1, Red)
}

func TestRefcountConcurrent(t *testing.T) {
	c := mustNew(t, 1, 1)
	const goroutines = 64

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Acquire()
		}()
	}
	wg.Wait()

	freed := 0
	var mu sync.Mutex
	for range goroutines + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Release() {
				mu.Lock()
				freed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if freed != 1 {
		t.Errorf("buffer freed %d times, want exactly once", freed)
	}
}

func TestTransfer(t *testing.T) {
	c := mustNew(t, 2, 2)
	c.SetClip(1, 1, 2, 2)
	c.SetOffset(3, 3)

	tr := c.Transfer()
	if tr.Owner() {
		t.Error("transferred header is an owner")
	}
	if c.Refs() != 2 {
		t.Errorf("source Refs() = %d after Transfer, want 2", c.Refs())
	}
	if got := tr.Clip(); got != (Rect{W: 2, H: 2}) {
		t.Errorf("transferred Clip() = %+v, want full canvas", got)
	}
	if x, y := tr.Offset(); x != 0 || y != 0 {
		t.Errorf("transferred Offset() = (%d, %d), want (0, 0)", x, y)
	}

	// Writes are shared.
	tr.SetValue(0, 0, Red)
	if got, _ := c.Value(0, 0); got != Red {
		t.Errorf("source pixel = %v, want red written through transfer", got)
	}

	// The non-owning header never frees.
	if tr.Release() {
		t.Error("transferred Release() freed the buffer")
	}
	if c.Release() {
		t.Fatal("first owner Release() freed while transfer outstanding")
	}
	if !c.Release() {
		t.Fatal("second owner Release() did not free")
	}
	if tr.Pix() != nil {
		t.Error("transferred header still sees pixels after owner freed")
	}
	tr.Fill(Red)
}

func TestSetClip(t *testing.T) {
	c := mustNew(t, 10, 10)

	c.SetClip(-5, 2, 50, 7)
	if got := c.Clip(); got != (Rect{X: 0, Y: 2, W: 10, H: 5}) {
		t.Errorf("clamped Clip() = %+v, want {0 2 10 5}", got)
	}

	c.SetClip(6, 0, 5, 10)
	if got := c.Clip(); got != (Rect{X: 0, Y: 2, W: 10, H: 5}) {
		t.Errorf("inverted SetClip changed clip to %+v", got)
	}

	c.SetClipRect(2, 2, 5, 5)
	if got := c.Clip(); got != (Rect{X: 2, Y: 2, W: 5, H: 5}) {
		t.Errorf("SetClipRect Clip() = %+v, want {2 2 5 5}", got)
	}

	c.ClearClip()
	if got := c.Clip(); got != (Rect{W: 10, H: 10}) {
		t.Errorf("ClearClip Clip() = %+v, want full canvas", got)
	}
}

func TestOffset(t *testing.T) {
	c := mustNew(t, 8, 8)
	c.SetOffset(2, 3)
	if x, y := c.Offset(); x != 2 || y != 3 {
		t.Fatalf("Offset() = (%d, %d), want (2, 3)", x, y)
	}
	c.SetPixel(1, 1, Red)
	if got, _ := c.Value(3, 4); got != Red {
		t.Errorf("offset SetPixel wrote %v at (3,4), want red", got)
	}
	if got, ok := c.Pixel(1, 1); !ok || got != Red {
		t.Errorf("Pixel(1,1) = %v, %v, want red, true", got, ok)
	}
	c.ResetOffset()
	if x, y := c.Offset(); x != 0 || y != 0 {
		t.Errorf("ResetOffset left (%d, %d)", x, y)
	}
}
