package pxl

import (
	"errors"
	"testing"
)

type fakePresenter struct {
	cleared []Color
	exposed []Rect
	icon    [2]int
	flips   int
	err     error
}

func (p *fakePresenter) Clear(bg Color) { p.cleared = append(p.cleared, bg) }

func (p *fakePresenter) Expose(pix []byte, w, h, stride int, dst Rect) {
	p.exposed = append(p.exposed, dst)
}

func (p *fakePresenter) SetIcon(pix []byte, w, h int) { p.icon = [2]int{w, h} }

func (p *fakePresenter) Flip() error {
	p.flips++
	return p.err
}

func TestPalette(t *testing.T) {
	p := NewPalette(Red, Green)
	if p.Len() != PaletteSize {
		t.Errorf("Len() = %d, want %d", p.Len(), PaletteSize)
	}
	if got := p.Color(1); got != Green {
		t.Errorf("Color(1) = %v, want green", got)
	}
	if got := p.Color(2); got != Transparent {
		t.Errorf("Color(2) = %v, want transparent", got)
	}

	p.SetColor(255, Blue)
	p.SetColor(256, Blue)
	p.SetColor(-1, Blue)
	if got := p.Color(255); got != Blue {
		t.Errorf("Color(255) = %v, want blue", got)
	}
	for _, i := range []int{-1, 256, 1000} {
		if got := p.Color(i); got != Transparent {
			t.Errorf("Color(%d) = %v, want transparent", i, got)
		}
	}

	var nilPalette *Palette
	if got := nilPalette.Color(0); got != Transparent {
		t.Errorf("nil palette Color(0) = %v", got)
	}
}

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()
	if ctx.Palette() == nil {
		t.Fatal("Palette() = nil")
	}
	if ctx.Background() != Black {
		t.Errorf("Background() = %v, want black", ctx.Background())
	}
	if ctx.Presenter() != nil {
		t.Error("Presenter() != nil without WithPresenter")
	}
	if ctx.Resampler() != CurrentResampler() {
		t.Error("Resampler() does not fall back to the package resampler")
	}
	if err := ctx.Flip(); !errors.Is(err, ErrNoPresenter) {
		t.Errorf("Flip() error = %v, want ErrNoPresenter", err)
	}

	// Output calls without a presenter are no-ops.
	c := mustNew(t, 2, 2)
	ctx.ClearScreen()
	ctx.Expose(c, 0, 0, 0, 0)
	ctx.SetIcon(c)
}

func TestContextOptions(t *testing.T) {
	pal := NewPalette()
	pal.SetColor(7, Yellow)
	p := &fakePresenter{}
	ctx := NewContext(
		WithPalette(pal),
		WithResampler(Box),
		WithPresenter(p),
		WithBackground(White),
	)

	if ctx.Color(7) != Yellow {
		t.Errorf("Color(7) = %v, want yellow", ctx.Color(7))
	}
	if ctx.Resampler() != Box {
		t.Error("Resampler() is not the configured resampler")
	}

	ctx.ClearScreen()
	ctx.SetBackground(Cyan)
	ctx.ClearScreen()
	if len(p.cleared) != 2 || p.cleared[0] != White || p.cleared[1] != Cyan {
		t.Errorf("cleared = %v, want [white cyan]", p.cleared)
	}
}

func TestContextPresents(t *testing.T) {
	p := &fakePresenter{}
	ctx := NewContext(WithPresenter(p))
	c := mustNew(t, 8, 6)

	ctx.Expose(c, 3, 4, 0, -1)
	ctx.Expose(c, 0, 0, 16, 12)
	want := []Rect{{X: 3, Y: 4, W: 8, H: 6}, {X: 0, Y: 0, W: 16, H: 12}}
	if len(p.exposed) != len(want) {
		t.Fatalf("exposed %d times, want %d", len(p.exposed), len(want))
	}
	for i := range want {
		if p.exposed[i] != want[i] {
			t.Errorf("exposed[%d] = %+v, want %+v", i, p.exposed[i], want[i])
		}
	}

	ctx.SetIcon(c)
	if p.icon != [2]int{8, 6} {
		t.Errorf("icon size = %v, want [8 6]", p.icon)
	}

	if err := ctx.Flip(); err != nil {
		t.Errorf("Flip() error = %v", err)
	}
	p.err = errors.New("device lost")
	if err := ctx.Flip(); err == nil || p.flips != 2 {
		t.Errorf("Flip() error = %v after %d flips", err, p.flips)
	}

	inert := mustNew(t, 0, 0)
	ctx.Expose(inert, 0, 0, 0, 0)
	if len(p.exposed) != 2 {
		t.Error("inert canvas was exposed")
	}
}
