package present

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/pxl"
)

// FrameSink receives a finished frame. The image is only valid for the
// duration of the call; n counts frames from 1.
type FrameSink func(frame *image.NRGBA, n int) error

// ImagePresenter is an in-memory output backed by an *image.NRGBA.
//
// Exposed canvases are scaled with nearest-neighbour sampling into their
// destination rectangle and composited over the current contents.
//
// Example:
//
//	out := present.NewImagePresenter(320, 200)
//	ctx := pxl.NewContext(pxl.WithPresenter(out))
//	ctx.ClearScreen()
//	ctx.Expose(canvas, 0, 0, 0, 0)
//	_ = ctx.Flip()
//	img := out.Snapshot()
type ImagePresenter struct {
	mu     sync.Mutex
	img    *image.NRGBA
	icon   *image.NRGBA
	sink   FrameSink
	frames int
	closed bool
}

var _ pxl.Presenter = (*ImagePresenter)(nil)

// NewImagePresenter creates an output of the given size. Non-positive
// dimensions are raised to 1.
func NewImagePresenter(width, height int) *ImagePresenter {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImagePresenter{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetSink sets the function that receives finished frames.
func (p *ImagePresenter) SetSink(sink FrameSink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = sink
}

// Width returns the output width.
func (p *ImagePresenter) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the output height.
func (p *ImagePresenter) Height() int {
	return p.img.Bounds().Dy()
}

// Clear implements pxl.Presenter.
func (p *ImagePresenter) Clear(bg pxl.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u := image.NewUniform(color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})
	draw.Draw(p.img, p.img.Bounds(), u, image.Point{}, draw.Src)
}

// Expose implements pxl.Presenter.
func (p *ImagePresenter) Expose(pix []byte, w, h, stride int, dst pxl.Rect) {
	if w <= 0 || h <= 0 || dst.Empty() || len(pix) < (h-1)*stride+w*4 {
		return
	}
	src := &image.NRGBA{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, w, h)}
	dr := image.Rect(dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H)

	p.mu.Lock()
	defer p.mu.Unlock()

	if dst.W == w && dst.H == h {
		draw.Draw(p.img, dr, src, image.Point{}, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(p.img, dr, src, src.Bounds(), draw.Over, nil)
}

// SetIcon implements pxl.Presenter. The pixels are copied.
func (p *ImagePresenter) SetIcon(pix []byte, w, h int) {
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return
	}
	icon := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(icon.Pix, pix)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.icon = icon
}

// Icon returns the icon last set, or nil.
func (p *ImagePresenter) Icon() *image.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.icon
}

// Flip implements pxl.Presenter. It counts the frame and passes it to the
// sink, if any. The output contents are kept for the next frame.
func (p *ImagePresenter) Flip() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	p.frames++
	pxl.Logger().Debug("present: frame", "n", p.frames)
	if p.sink == nil {
		return nil
	}
	if err := p.sink(p.img, p.frames); err != nil {
		return fmt.Errorf("present: frame %d: %w", p.frames, err)
	}
	return nil
}

// Frames returns the number of completed frames.
func (p *ImagePresenter) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Snapshot returns a copy of the current output contents.
func (p *ImagePresenter) Snapshot() *image.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := image.NewNRGBA(p.img.Bounds())
	copy(out.Pix, p.img.Pix)
	return out
}

// Close marks the output closed. Further Flip calls fail with ErrClosed.
func (p *ImagePresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// PNGSequence returns a sink writing every frame to dir as
// <prefix><n>.png with n zero-padded to five digits.
func PNGSequence(dir, prefix string) FrameSink {
	return func(frame *image.NRGBA, n int) error {
		name := filepath.Join(dir, fmt.Sprintf("%s%05d.png", prefix, n))
		f, err := os.Create(filepath.Clean(name))
		if err != nil {
			return fmt.Errorf("present: create file: %w", err)
		}
		if err := png.Encode(f, frame); err != nil {
			_ = f.Close()
			return fmt.Errorf("present: encode PNG: %w", err)
		}
		return f.Close()
	}
}
