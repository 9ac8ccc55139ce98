package pxl

import "github.com/gogpu/pxl/internal/blend"

// Paint is the colour source of a rasterizer: a solid [Color] or a
// [Pattern]. The set of implementations is closed.
type Paint interface {
	isPaint()
}

func (Color) isPaint() {}

// Pattern tiles the pixels of a canvas as a read-only colour source.
// Destination pixel (x, y) samples source pixel (x mod w, y mod h), in
// canvas coordinates; the pattern canvas's own clip and offset are ignored.
type Pattern struct {
	Canvas *Canvas
}

func (Pattern) isPaint() {}

// brush is a Paint resolved once per primitive. Exactly one of the two
// sampling strategies is active.
type brush struct {
	col [4]byte
	pat []byte
	pw  int
	ph  int
}

// newBrush resolves p. It reports false when nothing can be drawn with it:
// a nil paint or a pattern without pixels.
func newBrush(p Paint) (brush, bool) {
	switch p := p.(type) {
	case Color:
		return brush{col: p.bytes()}, true
	case Pattern:
		pix := p.Canvas.pix()
		if pix == nil {
			return brush{}, false
		}
		return brush{pat: pix, pw: p.Canvas.width, ph: p.Canvas.height}, true
	default:
		return brush{}, false
	}
}

// solid reports whether the brush is a colour rather than a pattern.
func (b *brush) solid() bool {
	return b.pat == nil
}

// plot composites the brush onto the pixel at byte offset i of pix, which
// sits at canvas position (x, y).
func (b *brush) plot(pix []byte, i, x, y int) {
	if b.pat != nil {
		j := ((y%b.ph)*b.pw + x%b.pw) * 4
		blend.Pixel(b.pat[j:j+4], pix[i:i+4])
		return
	}
	blend.Pixel(b.col[:], pix[i:i+4])
}

// span composites the brush onto the n pixels starting at (x, y).
func (b *brush) span(pix []byte, i, x, y, n int) {
	if b.pat == nil {
		blend.BlendSpan(pix[i:i+n*4], b.col)
		return
	}
	for k := 0; k < n; k++ {
		b.plot(pix, i+k*4, x+k, y)
	}
}
