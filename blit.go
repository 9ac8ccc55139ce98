package pxl

import "github.com/gogpu/pxl/internal/blend"

// BlitMode selects how Blit writes source pixels.
type BlitMode uint8

const (
	// BlitCopy copies source rows verbatim.
	BlitCopy BlitMode = iota
	// BlitBlend composites each source pixel onto the destination.
	BlitBlend
)

// String returns a string representation of the blit mode.
func (m BlitMode) String() string {
	switch m {
	case BlitCopy:
		return "Copy"
	case BlitBlend:
		return "Blend"
	default:
		return "Unknown"
	}
}

// Blit transfers the sr area of src to dst at (x, y).
//
// A zero sr.W or sr.H extends the area to the source edge. The area is first
// clamped to the source canvas, then the destination rectangle, translated
// by dst's origin offset, is clamped to dst's clip; whatever is trimmed on
// one side is trimmed from the other so pixels stay aligned. Empty results
// draw nothing.
//
// src and dst may share a buffer, including overlapping areas: rows and
// pixels are walked in the order that reads every source pixel before it
// is overwritten.
func Blit(src *Canvas, sr Rect, dst *Canvas, x, y int, mode BlitMode) {
	spix, dpix := src.pix(), dst.pix()
	if spix == nil || dpix == nil {
		return
	}
	if sr.W == 0 {
		sr.W = src.width - sr.X
	}
	if sr.H == 0 {
		sr.H = src.height - sr.Y
	}

	// Clamp to the source.
	if sr.X < 0 {
		x -= sr.X
		sr.W += sr.X
		sr.X = 0
	}
	if sr.Y < 0 {
		y -= sr.Y
		sr.H += sr.Y
		sr.Y = 0
	}
	sr.W = min(sr.W, src.width-sr.X)
	sr.H = min(sr.H, src.height-sr.Y)

	// Clamp to the destination clip.
	x += dst.xoff
	y += dst.yoff
	if x < dst.clipX1 {
		d := dst.clipX1 - x
		sr.W -= d
		sr.X += d
		x = dst.clipX1
	}
	if y < dst.clipY1 {
		d := dst.clipY1 - y
		sr.H -= d
		sr.Y += d
		y = dst.clipY1
	}
	sr.W = min(sr.W, dst.clipX2-x)
	sr.H = min(sr.H, dst.clipY2-y)
	if sr.Empty() {
		return
	}

	same := src.store == dst.store
	sstride, dstride := src.Stride(), dst.Stride()
	n := sr.W * 4
	first, last, step := 0, sr.H, 1
	if same && y > sr.Y {
		first, last, step = sr.H-1, -1, -1
	}
	reverse := same && y == sr.Y && x > sr.X
	for k := first; k != last; k += step {
		si := (sr.Y+k)*sstride + sr.X*4
		di := (y+k)*dstride + x*4
		s, d := spix[si:si+n], dpix[di:di+n]
		switch {
		case mode == BlitCopy:
			copy(d, s)
		case reverse:
			blend.BlendRowReverse(d, s)
		default:
			blend.BlendRow(d, s)
		}
	}
}

// Copy copies the whole of c to dst at (x, y).
func (c *Canvas) Copy(dst *Canvas, x, y int) {
	Blit(c, Rect{}, dst, x, y, BlitCopy)
}

// CopyRect copies the sr area of c to dst at (x, y).
func (c *Canvas) CopyRect(sr Rect, dst *Canvas, x, y int) {
	Blit(c, sr, dst, x, y, BlitCopy)
}

// Blend composites the whole of c onto dst at (x, y).
func (c *Canvas) Blend(dst *Canvas, x, y int) {
	Blit(c, Rect{}, dst, x, y, BlitBlend)
}

// BlendRect composites the sr area of c onto dst at (x, y).
func (c *Canvas) BlendRect(sr Rect, dst *Canvas, x, y int) {
	Blit(c, sr, dst, x, y, BlitBlend)
}
