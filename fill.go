package pxl

import "github.com/gogpu/pxl/internal/blend"

// fillMode selects how fillArea writes its pixels.
type fillMode uint8

const (
	fillCopy fillMode = iota
	fillBlend
)

// Fill paints the whole canvas, limited by the clip rectangle. The origin
// offset does not apply.
func (c *Canvas) Fill(p Paint) {
	c.fillPaint(0, 0, c.width, c.height, p)
}

// FillArea paints the w*h area at (x, y), translated by the origin offset
// and clamped to the clip rectangle. Opaque colours are copied; translucent
// colours and patterns are composited.
func (c *Canvas) FillArea(x, y, w, h int, p Paint) {
	c.fillPaint(x+c.xoff, y+c.yoff, w, h, p)
}

// FillRect paints the rectangle with inclusive corners (x1, y1) and
// (x2, y2), in either order.
func (c *Canvas) FillRect(x1, y1, x2, y2 int, p Paint) {
	w := abs(x2-x1) + 1
	h := abs(y2-y1) + 1
	c.FillArea(min(x1, x2), min(y1, y2), w, h, p)
}

// Clear overwrites the whole canvas inside the clip rectangle with col,
// without compositing.
func (c *Canvas) Clear(col Color) {
	c.fillArea(0, 0, c.width, c.height, brush{col: col.bytes()}, fillCopy)
}

// ClearArea overwrites the w*h area at (x, y), translated by the origin
// offset and clamped to the clip rectangle, with col.
func (c *Canvas) ClearArea(x, y, w, h int, col Color) {
	c.fillArea(x+c.xoff, y+c.yoff, w, h, brush{col: col.bytes()}, fillCopy)
}

func (c *Canvas) fillPaint(x, y, w, h int, p Paint) {
	b, ok := newBrush(p)
	if !ok {
		return
	}
	mode := fillBlend
	if b.solid() && b.col[3] == 255 {
		mode = fillCopy
	}
	c.fillArea(x, y, w, h, b, mode)
}

// fillArea fills an area given in canvas coordinates.
func (c *Canvas) fillArea(x, y, w, h int, b brush, mode fillMode) {
	pix := c.pix()
	if pix == nil {
		return
	}
	if x < c.clipX1 {
		w -= c.clipX1 - x
		x = c.clipX1
	}
	if y < c.clipY1 {
		h -= c.clipY1 - y
		y = c.clipY1
	}
	if w <= 0 || h <= 0 || x >= c.clipX2 || y >= c.clipY2 {
		return
	}
	w = min(w, c.clipX2-x)
	h = min(h, c.clipY2-y)

	stride := c.Stride()
	i := c.index(x, y)
	for row := y; row < y+h; row++ {
		if mode == fillCopy {
			blend.FillSpan(pix[i:i+w*4], b.col)
		} else {
			b.span(pix, i, x, row, w)
		}
		i += stride
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
