package pxl

import (
	"fmt"

	"github.com/gogpu/pxl/internal/blend"
)

// Value returns the raw pixel at absolute position (x, y), ignoring clip and
// offset. ok is false outside the canvas.
func (c *Canvas) Value(x, y int) (col Color, ok bool) {
	pix := c.pix()
	if pix == nil || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Color{}, false
	}
	i := c.index(x, y)
	return Color{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}, true
}

// SetValue stores col verbatim at absolute position (x, y), ignoring clip
// and offset. Positions outside the canvas are ignored.
func (c *Canvas) SetValue(x, y int, col Color) {
	pix := c.pix()
	if pix == nil || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := c.index(x, y)
	pix[i], pix[i+1], pix[i+2], pix[i+3] = col.R, col.G, col.B, col.A
}

// Pixel returns the pixel at (x, y) after applying the origin offset.
// ok is false when the position lies outside the clip rectangle.
func (c *Canvas) Pixel(x, y int) (col Color, ok bool) {
	x += c.xoff
	y += c.yoff
	if !c.inClip(x, y) {
		return Color{}, false
	}
	return c.Value(x, y)
}

// SetPixel composites col onto the pixel at (x, y) after applying the origin
// offset. Positions outside the clip rectangle are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	pix := c.pix()
	if pix == nil {
		return
	}
	x += c.xoff
	y += c.yoff
	if !c.inClip(x, y) {
		return
	}
	i := c.index(x, y)
	s := col.bytes()
	blend.Pixel(s[:], pix[i:i+4])
}

// Export returns every pixel packed as 0xRRGGBBAA, row by row.
func (c *Canvas) Export() []uint32 {
	pix := c.pix()
	if pix == nil {
		return nil
	}
	out := make([]uint32, c.width*c.height)
	for i := range out {
		j := i * 4
		out[i] = uint32(pix[j])<<24 | uint32(pix[j+1])<<16 | uint32(pix[j+2])<<8 | uint32(pix[j+3])
	}
	return out
}

// Import overwrites the canvas with packed 0xRRGGBBAA values, row by row.
// It fails with ErrShortBuffer when vals holds fewer than width*height
// entries; extra entries are ignored.
func (c *Canvas) Import(vals []uint32) error {
	return c.ImportArea(vals, 0, 0, c.width, c.height)
}

// ImportArea overwrites the w*h area at absolute position (x, y) with packed
// 0xRRGGBBAA values. An area that does not fit inside the canvas is left
// untouched.
func (c *Canvas) ImportArea(vals []uint32, x, y, w, h int) error {
	pix := c.pix()
	if pix == nil {
		if c.Released() {
			return ErrReleased
		}
		return nil
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > c.width || y+h > c.height {
		return nil
	}
	if len(vals) < w*h {
		return fmt.Errorf("%w: have %d values, need %d", ErrShortBuffer, len(vals), w*h)
	}
	k := 0
	for row := y; row < y+h; row++ {
		i := c.index(x, row)
		for col := 0; col < w; col++ {
			v := vals[k]
			pix[i], pix[i+1], pix[i+2], pix[i+3] = uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
			i += 4
			k++
		}
	}
	return nil
}

// Colorize tints a coverage canvas in place: RGB is multiplied by col and
// alpha is scaled by col.A. A canvas holding white coverage becomes col with
// the coverage as alpha.
func (c *Canvas) Colorize(col Color) {
	pix := c.pix()
	if pix == nil {
		return
	}
	blend.Tint(pix, col.bytes())
}
