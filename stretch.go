package pxl

// Stretch draws all of c into the w*h area of dst at (x, y) with
// nearest-neighbour sampling, translated by dst's origin offset and clipped
// to dst's clip. Negative w or h default to dst's width or height. Source
// pixels are copied, not composited.
//
// Source columns and rows are chosen with an accumulating ratio instead of
// a division per pixel. A destination row that maps to the same source row
// as the row above is copied from it rather than resampled.
func (c *Canvas) Stretch(dst *Canvas, x, y, w, h int) {
	spix, dpix := c.pix(), dst.pix()
	if spix == nil || dpix == nil {
		return
	}
	x += dst.xoff
	y += dst.yoff
	if w < 0 {
		w = dst.width
	}
	if h < 0 {
		h = dst.height
	}
	if w == 0 || h == 0 {
		return
	}
	if x+w <= dst.clipX1 || y+h <= dst.clipY1 || x >= dst.clipX2 || y >= dst.clipY2 {
		return
	}

	// Visible column range of every destination row.
	vx0 := max(x, dst.clipX1)
	vx1 := min(x+w, dst.clipX2)
	vOff, vLen := vx0*4, (vx1-vx0)*4

	sw, sh := c.width, c.height
	sstride, dstride := c.Stride(), dst.Stride()
	srow := 0    // byte offset of the current source row
	cached := -1 // byte offset of a rendered destination row for srow
	dy := 0
	for yy := y; yy < y+h; yy++ {
		if yy >= dst.clipY2 {
			break
		}
		drow := yy * dstride
		if yy >= dst.clipY1 {
			if cached >= 0 {
				copy(dpix[drow+vOff:drow+vOff+vLen], dpix[cached+vOff:cached+vOff+vLen])
			} else {
				si := srow
				dx := 0
				for xx := x; xx < vx1; xx++ {
					if xx >= vx0 {
						di := drow + xx*4
						copy(dpix[di:di+4], spix[si:si+4])
					}
					dx += sw
					for dx >= w {
						dx -= w
						si += 4
					}
				}
				cached = drow
			}
		}
		dy += sh
		for dy >= h {
			dy -= h
			srow += sstride
			cached = -1
		}
	}
}
