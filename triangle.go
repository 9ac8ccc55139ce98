// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

import "github.com/gogpu/pxl/internal/raster"

// FillTriangle fills the triangle (x0, y0), (x1, y1), (x2, y2).
// Vertices may be given in either winding order.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, p Paint) {
	if raster.Orient2D(x0, y0, x1, y1, x2, y2) < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	c.fillTriangle(x0, y0, x1, y1, x2, y2, p)
}

// fillTriangle rasterizes with three incrementally evaluated edge functions
// over the clipped bounding box. The vertices must satisfy
// Orient2D(v0, v1, v2) >= 0; a pixel is inside when all three edge values
// are non-negative.
func (c *Canvas) fillTriangle(x0, y0, x1, y1, x2, y2 int, p Paint) {
	pix := c.pix()
	if pix == nil {
		return
	}
	b, ok := newBrush(p)
	if !ok {
		return
	}
	x0 += c.xoff
	y0 += c.yoff
	x1 += c.xoff
	y1 += c.yoff
	x2 += c.xoff
	y2 += c.yoff

	// Per-column (a) and per-row (b) steps of each edge function.
	a01, b01 := y0-y1, x1-x0
	a12, b12 := y1-y2, x2-x1
	a20, b20 := y2-y0, x0-x2

	minX := max(raster.Min3(x0, x1, x2), c.clipX1)
	minY := max(raster.Min3(y0, y1, y2), c.clipY1)
	maxX := min(raster.Max3(x0, x1, x2), c.clipX2-1)
	maxY := min(raster.Max3(y0, y1, y2), c.clipY2-1)
	if minX > maxX || minY > maxY {
		return
	}

	w0Row := raster.Orient2D(x1, y1, x2, y2, minX, minY)
	w1Row := raster.Orient2D(x2, y2, x0, y0, minX, minY)
	w2Row := raster.Orient2D(x0, y0, x1, y1, minX, minY)

	stride := c.Stride()
	row := c.index(minX, minY)
	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		i := row
		for x := minX; x <= maxX; x++ {
			if w0|w1|w2 >= 0 {
				b.plot(pix, i, x, y)
			}
			i += 4
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w0Row += b12
		w1Row += b20
		w2Row += b01
		row += stride
	}
}
