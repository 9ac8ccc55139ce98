// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

import (
	"math"

	"github.com/gogpu/pxl/internal/blend"
)

// LineAA draws a one pixel wide anti-aliased line from (x0, y0) to
// (x1, y1) in a solid colour.
//
// Each step derives coverage from the Bresenham error term normalised by the
// line length ed = max(1, sqrt(dx²+dy²)): the pixel on the line gets
// alpha*(1-|e|/ed) and the neighbour across the line gets the complementary
// share when it is still within one unit of distance.
func (c *Canvas) LineAA(x0, y0, x1, y1 int, col Color) {
	pix := c.pix()
	if pix == nil {
		return
	}
	x0 += c.xoff
	y0 += c.yoff
	x1 += c.xoff
	y1 += c.yoff

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 < c.clipY1 || y0 >= c.clipY2 {
		return
	}
	sx := 1
	if x0 < x1 {
		if x0 >= c.clipX2 || x1 < c.clipX1 {
			return
		}
	} else {
		sx = -1
		if x1 >= c.clipX2 || x0 < c.clipX1 {
			return
		}
	}

	dx := abs(x1 - x0)
	dy := y1 - y0
	err := dx - dy
	ed := 1
	if dx+dy != 0 {
		ed = int(math.Sqrt(float64(dx)*float64(dx) + float64(dy)*float64(dy)))
	}

	for y0 < c.clipY1 || x0 < c.clipX1 || x0 >= c.clipX2 {
		e2 := err
		if 2*e2 >= -dx {
			if x0 == x1 {
				break
			}
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy {
			if y0 == y1 {
				break
			}
			err += dx
			y0++
		}
	}
	if !c.inClip(x0, y0) {
		return
	}

	a := int(col.A)
	px := col.bytes()
	stride := c.Stride()
	i := c.index(x0, y0)
	for {
		ox, oi := x0, i
		px[3] = coverage(a, abs(err-dx+dy), ed)
		blend.Pixel(px[:], pix[i:i+4])
		e2 := err
		if 2*e2 >= -dx {
			if x0 == x1 {
				break
			}
			if e2+dy < ed && y0+1 < c.clipY2 {
				px[3] = coverage(a, e2+dy, ed)
				blend.Pixel(px[:], pix[i+stride:i+stride+4])
			}
			err -= dy
			x0 += sx
			if x0 < c.clipX1 || x0 >= c.clipX2 {
				break
			}
			i += sx * 4
		}
		if 2*e2 <= dy {
			if y0 == y1 {
				break
			}
			if dx-e2 < ed && ox+sx >= c.clipX1 && ox+sx < c.clipX2 {
				px[3] = coverage(a, dx-e2, ed)
				j := oi + sx*4
				blend.Pixel(px[:], pix[j:j+4])
			}
			err += dx
			y0++
			if y0 >= c.clipY2 {
				break
			}
			i += stride
		}
	}
}

// coverage returns a - a*dist/ed clamped to a byte.
func coverage(a, dist, ed int) byte {
	v := a - a*dist/ed
	return byte(clampInt(v, 0, 255))
}
