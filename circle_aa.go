// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

import "github.com/gogpu/pxl/internal/blend"

// CircleAA draws an anti-aliased circle outline of radius r centred at
// (xc, yc) in a solid colour.
//
// It follows the same midpoint stepping as Circle. The coverage of the main
// pixel comes from the local error scaled by rr = 2r-1; on steps that move
// in x or y a secondary neighbour receives the complementary coverage.
func (c *Canvas) CircleAA(xc, yc, r int, col Color) {
	pix := c.pix()
	if pix == nil || r <= 0 {
		return
	}
	xc += c.xoff
	yc += c.yoff
	if xc+r < c.clipX1 || yc+r < c.clipY1 || xc-r >= c.clipX2 || yc-r >= c.clipY2 {
		return
	}

	a := int(col.A)
	px := col.bytes()
	plot := func(x, y int) {
		i := c.index(x, y)
		blend.Pixel(px[:], pix[i:i+4])
	}

	x, y, err := -r, 0, 2-2*r
	rr := 1 - err
	for {
		px[3] = aaAlpha(255*abs(err-2*(x+y)-2)/rr, a)
		// Quadrant points, in the same order as Circle.
		p1 := c.inClip(xc-x, yc+y)
		p2 := c.inClip(xc-y, yc-x)
		p3 := c.inClip(xc+x, yc-y)
		p4 := c.inClip(xc+y, yc+x)
		if p1 {
			plot(xc-x, yc+y)
		}
		if p2 {
			plot(xc-y, yc-x)
		}
		if p3 {
			plot(xc+x, yc-y)
		}
		if p4 {
			plot(xc+y, yc+x)
		}

		e2 := err
		ox := x
		if err+y > 0 {
			if i := 255 * (err - 2*x - 1) / rr; i < 256 {
				px[3] = aaAlpha(i, a)
				if p1 && yc+y+1 < c.clipY2 {
					plot(xc-x, yc+y+1)
				}
				if p2 && xc-y-1 >= c.clipX1 {
					plot(xc-y-1, yc-x)
				}
				if p3 && yc-y-1 >= c.clipY1 {
					plot(xc+x, yc-y-1)
				}
				if p4 && xc+y+1 < c.clipX2 {
					plot(xc+y+1, yc+x)
				}
			}
			x++
			err += x*2 + 1
		}
		if e2+x <= 0 {
			if i := 255 * (2*y + 3 - e2) / rr; i < 256 {
				px[3] = aaAlpha(i, a)
				if p1 && xc-ox-1 >= c.clipX1 {
					plot(xc-ox-1, yc+y)
				}
				if p2 && yc-ox-1 >= c.clipY1 {
					plot(xc-y, yc-ox-1)
				}
				if p3 && xc+ox+1 < c.clipX2 {
					plot(xc+ox+1, yc-y)
				}
				if p4 && yc+ox+1 < c.clipY2 {
					plot(xc+y, yc+ox+1)
				}
			}
			y++
			err += y*2 + 1
		}
		if x >= 0 {
			return
		}
	}
}

// aaAlpha turns an intensity distance i in [0, 255] into the alpha
// (255-i)*a/256.
func aaAlpha(i, a int) byte {
	i = clampInt(i, 0, 255)
	return blend.Scale(byte(255-i), byte(a))
}
