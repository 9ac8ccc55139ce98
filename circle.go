// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

// Circle draws the outline of a circle of radius r centred at (xc, yc).
//
// The midpoint stepper walks one quadrant and mirrors each point into the
// other three. When the circle's bounding square lies inside the clip
// rectangle the points are written without per-pixel clip tests; otherwise
// every point is tested.
func (c *Canvas) Circle(xc, yc, r int, p Paint) {
	pix := c.pix()
	if pix == nil || r <= 0 {
		return
	}
	b, ok := newBrush(p)
	if !ok {
		return
	}
	xc += c.xoff
	yc += c.yoff
	if xc+r < c.clipX1 || yc+r < c.clipY1 || xc-r >= c.clipX2 || yc-r >= c.clipY2 {
		return
	}
	if xc-r >= c.clipX1 && xc+r < c.clipX2 && yc-r >= c.clipY1 && yc+r < c.clipY2 {
		c.circleFast(pix, &b, xc, yc, r)
		return
	}
	c.circleSlow(pix, &b, xc, yc, r)
}

// circleStep advances the midpoint state (x, y, err) by one step.
func circleStep(x, y, err int) (int, int, int) {
	e := err
	if e <= y {
		y++
		err += y*2 + 1
	}
	if e > x || err > y {
		x++
		err += x*2 + 1
	}
	return x, y, err
}

func (c *Canvas) circleFast(pix []byte, b *brush, xc, yc, r int) {
	x, y, err := -r, 0, 2-2*r
	for {
		b.plot(pix, c.index(xc-x, yc+y), xc-x, yc+y)
		b.plot(pix, c.index(xc-y, yc-x), xc-y, yc-x)
		b.plot(pix, c.index(xc+x, yc-y), xc+x, yc-y)
		b.plot(pix, c.index(xc+y, yc+x), xc+y, yc+x)
		x, y, err = circleStep(x, y, err)
		if x >= 0 {
			return
		}
	}
}

func (c *Canvas) circleSlow(pix []byte, b *brush, xc, yc, r int) {
	x, y, err := -r, 0, 2-2*r
	for {
		c.plotClipped(pix, b, xc-x, yc+y)
		c.plotClipped(pix, b, xc-y, yc-x)
		c.plotClipped(pix, b, xc+x, yc-y)
		c.plotClipped(pix, b, xc+y, yc+x)
		x, y, err = circleStep(x, y, err)
		if x >= 0 {
			return
		}
	}
}

// plotClipped plots canvas pixel (x, y) if it lies inside the clip.
func (c *Canvas) plotClipped(pix []byte, b *brush, x, y int) {
	if c.inClip(x, y) {
		b.plot(pix, c.index(x, y), x, y)
	}
}

// FillCircle fills a disc of radius r centred at (xc, yc).
//
// A pixel at offset (dx, dy) from the centre is covered when
// dx²+dy² < r²-1; the bias tightens the disc by about one unit so its edge
// matches the Circle outline. Radius 1 paints the centre pixel only.
func (c *Canvas) FillCircle(xc, yc, r int, p Paint) {
	pix := c.pix()
	if pix == nil || r <= 0 {
		return
	}
	b, ok := newBrush(p)
	if !ok {
		return
	}
	xc += c.xoff
	yc += c.yoff
	if xc+r < c.clipX1 || yc+r < c.clipY1 || xc-r >= c.clipX2 || yc-r >= c.clipY2 {
		return
	}
	if r == 1 {
		c.plotClipped(pix, &b, xc, yc)
		return
	}

	r2 := r * r
	yy1 := max(-r, c.clipY1-yc)
	yy2 := min(r, c.clipY2-yc-1)
	xx1 := max(-r, c.clipX1-xc)
	xx2 := min(r, c.clipX2-xc-1)
	for y := yy1; y <= yy2; y++ {
		i := c.index(xc+xx1, yc+y)
		for x := xx1; x <= xx2; x++ {
			if x*x+y*y < r2-1 {
				b.plot(pix, i, xc+x, yc+y)
			}
			i += 4
		}
	}
}
