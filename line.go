// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

// Line draws an aliased line from (x1, y1) to (x2, y2) inclusive.
//
// The line is stepped with integer Bresenham from its upper endpoint. Steps
// that start outside the clip rectangle are advanced without writing; once
// drawing has started, the first step that leaves the clip ends the line.
func (c *Canvas) Line(x1, y1, x2, y2 int, p Paint) {
	pix := c.pix()
	if pix == nil {
		return
	}
	b, ok := newBrush(p)
	if !ok {
		return
	}
	x1 += c.xoff
	y1 += c.yoff
	x2 += c.xoff
	y2 += c.yoff

	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y1 >= c.clipY2 || y2 < c.clipY1 {
		return
	}
	if x1 < x2 {
		if x2 < c.clipX1 || x1 >= c.clipX2 {
			return
		}
	} else if x1 < c.clipX1 || x2 >= c.clipX2 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	xd := 1
	if dx <= 0 {
		dx = -dx
		xd = -1
	}
	if dx > dy {
		c.lineShallow(pix, &b, x1, y1, dx, dy, xd)
	} else {
		c.lineSteep(pix, &b, x1, y1, dx, dy, xd)
	}
}

// lineShallow steps along x. dx > dy >= 0, xd is the x direction.
func (c *Canvas) lineShallow(pix []byte, b *brush, x, y, dx, dy, xd int) {
	dy2 := dy * 2
	dyx2 := dy2 - dx*2
	err := dy2 - dx

	for !c.inClip(x, y) {
		dx--
		if dx < 0 {
			return
		}
		if err >= 0 {
			y++
			err += dyx2
		} else {
			err += dy2
		}
		x += xd
	}

	stride := c.Stride()
	i := c.index(x, y)
	b.plot(pix, i, x, y)
	for ; dx > 0; dx-- {
		if err >= 0 {
			y++
			if y >= c.clipY2 {
				break
			}
			i += stride
			err += dyx2
		} else {
			err += dy2
		}
		x += xd
		if x >= c.clipX2 || x < c.clipX1 {
			break
		}
		i += xd * 4
		b.plot(pix, i, x, y)
	}
}

// lineSteep steps along y. dy >= dx >= 0, xd is the x direction.
func (c *Canvas) lineSteep(pix []byte, b *brush, x, y, dx, dy, xd int) {
	dx2 := dx * 2
	dxy2 := dx2 - dy*2
	err := dx2 - dy

	for !c.inClip(x, y) {
		dy--
		if dy < 0 {
			return
		}
		if err >= 0 {
			x += xd
			err += dxy2
		} else {
			err += dx2
		}
		y++
	}

	stride := c.Stride()
	i := c.index(x, y)
	b.plot(pix, i, x, y)
	for ; dy > 0; dy-- {
		if err >= 0 {
			x += xd
			if x < c.clipX1 || x >= c.clipX2 {
				break
			}
			i += xd * 4
			err += dxy2
		} else {
			err += dx2
		}
		y++
		if y >= c.clipY2 {
			break
		}
		i += stride
		b.plot(pix, i, x, y)
	}
}
