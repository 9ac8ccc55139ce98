// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pxl

import "github.com/gogpu/pxl/internal/raster"

// points converts a flat x0, y0, x1, y1, ... list into canvas points,
// applying the origin offset. A trailing odd coordinate is ignored.
func (c *Canvas) points(coords []int) []raster.Point {
	pts := make([]raster.Point, len(coords)/2)
	for i := range pts {
		pts[i] = raster.Point{X: coords[2*i] + c.xoff, Y: coords[2*i+1] + c.yoff}
	}
	return pts
}

// FillPolygon fills the closed polygon given as a flat coordinate list
// x0, y0, x1, y1, ... using the even-odd rule. Fewer than three vertices
// draw nothing.
//
// For every scanline the crossings with the polygon edges are collected,
// sorted, and the spans between consecutive pairs are filled, clamped to
// the clip rectangle.
func (c *Canvas) FillPolygon(coords []int, p Paint) {
	if len(coords) < 6 {
		return
	}
	pix := c.pix()
	if pix == nil {
		return
	}
	b, ok := newBrush(p)
	if !ok {
		return
	}
	pts := c.points(coords)
	minX, minY, maxX, maxY, _ := raster.Bounds(pts)
	minX = max(minX, c.clipX1)
	minY = max(minY, c.clipY1)
	maxX = min(maxX, c.clipX2)
	maxY = min(maxY, c.clipY2)

	nodes := make([]int, 0, len(pts))
	stride := c.Stride()
	for y := minY; y < maxY; y++ {
		nodes = raster.Nodes(nodes, pts, y)
		if len(nodes) < 2 {
			continue
		}
		row := y * stride
		raster.Spans(nodes, minX, maxX, func(x0, x1 int) {
			b.span(pix, row+x0*4, x0, y, x1-x0)
		})
	}
}

// Polygon strokes the closed polygon given as a flat coordinate list with
// aliased lines, closing the last vertex to the first.
func (c *Canvas) Polygon(coords []int, p Paint) {
	c.outline(coords, func(x0, y0, x1, y1 int) { c.Line(x0, y0, x1, y1, p) })
}

// PolygonAA strokes the closed polygon with anti-aliased lines.
func (c *Canvas) PolygonAA(coords []int, col Color) {
	c.outline(coords, func(x0, y0, x1, y1 int) { c.LineAA(x0, y0, x1, y1, col) })
}

func (c *Canvas) outline(coords []int, line func(x0, y0, x1, y1 int)) {
	n := len(coords) / 2
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		line(coords[2*i], coords[2*i+1], coords[2*j], coords[2*j+1])
	}
}

// Rect strokes the rectangle with corners (x1, y1) and (x2, y2) using
// four aliased lines.
func (c *Canvas) Rect(x1, y1, x2, y2 int, p Paint) {
	c.Line(x1, y1, x2, y1, p)
	c.Line(x2, y1, x2, y2, p)
	c.Line(x1, y2, x2, y2, p)
	c.Line(x1, y1, x1, y2, p)
}

// RectAA strokes the rectangle with four anti-aliased lines.
func (c *Canvas) RectAA(x1, y1, x2, y2 int, col Color) {
	c.LineAA(x1, y1, x2, y1, col)
	c.LineAA(x2, y1, x2, y2, col)
	c.LineAA(x1, y2, x2, y2, col)
	c.LineAA(x1, y1, x1, y2, col)
}
