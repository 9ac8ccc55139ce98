// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster holds the integer geometry shared by the pxl scan
// converters: edge functions for half-space triangles and scanline node
// collection for polygon fills.
package raster

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Orient2D returns twice the signed area of the triangle (a, b, c).
// The value is positive when c lies to the left of the directed edge a→b in
// a y-down coordinate system, i.e. when (a, b, c) winds clockwise on screen.
func Orient2D(ax, ay, bx, by, cx, cy int) int {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// Bounds returns the inclusive bounding box of pts.
// It returns ok == false for an empty slice.
func Bounds(pts []Point) (minX, minY, maxX, maxY int, ok bool) {
	if len(pts) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Min3 returns the smallest of three ints.
func Min3(a, b, c int) int { return min(a, b, c) }

// Max3 returns the largest of three ints.
func Max3(a, b, c int) int { return max(a, b, c) }
