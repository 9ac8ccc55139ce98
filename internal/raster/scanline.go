// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Nodes appends to dst the x coordinates where the closed polygon pts
// crosses scanline y and returns them sorted ascending.
//
// An edge (i, j) contributes a node when y lies in the half-open span
// (min(yi, yj), max(yi, yj)], so a vertex shared by two edges is counted once
// per side and horizontal edges never contribute. The intersection is
// computed with truncating integer division.
func Nodes(dst []int, pts []Point, y int) []int {
	dst = dst[:0]
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y < y && pj.Y >= y) || (pj.Y < y && pi.Y >= y) {
			dst = append(dst, pi.X+(y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y))
		}
		j = i
	}
	insertionSort(dst)
	return dst
}

// insertionSort sorts a small slice in place. Node counts equal the number
// of edges crossing one scanline, so this beats a general sort.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// Spans calls fn for every even-odd interior span [x0, x1) of a sorted node
// list, clamped to [minX, maxX). Empty spans are skipped.
func Spans(nodes []int, minX, maxX int, fn func(x0, x1 int)) {
	for i := 0; i+1 < len(nodes); i += 2 {
		x0, x1 := nodes[i], nodes[i+1]
		if x0 >= maxX {
			break
		}
		if x1 <= minX {
			continue
		}
		x0 = max(x0, minX)
		x1 = min(x1, maxX)
		if x1 > x0 {
			fn(x0, x1)
		}
	}
}
