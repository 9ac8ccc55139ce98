// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the per-pixel compositing used by every pxl
// rasterizer.
//
// Pixels are 4-byte slices in R, G, B, A order with straight (non
// premultiplied) alpha. The "over" operator is evaluated in fixed point:
// products are reduced with a right shift by 8, which divides by 256 instead
// of 255. The result is therefore not bit-exact compared to floating point
// alpha blending, but it is monotonic in both inputs and the boundary alphas
// 0 and 255 never reach the approximated formulas: they are resolved by the
// exact copy and no-op fast paths in [Pixel].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// Pixel composites the source pixel s onto the destination pixel d in place.
//
// Fast paths, in order:
//   - source alpha 0: d unchanged
//   - source alpha 255 or destination alpha 0: d = s
//   - destination alpha 255: [Draw]
//   - otherwise: [Over]
func Pixel(s, d []byte) {
	_ = s[3]
	_ = d[3]
	sa, da := s[3], d[3]
	switch {
	case sa == 0:
	case sa == 255 || da == 0:
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], sa
	case da == 255:
		Draw(s, d)
	default:
		Over(s, d)
	}
}

// Draw composites s over an opaque destination d.
// Formula: D' = S*Sa/256 + D*(255-Sa)/256, A' = 255
func Draw(s, d []byte) {
	sa := uint32(s[3])
	inv := 255 - sa
	d[0] = byte(shr8(uint32(s[0])*sa) + shr8(uint32(d[0])*inv))
	d[1] = byte(shr8(uint32(s[1])*sa) + shr8(uint32(d[1])*inv))
	d[2] = byte(shr8(uint32(s[2])*sa) + shr8(uint32(d[2])*inv))
	d[3] = 255
}

// Over composites s over a translucent destination d.
// Formula: A' = Sa + Da*(255-Sa)/256, C' = S*Sa/256 + D*Da*(255-Sa)/65536
//
// The colour channels are not divided by A'.
func Over(s, d []byte) {
	sa := uint32(s[3])
	da := uint32(d[3])
	inv := 255 - sa
	a := sa + shr8(da*inv)
	d[0] = byte(shr8(uint32(s[0])*sa) + shr16(uint32(d[0])*da*inv))
	d[1] = byte(shr8(uint32(s[1])*sa) + shr16(uint32(d[1])*da*inv))
	d[2] = byte(shr8(uint32(s[2])*sa) + shr16(uint32(d[2])*da*inv))
	d[3] = byte(a)
}

// Color composites the colour c onto d and returns the result. It is the
// value form of [Pixel], convenient for tests and single lookups.
func Color(c, d [4]byte) [4]byte {
	Pixel(c[:], d[:])
	return d
}
