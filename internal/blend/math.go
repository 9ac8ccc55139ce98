package blend

// shr8 divides x by 256. Used in place of a division by 255.
func shr8(x uint32) uint32 {
	return x >> 8
}

// shr16 divides x by 65536, the two-factor counterpart of shr8.
func shr16(x uint32) uint32 {
	return x >> 16
}

// Scale multiplies an 8-bit value by an 8-bit factor with the same >>8
// reduction the compositor uses. Scale(v, 255) is v*255/256, not v.
func Scale(v, f byte) byte {
	return byte(shr8(uint32(v) * uint32(f)))
}

// MulDiv255 multiplies two 8-bit values and divides by 255 exactly,
// truncating. Used where the boundary must hold: MulDiv255(v, 255) == v.
func MulDiv255(a, b byte) byte {
	return byte(uint32(a) * uint32(b) / 255)
}
