package blend

// FillSpan writes the colour c into every pixel of row using raw copy.
// len(row) must be a multiple of 4.
func FillSpan(row []byte, c [4]byte) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = c[0], c[1], c[2], c[3]
	}
}

// BlendSpan composites the colour c onto every pixel of row.
func BlendSpan(row []byte, c [4]byte) {
	switch c[3] {
	case 255:
		FillSpan(row, c)
		return
	case 0:
		return
	}
	s := c[:]
	for i := 0; i+3 < len(row); i += 4 {
		Pixel(s, row[i:i+4])
	}
}

// BlendRow composites the pixels of src onto dst, pixel by pixel, walking
// left to right. dst and src must have the same length.
func BlendRow(dst, src []byte) {
	for i := 0; i+3 < len(dst); i += 4 {
		Pixel(src[i:i+4], dst[i:i+4])
	}
}

// BlendRowReverse is BlendRow walking right to left. Use it when dst and src
// share memory and dst starts after src.
func BlendRowReverse(dst, src []byte) {
	for i := len(dst) - 4; i >= 0; i -= 4 {
		Pixel(src[i:i+4], dst[i:i+4])
	}
}

// Tint recolours coverage pixels in place: RGB is multiplied by the tint
// colour and alpha is scaled by the tint alpha, both exactly (/255).
func Tint(pix []byte, c [4]byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = MulDiv255(pix[i], c[0])
		pix[i+1] = MulDiv255(pix[i+1], c[1])
		pix[i+2] = MulDiv255(pix[i+2], c[2])
		pix[i+3] = MulDiv255(pix[i+3], c[3])
	}
}
