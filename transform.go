package pxl

import (
	"fmt"
	"math"
)

// Flip returns a new canvas with the columns reversed when horizontal is set
// and the rows reversed when vertical is set. The receiver is unchanged.
func (c *Canvas) Flip(horizontal, vertical bool) (*Canvas, error) {
	if c.Released() {
		return nil, ErrReleased
	}
	dst, err := New(c.width, c.height)
	if err != nil {
		return nil, fmt.Errorf("pxl: flip: %w", err)
	}
	flipInto(dst, c, horizontal, vertical)
	return dst, nil
}

// flipInto writes src into the same-sized dst with the requested axes
// reversed.
func flipInto(dst, src *Canvas, horizontal, vertical bool) {
	spix, dpix := src.pix(), dst.pix()
	if spix == nil || dpix == nil {
		return
	}
	w, h := src.width, src.height
	stride := src.Stride()
	for y := 0; y < h; y++ {
		sy := y
		if vertical {
			sy = h - 1 - y
		}
		srow := spix[sy*stride : sy*stride+stride]
		drow := dpix[y*stride : y*stride+stride]
		if !horizontal {
			copy(drow, srow)
			continue
		}
		for x := 0; x < w; x++ {
			copy(drow[x*4:x*4+4], srow[(w-1-x)*4:(w-x)*4])
		}
	}
}

// Scale returns a new canvas holding c resized by the factors xs and ys.
//
// The target size is round(width*|xs|) by round(height*|ys|). A ys of zero
// means "same as xs". A negative factor flips that axis after scaling.
// When smooth is set the current Resampler is used; otherwise pixels are
// picked by nearest neighbour with Stretch.
//
// Factors that round to an empty size produce an inert canvas.
func (c *Canvas) Scale(xs, ys float64, smooth bool) (*Canvas, error) {
	return c.scale(xs, ys, smooth, CurrentResampler())
}

func (c *Canvas) scale(xs, ys float64, smooth bool, rs Resampler) (*Canvas, error) {
	if c.Released() {
		return nil, ErrReleased
	}
	if ys == 0 {
		ys = xs
	}
	flipH, flipV := xs < 0, ys < 0
	xs, ys = math.Abs(xs), math.Abs(ys)

	w := int(math.Round(float64(c.width) * xs))
	h := int(math.Round(float64(c.height) * ys))
	dst, err := New(w, h)
	if err != nil {
		return nil, fmt.Errorf("pxl: scale: %w", err)
	}
	if dst.pix() == nil || c.pix() == nil {
		return dst, nil
	}

	if smooth && rs != nil {
		Logger().Debug("pxl: smooth scale", "resampler", fmt.Sprintf("%T", rs), "width", w, "height", h)
		rs.Resample(dst.Image(), c.Image())
	} else {
		c.Stretch(dst, 0, 0, w, h)
	}
	if !flipH && !flipV {
		return dst, nil
	}
	out, err := dst.Flip(flipH, flipV)
	dst.Release()
	if err != nil {
		return nil, err
	}
	return out, nil
}
