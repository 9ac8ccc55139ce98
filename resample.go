package pxl

import (
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Resampler fills dst with a filtered resize of src. Both images are
// straight-alpha NRGBA views and never overlap.
type Resampler interface {
	Resample(dst, src *image.NRGBA)
}

// XDrawResampler resamples with a golang.org/x/image/draw interpolator.
type XDrawResampler struct {
	Interpolator draw.Interpolator
}

// Resample implements Resampler.
func (r XDrawResampler) Resample(dst, src *image.NRGBA) {
	ip := r.Interpolator
	if ip == nil {
		ip = draw.CatmullRom
	}
	ip.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// BildResampler resamples with a github.com/anthonynsimon/bild filter.
type BildResampler struct {
	Filter transform.ResampleFilter
}

// Resample implements Resampler.
func (r BildResampler) Resample(dst, src *image.NRGBA) {
	b := dst.Bounds()
	out := transform.Resize(src, b.Dx(), b.Dy(), r.Filter)
	draw.Draw(dst, b, out, out.Bounds().Min, draw.Src)
}

// Predefined resamplers. Bild filters hold functions, so they are shared by
// pointer to keep Resampler values comparable.
var (
	CatmullRom     Resampler = XDrawResampler{Interpolator: draw.CatmullRom}
	BiLinear       Resampler = XDrawResampler{Interpolator: draw.BiLinear}
	ApproxBiLinear Resampler = XDrawResampler{Interpolator: draw.ApproxBiLinear}
	Lanczos        Resampler = &BildResampler{Filter: transform.Lanczos}
	Box            Resampler = &BildResampler{Filter: transform.Box}
)

type resamplerHolder struct {
	r Resampler
}

var resamplerPtr atomic.Pointer[resamplerHolder]

func init() {
	resamplerPtr.Store(&resamplerHolder{r: CatmullRom})
}

// SetResampler sets the resampler used by smooth Scale. Passing nil
// restores the default CatmullRom resampler.
//
// SetResampler is safe for concurrent use.
func SetResampler(r Resampler) {
	if r == nil {
		r = CatmullRom
	}
	resamplerPtr.Store(&resamplerHolder{r: r})
}

// CurrentResampler returns the resampler used by smooth Scale.
func CurrentResampler() Resampler {
	return resamplerPtr.Load().r
}
