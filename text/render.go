package text

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/pxl"
)

// Render draws s into a new canvas of Measure(s) size, tinted with col.
// Glyph coverage becomes alpha; colour channels are col's.
//
// An empty string or a non-positive size yields an inert canvas.
func (f *Face) Render(s string, col pxl.Color) (*pxl.Canvas, error) {
	glyphs := f.Shape(s)
	adv := 0.0
	for _, g := range glyphs {
		adv += g.Advance
	}
	w, h := int(math.Ceil(adv)), f.metrics.Height()
	if len(glyphs) == 0 {
		w = 0
	}

	c, err := pxl.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("text: render %q: %w", s, err)
	}
	if w == 0 || h == 0 {
		return c, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := f.rasterize(mask, glyphs); err != nil {
		c.Release()
		return nil, err
	}

	pix := c.Pix()
	for i, a := range mask.Pix {
		if a == 0 {
			continue
		}
		pix[i*4+0] = 255
		pix[i*4+1] = 255
		pix[i*4+2] = 255
		pix[i*4+3] = a
	}
	c.Colorize(col)
	return c, nil
}

// rasterize accumulates the coverage of every glyph outline into mask.
// The baseline sits Ascent pixels below the top of the mask.
func (f *Face) rasterize(mask *image.Alpha, glyphs []Glyph) error {
	var buf sfnt.Buffer
	ppem := toFixed(f.size)
	b := mask.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	baseline := float32(f.metrics.Ascent)

	for _, g := range glyphs {
		segs, err := f.loadOutline(&buf, g.ID, ppem)
		if errors.Is(err, sfnt.ErrNotFound) || errors.Is(err, sfnt.ErrColoredGlyph) {
			continue
		}
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			continue
		}

		ox := float32(g.X)
		oy := baseline - float32(g.Y)
		z.Reset(b.Dx(), b.Dy())
		for _, seg := range segs {
			p := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				z.MoveTo(ox+fx(p[0].X), oy+fx(p[0].Y))
			case sfnt.SegmentOpLineTo:
				z.LineTo(ox+fx(p[0].X), oy+fx(p[0].Y))
			case sfnt.SegmentOpQuadTo:
				z.QuadTo(ox+fx(p[0].X), oy+fx(p[0].Y), ox+fx(p[1].X), oy+fx(p[1].Y))
			case sfnt.SegmentOpCubeTo:
				z.CubeTo(ox+fx(p[0].X), oy+fx(p[0].Y), ox+fx(p[1].X), oy+fx(p[1].Y),
					ox+fx(p[2].X), oy+fx(p[2].Y))
			}
		}
		z.ClosePath()
		z.Draw(mask, b, image.Opaque, image.Point{})
	}
	return nil
}

// outline is a glyph outline at the face size, or the error loading it.
type outline struct {
	segs []sfnt.Segment
	err  error
}

// loadOutline returns the segments of glyph id, loading them on first use.
// LoadGlyph reuses buf, so cached segments are copied out of it.
func (f *Face) loadOutline(buf *sfnt.Buffer, id uint32, ppem fixed.Int26_6) ([]sfnt.Segment, error) {
	o := f.outlines.GetOrCreate(id, func() outline {
		segs, err := f.font.sfnt.LoadGlyph(buf, sfnt.GlyphIndex(id), ppem, nil)
		if err != nil {
			return outline{err: fmt.Errorf("text: load glyph %d: %w", id, err)}
		}
		return outline{segs: append([]sfnt.Segment(nil), segs...)}
	})
	return o.segs, o.err
}

// fx converts a 26.6 coordinate to float32 pixels.
func fx[T ~int32](v T) float32 {
	return float32(v) / 64
}
