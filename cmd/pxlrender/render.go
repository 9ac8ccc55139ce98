package main

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/text"
)

var resamplers = map[string]pxl.Resampler{
	"catmullrom":     pxl.CatmullRom,
	"bilinear":       pxl.BiLinear,
	"approxbilinear": pxl.ApproxBiLinear,
	"lanczos":        pxl.Lanczos,
	"box":            pxl.Box,
}

// renderer executes a script on one canvas.
type renderer struct {
	ctx    *pxl.Context
	canvas *pxl.Canvas
	font   *text.Font
	faces  map[float64]*text.Face
}

func newRenderer(s *Script, opts ...pxl.ContextOption) (*renderer, error) {
	pal := pxl.NewPalette()
	for i, c := range s.Palette {
		pal.SetColor(i, pxl.Hex(c))
	}
	opts = append([]pxl.ContextOption{pxl.WithPalette(pal)}, opts...)
	if s.Background != "" {
		opts = append(opts, pxl.WithBackground(pxl.Hex(s.Background)))
	}
	if s.Resampler != "" {
		rs, ok := resamplers[strings.ToLower(s.Resampler)]
		if !ok {
			return nil, fmt.Errorf("unknown resampler %q", s.Resampler)
		}
		opts = append(opts, pxl.WithResampler(rs))
	}

	c, err := pxl.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		ctx:    pxl.NewContext(opts...),
		canvas: c,
		faces:  make(map[float64]*text.Face),
	}
	if s.Font != "" {
		if r.font, err = text.LoadFont(s.Font); err != nil {
			c.Release()
			return nil, err
		}
	}
	return r, nil
}

// run executes every op in order and leaves the result in r.canvas.
func (r *renderer) run(s *Script) error {
	r.canvas.Clear(r.ctx.Background())
	for i, op := range s.Ops {
		if err := r.exec(op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
		pxl.Logger().Debug("pxlrender: op done", "n", i, "kind", op.Kind)
	}
	for size, f := range r.faces {
		st := f.CacheStats()
		pxl.Logger().Debug("pxlrender: glyph cache", "size", size, "glyphs", st.Glyphs, "hits", st.Hits, "misses", st.Misses)
	}
	return nil
}

// paint resolves the colour source of op. The returned release func must
// be called when drawing is done.
func (r *renderer) paint(op Op) (pxl.Paint, func(), error) {
	if op.Pattern != "" {
		pc, err := pxl.Load(op.Pattern)
		if err != nil {
			return nil, nil, err
		}
		return pxl.Pattern{Canvas: pc}, func() { pc.Release() }, nil
	}
	nop := func() {}
	switch {
	case op.Color != "":
		return pxl.Hex(op.Color), nop, nil
	case op.Index != nil:
		return r.ctx.Color(*op.Index), nop, nil
	default:
		return pxl.White, nop, nil
	}
}

func (r *renderer) exec(op Op) error {
	c, a := r.canvas, op.Args
	p, done, err := r.paint(op)
	if err != nil {
		return err
	}
	defer done()
	col, _ := p.(pxl.Color)

	switch op.Kind {
	case "clear":
		c.Clear(col)
	case "fill":
		c.Fill(p)
	case "fill_rect":
		c.FillRect(a[0], a[1], a[2], a[3], p)
	case "clip":
		c.SetClip(a[0], a[1], a[2], a[3])
	case "unclip":
		c.ClearClip()
	case "offset":
		c.SetOffset(a[0], a[1])
	case "pixel":
		c.SetPixel(a[0], a[1], col)
	case "line":
		c.Line(a[0], a[1], a[2], a[3], p)
	case "line_aa":
		c.LineAA(a[0], a[1], a[2], a[3], col)
	case "rect":
		c.Rect(a[0], a[1], a[2], a[3], p)
	case "rect_aa":
		c.RectAA(a[0], a[1], a[2], a[3], col)
	case "circle":
		c.Circle(a[0], a[1], a[2], p)
	case "circle_aa":
		c.CircleAA(a[0], a[1], a[2], col)
	case "fill_circle":
		c.FillCircle(a[0], a[1], a[2], p)
	case "triangle":
		c.FillTriangle(a[0], a[1], a[2], a[3], a[4], a[5], p)
	case "polygon":
		c.Polygon(a, p)
	case "polygon_aa":
		c.PolygonAA(a, col)
	case "fill_polygon":
		c.FillPolygon(a, p)
	case "text":
		return r.text(op, col)
	case "image":
		return r.image(op)
	default:
		return fmt.Errorf("%w: %q", errBadKind, op.Kind)
	}
	return nil
}

func (r *renderer) face(size float64) (*text.Face, error) {
	if size <= 0 {
		size = 16
	}
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	if r.font == nil {
		f, err := text.ParseFont(goregular.TTF)
		if err != nil {
			return nil, err
		}
		r.font = f
	}
	face := text.NewFace(r.font, size)
	r.faces[size] = face
	return face, nil
}

func (r *renderer) text(op Op, col pxl.Color) error {
	face, err := r.face(op.Size)
	if err != nil {
		return err
	}
	label, err := face.Render(op.Text, col)
	if err != nil {
		return err
	}
	defer label.Release()
	label.Blend(r.canvas, op.Args[0], op.Args[1])
	return nil
}

func (r *renderer) image(op Op) error {
	img, err := pxl.Load(op.Path)
	if err != nil {
		return err
	}
	defer img.Release()

	if op.Scale != 0 && op.Scale != 1 {
		scaled, err := r.ctx.Scale(img, op.Scale, 0, op.Smooth)
		if err != nil {
			return err
		}
		defer scaled.Release()
		img = scaled
	}
	if op.Blend {
		img.Blend(r.canvas, op.Args[0], op.Args[1])
	} else {
		img.Copy(r.canvas, op.Args[0], op.Args[1])
	}
	return nil
}
