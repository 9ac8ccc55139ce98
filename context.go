package pxl

// Context ties canvases to their environment: the palette used to resolve
// colour indices, the resampler used for smooth scaling, and the output
// the frames are presented on.
//
// Canvases do not belong to a Context; any canvas may be used with any
// context. A Context is not safe for concurrent use.
type Context struct {
	palette    *Palette
	resampler  Resampler
	presenter  Presenter
	background Color
}

// NewContext creates a rendering context.
//
// Example:
//
//	ctx := pxl.NewContext(pxl.WithBackground(pxl.White))
//	ctx.Palette().SetColor(1, pxl.Red)
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.palette == nil {
		o.palette = NewPalette()
	}
	Logger().Debug("pxl: context created", "presenter", o.presenter != nil)
	return &Context{
		palette:    o.palette,
		resampler:  o.resampler,
		presenter:  o.presenter,
		background: o.background,
	}
}

// Palette returns the context palette.
func (ctx *Context) Palette() *Palette {
	return ctx.palette
}

// Color resolves palette index i.
func (ctx *Context) Color(i int) Color {
	return ctx.palette.Color(i)
}

// Presenter returns the attached output, or nil.
func (ctx *Context) Presenter() Presenter {
	return ctx.presenter
}

// SetBackground sets the colour used by ClearScreen.
func (ctx *Context) SetBackground(c Color) {
	ctx.background = c
}

// Background returns the colour used by ClearScreen.
func (ctx *Context) Background() Color {
	return ctx.background
}

// Resampler returns the resampler used by Scale.
func (ctx *Context) Resampler() Resampler {
	if ctx.resampler != nil {
		return ctx.resampler
	}
	return CurrentResampler()
}

// Scale is Canvas.Scale using the context resampler for smooth scaling.
func (ctx *Context) Scale(c *Canvas, xs, ys float64, smooth bool) (*Canvas, error) {
	return c.scale(xs, ys, smooth, ctx.Resampler())
}

// ClearScreen clears the output to the background colour.
func (ctx *Context) ClearScreen() {
	if ctx.presenter == nil {
		return
	}
	ctx.presenter.Clear(ctx.background)
}

// Expose shows c on the output. See Canvas.Expose.
func (ctx *Context) Expose(c *Canvas, x, y, w, h int) {
	c.Expose(ctx.presenter, x, y, w, h)
}

// SetIcon sets the window icon from c.
func (ctx *Context) SetIcon(c *Canvas) {
	pix := c.pix()
	if ctx.presenter == nil || pix == nil {
		return
	}
	ctx.presenter.SetIcon(pix, c.width, c.height)
}

// Flip completes the current frame on the output.
func (ctx *Context) Flip() error {
	if ctx.presenter == nil {
		return ErrNoPresenter
	}
	return ctx.presenter.Flip()
}
