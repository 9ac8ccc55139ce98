package pxl

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default palette, no output
//	ctx := pxl.NewContext()
//
//	// Render frames into memory
//	ctx := pxl.NewContext(pxl.WithPresenter(present.NewImagePresenter(640, 480)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	palette    *Palette
	resampler  Resampler
	presenter  Presenter
	background Color
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		palette:    nil, // Will be created if nil
		resampler:  nil, // Falls back to CurrentResampler at call time
		background: Black,
	}
}

// WithPalette sets the palette used to resolve colour indices.
// The palette is shared, not copied.
func WithPalette(p *Palette) ContextOption {
	return func(o *contextOptions) {
		o.palette = p
	}
}

// WithResampler sets the resampler used by Context.Scale.
func WithResampler(r Resampler) ContextOption {
	return func(o *contextOptions) {
		o.resampler = r
	}
}

// WithPresenter connects the context to an output.
//
// Example:
//
//	out := present.NewImagePresenter(800, 600)
//	ctx := pxl.NewContext(pxl.WithPresenter(out))
func WithPresenter(p Presenter) ContextOption {
	return func(o *contextOptions) {
		o.presenter = p
	}
}

// WithBackground sets the colour used by ClearScreen.
func WithBackground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.background = c
	}
}
