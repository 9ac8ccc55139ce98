package pxl

// Presenter is the output side of the engine: a window, a frame sink or an
// image file. The present package provides an in-memory implementation.
//
// Pixel slices handed to a Presenter are borrowed. They stay valid only for
// the duration of the call.
type Presenter interface {
	// Clear fills the whole output with bg.
	Clear(bg Color)

	// Expose shows a w*h RGBA8 buffer with the given row stride, scaled
	// into the dst rectangle of the output.
	Expose(pix []byte, w, h, stride int, dst Rect)

	// SetIcon sets the window icon from a w*h RGBA8 buffer.
	SetIcon(pix []byte, w, h int)

	// Flip completes the current frame.
	Flip() error
}

// Expose hands the whole canvas to p for display in the rectangle at (x, y)
// of size w*h. A non-positive w or h means the canvas width or height.
// Inert or released canvases are not exposed.
func (c *Canvas) Expose(p Presenter, x, y, w, h int) {
	pix := c.pix()
	if p == nil || pix == nil {
		return
	}
	if w <= 0 {
		w = c.width
	}
	if h <= 0 {
		h = c.height
	}
	p.Expose(pix, c.width, c.height, c.Stride(), Rect{X: x, Y: y, W: w, H: h})
}
