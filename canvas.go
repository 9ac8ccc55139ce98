package pxl

import (
	"fmt"
	"sync/atomic"
)

// MaxPixels is the largest canvas area New will allocate. Larger requests
// fail with ErrTooLarge instead of exhausting memory.
const MaxPixels = 1 << 28

// Rect is an integer rectangle given by its top-left corner and size.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// storage is the pixel buffer shared by every header of one canvas.
// pix is nil once the owning header released its last reference.
type storage struct {
	pix []byte
}

// Canvas is an RGBA8 pixel buffer with a clip rectangle and origin offset.
//
// The buffer is row-major, top to bottom, 4 bytes per texel in R, G, B, A
// order with no row padding. A canvas with zero width or height has no
// buffer and every drawing operation on it is a no-op.
//
// A Canvas must not be copied after first use.
type Canvas struct {
	width  int
	height int
	store  *storage

	// clip is [clipX1, clipX2) x [clipY1, clipY2), always inside the canvas.
	clipX1, clipY1 int
	clipX2, clipY2 int

	xoff, yoff int

	refs  atomic.Int32
	owner bool
}

// New creates a canvas of the given size, cleared to transparent black,
// holding one reference.
//
// A zero width or height yields an inert canvas with no buffer and a nil
// error. Negative sizes fail with ErrInvalidSize and areas above MaxPixels
// fail with ErrTooLarge.
func New(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	st := &storage{}
	if width > 0 && height > 0 {
		if width > MaxPixels/height {
			Logger().Warn("pxl: canvas allocation refused", "width", width, "height", height)
			return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
		}
		st.pix = make([]byte, width*height*4)
	}
	c := newHeader(width, height, st, true)
	c.refs.Store(1)
	Logger().Debug("pxl: canvas created", "width", width, "height", height)
	return c, nil
}

// newHeader builds a canvas header over existing storage with full clip and
// zero offset.
func newHeader(width, height int, st *storage, owner bool) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		store:  st,
		owner:  owner,
	}
	c.ClearClip()
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Pix returns the raw pixel buffer, or nil for an inert or released canvas.
// Writes through the slice are visible to every header sharing the buffer.
func (c *Canvas) Pix() []byte {
	return c.pix()
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.width * 4
}

// pix is the nil-safe internal accessor.
func (c *Canvas) pix() []byte {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.pix
}

// index returns the byte offset of canvas pixel (x, y).
func (c *Canvas) index(x, y int) int {
	return (y*c.width + x) * 4
}

// SetClip restricts drawing to [x1, x2) x [y1, y2). Coordinates are clamped
// to the canvas. If x1 > x2 or y1 > y2 the call is ignored and the previous
// clip stays in effect.
func (c *Canvas) SetClip(x1, y1, x2, y2 int) {
	if x1 > x2 || y1 > y2 {
		return
	}
	c.clipX1 = clampInt(x1, 0, c.width)
	c.clipY1 = clampInt(y1, 0, c.height)
	c.clipX2 = clampInt(x2, 0, c.width)
	c.clipY2 = clampInt(y2, 0, c.height)
}

// SetClipRect is SetClip for a rectangle given by corner and size.
func (c *Canvas) SetClipRect(x, y, w, h int) {
	c.SetClip(x, y, x+w, y+h)
}

// ClearClip resets the clip rectangle to the full canvas.
func (c *Canvas) ClearClip() {
	c.clipX1, c.clipY1 = 0, 0
	c.clipX2, c.clipY2 = c.width, c.height
}

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() Rect {
	return Rect{X: c.clipX1, Y: c.clipY1, W: c.clipX2 - c.clipX1, H: c.clipY2 - c.clipY1}
}

// SetOffset sets the translation applied to all drawing coordinates.
func (c *Canvas) SetOffset(x, y int) {
	c.xoff, c.yoff = x, y
}

// Offset returns the current origin offset.
func (c *Canvas) Offset() (x, y int) {
	return c.xoff, c.yoff
}

// ResetOffset sets the origin offset back to (0, 0).
func (c *Canvas) ResetOffset() {
	c.xoff, c.yoff = 0, 0
}

// inClip reports whether canvas pixel (x, y) may be written.
func (c *Canvas) inClip(x, y int) bool {
	return x >= c.clipX1 && x < c.clipX2 && y >= c.clipY1 && y < c.clipY2
}

// Acquire adds a reference to the canvas.
// It has no effect on a non-owning header or after the buffer was released.
func (c *Canvas) Acquire() {
	if !c.owner {
		return
	}
	for {
		n := c.refs.Load()
		if n <= 0 {
			return
		}
		if c.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release drops one reference and frees the buffer when the count reaches
// zero. It reports whether this call freed the buffer.
//
// Releasing a non-owning header (see Transfer) or an already released
// canvas does nothing.
func (c *Canvas) Release() bool {
	if !c.owner {
		return false
	}
	for {
		n := c.refs.Load()
		if n <= 0 {
			return false
		}
		if !c.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n > 1 {
			return false
		}
		if c.store != nil {
			c.store.pix = nil
		}
		Logger().Debug("pxl: canvas released", "width", c.width, "height", c.height)
		return true
	}
}

// Refs returns the current reference count of this header.
func (c *Canvas) Refs() int {
	return int(c.refs.Load())
}

// Owner reports whether releasing this header can free the buffer.
func (c *Canvas) Owner() bool {
	return c.owner
}

// Released reports whether the buffer has been freed. Inert zero-size
// canvases never had one and report false.
func (c *Canvas) Released() bool {
	return c.width > 0 && c.height > 0 && c.pix() == nil
}

// Transfer returns a second header over the same buffer for use by another
// execution context.
//
// The new header does not own the buffer: its Release never frees it and its
// reference count stays zero. Instead the source gains a reference, so the
// owner keeps the responsibility of releasing once more when the other
// context is done. Once the owner frees the buffer, the transferred header
// becomes inert rather than dangling.
func (c *Canvas) Transfer() *Canvas {
	t := newHeader(c.width, c.height, c.store, false)
	c.Acquire()
	Logger().Debug("pxl: canvas transferred", "width", c.width, "height", c.height, "refs", c.Refs())
	return t
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
