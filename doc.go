// Package pxl is a 2D software rasterizer and compositor for in-memory RGBA8
// canvases.
//
// # Overview
//
// A [Canvas] owns (or shares) a row-major R,G,B,A pixel buffer together with
// a clip rectangle and an origin offset. Every drawing operation translates
// its coordinates by the offset and writes only inside the clip rectangle.
//
//	c, err := pxl.New(320, 200)
//	if err != nil {
//	    return err
//	}
//	defer c.Release()
//
//	c.Clear(pxl.Black)
//	c.SetClip(10, 10, 310, 190)
//	c.FillCircle(160, 100, 50, pxl.Red)
//	c.LineAA(0, 0, 319, 199, pxl.White)
//
// # Paint
//
// Rasterizers take a [Paint]: either a solid [Color] or a [Pattern] that
// tiles another canvas. Anti-aliased primitives accept a [Color] only.
//
// # Compositing
//
// Pixels are straight (non-premultiplied) RGBA8. Writes go through a
// fixed-point "over" operator that divides by 256 instead of 255; see
// package internal/blend for the exact formulas and their accuracy.
//
// # Ownership
//
// Canvases are reference counted: [New] returns a canvas holding one
// reference, [Canvas.Acquire] adds one and [Canvas.Release] drops one,
// freeing the buffer at zero. [Canvas.Transfer] hands a non-owning header to
// another execution context.
//
// # Concurrency
//
// Rendering is single threaded and synchronous. The reference count is
// atomic so headers may be released from different goroutines, but pixel
// writes to one canvas must not run concurrently.
package pxl
