// Package present provides outputs for pxl canvases.
//
// An output implements [pxl.Presenter]: it can be cleared to a background
// colour, receives exposed canvases, holds an icon and completes frames on
// Flip. The package ships an in-memory implementation, [ImagePresenter],
// which can optionally hand every finished frame to a [FrameSink] such as
// a PNG sequence writer.
//
// # Registry
//
// Other outputs (windows, video encoders) can register themselves without
// changes to this package:
//
//	func init() {
//	    present.Add(present.Backend{Name: "sdl", Priority: 100, Open: openSDL, Probe: haveDisplay})
//	}
//
//	// Later, the best usable backend:
//	out, err := present.Open("", present.Options{Width: 640, Height: 480})
//
// The built-in "image" backend is always usable and has priority 10.
package present
