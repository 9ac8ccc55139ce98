// Package text renders strings into pxl canvases.
//
// The pipeline has three stages:
//
//   - Font: a parsed TrueType/OpenType file, shared and safe for
//     concurrent use
//   - Face: a Font at a pixel size, with a base direction and language
//   - Shape/Render: bidi run splitting (golang.org/x/text/unicode/bidi),
//     HarfBuzz shaping (github.com/go-text/typesetting) and outline
//     rasterization (golang.org/x/image/vector)
//
// # Example usage
//
//	font, err := text.ParseFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := text.NewFace(font, 16)
//
//	w, h := face.Measure("Hello")
//	label, err := face.Render("Hello", pxl.White)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer label.Release()
//	label.Blend(screen, 10, 10)
//
// Rendered canvases are exactly Measure sized: the width is the total
// advance and the height is ascent plus descent.
package text
