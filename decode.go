package pxl

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// FromChannels builds a canvas from w*h tightly packed pixels of 1 to 4
// channels each:
//
//	1: gray       -> (g, g, g, 255)
//	2: gray+alpha -> (g, g, g, a)
//	3: RGB        -> (r, g, b, 255)
//	4: RGBA       -> copied verbatim
func FromChannels(pix []byte, w, h, channels int) (*Canvas, error) {
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	c, err := New(w, h)
	if err != nil {
		return nil, err
	}
	dst := c.pix()
	n := w * h
	if len(pix) < n*channels {
		c.Release()
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(pix), n*channels)
	}
	if channels == 4 {
		copy(dst, pix[:n*4])
		return c, nil
	}
	for i := range n {
		s := pix[i*channels : i*channels+channels]
		d := dst[i*4 : i*4+4]
		switch channels {
		case 1:
			d[0], d[1], d[2], d[3] = s[0], s[0], s[0], 255
		case 2:
			d[0], d[1], d[2], d[3] = s[0], s[0], s[0], s[1]
		case 3:
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 255
		}
	}
	return c, nil
}

// FromImage converts any image.Image into a new canvas.
func FromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.Gray:
		return FromChannels(packRows(m.Pix, m.Stride, w, h, 1), w, h, 1)
	case *image.NRGBA:
		return FromChannels(packRows(m.Pix, m.Stride, w, h, 4), w, h, 4)
	}

	c, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if c.pix() != nil {
		draw.Draw(c.Image(), c.Image().Bounds(), img, b.Min, draw.Src)
	}
	return c, nil
}

// packRows drops any row padding from a strided buffer.
func packRows(pix []byte, stride, w, h, bpp int) []byte {
	row := w * bpp
	if stride == row {
		return pix[:row*h]
	}
	out := make([]byte, 0, row*h)
	for y := range h {
		out = append(out, pix[y*stride:y*stride+row]...)
	}
	return out
}

// Decode reads an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP) and
// converts it into a new canvas.
func Decode(r io.Reader) (*Canvas, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pxl: decode: %w", err)
	}
	Logger().Debug("pxl: image decoded", "format", format, "bounds", img.Bounds())
	return FromImage(img)
}

// Load reads and decodes the image file at path. Files whose content is not
// a known image type fail with ErrUnsupportedFormat.
func Load(path string) (*Canvas, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pxl: load: %w", err)
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("pxl: load: %w", err)
	}
	Logger().Debug("pxl: loading image", "path", path, "mime", kind.MIME.Value)
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, kind.Extension, err)
	}
	return c, nil
}

// Image returns an image.NRGBA sharing the canvas buffer. Writes through
// either are visible in both. An inert or released canvas yields an empty
// image.
func (c *Canvas) Image() *image.NRGBA {
	pix := c.pix()
	if pix == nil {
		return &image.NRGBA{}
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: c.Stride(),
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.Released() {
		return ErrReleased
	}
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("pxl: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pxl: create file: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
