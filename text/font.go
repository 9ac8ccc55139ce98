package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/pxl"
)

// Font is a parsed font file. It holds two views of the same data: an
// sfnt font for metrics and outlines and a go-text font for shaping.
//
// Font is safe for concurrent use.
type Font struct {
	sfnt  *opentype.Font
	shape *gotext.Font
	name  string
}

// ParseFont parses TrueType or OpenType data. The data is not retained
// after parsing.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	f := &Font{sfnt: sf, shape: gf.Font}
	if name, err := sf.Name(nil, sfnt.NameIDFull); err == nil {
		f.name = name
	}
	pxl.Logger().Debug("text: font parsed", "name", f.name, "glyphs", sf.NumGlyphs())
	return f, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return ParseFont(data)
}

// Name returns the full font name, or "" if the font has none.
func (f *Font) Name() string {
	return f.name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}
