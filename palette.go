package pxl

// PaletteSize is the number of entries in a Palette.
const PaletteSize = 256

// Palette is an indexed colour table. Reads of an out-of-range index return
// Transparent and writes to one are ignored.
//
// A Palette is not safe for concurrent mutation.
type Palette struct {
	colors [PaletteSize]Color
}

// NewPalette returns a palette whose first entries are colors; the rest are
// transparent black. Colours beyond PaletteSize are dropped.
func NewPalette(colors ...Color) *Palette {
	p := &Palette{}
	copy(p.colors[:], colors)
	return p
}

// Color returns entry i.
func (p *Palette) Color(i int) Color {
	if p == nil || i < 0 || i >= PaletteSize {
		return Transparent
	}
	return p.colors[i]
}

// SetColor replaces entry i.
func (p *Palette) SetColor(i int, c Color) {
	if p == nil || i < 0 || i >= PaletteSize {
		return
	}
	p.colors[i] = c
}

// Len returns PaletteSize.
func (p *Palette) Len() int {
	return PaletteSize
}
