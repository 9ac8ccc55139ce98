package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/pxl/internal/cache"
)

// outlineCacheSize bounds the glyph outlines kept per face.
const outlineCacheSize = 512

// Direction is the base direction of a paragraph.
type Direction int

// Base directions.
const (
	// DirectionAuto takes the direction from the first strong character.
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Auto"
	}
}

// Metrics holds the vertical metrics of a face in whole pixels.
type Metrics struct {
	// Ascent is the distance from the top of the line to the baseline.
	Ascent int

	// Descent is the distance from the baseline to the bottom of the line.
	Descent int

	// LineGap is the recommended extra space between lines.
	LineGap int
}

// Height returns Ascent + Descent, the height of rendered text.
func (m Metrics) Height() int {
	return m.Ascent + m.Descent
}

// FaceOption configures a Face.
type FaceOption func(*Face)

// WithDirection sets the base paragraph direction.
func WithDirection(d Direction) FaceOption {
	return func(f *Face) {
		f.dir = d
	}
}

// WithLanguage sets the BCP 47 language tag used for shaping.
func WithLanguage(tag string) FaceOption {
	return func(f *Face) {
		f.lang = language.NewLanguage(tag)
	}
}

// Face is a Font at a pixel size. A Face is immutable and safe for
// concurrent use.
type Face struct {
	font    *Font
	size    float64
	dir     Direction
	lang    language.Language
	metrics Metrics

	outlines *cache.Cache[uint32, outline]
}

// NewFace creates a face of font at size pixels per em. A non-positive
// size yields a face whose text measures and renders empty.
func NewFace(f *Font, size float64, opts ...FaceOption) *Face {
	face := &Face{
		font: f,
		size: size,
		lang: language.NewLanguage("en"),

		outlines: cache.New[uint32, outline](outlineCacheSize),
	}
	for _, opt := range opts {
		opt(face)
	}
	if size > 0 {
		var buf sfnt.Buffer
		m, err := f.sfnt.Metrics(&buf, toFixed(size), font.HintingNone)
		if err == nil {
			face.metrics = Metrics{
				Ascent:  m.Ascent.Ceil(),
				Descent: m.Descent.Ceil(),
				LineGap: (m.Height - m.Ascent - m.Descent).Ceil(),
			}
		}
	}
	return face
}

// Font returns the font of the face.
func (f *Face) Font() *Font {
	return f.font
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Direction returns the base paragraph direction.
func (f *Face) Direction() Direction {
	return f.dir
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// CacheStats describes the glyph outline cache of a face.
type CacheStats struct {
	Glyphs       int
	Hits, Misses uint64
}

// CacheStats returns the state of the face's glyph outline cache.
func (f *Face) CacheStats() CacheStats {
	st := f.outlines.Stats()
	return CacheStats{Glyphs: st.Len, Hits: st.Hits, Misses: st.Misses}
}

// toFixed converts a float64 pixel size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
