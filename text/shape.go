package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a shaped glyph positioned on a line. X is the pen position plus
// the shaper's offset, in pixels from the start of the line. Y is the offset
// from the baseline, positive upwards.
type Glyph struct {
	ID      uint32
	Cluster int
	X, Y    float64
	Advance float64
}

// run is a maximal substring with a single embedding direction.
type run struct {
	text []rune
	rtl  bool
}

// HarfbuzzShaper has internal buffers and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts s into glyphs laid out left to right in visual order.
func (f *Face) Shape(s string) []Glyph {
	if s == "" || f.size <= 0 {
		return nil
	}

	// gotext.Face caches glyph data and is not safe for concurrent use.
	gf := gotext.NewFace(f.font.shape)
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer shaperPool.Put(hb)

	var glyphs []Glyph
	pen := 0.0
	for _, r := range splitRuns(s, f.dir) {
		dir := di.DirectionLTR
		if r.rtl {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      r.text,
			RunStart:  0,
			RunEnd:    len(r.text),
			Direction: dir,
			Face:      gf,
			Size:      toFixed(f.size),
			Script:    detectScript(r.text),
			Language:  f.lang,
		})
		for _, g := range out.Glyphs {
			glyphs = append(glyphs, Glyph{
				ID:      uint32(g.GlyphID),
				Cluster: g.TextIndex(),
				X:       pen + fromFixed(g.XOffset),
				Y:       fromFixed(g.YOffset),
				Advance: fromFixed(g.Advance),
			})
			pen += fromFixed(g.Advance)
		}
	}
	return glyphs
}

// Measure returns the size of the canvas Render would produce for s: the
// total advance rounded up, and the face height.
func (f *Face) Measure(s string) (w, h int) {
	adv := 0.0
	for _, g := range f.Shape(s) {
		adv += g.Advance
	}
	return int(math.Ceil(adv)), f.metrics.Height()
}

// splitRuns splits s into directional runs in visual order. Text the bidi
// algorithm cannot order is returned as one run in the base direction.
func splitRuns(s string, base Direction) []run {
	var opt []bidi.Option
	switch base {
	case DirectionLTR:
		opt = append(opt, bidi.DefaultDirection(bidi.LeftToRight))
	case DirectionRTL:
		opt = append(opt, bidi.DefaultDirection(bidi.RightToLeft))
	}

	fallback := []run{{text: []rune(s), rtl: base == DirectionRTL}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, opt...); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		text := []rune(r.String())
		if len(text) == 0 {
			continue
		}
		runs = append(runs, run{text: text, rtl: r.Direction() == bidi.RightToLeft})
	}
	if len(runs) == 0 {
		return fallback
	}
	return runs
}

// detectScript returns the script of the first letter-like rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		s := language.LookupScript(r)
		if s != language.Common && s != language.Inherited && s != language.Unknown {
			return s
		}
	}
	return language.Latin
}
