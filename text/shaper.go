package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph within a font.
type GlyphID = uint16

// ShapedGlyph is one glyph occurrence in a shaped run: its id, the rune
// cluster it maps back to, its pen position relative to the run origin,
// and its advance. Records are read-only once produced.
type ShapedGlyph struct {
	GID     GlyphID
	Cluster int
	X, Y    float64
	Advance float64
}

// Run is the result of shaping one text run: ordered glyph records plus
// the run's total advance and the font's line spacing at the shaped size.
type Run struct {
	Glyphs      []ShapedGlyph
	Advance     float64
	LineSpacing float64
}

// Shaper shapes text through go-text/typesetting's HarfBuzz implementation
// and caches parsed fonts per file path. Shaping the same text with the
// same style twice yields identical runs.
//
// HarfbuzzShaper instances carry mutable buffers and are pooled; the pool
// keeps sequential calls allocation-free.
type Shaper struct {
	pool sync.Pool

	mu    sync.Mutex
	fonts map[string]*Font
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[string]*Font),
	}
}

// LoadFont returns the parsed font for path, parsing it at most once per
// Shaper.
func (s *Shaper) LoadFont(path string) (*Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fonts[path]; ok {
		return f, nil
	}
	f, err := LoadFont(path)
	if err != nil {
		return nil, err
	}
	s.fonts[path] = f
	return f, nil
}

// Shape shapes txt under the given style. Empty input returns an empty
// run without touching the shaping engine.
func (s *Shaper) Shape(txt string, style *Style) (*Run, error) {
	if txt == "" {
		return &Run{}, nil
	}

	fnt, err := style.ResolvedFont()
	if err != nil {
		return nil, err
	}

	// font.Face is not safe for concurrent use; build a fresh one per
	// call. It is a cheap wrapper around the shared read-only *Font.
	face := gtfont.NewFace(fnt.shapedFont())
	if vars, err := style.typesettingVariations(); err != nil {
		return nil, err
	} else if len(vars) > 0 {
		face.SetVariations(vars)
	}

	runes := []rune(txt)
	dir := mapDirection(style.Direction)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(style.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(style.Language),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	run := &Run{
		Glyphs:      convertGlyphs(output.Glyphs),
		Advance:     fixedToFloat(output.Advance),
		LineSpacing: lineSpacing(output.LineBounds),
	}
	return run, nil
}

// typesettingVariations converts the style's axis map to typesetting
// variations in deterministic order.
func (s *Style) typesettingVariations() ([]gtfont.Variation, error) {
	if len(s.Variations) == 0 {
		return nil, nil
	}
	vars := make([]gtfont.Variation, 0, len(s.Variations))
	for _, tag := range s.sortedAxes() {
		if !validAxisTag(tag) {
			return nil, ErrBadAxisTag
		}
		vars = append(vars, gtfont.Variation{
			Tag:   ot.MustNewTag(tag),
			Value: float32(s.Variations[tag]),
		})
	}
	return vars, nil
}

// mapDirection converts our Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by the
// caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts typesetting output glyphs to ShapedGlyph records,
// accumulating the pen position.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64

	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return result
}

// lineSpacing converts the shaper's line bounds to a baseline distance.
// Descent is negative in shaping output.
func lineSpacing(b shaping.Bounds) float64 {
	return fixedToFloat(b.Ascent - b.Descent + b.Gap)
}

// floatToFixed converts a float64 to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
