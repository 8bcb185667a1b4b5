package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	lmregular "github.com/go-fonts/latin-modern/lmroman10regular"
	gtfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed font file. The same data is parsed twice, once by
// go-text/typesetting for shaping and once by x/image/sfnt for outlines,
// names, and metrics. Font is heavyweight; share one instance per file.
//
// Font methods are not safe for concurrent use; like the drawing facade
// they assume a single goroutine.
type Font struct {
	name   string
	data   []byte
	shaped *gtfont.Font
	sfnt   *sfnt.Font

	buf sfnt.Buffer
}

// ParseFont parses TTF or OTF font data. The data slice is copied and can
// be reused after the call.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: shaping parse failed: %w", err)
	}

	sfntFont, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: sfnt parse failed: %w", err)
	}

	f := &Font{
		data:   dataCopy,
		shaped: gtFace.Font,
		sfnt:   sfntFont,
	}
	f.name = f.familyName()
	return f, nil
}

// LoadFont parses a font file from disk.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return ParseFont(data)
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
	defaultFontErr  error
)

// DefaultFont returns the embedded Latin Modern Roman face, used whenever
// no font was configured so that text calls never fail for lack of a font.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = ParseFont(lmregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Name returns the font family name.
func (f *Font) Name() string {
	return f.name
}

// familyName reads the family name from the name table.
func (f *Font) familyName() string {
	name, err := f.sfnt.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil || name == "" {
		name, err = f.sfnt.Name(&f.buf, sfnt.NameIDFull)
		if err != nil {
			return "Unknown"
		}
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// GlyphName returns the human-readable name for a glyph id, falling back
// to a synthesized "gidNNNNN" name when the font carries no post-table
// names.
func (f *Font) GlyphName(gid GlyphID) string {
	name, err := f.sfnt.GlyphName(&f.buf, sfnt.GlyphIndex(gid))
	if err != nil || name == "" {
		return fmt.Sprintf("gid%05d", gid)
	}
	return name
}

// Metrics holds font-level vertical metrics scaled to a size.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font metrics at the given size in points.
func (f *Font) Metrics(size float64) (Metrics, error) {
	ppem := fixed.Int26_6(size * 64)
	m, err := f.sfnt.Metrics(&f.buf, ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: metrics failed: %w", err)
	}
	// Some fonts report Height below Ascent+Descent; a negative gap would
	// make lines overlap.
	gap := fixedToFloat(m.Height - m.Ascent - m.Descent)
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: gap,
	}, nil
}

// shapedFont returns the typesetting font for shaping.
func (f *Font) shapedFont() *gtfont.Font {
	return f.shaped
}
