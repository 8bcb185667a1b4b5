package text

import (
	"errors"
	"testing"
)

func TestParseFontEmpty(t *testing.T) {
	if _, err := ParseFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseFont(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestParseFontGarbage(t *testing.T) {
	if _, err := ParseFont([]byte("this is not a font")); err == nil {
		t.Error("ParseFont(garbage) = nil, want error")
	}
}

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() = %v", err)
	}
	if f.Name() == "" {
		t.Error("default font has empty name")
	}
	if f.NumGlyphs() == 0 {
		t.Error("default font has no glyphs")
	}

	// repeated calls share one instance
	again, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() = %v", err)
	}
	if f != again {
		t.Error("DefaultFont() should return a shared instance")
	}
}

func TestFontMetrics(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() = %v", err)
	}

	m, err := f.Metrics(12)
	if err != nil {
		t.Fatalf("Metrics() = %v", err)
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %g, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %g, want > 0", m.Descent)
	}
	if m.LineGap < 0 {
		t.Errorf("LineGap = %g, want >= 0", m.LineGap)
	}
	if lh := m.LineHeight(); lh < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %g, want >= ascent+descent = %g", lh, m.Ascent+m.Descent)
	}

	big, err := f.Metrics(24)
	if err != nil {
		t.Fatalf("Metrics() = %v", err)
	}
	if big.Ascent <= m.Ascent {
		t.Errorf("metrics do not scale with size: %g vs %g", big.Ascent, m.Ascent)
	}
}

func TestGlyphName(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() = %v", err)
	}
	if name := f.GlyphName(0); name == "" {
		t.Error("GlyphName(0) is empty")
	}
}
