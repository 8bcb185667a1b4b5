package text

import (
	"fmt"
	"sort"

	xlang "golang.org/x/text/language"
)

// Align controls how a text run is anchored horizontally.
type Align int

const (
	// AlignLeft anchors the run's start at the given position.
	AlignLeft Align = iota
	// AlignCenter centers the run on the given position.
	AlignCenter
	// AlignRight anchors the run's end at the given position.
	AlignRight
)

// Direction is the primary direction of a text run.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// DefaultFontSize matches DrawBot's default.
const DefaultFontSize = 10.0

// Style is the active text style of a graphics state: font, size,
// variation axes, language, direction, and alignment. The zero value is
// not usable; call NewStyle.
type Style struct {
	// Font is the active font. When nil, the embedded default is used.
	Font *Font

	// Size is the font size in points.
	Size float64

	// Variations maps variation axis tags ("wght", "wdth", ...) to values
	// for variable fonts.
	Variations map[string]float64

	// Language is a BCP 47 language tag, validated on assignment.
	Language string

	// Direction is the run direction.
	Direction Direction

	// Align anchors the run relative to the text position.
	Align Align

	// LineHeight overrides the font's natural line spacing when > 0.
	LineHeight float64
}

// NewStyle returns the default style: no font (embedded fallback), size 10,
// English, left-to-right, left-aligned.
func NewStyle() *Style {
	return &Style{
		Size:     DefaultFontSize,
		Language: "en",
	}
}

// Clone returns a deep copy of the style.
func (s *Style) Clone() *Style {
	c := *s
	if s.Variations != nil {
		c.Variations = make(map[string]float64, len(s.Variations))
		for k, v := range s.Variations {
			c.Variations[k] = v
		}
	}
	return &c
}

// SetLanguage validates and stores a BCP 47 language tag.
func (s *Style) SetLanguage(tag string) error {
	parsed, err := xlang.Parse(tag)
	if err != nil {
		return fmt.Errorf("text: invalid language tag %q: %w", tag, err)
	}
	s.Language = parsed.String()
	return nil
}

// SetVariations validates and stores variation axis values. Axis tags must
// be exactly four printable ASCII characters.
func (s *Style) SetVariations(axes map[string]float64) error {
	for tag := range axes {
		if !validAxisTag(tag) {
			return fmt.Errorf("%w: %q", ErrBadAxisTag, tag)
		}
	}
	if s.Variations == nil {
		s.Variations = make(map[string]float64, len(axes))
	}
	for tag, value := range axes {
		s.Variations[tag] = value
	}
	return nil
}

// sortedAxes returns the variation axes in deterministic tag order.
func (s *Style) sortedAxes() []string {
	tags := make([]string, 0, len(s.Variations))
	for tag := range s.Variations {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// validAxisTag reports whether tag is four printable ASCII characters.
func validAxisTag(tag string) bool {
	if len(tag) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if tag[i] < 0x20 || tag[i] > 0x7e {
			return false
		}
	}
	return true
}

// ResolvedFont returns the style's font or the embedded default.
func (s *Style) ResolvedFont() (*Font, error) {
	if s.Font != nil {
		return s.Font, nil
	}
	f, err := DefaultFont()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}
	return f, nil
}
