package text

import "errors"

var (
	// ErrEmptyFontData is returned when parsing zero-length font data.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned when an operation requires a font and none is
	// set and the embedded fallback is unavailable.
	ErrNoFont = errors.New("text: no font set")

	// ErrBadAxisTag is returned for variation axis tags that are not four
	// printable ASCII characters.
	ErrBadAxisTag = errors.New("text: variation axis tag must be 4 ASCII characters")
)
