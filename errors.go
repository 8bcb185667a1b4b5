package drawbot

import "errors"

// Usage-sequencing errors. These indicate a misuse of the drawing API and
// are returned immediately, before any state is mutated.
var (
	// ErrPageActive is returned by Size when a page is already open.
	ErrPageActive = errors.New("drawbot: size can't be called if there's already a page active")

	// ErrPartialPageSize is returned by NewPage when exactly one of the two
	// page dimensions is supplied. NewPage takes either no dimensions or both.
	ErrPartialPageSize = errors.New("drawbot: newPage takes either no dimensions or both width and height")

	// ErrUnbalancedRestore is returned by Restore when there is no matching
	// Save on the state stack.
	ErrUnbalancedRestore = errors.New("drawbot: restore without matching save")

	// ErrNoPages is returned when exporting a document that never opened a page.
	ErrNoPages = errors.New("drawbot: no pages to export")

	// ErrUnsupportedFormat is returned by SaveImage for unknown file extensions.
	ErrUnsupportedFormat = errors.New("drawbot: unsupported export format")
)
