package drawbot

// DefaultPageWidth and DefaultPageHeight are used when drawing starts
// before any page size was declared.
const (
	DefaultPageWidth  = 1000.0
	DefaultPageHeight = 1000.0
)

// DefaultFrameDuration is the per-frame duration used by animated exports
// when none was set.
const DefaultFrameDuration = 0.1

// Document owns the sequence of completed pages and the currently open
// page, and knows how to export itself. A Drawing drives exactly one
// Document; the recording implementation is the default.
type Document interface {
	// BeginPage opens a new page of the given size and returns its canvas.
	// A page must not already be open.
	BeginPage(width, height float64) (Canvas, error)

	// EndPage finalizes the currently open page. It is an error if no page
	// is open.
	EndPage() error

	// IsDrawing reports whether a page is currently open.
	IsDrawing() bool

	// PageSize returns the dimensions of the current or most recent page.
	// ok is false if no page was ever opened.
	PageSize() (width, height float64, ok bool)

	// PageCount returns the number of completed pages.
	PageCount() int

	// SetFrameDuration sets the display duration, in seconds, applied to
	// the current page and subsequent pages in animated exports.
	SetFrameDuration(seconds float64)

	// SaveImage exports the document to path, dispatching on the file
	// extension. A still-open page is finalized first.
	SaveImage(path string, opts ...ExportOption) error
}

// RecordingDocument records every page as a display-list Picture and
// renders them on export. It is the Document used by NewDrawing unless one
// is injected.
type RecordingDocument struct {
	pictures  []*Picture
	durations []float64

	recorder      *Recorder
	pageWidth     float64
	pageHeight    float64
	havePage      bool
	frameDuration float64
}

// NewRecordingDocument creates an empty recording document.
func NewRecordingDocument() *RecordingDocument {
	return &RecordingDocument{frameDuration: DefaultFrameDuration}
}

// BeginPage implements Document.
func (d *RecordingDocument) BeginPage(width, height float64) (Canvas, error) {
	if d.recorder != nil {
		return nil, ErrPageActive
	}
	d.pageWidth = width
	d.pageHeight = height
	d.havePage = true
	d.recorder = NewRecorder(width, height)
	Logger().Debug("page opened", "width", width, "height", height)
	return d.recorder, nil
}

// EndPage implements Document.
func (d *RecordingDocument) EndPage() error {
	if d.recorder == nil {
		return ErrNoPages
	}
	d.pictures = append(d.pictures, d.recorder.FinishPicture())
	d.durations = append(d.durations, d.frameDuration)
	d.recorder = nil
	Logger().Debug("page finalized", "pages", len(d.pictures))
	return nil
}

// IsDrawing implements Document.
func (d *RecordingDocument) IsDrawing() bool {
	return d.recorder != nil
}

// PageSize implements Document.
func (d *RecordingDocument) PageSize() (float64, float64, bool) {
	return d.pageWidth, d.pageHeight, d.havePage
}

// PageCount implements Document.
func (d *RecordingDocument) PageCount() int {
	return len(d.pictures)
}

// SetFrameDuration implements Document.
func (d *RecordingDocument) SetFrameDuration(seconds float64) {
	if seconds > 0 {
		d.frameDuration = seconds
	}
}

// Pictures returns the completed pages.
func (d *RecordingDocument) Pictures() []*Picture {
	return d.pictures
}
