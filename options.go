package drawbot

import "github.com/stenson/drawbot-skia/text"

// DrawingOption configures a Drawing during creation.
//
// Example:
//
//	// Default: recording document, Y-up coordinates
//	db := drawbot.NewDrawing()
//
//	// Engine-native Y-down coordinates
//	db := drawbot.NewDrawing(drawbot.WithoutFlip())
type DrawingOption func(*drawingOptions)

type drawingOptions struct {
	document   Document
	flipCanvas bool
	cacheSize  int
}

func defaultDrawingOptions() drawingOptions {
	return drawingOptions{
		document:   nil, // RecordingDocument is created if nil
		flipCanvas: true,
		cacheSize:  defaultImageCacheSize,
	}
}

// WithDocument injects a custom Document implementation.
func WithDocument(doc Document) DrawingOption {
	return func(o *drawingOptions) {
		o.document = doc
	}
}

// WithoutFlip disables the Y-up public coordinate system; drawing happens
// directly in the engine's Y-down frame.
func WithoutFlip() DrawingOption {
	return func(o *drawingOptions) {
		o.flipCanvas = false
	}
}

// WithImageCacheSize sets the capacity of the per-drawing image decode
// cache. Values below 1 are ignored.
func WithImageCacheSize(n int) DrawingOption {
	return func(o *drawingOptions) {
		if n >= 1 {
			o.cacheSize = n
		}
	}
}

// ImageOption configures a single Image call.
type ImageOption func(*imageOptions)

type imageOptions struct {
	alpha float64
}

func defaultImageOptions() imageOptions {
	return imageOptions{alpha: 1}
}

// WithImageAlpha applies a uniform opacity in [0, 1] to the placed image.
func WithImageAlpha(alpha float64) ImageOption {
	return func(o *imageOptions) {
		if alpha < 0 {
			alpha = 0
		}
		if alpha > 1 {
			alpha = 1
		}
		o.alpha = alpha
	}
}

// TextOption adjusts a single Text call without touching the active style.
type TextOption func(*textOptions)

type textOptions struct {
	align    text.Align
	hasAlign bool
}

// WithTextAlign overrides the alignment for one Text call.
func WithTextAlign(a text.Align) TextOption {
	return func(o *textOptions) {
		o.align = a
		o.hasAlign = true
	}
}

// ExportOption configures a SaveImage call.
type ExportOption func(*exportOptions)

type exportOptions struct {
	jpegQuality int
	codec       string
	ffmpegPath  string
	frameRate   float64
}

func defaultExportOptions() exportOptions {
	return exportOptions{
		jpegQuality: 95,
		codec:       "libx264",
		ffmpegPath:  "ffmpeg",
	}
}

// WithJPEGQuality sets the JPEG encode quality (1-100, default 95).
func WithJPEGQuality(q int) ExportOption {
	return func(o *exportOptions) {
		if q >= 1 && q <= 100 {
			o.jpegQuality = q
		}
	}
}

// WithCodec selects the video codec passed to ffmpeg (default "libx264").
func WithCodec(codec string) ExportOption {
	return func(o *exportOptions) {
		if codec != "" {
			o.codec = codec
		}
	}
}

// WithFFmpegPath overrides the ffmpeg executable used for video export.
func WithFFmpegPath(path string) ExportOption {
	return func(o *exportOptions) {
		if path != "" {
			o.ffmpegPath = path
		}
	}
}

// WithFrameRate forces the video frame rate instead of deriving it from the
// document's frame durations.
func WithFrameRate(fps float64) ExportOption {
	return func(o *exportOptions) {
		if fps > 0 {
			o.frameRate = fps
		}
	}
}
