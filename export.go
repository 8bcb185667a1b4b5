package drawbot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SaveImage implements Document. The export format is chosen by the file
// extension. Raster and SVG formats write one file per page, with "_N"
// suffixes (zero-based) when the document has more than one page; PDF,
// GIF, and MP4 always produce a single artifact holding all pages.
func (d *RecordingDocument) SaveImage(path string, opts ...ExportOption) error {
	if d.recorder != nil {
		if err := d.EndPage(); err != nil {
			return err
		}
	}
	if len(d.pictures) == 0 {
		return ErrNoPages
	}

	o := defaultExportOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	Logger().Debug("exporting document", "path", path, "format", ext, "pages", len(d.pictures))

	switch ext {
	case "png":
		return d.savePNG(path, o)
	case "jpg", "jpeg":
		return d.saveJPEG(path, o)
	case "svg":
		return d.saveSVG(path)
	case "pdf":
		return d.savePDF(path)
	case "gif":
		return d.saveGIF(path)
	case "mp4":
		return d.saveMP4(path, o)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// pagePaths expands an output path into one path per page: the path itself
// for a single page, "base_N.ext" otherwise.
func pagePaths(path string, n int) []string {
	if n == 1 {
		return []string{path}
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
	return paths
}
