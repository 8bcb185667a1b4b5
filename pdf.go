package drawbot

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// savePDF writes all pages into a single PDF. Each page is rasterized and
// embedded at its recorded size, so page dimensions are in points and may
// vary across the document.
func (d *RecordingDocument) savePDF(path string) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: d.pictures[0].Width(), Ht: d.pictures[0].Height()},
	})

	for i, pic := range d.pictures {
		rc := renderPicture(pic)

		var buf bytes.Buffer
		if err := rc.dc.EncodePNG(&buf); err != nil {
			return fmt.Errorf("drawbot: pdf page %d render failed: %w", i, err)
		}

		w, h := pic.Width(), pic.Height()
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		name := fmt.Sprintf("page%d", i)
		pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
		pdf.ImageOptions(name, 0, 0, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}
	Logger().Info("wrote pdf", "path", path, "pages", len(d.pictures))
	return nil
}
