package drawbot

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// saveGIF writes all pages as a single animated GIF, one frame per page.
// Per-page frame durations map to GIF delays in hundredths of a second.
func (d *RecordingDocument) saveGIF(path string) error {
	anim := &gif.GIF{}

	for i, pic := range d.pictures {
		rc := renderPicture(pic)
		src := rc.dc.Image()

		pal := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, src.Bounds(), src, image.Point{})

		delay := int(d.durations[i] * 100)
		if delay < 1 {
			delay = 1
		}
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Info("wrote gif", "path", path, "frames", len(anim.Image))
	return nil
}
