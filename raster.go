package drawbot

import (
	"image"
	"math"
	"os"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
)

// rasterCanvas replays a display list onto a gogpu/gg software context.
// It is the Canvas behind the PNG, JPEG, PDF, GIF, and MP4 exports.
type rasterCanvas struct {
	dc     *gg.Context
	width  int
	height int
}

func newRasterCanvas(width, height float64) *rasterCanvas {
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &rasterCanvas{
		dc:     gg.NewContext(w, h),
		width:  w,
		height: h,
	}
}

// renderPicture rasterizes a recorded page.
func renderPicture(pic *Picture) *rasterCanvas {
	rc := newRasterCanvas(pic.Width(), pic.Height())
	pic.Replay(rc)
	return rc
}

// Save implements Canvas.
func (c *rasterCanvas) Save() { c.dc.Push() }

// Restore implements Canvas.
func (c *rasterCanvas) Restore() { c.dc.Pop() }

// Translate implements Canvas.
func (c *rasterCanvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Scale implements Canvas.
func (c *rasterCanvas) Scale(sx, sy float64) { c.dc.Scale(sx, sy) }

// Rotate implements Canvas.
func (c *rasterCanvas) Rotate(radians float64) { c.dc.Rotate(radians) }

// Skew implements Canvas.
func (c *rasterCanvas) Skew(fx, fy float64) { c.dc.Shear(fx, fy) }

// Concat implements Canvas.
func (c *rasterCanvas) Concat(m Matrix) {
	c.dc.Transform(gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
}

// ClipPath implements Canvas.
func (c *rasterCanvas) ClipPath(p *Path) {
	buildEnginePath(c.dc, p)
	c.dc.Clip()
}

// DrawPath implements Canvas. Shadow-pass paints with a blur radius take
// the offscreen blur route; everything else paints directly.
func (c *rasterCanvas) DrawPath(p *Path, paint *Paint) {
	if paint.IsShadowPass() && paint.ShadowPassBlur() > 0 {
		c.drawBlurredPath(p, paint)
		return
	}
	paintEnginePath(c.dc, p, paint)
}

// DrawImage implements Canvas.
func (c *rasterCanvas) DrawImage(img image.Image, placement ImagePlacement) {
	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		Opacity:   placement.Alpha,
		BlendMode: engineBlendMode(placement.Blend),
	})
}

// drawBlurredPath renders the path into an offscreen context sharing the
// current transform, gaussian-blurs the result, and composites it back in
// device space so the main context's clip still applies.
func (c *rasterCanvas) drawBlurredPath(p *Path, paint *Paint) {
	off := gg.NewContext(c.width, c.height)
	off.SetTransform(c.dc.GetTransform())
	paintEnginePath(off, p, paint)

	blurred := blur.Gaussian(off.Image(), paint.ShadowPassBlur())

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImageEx(gg.ImageBufFromImage(blurred), gg.DrawImageOptions{
		Opacity:   1,
		BlendMode: engineBlendMode(paint.BlendMode),
	})
	c.dc.Pop()
}

// paintEnginePath fills or strokes one path with one paint. Non-normal
// blend modes render through a compositing layer.
func paintEnginePath(dc *gg.Context, p *Path, paint *Paint) {
	layered := paint.BlendMode != BlendNormal
	if layered {
		dc.PushLayer(engineBlendMode(paint.BlendMode), 1)
	}

	buildEnginePath(dc, p)
	col := paint.Color
	dc.SetRGBA(col.R, col.G, col.B, col.A)

	var err error
	if paint.Kind == PaintStroke {
		dc.SetLineWidth(paint.LineWidth)
		dc.SetLineCap(engineLineCap(paint.LineCap))
		dc.SetLineJoin(engineLineJoin(paint.LineJoin))
		dc.SetMiterLimit(paint.MiterLimit)
		err = dc.Stroke()
	} else {
		err = dc.Fill()
	}
	if err != nil {
		Logger().Warn("raster draw failed", "kind", paint.Kind, "err", err)
	}

	if layered {
		dc.PopLayer()
	}
}

// buildEnginePath loads a path into the context's current path.
func buildEnginePath(dc *gg.Context, p *Path) {
	dc.ClearPath()
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y,
				e.Point.X, e.Point.Y)
		case Close:
			dc.ClosePath()
		}
	}
}

func engineLineCap(c LineCap) gg.LineCap {
	switch c {
	case LineCapRound:
		return gg.LineCapRound
	case LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func engineLineJoin(j LineJoin) gg.LineJoin {
	switch j {
	case LineJoinRound:
		return gg.LineJoinRound
	case LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func engineBlendMode(b BlendMode) gg.BlendMode {
	switch b {
	case BlendMultiply:
		return gg.BlendMultiply
	case BlendScreen:
		return gg.BlendScreen
	case BlendOverlay:
		return gg.BlendOverlay
	default:
		return gg.BlendNormal
	}
}

// savePNG writes one PNG per page.
func (d *RecordingDocument) savePNG(path string, _ exportOptions) error {
	paths := pagePaths(path, len(d.pictures))
	for i, pic := range d.pictures {
		rc := renderPicture(pic)
		if err := writePNG(paths[i], rc.dc); err != nil {
			return err
		}
		Logger().Info("wrote png", "path", paths[i])
	}
	return nil
}

// saveJPEG writes one JPEG per page, flattened onto a white background
// since JPEG has no alpha channel.
func (d *RecordingDocument) saveJPEG(path string, o exportOptions) error {
	paths := pagePaths(path, len(d.pictures))
	for i, pic := range d.pictures {
		rc := newRasterCanvas(pic.Width(), pic.Height())
		rc.dc.ClearWithColor(gg.White)
		pic.Replay(rc)

		f, err := os.Create(paths[i])
		if err != nil {
			return err
		}
		if err := rc.dc.EncodeJPEG(f, o.jpegQuality); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		Logger().Info("wrote jpeg", "path", paths[i], "quality", o.jpegQuality)
	}
	return nil
}

func writePNG(path string, dc *gg.Context) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
