package drawbot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// svgCanvas replays a display list into an SVG document. svgo has no
// transform or clip stack of its own, so the canvas tracks the CTM and
// flattens all geometry into page coordinates; clips become <clipPath>
// definitions applied through nested groups.
type svgCanvas struct {
	doc *svg.SVG

	ctm      Matrix
	ctmStack []Matrix

	// groups opened since each Save, closed again by the matching Restore.
	groupStack []int
	clipSerial int
}

func newSVGCanvas(doc *svg.SVG) *svgCanvas {
	return &svgCanvas{doc: doc, ctm: Identity()}
}

// saveSVG writes one SVG file per page.
func (d *RecordingDocument) saveSVG(path string) error {
	paths := pagePaths(path, len(d.pictures))
	for i, pic := range d.pictures {
		f, err := os.Create(paths[i])
		if err != nil {
			return err
		}
		doc := svg.New(f)
		doc.Start(int(pic.Width()), int(pic.Height()))
		pic.Replay(newSVGCanvas(doc))
		doc.End()
		if err := f.Close(); err != nil {
			return err
		}
		Logger().Info("wrote svg", "path", paths[i])
	}
	return nil
}

// Save implements Canvas.
func (c *svgCanvas) Save() {
	c.ctmStack = append(c.ctmStack, c.ctm)
	c.groupStack = append(c.groupStack, 0)
}

// Restore implements Canvas.
func (c *svgCanvas) Restore() {
	if len(c.ctmStack) == 0 {
		return
	}
	c.ctm = c.ctmStack[len(c.ctmStack)-1]
	c.ctmStack = c.ctmStack[:len(c.ctmStack)-1]

	n := c.groupStack[len(c.groupStack)-1]
	c.groupStack = c.groupStack[:len(c.groupStack)-1]
	for ; n > 0; n-- {
		c.doc.Gend()
	}
}

// Translate implements Canvas.
func (c *svgCanvas) Translate(x, y float64) {
	c.ctm = c.ctm.Multiply(Translation(x, y))
}

// Scale implements Canvas.
func (c *svgCanvas) Scale(sx, sy float64) {
	c.ctm = c.ctm.Multiply(Scaling(sx, sy))
}

// Rotate implements Canvas.
func (c *svgCanvas) Rotate(radians float64) {
	c.ctm = c.ctm.Multiply(Rotation(radians))
}

// Skew implements Canvas.
func (c *svgCanvas) Skew(fx, fy float64) {
	c.ctm = c.ctm.Multiply(Shearing(fx, fy))
}

// Concat implements Canvas.
func (c *svgCanvas) Concat(m Matrix) {
	c.ctm = c.ctm.Multiply(m)
}

// ClipPath implements Canvas. The clip is emitted as a definition and
// applied by opening a group that the enclosing Restore closes.
func (c *svgCanvas) ClipPath(p *Path) {
	id := fmt.Sprintf("clip%d", c.clipSerial)
	c.clipSerial++

	c.doc.Def()
	c.doc.ClipPath(`id="` + id + `"`)
	c.doc.Path(c.pathData(p))
	c.doc.ClipEnd()
	c.doc.DefEnd()

	c.doc.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	if len(c.groupStack) > 0 {
		c.groupStack[len(c.groupStack)-1]++
	}
}

// DrawPath implements Canvas.
func (c *svgCanvas) DrawPath(p *Path, paint *Paint) {
	if paint.IsShadowPass() && paint.ShadowPassBlur() > 0 {
		Logger().Warn("svg export ignores shadow blur", "blur", paint.ShadowPassBlur())
	}
	c.doc.Path(c.pathData(p), c.paintStyle(paint))
}

// DrawImage implements Canvas. The pixels are embedded as a PNG data URI
// and positioned by the CTM.
func (c *svgCanvas) DrawImage(img image.Image, placement ImagePlacement) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		Logger().Warn("svg image encode failed", "err", err)
		return
	}
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	var attrs []string
	if placement.Alpha < 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%s"`, fmtFloat(placement.Alpha)))
	}
	if placement.Blend != BlendNormal {
		attrs = append(attrs, fmt.Sprintf(`style="mix-blend-mode:%s"`, placement.Blend))
	}

	m := c.ctm
	c.doc.Gtransform(fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)",
		fmtFloat(m.A), fmtFloat(m.D), fmtFloat(m.B),
		fmtFloat(m.E), fmtFloat(m.C), fmtFloat(m.F)))
	b := img.Bounds()
	c.doc.Image(0, 0, b.Dx(), b.Dy(), href, attrs...)
	c.doc.Gend()
}

// pathData flattens a path through the CTM into an SVG path data string.
func (c *svgCanvas) pathData(p *Path) string {
	var sb strings.Builder
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			pt := c.ctm.TransformPoint(e.Point)
			fmt.Fprintf(&sb, "M%s %s", fmtFloat(pt.X), fmtFloat(pt.Y))
		case LineTo:
			pt := c.ctm.TransformPoint(e.Point)
			fmt.Fprintf(&sb, "L%s %s", fmtFloat(pt.X), fmtFloat(pt.Y))
		case QuadTo:
			ctl := c.ctm.TransformPoint(e.Control)
			pt := c.ctm.TransformPoint(e.Point)
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				fmtFloat(ctl.X), fmtFloat(ctl.Y), fmtFloat(pt.X), fmtFloat(pt.Y))
		case CubicTo:
			c1 := c.ctm.TransformPoint(e.Control1)
			c2 := c.ctm.TransformPoint(e.Control2)
			pt := c.ctm.TransformPoint(e.Point)
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				fmtFloat(c1.X), fmtFloat(c1.Y),
				fmtFloat(c2.X), fmtFloat(c2.Y),
				fmtFloat(pt.X), fmtFloat(pt.Y))
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// paintStyle renders a paint as SVG presentation attributes. Geometry is
// already in page coordinates, so stroke widths carry the CTM's scale.
func (c *svgCanvas) paintStyle(p *Paint) string {
	col := p.Color.Color().(color.NRGBA)
	css := fmt.Sprintf("rgb(%d,%d,%d)", col.R, col.G, col.B)

	var parts []string
	if p.Kind == PaintStroke {
		parts = append(parts,
			`fill="none"`,
			fmt.Sprintf(`stroke="%s"`, css),
			fmt.Sprintf(`stroke-width="%s"`, fmtFloat(p.LineWidth*c.ctm.ScaleFactor())),
			fmt.Sprintf(`stroke-linecap="%s"`, svgLineCap(p.LineCap)),
			fmt.Sprintf(`stroke-linejoin="%s"`, svgLineJoin(p.LineJoin)),
			fmt.Sprintf(`stroke-miterlimit="%s"`, fmtFloat(p.MiterLimit)),
		)
		if p.Color.A < 1 {
			parts = append(parts, fmt.Sprintf(`stroke-opacity="%s"`, fmtFloat(p.Color.A)))
		}
	} else {
		parts = append(parts, fmt.Sprintf(`fill="%s"`, css))
		if p.Color.A < 1 {
			parts = append(parts, fmt.Sprintf(`fill-opacity="%s"`, fmtFloat(p.Color.A)))
		}
	}
	if p.BlendMode != BlendNormal {
		parts = append(parts, fmt.Sprintf(`style="mix-blend-mode:%s"`, p.BlendMode))
	}
	return strings.Join(parts, " ")
}

func svgLineCap(c LineCap) string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func svgLineJoin(j LineJoin) string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// fmtFloat formats a coordinate compactly, trimming trailing zeros.
func fmtFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
