package drawbot

import (
	"math"

	"github.com/stenson/drawbot-skia/text"
)

// GlyphInfo is one glyph occurrence from a shaped run: glyph id and name,
// position and advance in the public coordinate frame, and optionally the
// glyph outline. Records are read-only; duplicate glyph ids within a run
// share one outline path.
type GlyphInfo struct {
	GID  text.GlyphID
	Name string
	Pos  Point
	Adv  float64
	Path *Path
}

// Drawing is a procedural drawing context: a document of pages, a
// graphics-state stack, and the canvas of the currently open page. All
// drawing calls resolve against the current graphics state.
//
// Drawing is not safe for concurrent use.
type Drawing struct {
	doc    Document
	canvas Canvas

	gstate *GraphicsState
	stack  []*GraphicsState

	flip   bool
	shaper *text.Shaper
	images *ImageCache
}

// NewDrawing creates a drawing context. With no options it records pages
// into a RecordingDocument and exposes a Y-up coordinate system.
func NewDrawing(opts ...DrawingOption) *Drawing {
	o := defaultDrawingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	doc := o.document
	if doc == nil {
		doc = NewRecordingDocument()
	}
	return &Drawing{
		doc:    doc,
		gstate: newGraphicsState(),
		flip:   o.flipCanvas,
		shaper: text.NewShaper(),
		images: NewImageCache(o.cacheSize),
	}
}

// Reset discards all pages and state and starts a fresh recording document.
func (d *Drawing) Reset() {
	d.doc = NewRecordingDocument()
	d.canvas = nil
	d.gstate = newGraphicsState()
	d.stack = nil
}

// Document returns the underlying document.
func (d *Drawing) Document() Document {
	return d.doc
}

// currentCanvas returns the open page canvas, opening a default-sized page
// first if drawing starts before any page was declared.
func (d *Drawing) currentCanvas() (Canvas, error) {
	if d.canvas == nil {
		if err := d.NewPage(DefaultPageWidth, DefaultPageHeight); err != nil {
			return nil, err
		}
	}
	return d.canvas, nil
}

// canvasMust is currentCanvas for operations without an error return;
// failures are logged and the operation becomes a no-op.
func (d *Drawing) canvasMust() Canvas {
	c, err := d.currentCanvas()
	if err != nil {
		Logger().Warn("no page canvas available", "err", err)
		return nil
	}
	return c
}

// Size declares the page size before drawing starts. Unlike NewPage it is
// rejected when a page is already open.
func (d *Drawing) Size(width, height float64) error {
	if d.doc.IsDrawing() {
		return ErrPageActive
	}
	return d.NewPage(width, height)
}

// NewPage opens a new page. An open page is finalized first and its
// graphics state discarded: state never carries over between pages. State
// configured before the first page opens applies to that page.
//
// Call it with two arguments (width, height) or none, in which case the
// previous page size is reused, or 1000x1000 if no page ever existed.
// Any other argument count is a contract violation.
func (d *Drawing) NewPage(dims ...float64) error {
	var width, height float64
	switch len(dims) {
	case 0:
		var ok bool
		width, height, ok = d.doc.PageSize()
		if !ok {
			width, height = DefaultPageWidth, DefaultPageHeight
		}
	case 2:
		width, height = dims[0], dims[1]
	default:
		return ErrPartialPageSize
	}

	if d.doc.IsDrawing() {
		if err := d.doc.EndPage(); err != nil {
			return err
		}
		// State never carries over between pages, but state configured
		// before the first page survives into it.
		d.gstate = newGraphicsState()
		d.stack = d.stack[:0]
	}

	c, err := d.doc.BeginPage(width, height)
	if err != nil {
		return err
	}
	if d.flip {
		// One-time flip: public Y-up frame over the engine's Y-down frame.
		c.Translate(0, height)
		c.Scale(1, -1)
	}
	d.canvas = c
	return nil
}

// EndDrawing finalizes any open page without exporting.
func (d *Drawing) EndDrawing() error {
	if d.doc.IsDrawing() {
		if err := d.doc.EndPage(); err != nil {
			return err
		}
	}
	d.canvas = nil
	return nil
}

// Width returns the current page width, 0 if no page was opened yet.
func (d *Drawing) Width() float64 {
	w, _, _ := d.doc.PageSize()
	return w
}

// Height returns the current page height, 0 if no page was opened yet.
func (d *Drawing) Height() float64 {
	_, h, _ := d.doc.PageSize()
	return h
}

// PageCount returns the number of pages, including a still-open one.
func (d *Drawing) PageCount() int {
	n := d.doc.PageCount()
	if d.doc.IsDrawing() {
		n++
	}
	return n
}

// FrameDuration sets the display duration in seconds for the current and
// subsequent pages in animated exports.
func (d *Drawing) FrameDuration(seconds float64) {
	d.doc.SetFrameDuration(seconds)
}

// SaveImage exports the document to path; the format is chosen by file
// extension (png, jpg, jpeg, svg, pdf, gif, mp4). A still-open page is
// finalized first.
func (d *Drawing) SaveImage(path string, opts ...ExportOption) error {
	err := d.doc.SaveImage(path, opts...)
	if !d.doc.IsDrawing() {
		d.canvas = nil
	}
	return err
}

// --- Graphics state -------------------------------------------------------

// Save pushes a copy of the graphics state and the canvas transform/clip.
// Every Save must be matched by exactly one Restore; prefer SavedState.
func (d *Drawing) Save() error {
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}
	d.stack = append(d.stack, d.gstate.clone())
	c.Save()
	return nil
}

// Restore pops the most recent Save. Restoring without a matching Save is
// a usage error.
func (d *Drawing) Restore() error {
	if len(d.stack) == 0 {
		return ErrUnbalancedRestore
	}
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}
	c.Restore()
	d.gstate = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// SavedState runs fn between a Save/Restore pair, guaranteeing the Restore
// on every exit path so paint and transform changes cannot leak.
func (d *Drawing) SavedState(fn func() error) (err error) {
	if err = d.Save(); err != nil {
		return err
	}
	defer func() {
		if rerr := d.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}

// FillPaint returns a copy of the current fill paint.
func (d *Drawing) FillPaint() Paint {
	return *d.gstate.Fill.Clone()
}

// StrokePaint returns a copy of the current stroke paint.
func (d *Drawing) StrokePaint() Paint {
	return *d.gstate.Stroke.Clone()
}

// TextStyle returns a copy of the current text style.
func (d *Drawing) TextStyle() *text.Style {
	return d.gstate.Text.Clone()
}

// SetFillColor enables filling with the given color.
func (d *Drawing) SetFillColor(c RGBA) {
	d.gstate.Fill.Color = c
	d.gstate.Fill.Disabled = false
}

// SetFillRGBA enables filling with the given components in [0, 1].
func (d *Drawing) SetFillRGBA(r, g, b, a float64) {
	d.SetFillColor(RGBA{R: r, G: g, B: b, A: a})
}

// SetFillGray enables filling with an opaque gray.
func (d *Drawing) SetFillGray(v float64) {
	d.SetFillColor(Gray(v))
}

// NoFill disables filling.
func (d *Drawing) NoFill() {
	d.gstate.Fill.Disabled = true
}

// SetStrokeColor enables stroking with the given color.
func (d *Drawing) SetStrokeColor(c RGBA) {
	d.gstate.Stroke.Color = c
	d.gstate.Stroke.Disabled = false
}

// SetStrokeRGBA enables stroking with the given components in [0, 1].
func (d *Drawing) SetStrokeRGBA(r, g, b, a float64) {
	d.SetStrokeColor(RGBA{R: r, G: g, B: b, A: a})
}

// SetStrokeGray enables stroking with an opaque gray.
func (d *Drawing) SetStrokeGray(v float64) {
	d.SetStrokeColor(Gray(v))
}

// NoStroke disables stroking.
func (d *Drawing) NoStroke() {
	d.gstate.Stroke.Disabled = true
}

// SetStrokeWidth sets the stroke line width.
func (d *Drawing) SetStrokeWidth(w float64) {
	if w > 0 {
		d.gstate.Stroke.LineWidth = w
	}
}

// SetLineCap sets the stroke line cap.
func (d *Drawing) SetLineCap(cap LineCap) {
	d.gstate.Stroke.LineCap = cap
}

// SetLineJoin sets the stroke line join.
func (d *Drawing) SetLineJoin(join LineJoin) {
	d.gstate.Stroke.LineJoin = join
}

// SetMiterLimit sets the stroke miter limit.
func (d *Drawing) SetMiterLimit(limit float64) {
	d.gstate.Stroke.MiterLimit = limit
}

// SetBlendMode sets the compositing mode for fill and stroke.
func (d *Drawing) SetBlendMode(mode BlendMode) {
	d.gstate.Fill.BlendMode = mode
	d.gstate.Stroke.BlendMode = mode
}

// SetShadow sets a drop shadow: an offset in the public coordinate frame,
// a blur radius, and a color.
func (d *Drawing) SetShadow(dx, dy, blur float64, col RGBA) {
	d.gstate.setShadow(&Shadow{Offset: Pt(dx, dy), Blur: blur, Color: col})
}

// ClearShadow removes the drop shadow.
func (d *Drawing) ClearShadow() {
	d.gstate.clearShadow()
}

// SetFont loads a font file and makes it the active font. The parsed font
// is cached per path for the lifetime of the drawing.
func (d *Drawing) SetFont(path string) error {
	f, err := d.shaper.LoadFont(path)
	if err != nil {
		return err
	}
	d.gstate.Text.Font = f
	return nil
}

// SetFontData parses font bytes and makes them the active font.
func (d *Drawing) SetFontData(data []byte) error {
	f, err := text.ParseFont(data)
	if err != nil {
		return err
	}
	d.gstate.Text.Font = f
	return nil
}

// SetFontSize sets the font size in points.
func (d *Drawing) SetFontSize(size float64) {
	if size > 0 {
		d.gstate.Text.Size = size
	}
}

// SetFontVariations sets variation axis values for variable fonts.
func (d *Drawing) SetFontVariations(axes map[string]float64) error {
	return d.gstate.Text.SetVariations(axes)
}

// SetLanguage sets the BCP 47 language tag used for shaping.
func (d *Drawing) SetLanguage(tag string) error {
	return d.gstate.Text.SetLanguage(tag)
}

// SetTextAlign sets how text runs are anchored on the text position.
func (d *Drawing) SetTextAlign(align text.Align) {
	d.gstate.Text.Align = align
}

// SetLineHeight overrides the font's natural line spacing; 0 restores it.
func (d *Drawing) SetLineHeight(h float64) {
	d.gstate.Text.LineHeight = h
}

// --- Transforms -----------------------------------------------------------

// Translate moves the origin by (x, y).
func (d *Drawing) Translate(x, y float64) {
	if c := d.canvasMust(); c != nil {
		c.Translate(x, y)
	}
}

// Scale scales uniformly around the origin.
func (d *Drawing) Scale(s float64) {
	d.ScaleXY(s, s)
}

// ScaleXY scales by (sx, sy) around the origin.
func (d *Drawing) ScaleXY(sx, sy float64) {
	if c := d.canvasMust(); c != nil {
		c.Scale(sx, sy)
	}
}

// ScaleAbout scales by (sx, sy) around the point (cx, cy).
func (d *Drawing) ScaleAbout(sx, sy, cx, cy float64) {
	if c := d.canvasMust(); c != nil {
		c.Translate(cx, cy)
		c.Scale(sx, sy)
		c.Translate(-cx, -cy)
	}
}

// Rotate rotates around the origin by an angle in degrees,
// counterclockwise in the Y-up frame.
func (d *Drawing) Rotate(degrees float64) {
	if c := d.canvasMust(); c != nil {
		c.Rotate(radians(degrees))
	}
}

// RotateAbout rotates by an angle in degrees around the point (cx, cy).
func (d *Drawing) RotateAbout(degrees, cx, cy float64) {
	if c := d.canvasMust(); c != nil {
		c.Translate(cx, cy)
		c.Rotate(radians(degrees))
		c.Translate(-cx, -cy)
	}
}

// Skew skews by angles in degrees along the x and y axes.
func (d *Drawing) Skew(xDegrees, yDegrees float64) {
	if c := d.canvasMust(); c != nil {
		c.Skew(radians(xDegrees), radians(yDegrees))
	}
}

// SkewAbout skews by angles in degrees around the point (cx, cy).
func (d *Drawing) SkewAbout(xDegrees, yDegrees, cx, cy float64) {
	if c := d.canvasMust(); c != nil {
		c.Translate(cx, cy)
		c.Skew(radians(xDegrees), radians(yDegrees))
		c.Translate(-cx, -cy)
	}
}

// Transform concatenates an arbitrary affine matrix onto the current
// transform.
func (d *Drawing) Transform(m Matrix) {
	if c := d.canvasMust(); c != nil {
		c.Concat(m)
	}
}

// TransformAbout concatenates m around the point (cx, cy).
func (d *Drawing) TransformAbout(m Matrix, cx, cy float64) {
	if c := d.canvasMust(); c != nil {
		c.Translate(cx, cy)
		c.Concat(m)
		c.Translate(-cx, -cy)
	}
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// --- Primitives -----------------------------------------------------------

// Rect draws a rectangle with origin (x, y) and the given size.
func (d *Drawing) Rect(x, y, w, h float64) error {
	p := NewPath()
	p.Rect(x, y, w, h)
	return d.drawShape(p)
}

// Oval draws an ellipse inscribed in the rectangle (x, y, w, h).
func (d *Drawing) Oval(x, y, w, h float64) error {
	p := NewPath()
	p.Oval(x, y, w, h)
	return d.drawShape(p)
}

// Arc draws a circular arc around (x, y) between two angles in degrees.
func (d *Drawing) Arc(x, y, r, startDegrees, endDegrees float64) error {
	p := NewPath()
	p.Arc(x, y, r, radians(startDegrees), radians(endDegrees))
	return d.drawShape(p)
}

// Line draws a line between two points.
func (d *Drawing) Line(x1, y1, x2, y2 float64) error {
	p := NewPath()
	p.Line(x1, y1, x2, y2)
	return d.drawShape(p)
}

// Polygon draws a closed polygon through the given points.
func (d *Drawing) Polygon(points ...Point) error {
	p := NewPath()
	p.Polygon(points, true)
	return d.drawShape(p)
}

// Polyline draws an open polygon through the given points.
func (d *Drawing) Polyline(points ...Point) error {
	p := NewPath()
	p.Polygon(points, false)
	return d.drawShape(p)
}

// DrawPath draws an arbitrary path.
func (d *Drawing) DrawPath(p *Path) error {
	return d.drawShape(p)
}

// ClipPath intersects the clip region with the path. The clip lasts until
// the enclosing Restore.
func (d *Drawing) ClipPath(p *Path) error {
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}
	c.ClipPath(p)
	return nil
}

// drawShape runs the shape through the shadow/fill/stroke compositing
// sequence on the current canvas.
func (d *Drawing) drawShape(p *Path) error {
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}
	d.compositeShape(c, p)
	return nil
}

// compositeShape renders one shape in the fixed paint order:
// shadow-fill, shadow-stroke (translated by the shadow offset, scoped),
// then fill, then stroke. Fill and stroke visibility are evaluated
// independently, and invisible paints are skipped entirely.
func (d *Drawing) compositeShape(c Canvas, p *Path) {
	fill := d.gstate.Fill
	stroke := d.gstate.Stroke

	if shadowFill := fill.ShadowVariant(); shadowFill != nil {
		shadowStroke := stroke.ShadowVariant()
		offset := fill.Shadow.Offset
		c.Save()
		c.Translate(offset.X, offset.Y)
		if fill.SomethingToDraw() {
			c.DrawPath(p, shadowFill)
		}
		if stroke.SomethingToDraw() && shadowStroke != nil {
			c.DrawPath(p, shadowStroke)
		}
		c.Restore()
	}

	if fill.SomethingToDraw() {
		c.DrawPath(p, fill)
	}
	if stroke.SomethingToDraw() {
		c.DrawPath(p, stroke)
	}
}

// --- Text -----------------------------------------------------------------

// TextSize shapes txt under the active text style and returns the advance
// width of the shaped run and the line spacing.
func (d *Drawing) TextSize(txt string) (width, lineHeight float64, err error) {
	if txt == "" {
		return 0, 0, nil
	}
	run, err := d.shaper.Shape(txt, d.gstate.Text)
	if err != nil {
		return 0, 0, err
	}
	lineHeight = run.LineSpacing
	if d.gstate.Text.LineHeight > 0 {
		lineHeight = d.gstate.Text.LineHeight
	}
	return run.Advance, lineHeight, nil
}

// Text shapes and draws txt with its baseline origin at (x, y), honoring
// the active alignment unless a TextOption overrides it. Empty input is a
// no-op: the shaping and rendering engines are never invoked.
func (d *Drawing) Text(txt string, x, y float64, opts ...TextOption) error {
	if txt == "" {
		return nil
	}
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}

	style := d.gstate.Text
	if o.hasAlign && o.align != style.Align {
		style = style.Clone()
		style.Align = o.align
	}
	run, err := d.shaper.Shape(txt, style)
	if err != nil {
		return err
	}
	blob, err := d.textBlobPath(run, style)
	if err != nil {
		return err
	}

	// Glyph outlines are in the engine's Y-down frame; place them inside a
	// scoped counter-flip so the ambient flip is preserved for siblings.
	c.Save()
	c.Translate(x, y)
	if d.flip {
		c.Scale(1, -1)
	}
	d.compositeShape(c, blob)
	c.Restore()
	return nil
}

// textBlobPath builds the renderable text blob: every glyph outline
// translated to its shaped position, alignment applied as an x shift.
// Each unique glyph id is resolved at most once.
func (d *Drawing) textBlobPath(run *text.Run, style *text.Style) (*Path, error) {
	fnt, err := style.ResolvedFont()
	if err != nil {
		return nil, err
	}
	dx := alignOffset(style.Align, run.Advance)

	cache := make(map[text.GlyphID]*Path)
	blob := NewPath()
	for _, g := range run.Glyphs {
		gp, ok := cache[g.GID]
		if !ok {
			outline, err := fnt.GlyphOutline(g.GID, style.Size)
			if err != nil {
				return nil, err
			}
			gp = pathFromOutline(outline)
			cache[g.GID] = gp
		}
		if gp.IsEmpty() {
			continue
		}
		blob.Append(gp.Transformed(Translation(dx+g.X, g.Y)))
	}
	return blob, nil
}

// Glyphs shapes txt and returns one record per glyph occurrence. When
// withPaths is true each record carries the glyph outline flipped into the
// public coordinate frame; duplicate glyph ids share one path.
func (d *Drawing) Glyphs(txt string, withPaths bool) ([]GlyphInfo, error) {
	if txt == "" {
		return nil, nil
	}
	style := d.gstate.Text
	fnt, err := style.ResolvedFont()
	if err != nil {
		return nil, err
	}
	run, err := d.shaper.Shape(txt, style)
	if err != nil {
		return nil, err
	}

	var cache map[text.GlyphID]*Path
	if withPaths {
		cache = make(map[text.GlyphID]*Path)
	}
	flip := Scaling(1, -1)

	infos := make([]GlyphInfo, 0, len(run.Glyphs))
	for _, g := range run.Glyphs {
		info := GlyphInfo{
			GID:  g.GID,
			Name: fnt.GlyphName(g.GID),
			Pos:  Pt(g.X, -g.Y),
			Adv:  g.Advance,
		}
		if withPaths {
			p, ok := cache[g.GID]
			if !ok {
				outline, err := fnt.GlyphOutline(g.GID, style.Size)
				if err != nil {
					return nil, err
				}
				p = pathFromOutline(outline).Transformed(flip)
				cache[g.GID] = p
			}
			if !p.IsEmpty() {
				info.Path = p
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// alignOffset converts an alignment into the x shift applied to a run.
func alignOffset(a text.Align, advance float64) float64 {
	switch a {
	case text.AlignCenter:
		return -advance / 2
	case text.AlignRight:
		return -advance
	default:
		return 0
	}
}

// pathFromOutline converts outline segments to a Path in glyph space.
func pathFromOutline(o *text.Outline) *Path {
	p := NewPath()
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.SegmentOpMoveTo:
			p.MoveTo(seg.Points[0].X, seg.Points[0].Y)
		case text.SegmentOpLineTo:
			p.LineTo(seg.Points[0].X, seg.Points[0].Y)
		case text.SegmentOpQuadTo:
			p.QuadTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y)
		case text.SegmentOpCubicTo:
			p.CubicTo(seg.Points[0].X, seg.Points[0].Y,
				seg.Points[1].X, seg.Points[1].Y,
				seg.Points[2].X, seg.Points[2].Y)
		}
	}
	return p
}

// --- Images ---------------------------------------------------------------

// Image places an image file anchored at its top-left corner at (x, y) in
// the public frame. Decoded images are cached per path for the lifetime of
// the drawing. The fill paint's blend mode applies.
func (d *Drawing) Image(path string, x, y float64, opts ...ImageOption) error {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img, err := d.images.Get(path)
	if err != nil {
		return err
	}
	// Same rule as paints: fully transparent means nothing to draw. The
	// engine treats opacity 0 as "use the default", so it never gets there.
	if o.alpha == 0 {
		return nil
	}
	c, err := d.currentCanvas()
	if err != nil {
		return err
	}

	// The image renders downward from its top-left corner in the engine
	// frame, so step up by its height before the local counter-flip.
	h := float64(img.Bounds().Dy())
	c.Save()
	c.Translate(x, y+h)
	if d.flip {
		c.Scale(1, -1)
	}
	c.DrawImage(img, ImagePlacement{Alpha: o.alpha, Blend: d.gstate.Fill.BlendMode})
	c.Restore()
	return nil
}
