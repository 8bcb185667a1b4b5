package drawbot

// PaintKind distinguishes fill paints from stroke paints.
type PaintKind int

const (
	// PaintFill fills path interiors.
	PaintFill PaintKind = iota
	// PaintStroke strokes path outlines.
	PaintStroke
)

// LineCap specifies the shape of stroked line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of stroked line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// BlendMode defines how drawn pixels are combined with the destination.
// The set matches what the gg rendering engine can composite.
type BlendMode int

const (
	// BlendNormal performs standard source-over alpha blending.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination colors.
	BlendMultiply
	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen
	// BlendOverlay combines multiply and screen based on destination brightness.
	BlendOverlay
)

// String returns the CSS name of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	default:
		return "normal"
	}
}

// Shadow describes a drop shadow: an offset in the public coordinate frame,
// a blur radius, and a color. A nil *Shadow on a Paint means no shadow.
type Shadow struct {
	Offset Point
	Blur   float64
	Color  RGBA
}

// Clone returns a copy of the shadow.
func (s *Shadow) Clone() *Shadow {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Paint is the styling half of every draw call: one Paint describes either
// the fill or the stroke of a shape. A Paint whose SomethingToDraw method
// reports false is skipped entirely, it never reaches a canvas.
type Paint struct {
	// Kind selects fill or stroke behavior.
	Kind PaintKind

	// Color is the paint color including alpha.
	Color RGBA

	// Disabled marks a paint switched off via NoFill/NoStroke.
	Disabled bool

	// BlendMode is the compositing mode.
	BlendMode BlendMode

	// Shadow is the optional drop shadow.
	Shadow *Shadow

	// Stroke geometry. Ignored for fill paints.
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	// shadowPass marks a derived paint used for the shadow compositing
	// pass, so raster backends know to apply the blur.
	shadowPass bool
	shadowBlur float64
}

// NewFillPaint returns the default fill paint: opaque black, as in DrawBot.
func NewFillPaint() *Paint {
	return &Paint{
		Kind:  PaintFill,
		Color: Black,
	}
}

// NewStrokePaint returns the default stroke paint: disabled, with DrawBot's
// default stroke geometry once enabled.
func NewStrokePaint() *Paint {
	return &Paint{
		Kind:       PaintStroke,
		Color:      Black,
		Disabled:   true,
		LineWidth:  1,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10,
	}
}

// Clone creates a copy of the Paint, including its shadow.
func (p *Paint) Clone() *Paint {
	c := *p
	c.Shadow = p.Shadow.Clone()
	return &c
}

// SomethingToDraw reports whether drawing with this paint would produce any
// visible output. Invisible paints are skipped rather than drawn as
// transparent no-ops, to avoid wasted rasterization calls.
func (p *Paint) SomethingToDraw() bool {
	return !p.Disabled && p.Color.A > 0
}

// ShadowVariant returns a copy of the paint recolored for the shadow pass.
// Returns nil if the paint carries no shadow.
func (p *Paint) ShadowVariant() *Paint {
	if p.Shadow == nil {
		return nil
	}
	c := p.Clone()
	c.Color = p.Shadow.Color
	c.shadowPass = true
	c.shadowBlur = p.Shadow.Blur
	c.Shadow = nil
	return c
}

// IsShadowPass reports whether this paint was derived for a shadow pass.
func (p *Paint) IsShadowPass() bool { return p.shadowPass }

// ShadowPassBlur returns the blur radius for a shadow-pass paint.
func (p *Paint) ShadowPassBlur() float64 { return p.shadowBlur }
