package drawbot

import "github.com/stenson/drawbot-skia/text"

// GraphicsState bundles the current fill paint, stroke paint, and text
// style. Saving pushes a deep copy onto the state stack; restoring pops it,
// so mutations inside a saved scope never leak out.
type GraphicsState struct {
	Fill   *Paint
	Stroke *Paint
	Text   *text.Style
}

// newGraphicsState returns the per-page initial state: black fill, no
// stroke, default text style. Every new page starts from this state; state
// is never inherited across pages.
func newGraphicsState() *GraphicsState {
	return &GraphicsState{
		Fill:   NewFillPaint(),
		Stroke: NewStrokePaint(),
		Text:   text.NewStyle(),
	}
}

// clone returns a deep copy of the state.
func (g *GraphicsState) clone() *GraphicsState {
	return &GraphicsState{
		Fill:   g.Fill.Clone(),
		Stroke: g.Stroke.Clone(),
		Text:   g.Text.Clone(),
	}
}

// setShadow applies a shadow to both paints; the fill paint's shadow gates
// the shadow compositing pass.
func (g *GraphicsState) setShadow(s *Shadow) {
	g.Fill.Shadow = s.Clone()
	g.Stroke.Shadow = s.Clone()
}

// clearShadow removes the shadow from both paints.
func (g *GraphicsState) clearShadow() {
	g.Fill.Shadow = nil
	g.Stroke.Shadow = nil
}
