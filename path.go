package drawbot

import "math"

// PathElement is a single path command.
type PathElement interface {
	// Transform returns the element with all points transformed by m.
	Transform(m Matrix) PathElement
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bezier curve to Point via Control.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo draws a cubic Bezier curve to Point via two control points.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close closes the current subpath.
type Close struct{}

// Transform implements PathElement.
func (e MoveTo) Transform(m Matrix) PathElement {
	return MoveTo{Point: m.TransformPoint(e.Point)}
}

// Transform implements PathElement.
func (e LineTo) Transform(m Matrix) PathElement {
	return LineTo{Point: m.TransformPoint(e.Point)}
}

// Transform implements PathElement.
func (e QuadTo) Transform(m Matrix) PathElement {
	return QuadTo{
		Control: m.TransformPoint(e.Control),
		Point:   m.TransformPoint(e.Point),
	}
}

// Transform implements PathElement.
func (e CubicTo) Transform(m Matrix) PathElement {
	return CubicTo{
		Control1: m.TransformPoint(e.Control1),
		Control2: m.TransformPoint(e.Control2),
		Point:    m.TransformPoint(e.Point),
	}
}

// Transform implements PathElement.
func (e Close) Transform(Matrix) PathElement { return e }

// Path is a sequence of path elements. It is the geometry currency between
// the drawing facade, the page recorder, and the export backends.
//
// The zero value is an empty path ready for use.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadTo adds a quadratic Bezier curve to (x, y) with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo adds a cubic Bezier curve to (x, y) with two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// kappa is the control-point distance for approximating a quarter circle
// with a cubic Bezier curve.
const kappa = 0.5522847498307936

// Oval adds a closed ellipse subpath inscribed in the rectangle (x, y, w, h).
func (p *Path) Oval(x, y, w, h float64) {
	rx := w / 2
	ry := h / 2
	cx := x + rx
	cy := y + ry
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}

// Arc adds a circular arc around (cx, cy) with radius r from angle1 to
// angle2 in radians, approximated by cubic segments of at most a quarter
// turn. The arc starts a new subpath when the path is empty and connects
// to the arc start with a line otherwise.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	segments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if segments < 1 {
		segments = 1
	}
	step := (angle2 - angle1) / float64(segments)

	sx := cx + r*math.Cos(angle1)
	sy := cy + r*math.Sin(angle1)
	if p.IsEmpty() {
		p.MoveTo(sx, sy)
	} else {
		p.LineTo(sx, sy)
	}

	for i := 0; i < segments; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment appends one cubic approximating the arc from a1 to a2.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2)
}

// Line adds an open two-point subpath.
func (p *Path) Line(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
}

// Polygon adds a subpath through the given points. When close is true the
// subpath is closed back to the first point.
func (p *Path) Polygon(points []Point, close bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if close {
		p.ClosePath()
	}
}

// Elements returns the path's elements. The returned slice must not be
// mutated by the caller.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{elements: elements}
}

// Transformed returns a new path with every point transformed by m.
func (p *Path) Transformed(m Matrix) *Path {
	elements := make([]PathElement, len(p.elements))
	for i, e := range p.elements {
		elements[i] = e.Transform(m)
	}
	return &Path{elements: elements}
}

// Append adds a copy of other's elements to p.
func (p *Path) Append(other *Path) {
	p.elements = append(p.elements, other.elements...)
}
