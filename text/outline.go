package text

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Point is a 2D point in glyph space. Glyph space is Y-down with the
// origin on the baseline; callers flip it into their own frame.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of an outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo moves to a new point without drawing.
	SegmentOpMoveTo SegmentOp = iota
	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo
	// SegmentOpQuadTo draws a quadratic Bezier curve.
	SegmentOpQuadTo
	// SegmentOpCubicTo draws a cubic Bezier curve.
	SegmentOpCubicTo
)

// Segment is one outline path segment.
//   - MoveTo/LineTo: Points[0] is the target
//   - QuadTo: Points[0] is the control, Points[1] the target
//   - CubicTo: Points[0] and Points[1] are controls, Points[2] the target
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Outline is a glyph's vector outline at a specific size, as closed
// contours of segments. Empty for blank glyphs such as the space.
type Outline struct {
	GID      GlyphID
	Segments []Segment
	Advance  float64
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// GlyphOutline extracts the outline for a glyph at the given size in
// points. Blank glyphs yield an outline with no segments but a valid
// advance.
func (f *Font) GlyphOutline(gid GlyphID, size float64) (*Outline, error) {
	ppem := fixed.Int26_6(size * 64)

	segments, err := f.sfnt.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("text: glyph %d outline failed: %w", gid, err)
	}

	outline := &Outline{
		GID:     gid,
		Advance: f.glyphAdvance(gid, ppem),
	}
	if len(segments) == 0 {
		return outline, nil
	}

	outline.Segments = make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Points[0] = fixedPoint(seg.Args[0])
			out.Points[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Points[0] = fixedPoint(seg.Args[0])
			out.Points[1] = fixedPoint(seg.Args[1])
			out.Points[2] = fixedPoint(seg.Args[2])
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}

// glyphAdvance returns the advance width for a glyph, 0 if unavailable.
func (f *Font) glyphAdvance(gid GlyphID, ppem fixed.Int26_6) float64 {
	advance, err := f.sfnt.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// fixedPoint converts a fixed.Point26_6 to a Point.
func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
