package drawbot

import (
	"math"
	"testing"
)

func TestPathRect(t *testing.T) {
	p := NewPath()
	p.Rect(10, 20, 30, 40)

	els := p.Elements()
	if len(els) != 5 {
		t.Fatalf("len(Elements()) = %d, want 5", len(els))
	}
	if mv, ok := els[0].(MoveTo); !ok || mv.Point != Pt(10, 20) {
		t.Errorf("first element = %+v, want MoveTo(10, 20)", els[0])
	}
	if _, ok := els[4].(Close); !ok {
		t.Errorf("last element = %+v, want Close", els[4])
	}
}

func TestPathOvalIsClosedCurve(t *testing.T) {
	p := NewPath()
	p.Oval(0, 0, 100, 50)

	els := p.Elements()
	if len(els) != 6 {
		t.Fatalf("len(Elements()) = %d, want 6", len(els))
	}
	cubics := 0
	for _, e := range els {
		if _, ok := e.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("cubic count = %d, want 4", cubics)
	}
}

func TestPathArc(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, math.Pi)

	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("len(Elements()) = %d, want MoveTo plus 2 cubics", len(els))
	}
	mv, ok := els[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %+v, want MoveTo", els[0])
	}
	if !pointsClose(mv.Point, Pt(10, 0)) {
		t.Errorf("arc start = %+v, want (10, 0)", mv.Point)
	}
	mid, ok := els[1].(CubicTo)
	if !ok {
		t.Fatalf("second element = %+v, want CubicTo", els[1])
	}
	if !pointsClose(mid.Point, Pt(0, 10)) {
		t.Errorf("quarter point = %+v, want (0, 10)", mid.Point)
	}
	end := els[2].(CubicTo)
	if !pointsClose(end.Point, Pt(-10, 0)) {
		t.Errorf("arc end = %+v, want (-10, 0)", end.Point)
	}
}

func TestPathArcNormalizesEndAngle(t *testing.T) {
	// end below start sweeps forward by a full turn minus the difference
	p := NewPath()
	p.Arc(0, 0, 10, math.Pi/2, 0)

	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("len(Elements()) = %d, want MoveTo plus 3 cubics", len(els))
	}
	end := els[3].(CubicTo)
	if !pointsClose(end.Point, Pt(10, 0)) {
		t.Errorf("arc end = %+v, want (10, 0)", end.Point)
	}
}

func TestPathArcContinuesWithLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.Arc(50, 50, 10, 0, math.Pi/4)

	els := p.Elements()
	ln, ok := els[1].(LineTo)
	if !ok {
		t.Fatalf("second element = %+v, want LineTo to the arc start", els[1])
	}
	if !pointsClose(ln.Point, Pt(60, 50)) {
		t.Errorf("line target = %+v, want (60, 50)", ln.Point)
	}
}

func TestPathPolygon(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}

	closed := NewPath()
	closed.Polygon(pts, true)
	if _, ok := closed.Elements()[len(closed.Elements())-1].(Close); !ok {
		t.Error("closed polygon should end with Close")
	}

	open := NewPath()
	open.Polygon(pts, false)
	if _, ok := open.Elements()[len(open.Elements())-1].(Close); ok {
		t.Error("open polygon should not end with Close")
	}
}

func TestPathTransformed(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	moved := p.Transformed(Translation(10, 20))

	if mv := moved.Elements()[0].(MoveTo); mv.Point != Pt(11, 22) {
		t.Errorf("transformed MoveTo = %+v, want (11, 22)", mv.Point)
	}
	// the source path is untouched
	if mv := p.Elements()[0].(MoveTo); mv.Point != Pt(1, 2) {
		t.Errorf("source MoveTo mutated: %+v", mv.Point)
	}
}

func TestPathCloneIsolation(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)

	c := p.Clone()
	c.LineTo(5, 5)

	if len(p.Elements()) != 1 {
		t.Errorf("clone mutation leaked into source: %d elements", len(p.Elements()))
	}
}

func TestPathAppend(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	b := NewPath()
	b.LineTo(1, 1)

	a.Append(b)
	if len(a.Elements()) != 2 {
		t.Errorf("len after Append = %d, want 2", len(a.Elements()))
	}
}
