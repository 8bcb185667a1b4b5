package drawbot

import "image"

// displayOp is one recorded canvas operation.
type displayOp interface {
	replay(c Canvas)
}

type opSave struct{}
type opRestore struct{}

type opTranslate struct{ x, y float64 }
type opScale struct{ sx, sy float64 }
type opRotate struct{ radians float64 }
type opSkew struct{ fx, fy float64 }
type opConcat struct{ m Matrix }

type opClipPath struct{ path *Path }

type opDrawPath struct {
	path  *Path
	paint *Paint
}

type opDrawImage struct {
	img       image.Image
	placement ImagePlacement
}

func (opSave) replay(c Canvas)         { c.Save() }
func (opRestore) replay(c Canvas)      { c.Restore() }
func (o opTranslate) replay(c Canvas)  { c.Translate(o.x, o.y) }
func (o opScale) replay(c Canvas)      { c.Scale(o.sx, o.sy) }
func (o opRotate) replay(c Canvas)     { c.Rotate(o.radians) }
func (o opSkew) replay(c Canvas)       { c.Skew(o.fx, o.fy) }
func (o opConcat) replay(c Canvas)     { c.Concat(o.m) }
func (o opClipPath) replay(c Canvas)   { c.ClipPath(o.path) }
func (o opDrawPath) replay(c Canvas)   { c.DrawPath(o.path, o.paint) }
func (o opDrawImage) replay(c Canvas)  { c.DrawImage(o.img, o.placement) }

// Recorder is a Canvas that captures operations into a display list.
// It is the canvas handed to the drawing facade while a page is open;
// FinishPicture seals the list into an immutable Picture.
type Recorder struct {
	ops    []displayOp
	width  float64
	height float64
}

// NewRecorder creates a recorder for a page of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// Save implements Canvas.
func (r *Recorder) Save() { r.ops = append(r.ops, opSave{}) }

// Restore implements Canvas.
func (r *Recorder) Restore() { r.ops = append(r.ops, opRestore{}) }

// Translate implements Canvas.
func (r *Recorder) Translate(x, y float64) {
	r.ops = append(r.ops, opTranslate{x: x, y: y})
}

// Scale implements Canvas.
func (r *Recorder) Scale(sx, sy float64) {
	r.ops = append(r.ops, opScale{sx: sx, sy: sy})
}

// Rotate implements Canvas.
func (r *Recorder) Rotate(radians float64) {
	r.ops = append(r.ops, opRotate{radians: radians})
}

// Skew implements Canvas.
func (r *Recorder) Skew(fx, fy float64) {
	r.ops = append(r.ops, opSkew{fx: fx, fy: fy})
}

// Concat implements Canvas.
func (r *Recorder) Concat(m Matrix) {
	r.ops = append(r.ops, opConcat{m: m})
}

// ClipPath implements Canvas. The path is cloned so later caller mutations
// cannot alter the recording.
func (r *Recorder) ClipPath(p *Path) {
	r.ops = append(r.ops, opClipPath{path: p.Clone()})
}

// DrawPath implements Canvas. Path and paint are cloned into the recording.
func (r *Recorder) DrawPath(p *Path, paint *Paint) {
	r.ops = append(r.ops, opDrawPath{path: p.Clone(), paint: paint.Clone()})
}

// DrawImage implements Canvas.
func (r *Recorder) DrawImage(img image.Image, placement ImagePlacement) {
	r.ops = append(r.ops, opDrawImage{img: img, placement: placement})
}

// FinishPicture seals the recording into a Picture. The recorder must not
// be used afterwards.
func (r *Recorder) FinishPicture() *Picture {
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &Picture{ops: ops, width: r.width, height: r.height}
}

// Picture is an immutable recorded page. It can be replayed onto any Canvas
// implementation, once per export backend.
type Picture struct {
	ops    []displayOp
	width  float64
	height float64
}

// Width returns the page width the picture was recorded at.
func (p *Picture) Width() float64 { return p.width }

// Height returns the page height the picture was recorded at.
func (p *Picture) Height() float64 { return p.height }

// Replay plays the recorded operations onto the given canvas in order.
func (p *Picture) Replay(c Canvas) {
	for _, op := range p.ops {
		op.replay(c)
	}
}

// DrawOps returns the number of recorded draw calls (paths and images),
// excluding state and transform operations. A shape whose paints had
// nothing to draw contributes zero.
func (p *Picture) DrawOps() int {
	n := 0
	for _, op := range p.ops {
		switch op.(type) {
		case opDrawPath, opDrawImage:
			n++
		}
	}
	return n
}
