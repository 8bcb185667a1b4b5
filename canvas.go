package drawbot

import "image"

// ImagePlacement carries the paint-level options for placing a bitmap.
// Position is taken from the canvas transform; the image's top-left corner
// lands at the local origin.
type ImagePlacement struct {
	// Alpha is a uniform opacity multiplier in [0, 1].
	Alpha float64

	// Blend is the compositing mode, inherited from the fill paint.
	Blend BlendMode
}

// Canvas is the rendering-engine surface the drawing facade draws against.
// One canvas corresponds to one open page. Implementations maintain a
// transform/clip stack with strictly nested Save/Restore semantics.
//
// The page recorder implements Canvas to capture a display list; the export
// backends implement it to replay that display list onto a concrete engine
// (gogpu/gg pixmaps, SVG, ...).
type Canvas interface {
	// Save pushes the current transform and clip. Restore pops it.
	Save()
	Restore()

	// Translate, Scale, Rotate (radians), Skew (shear factors), and Concat
	// compose onto the current transform.
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(radians float64)
	Skew(fx, fy float64)
	Concat(m Matrix)

	// ClipPath intersects the clip region with the path under the current
	// transform. The clip is dropped by the enclosing Restore.
	ClipPath(p *Path)

	// DrawPath draws the path with the given paint under the current
	// transform. The paint decides fill versus stroke.
	DrawPath(p *Path, paint *Paint)

	// DrawImage draws the image with its top-left corner at the local
	// origin under the current transform.
	DrawImage(img image.Image, placement ImagePlacement)
}
