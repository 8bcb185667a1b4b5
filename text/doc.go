// Package text bridges the drawing facade to the text engines: HarfBuzz
// shaping through go-text/typesetting and glyph outlines, names, and
// metrics through golang.org/x/image/font/sfnt.
//
// The package converts shaped runs into per-glyph position/advance records
// and glyph outlines into path segments; it performs no rendering itself.
package text
