// Package drawbot is a procedural 2D drawing API in the style of DrawBot.
//
// A Drawing is an explicit, stateful drawing context: it owns a document of
// pages, a graphics-state stack (fill, stroke, text style), and the current
// page canvas. Drawing calls mutate the current state and forward geometry
// plus paint to the page canvas; rasterization, text shaping, and file
// encoding are delegated to external engines (gogpu/gg, go-text/typesetting,
// and the standard image codecs).
//
// The public coordinate system is Y-up with the origin at the lower-left
// corner of the page, matching DrawBot. Pages are recorded as display lists
// and replayed by the export backends, so a single script can be saved as
// PNG, JPEG, SVG, PDF, animated GIF, or MP4.
//
//	db := drawbot.NewDrawing()
//	db.NewPage(200, 200)
//	db.SetFillRGBA(1, 0, 0, 1)
//	db.Rect(50, 50, 100, 100)
//	err := db.SaveImage("out.png")
//
// A Drawing is not safe for concurrent use. Every page and the state stack
// are owned by a single goroutine; separate Drawing instances are fully
// independent.
package drawbot
