// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package easel is a convenience layer over a 2D drawing surface.
//
// A Surface wraps a Target, usually a canvas element of a host.Document,
// and adds shorthand methods for shapes, text and images together with a
// table of default style options: drawing color, font, text alignment,
// composite operation and the element's background, border and cursor.
//
// # Quick Start
//
//	doc := host.NewDocument()
//	if _, err := doc.CreateCanvas("main", 640, 480); err != nil {
//		log.Fatal(err)
//	}
//	s, err := easel.Open(doc, "main", easel.Options{Color: "navy"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = s.Rectangle(20, 20, 200, 100, easel.WithFill(gg.RGB(1, 0.8, 0)))
//	_ = s.Text("hello", 120, 70)
//
// # Options
//
// Options hold CSS-like strings keyed as in the default table:
//
//	compositeOperation  source-over
//	backgroundColor     none
//	backgroundImage     none
//	color               #000000
//	border              none
//	font                16px Arial
//	textAlign           center
//	textBaseline        middle
//	cursor              default
//
// New merges the supplied options over the defaults; SetOptions merges
// over the previous options. Later non-empty values win. Options can be
// read from YAML with LoadOptions.
//
// # Images
//
// Images are cached per source string and fetched in the background.
// Drawing an image that is already loaded draws immediately. Drawing one
// that is still loading queues the draw until Poll or Wait delivers the
// finished load. Only the latest draw queued for a source runs; a newer
// draw replaces the one waiting. If the load fails the queued draw is
// dropped and the error is reported.
//
// # Threading
//
// A Surface must be used from a single goroutine. Poll and Wait run
// queued image draws on the calling goroutine.
package easel
