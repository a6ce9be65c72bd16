// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host provides a concrete drawing environment for easel surfaces.
//
// A Document is a registry of canvas elements keyed by identifier. Each
// Canvas wraps a gg drawing context and exposes browser-canvas style path
// semantics: Fill and Stroke paint the current path without consuming it,
// and BeginPath starts a new one. Element styling (background color and
// image, border, cursor) is kept beside the drawn content and combined with
// it by Snapshot.
//
// Software canvases rasterize with gg's CPU renderer. GPU canvases wrap a
// ggcanvas.Canvas and can be presented to a gpucontext.TextureDrawer:
//
//	doc := host.NewDocument()
//	c, err := doc.CreateCanvas("main", 640, 480)
//	if err != nil {
//		return err
//	}
//	c.Rect(10, 10, 100, 50)
//	_ = c.Fill(gg.RGB(1, 0, 0))
//	_ = c.SavePNG("out.png")
package host
