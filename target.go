// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/style"
)

// Target is the drawing surface a Surface wraps. *host.Canvas implements
// it.
//
// Path methods follow browser canvas rules: Fill and Stroke paint the
// current path without clearing it; BeginPath starts a new one.
type Target interface {
	// Size returns the pixel dimensions of the drawing buffer.
	Size() (width, height int)

	// Resize sets the pixel dimensions and discards drawn content.
	Resize(width, height int) error

	// Clear erases all drawn content.
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	Arc(cx, cy, r, start, end float64)
	Rect(x, y, w, h float64)
	ClosePath()

	Fill(c gg.RGBA) error
	Stroke(c gg.RGBA, width float64) error

	// FillText draws s anchored at (x, y) according to t.
	FillText(s string, x, y float64, t style.Text) error

	// DrawImage copies the src rectangle of img into dst.
	DrawImage(img *gg.ImageBuf, src image.Rectangle, dst gg.Rect) error

	CompositeOperation() style.CompositeOp
	SetCompositeOperation(op style.CompositeOp)

	// Element styling.
	SetBackground(p style.Paint)
	SetBackgroundImage(img *gg.ImageBuf)
	SetBorder(b style.Border)
	SetCursor(c gpucontext.CursorShape)

	// BoundingClientRect returns the element box in window coordinates.
	BoundingClientRect() gg.Rect
}
